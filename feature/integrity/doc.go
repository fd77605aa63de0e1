// Package integrity validates the storage layout, the catalog sources and the
// database schema the CDN depends on.
//
// # Checks Provided
//
//   - Structure: the asset folders under the configured prefix and the catalog folder
//     exist in the bucket. Missing folders can be created.
//   - Catalog: the items catalog, localization and CDN manifest objects exist and
//     normalize into a snapshot. Integrity failures name the offending section.
//   - Coverage: every sticker kit, patch and music kit of the catalog has its art in
//     the bucket.
//   - Server: the unresolved_items table matches its GORM model.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/catalog : Runs catalog check.
//   - GET /integrity/coverage : Runs asset coverage check.
//   - GET /integrity/server : Runs server schema check.
package integrity

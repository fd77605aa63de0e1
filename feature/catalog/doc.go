// Package catalog exposes the catalog store over HTTP and drives its periodic refresh.
//
// GET /catalog reports the published snapshot and POST /catalog/refresh reloads the
// catalog sources on demand. A refresh that finds the stored objects unchanged keeps
// the current snapshot.
package catalog

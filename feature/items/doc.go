// Package items exposes the name resolution engine over HTTP.
//
// Every request binds a resolver to the catalog snapshot that is current at that
// moment, so a refresh running in parallel never changes the answer of a request in
// flight.
//
// # Routes
//
//   - GET /items/image?name=&phase= resolves a display name
//   - GET /stickers/*, /patches/*, /status-icons/* resolve a material name (?large=true)
//   - GET /weapons/:defindex/:paintindex resolves a weapon and paint kit
//   - GET /items/unresolved lists recorded misses
//
// Misses of display names are counted in the unresolved_items table when a database
// is connected.
package items

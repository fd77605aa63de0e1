// Package assets provides the byte-retrieval capability the resolution engine hashes
// into CDN URLs.
//
// A Source returns the bytes stored at a resource path such as
// resource/flash/econ/stickers/cologne2016/nv.png. Absent assets are reported with
// ErrNotFound; the engine treats every error as a lookup miss.
//
//   - MemorySource: a fixed map, used by tests and small embedded catalogs.
//   - StorageSource: reads objects from the bucket and keeps recently used bytes in an
//     expirable LRU so repeated resolutions do not go back to storage.
package assets

// Package cdn builds the public, content-addressed URL of an icon asset.
//
// A resource path such as resource/flash/econ/stickers/cologne2016/nv.png is rewritten
// to the CDN icon tree and the hash of the asset bytes is inserted before the file
// extension. The same path and bytes always give the same URL.
package cdn

// Package storage provides an abstraction layer for the object store holding the
// game catalog files and the icon asset tree.
//
// It wraps the MinIO Go client, which works against AWS S3 and self-hosted MinIO alike.
// Two kinds of objects live in the bucket:
//
//   - catalog/: items_game.json, csgo_english.json and items_game_cdn.txt, read by the
//     catalog loader on every refresh.
//   - resource/flash/: the icon tree (stickers, patches, music kits, status icons,
//     inventory images) whose bytes are hashed into content-addressed CDN URLs.
//
// # Client Interface
//
// The Client interface keeps only the operations the service needs, so tests can use
// the testify mock in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage

// Package catalog turns the raw game-definition catalog and localization table into an
// immutable, typed Snapshot that the resolution engine reads.
//
// # Normalization
//
// Normalize validates the required sections of the items catalog (items, prefabs,
// paint_kits, sticker_kits, music_definitions), maps every record to a typed struct and
// builds the inverted localization index. Tags are lowercased exactly once here so that
// downstream lookups compare plain strings. A missing or malformed section fails with an
// *IntegrityError, which is the only fatal condition of the engine.
//
// # Localization Index
//
// The inverted index maps a display string to every token that carries it, in discovery
// order. Display strings collide frequently ("Doppler", "Gamma Doppler", sticker and
// graffiti names), so callers always receive the full candidate list.
//
// # Publication
//
// A Store holds the current Snapshot behind an atomic pointer. Refresh loads the raw
// sources through a Loader, normalizes them and swaps the pointer; concurrent refreshes
// are collapsed with singleflight. Readers that already hold a Snapshot keep using it.
//
// # Usage
//
//	store := catalog.NewStore(catalog.NewStorageLoader(client, bucket, cfg.Catalog), logger)
//	if _, err := store.Refresh(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	snap := store.Snapshot()
package catalog

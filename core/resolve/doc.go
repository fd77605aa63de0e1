// Package resolve maps item display names to content-addressed icon URLs.
//
// Resolution runs in three steps:
//
//  1. Classify strips decorative prefixes (★, StatTrak™, Souvenir) and picks the item
//     kind with a fixed-priority predicate chain: Weapon, MusicKit, Sticker, Graffiti,
//     Patch, then Generic.
//  2. The kind resolver walks the catalog snapshot. Every display string may map to
//     several localization tokens; resolvers try each candidate in discovery order and
//     only report a miss once all of them are exhausted.
//  3. The resulting resource path is content-addressed by the cdn.Builder, or, for
//     weapons, the CDN manifest reference is returned.
//
// An Engine is bound to one catalog snapshot and holds no mutable state, so any number
// of goroutines may resolve through the same Engine. Lookups never return errors: a
// miss is reported through the boolean result.
package resolve

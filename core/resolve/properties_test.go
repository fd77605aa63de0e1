package resolve_test

import (
	"testing"

	"econ-cdn/core/catalog/catalogtest"
	"econ-cdn/core/resolve"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var sampleNames = []interface{}{
	"AWP | Redline (Field-Tested)",
	"AWP | Redline",
	"AWP",
	"★ Karambit | Gamma Doppler (Factory New)",
	"Sticker | X-Axes",
	"Sticker | Gold Star",
	"Sticker | Team EnVyUs | Cologne 2016",
	"Sealed Graffiti | X-Axes (Tracer Yellow)",
	"Patch | Dust II",
	"Music Kit | Valve, CS:GO",
	"CS:GO Weapon Case",
	"CS:GO Case Key",
	"Totally Unknown Item",
}

func TestEngine_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	e := newEngine(t)
	phases := make([]interface{}, 0, len(resolve.Phases)+1)
	phases = append(phases, resolve.PhaseNone)
	for _, p := range resolve.Phases {
		phases = append(phases, p)
	}

	properties.Property("resolution is idempotent", prop.ForAll(
		func(name string, phase resolve.Phase) bool {
			opts := resolve.Options{Phase: phase}
			first, ok1 := e.ResolveItemImageURL(name, opts)
			second, ok2 := e.ResolveItemImageURL(name, opts)
			return first == second && ok1 == ok2
		},
		gen.OneConstOf(sampleNames...), gen.OneConstOf(phases...),
	))

	properties.Property("arbitrary names never panic", prop.ForAll(
		func(name string) bool {
			e.ResolveItemImageURL(name, resolve.Options{})
			return true
		},
		gen.AnyString(),
	))

	properties.Property("wear suffixes do not change the result", prop.ForAll(
		func(wear string) bool {
			bare, _ := e.ResolveItemImageURL("AWP | Redline", resolve.Options{})
			worn, _ := e.ResolveItemImageURL("AWP | Redline "+wear, resolve.Options{})
			return bare == worn
		},
		gen.OneConstOf("(Factory New)", "(Minimal Wear)", "(Field-Tested)", "(Well-Worn)", "(Battle-Scarred)"),
	))

	properties.TestingRun(t)
}

// Stickers whose name has a single localization token resolve to exactly the
// direct material lookup.
func TestEngine_UniqueTokenMatchesDirectLookup(t *testing.T) {
	snap := catalogtest.Snapshot(t)
	e := newEngine(t)

	kitsByTag := make(map[string]int)
	for _, kit := range snap.StickerKits {
		kitsByTag[kit.NameTag]++
	}

	checked := 0
	for _, kit := range snap.StickerKits {
		if kit.StickerMaterial == "" || kitsByTag[kit.NameTag] != 1 {
			continue
		}
		text, ok := snap.Localization.Text(kit.NameTag)
		if !ok || len(snap.Localization.Tokens(text)) != 1 {
			continue
		}
		direct, directOK := e.StickerURL(kit.StickerMaterial, true)
		viaName, nameOK := e.ResolveItemImageURL("Sticker | "+text, resolve.Options{})
		if directOK != nameOK || direct != viaName {
			t.Errorf("%s: name lookup %q (%v), direct lookup %q (%v)", kit.Name, viaName, nameOK, direct, directOK)
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("fixture has no sticker with a unique token")
	}
}

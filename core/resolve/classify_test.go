package resolve

import (
	"testing"

	"econ-cdn/core/catalog/catalogtest"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	snap := catalogtest.Snapshot(t)

	tests := []struct {
		input    string
		kind     Kind
		stripped string
	}{
		{"AWP | Redline (Field-Tested)", KindWeapon, "AWP | Redline (Field-Tested)"},
		{"  StatTrak™ AWP | Redline ", KindWeapon, "AWP | Redline"},
		{"★ Karambit | Gamma Doppler (Factory New)", KindWeapon, "Karambit | Gamma Doppler (Factory New)"},
		{"★ StatTrak™ Karambit", KindWeapon, "Karambit"},
		{"Souvenir AWP | Asiimov", KindWeapon, "AWP | Asiimov"},
		{"StatTrak™ Music Kit | Valve, CS:GO", KindMusicKit, "Music Kit | Valve, CS:GO"},
		{"Sticker | X-Axes", KindSticker, "Sticker | X-Axes"},
		{"Sealed Graffiti | X-Axes (Tracer Yellow)", KindGraffiti, "Sealed Graffiti | X-Axes (Tracer Yellow)"},
		{"Patch | Dust II", KindPatch, "Patch | Dust II"},
		{"CS:GO Weapon Case", KindGeneric, "CS:GO Weapon Case"},
		{"Unknown | Thing", KindGeneric, "Unknown | Thing"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := Classify(snap, tt.input)
			assert.Equal(t, tt.kind, c.Kind)
			assert.Equal(t, tt.stripped, c.Stripped)
		})
	}
}

func TestClassify_NilSnapshot(t *testing.T) {
	assert.Equal(t, KindSticker, Classify(nil, "Sticker | X-Axes").Kind)
	assert.Equal(t, KindGeneric, Classify(nil, "AWP | Redline").Kind)
}

func TestStripWearAndSplit(t *testing.T) {
	assert.Equal(t, "AWP | Redline", stripWear("AWP | Redline (Well-Worn)"))
	assert.Equal(t, "AWP | Redline (Tracer Yellow)", stripWear("AWP | Redline (Tracer Yellow)"))

	weapon, skin := splitSkin("AWP | Redline")
	assert.Equal(t, "AWP", weapon)
	assert.Equal(t, "Redline", skin)

	weapon, skin = splitSkin("AWP")
	assert.Equal(t, "AWP", weapon)
	assert.Empty(t, skin)
}

func TestPhase(t *testing.T) {
	t.Run("Parse", func(t *testing.T) {
		p, ok := ParsePhase(" Emerald ")
		assert.True(t, ok)
		assert.Equal(t, PhaseEmerald, p)

		p, ok = ParsePhase("")
		assert.True(t, ok)
		assert.Equal(t, PhaseNone, p)

		_, ok = ParsePhase("phase5")
		assert.False(t, ok)
	})

	t.Run("Matches", func(t *testing.T) {
		assert.True(t, PhaseNone.matches("anything"))
		assert.True(t, Phase2.matches("am_doppler_phase2"))
		assert.True(t, PhaseRuby.matches("am_ruby_marbleized"))
		assert.True(t, PhaseBlackPearl.matches("am_blackpearl_marbleized"))
		assert.False(t, PhaseRuby.matches("am_doppler_phase1"))
		assert.False(t, Phase1.matches("am_gamma_doppler_phase2"))
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "weapon", KindWeapon.String())
	assert.Equal(t, "music_kit", KindMusicKit.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

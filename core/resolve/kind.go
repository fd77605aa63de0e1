package resolve

import "strings"

// Kind is the item category chosen by the classifier.
type Kind int

const (
	KindGeneric Kind = iota
	KindWeapon
	KindMusicKit
	KindSticker
	KindGraffiti
	KindPatch
)

var kindNames = [...]string{
	KindGeneric:  "generic",
	KindWeapon:   "weapon",
	KindMusicKit: "music_kit",
	KindSticker:  "sticker",
	KindGraffiti: "graffiti",
	KindPatch:    "patch",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Phase identifies a Doppler style variant of a paint kit.
type Phase string

const (
	PhaseNone       Phase = ""
	PhaseRuby       Phase = "ruby"
	PhaseSapphire   Phase = "sapphire"
	PhaseBlackPearl Phase = "blackpearl"
	PhaseEmerald    Phase = "emerald"
	Phase1          Phase = "phase1"
	Phase2          Phase = "phase2"
	Phase3          Phase = "phase3"
	Phase4          Phase = "phase4"
)

// Phases lists every valid phase tag.
var Phases = []Phase{
	PhaseRuby, PhaseSapphire, PhaseBlackPearl, PhaseEmerald,
	Phase1, Phase2, Phase3, Phase4,
}

// ParsePhase converts a phase tag, case-insensitively. The empty string is PhaseNone.
func ParsePhase(s string) (Phase, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PhaseNone, true
	}
	for _, p := range Phases {
		if string(p) == s {
			return p, true
		}
	}
	return PhaseNone, false
}

// matches reports whether a paint kit internal name carries the phase, either as its
// suffix (am_doppler_phase2) or as an underscore separated segment
// (am_ruby_marbleized).
func (p Phase) matches(paintKitName string) bool {
	if p == PhaseNone {
		return true
	}
	name := strings.ToLower(paintKitName)
	if strings.HasSuffix(name, string(p)) {
		return true
	}
	for _, segment := range strings.Split(name, "_") {
		if segment == string(p) {
			return true
		}
	}
	return false
}

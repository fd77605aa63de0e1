package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Manifest maps lowercased weapon/skin keys (e.g. "weapon_awp_cu_awp_redline") to an
// asset reference, usually an absolute CDN URL.
type Manifest map[string]string

// Lookup returns the reference stored for key, ignoring case.
func (m Manifest) Lookup(key string) (string, bool) {
	ref, ok := m[strings.ToLower(key)]
	return ref, ok && ref != ""
}

// ParseManifest reads items_game_cdn.txt style "key=value" lines.
// Blank lines and lines starting with "#" are skipped. Later duplicates win.
func ParseManifest(r io.Reader) (Manifest, error) {
	m := make(Manifest)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, value, ok := strings.Cut(text, "=")
		if !ok {
			return nil, fmt.Errorf("manifest line %d: missing '='", line)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			return nil, fmt.Errorf("manifest line %d: empty key", line)
		}
		m[key] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return m, nil
}

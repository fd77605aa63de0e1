package cdn

import (
	"crypto/sha1"
	"encoding/hex"
	"path"
	"strings"
)

const (
	// DefaultBaseURL is the public CDN root for the game's icons.
	DefaultBaseURL = "https://steamcdn-a.akamaihd.net/apps/730/"
	// ResourcePrefix is the directory asset paths start with inside the game files.
	ResourcePrefix = "resource/flash/"
	// IconPrefix replaces ResourcePrefix in public URLs.
	IconPrefix = "icons/"
)

// Hasher computes the content hash embedded in asset URLs.
type Hasher interface {
	Sum(data []byte) string
}

// SHA1Hasher hashes with SHA-1, hex encoded, which is what the CDN uses.
type SHA1Hasher struct{}

// Sum implements Hasher.
func (SHA1Hasher) Sum(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// Builder turns resource paths and asset bytes into content-addressed URLs.
type Builder struct {
	baseURL string
	hasher  Hasher
}

// NewBuilder creates a Builder. An empty baseURL selects DefaultBaseURL and a nil
// hasher selects SHA1Hasher.
func NewBuilder(baseURL string, hasher Hasher) *Builder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if hasher == nil {
		hasher = SHA1Hasher{}
	}
	return &Builder{baseURL: baseURL, hasher: hasher}
}

// Build returns the URL of resourcePath with the hash of data inserted before its
// extension. It reports false when data is nil.
//
//	resource/flash/econ/stickers/cologne2016/nv.png
//	-> <base>icons/econ/stickers/cologne2016/nv.<sha1>.png
func (b *Builder) Build(resourcePath string, data []byte) (string, bool) {
	if data == nil || resourcePath == "" {
		return "", false
	}
	return b.baseURL + b.Path(resourcePath, b.hasher.Sum(data)), true
}

// Path rewrites resourcePath to its public, hash-qualified form without the base URL.
func (b *Builder) Path(resourcePath, hash string) string {
	p := strings.TrimPrefix(resourcePath, "/")
	if strings.HasPrefix(p, ResourcePrefix) {
		p = IconPrefix + strings.TrimPrefix(p, ResourcePrefix)
	}

	ext := path.Ext(p)
	return strings.TrimSuffix(p, ext) + "." + hash + ext
}

// BaseURL returns the configured CDN root, always ending in "/".
func (b *Builder) BaseURL() string {
	return b.baseURL
}

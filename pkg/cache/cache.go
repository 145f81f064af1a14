// Package cache stores layout documents and rendered artifacts between runs.
//
// Three backends share the [Cache] interface: [FileCache] for the CLI,
// [RedisCache] for the HTTP server and [NullCache] when caching is off.
// Keys are built by a [Keyer] so every backend agrees on what makes two
// requests equivalent.
//
// # Keys
//
// Layout keys hash the scene bytes together with the options that change
// geometry (grid width, viewport override). Artifact keys hash the layout
// document with the format and style. A changed scene therefore misses the
// layout entry and every artifact derived from it.
package cache

import (
	"context"
	"time"
)

// Default time-to-live per entry kind.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts are the option fields that change layout geometry.
type LayoutKeyOpts struct {
	GridWidth int     `json:"grid_width"`
	Viewport  float64 `json:"viewport,omitempty"`
}

// ArtifactKeyOpts are the option fields that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	Style      string `json:"style,omitempty"`
	Labels     bool   `json:"labels,omitempty"`
	Detailed   bool   `json:"detailed,omitempty"`
	Background string `json:"background,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	LayoutKey(sceneHash string, opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "layout:<sha256>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey returns the key of the layout computed from a scene.
func (DefaultKeyer) LayoutKey(sceneHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", sceneHash, opts)
}

// ArtifactKey returns the key of an artifact rendered from a layout.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

var _ Keyer = DefaultKeyer{}

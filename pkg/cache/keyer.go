package cache

import "encoding/json"

// Keyer builds cache keys for the artifacts of a net.
type Keyer interface {
	// SourceKey is the key of a rendered source-space image.
	SourceKey(topologyHash string, opts SourceKeyOpts) string

	// ForestKey is the key of a rendered glue forest diagram.
	ForestKey(topologyHash string, opts ForestKeyOpts) string
}

// SourceKeyOpts are the render settings that change a source image.
type SourceKeyOpts struct {
	Size   int  `json:"size"`
	Detail int  `json:"detail"`
	Edges  bool `json:"edges"`
}

// ForestKeyOpts are the render settings that change a forest diagram.
type ForestKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed"`
	Tabs     bool   `json:"tabs"`
}

// DefaultKeyer hashes the options together with the topology hash.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SourceKey implements Keyer.
func (DefaultKeyer) SourceKey(topologyHash string, opts SourceKeyOpts) string {
	return hashKey("source", topologyHash, opts)
}

// ForestKey implements Keyer.
func (DefaultKeyer) ForestKey(topologyHash string, opts ForestKeyOpts) string {
	return hashKey("forest", topologyHash, opts)
}

// hashKey joins prefix with the hash of parts, e.g. "source:3fa4…".
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

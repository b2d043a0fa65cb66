package cache

// ScopedKeyer wraps a Keyer with a prefix. The CLI scopes keys by build
// version so that entries written by a different renderer are never read.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// If inner is nil, a DefaultKeyer is used.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SourceKey generates a prefixed source image key.
func (k *ScopedKeyer) SourceKey(topologyHash string, opts SourceKeyOpts) string {
	return k.prefix + k.inner.SourceKey(topologyHash, opts)
}

// ForestKey generates a prefixed forest diagram key.
func (k *ScopedKeyer) ForestKey(topologyHash string, opts ForestKeyOpts) string {
	return k.prefix + k.inner.ForestKey(topologyHash, opts)
}

package crypto

import "sync"

// Switch decides whether table conversions apply the cipher.
type Switch interface {
	Enabled() bool
}

// Fixed is a Switch with a constant answer.
type Fixed bool

// Enabled implements Switch.
func (f Fixed) Enabled() bool { return bool(f) }

const (
	// Enabled always applies the cipher.
	Enabled = Fixed(true)
	// Disabled always passes values through.
	Disabled = Fixed(false)
)

// Toggle is a mutable Switch safe for concurrent use. Writers win in
// order; readers see either the old or the new value.
type Toggle struct {
	mu      sync.RWMutex
	enabled bool
}

// NewToggle creates a Toggle with the given initial state.
func NewToggle(enabled bool) *Toggle {
	return &Toggle{enabled: enabled}
}

// Enabled implements Switch.
func (t *Toggle) Enabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}

// Set changes the state.
func (t *Toggle) Set(enabled bool) {
	t.mu.Lock()
	t.enabled = enabled
	t.mu.Unlock()
}

// DefaultToggle is the process-wide switch. It starts disabled.
var DefaultToggle = NewToggle(false)

// UseEncryption reports the state of DefaultToggle.
func UseEncryption() bool {
	return DefaultToggle.Enabled()
}

// SetUseEncryption sets DefaultToggle.
func SetUseEncryption(enabled bool) {
	DefaultToggle.Set(enabled)
}

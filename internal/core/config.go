package core

// RuntimeConfig contains configuration passed to the UI at startup.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for the secret word; 0 means unseeded
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}

// Seeded reports whether a deterministic seed was requested.
func (c RuntimeConfig) Seeded() bool {
	return c.Seed != 0
}

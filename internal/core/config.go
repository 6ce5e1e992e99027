package core

// RuntimeConfig contains configuration passed from the platform layer to a
// match session. Games use this to adapt to screen size and for
// deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Frame callbacks per second (default 60)
	Seed    int64 // RNG seed, 0 means use current time in the platform layer
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     60,
	}
}

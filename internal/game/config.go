package game

// Config holds engine configuration options.
type Config struct {
	// Seed for the random number generator. Used for reproducible games.
	// A seed of 0 means a time-based seed.
	Seed int64
}

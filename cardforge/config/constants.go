package config

import "time"

// Application-wide constants organized by domain

// Game Mechanics Constants
const (
	// Deck building
	DeckCount        = 4
	DeckSize         = 10
	MaxCopiesPerDeck = 2

	// Collection
	BaseCardCopies = 3

	// Fusion
	FusionBoost = 1.15
)

// Database and Performance Constants
const (
	// Timeouts
	DefaultQueryTimeout = 30 * time.Second
	NetworkDialTimeout  = 5 * time.Second

	// Cache settings
	SearchCacheSize = 256
	CacheExpiration = 5 * time.Minute

	// Batch processing
	DefaultBatchSize = 50
	MaxRetries       = 3
)

// Logging Constants
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

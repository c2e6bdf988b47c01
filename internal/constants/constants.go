package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// MatchIDPageSize is the largest page the match-id endpoint serves.
	MatchIDPageSize = 100

	// MaxMatchHistory caps how far full-history mode walks back.
	MaxMatchHistory = 500

	DefaultMatchCount   = 15
	DefaultCompareCount = 10

	// RankedSoloQueueID is Riot's queue id for ranked solo/duo.
	RankedSoloQueueID = 420

	TopChampionLimit = 3
)

// DefaultWindows are the trailing-window sizes broken out per response.
var DefaultWindows = []int{5, 10, 15}

package app

import "time"

// Config holds runtime configuration for the application.
type Config struct {
	// Fetch
	UserAgent   string
	Timeout     time.Duration
	MaxAttempts int

	// Text-score fallback gates. Zero/empty keeps the defaults.
	TextScoreMaxLen     int
	TextScoreVocabulary string

	// Output
	OutputPath string
	PDFPath    string

	// Behavior
	Verbose bool
}

package config

// OutputConfig holds settings for reporting finished games.
type OutputConfig struct {
	// JSONFormat writes the game record as JSON instead of text.
	JSONFormat bool

	// ShowBoard prints the final position as a diagram.
	ShowBoard bool

	// MaxLineLength wraps the movetext.
	MaxLineLength int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard:     true,
		MaxLineLength: 80,
	}
}

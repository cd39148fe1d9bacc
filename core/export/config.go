package export

// Config holds configuration for report output.
type Config struct {
	// OutputDir is the directory report files are written to. It is created if missing.
	OutputDir string `mapstructure:"output_dir" default:"output" validate:"required"`
}

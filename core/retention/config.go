package retention

// Config holds configuration for the retention sweep.
type Config struct {
	// Days is the age in days after which report files are deleted.
	Days int `mapstructure:"days" default:"90" validate:"gt=0"`
	// Strict makes a failed deletion abort the run instead of being logged.
	Strict bool `mapstructure:"strict" default:"false"`
}

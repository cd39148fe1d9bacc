package libcal

// Config holds configuration for the LibCal API client.
type Config struct {
	// BaseURL is the scheme and host of the LibCal instance.
	BaseURL string `mapstructure:"base_url" default:"https://yorku.libcal.com" validate:"required,url"`
	// LocationID is the LibCal location whose equipment is queried.
	LocationID int `mapstructure:"location_id" default:"2632" validate:"gt=0"`
	// ClientID is the OAuth client id of the API application.
	ClientID string `mapstructure:"client_id" default:"" validate:"required"`
	// ClientSecret is the OAuth client secret of the API application.
	ClientSecret string `mapstructure:"client_secret" default:"" validate:"required"`
	// TimeoutSeconds bounds every HTTP request, including the token exchange.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

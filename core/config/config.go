package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"loanable-inventory/core/export"
	"loanable-inventory/core/libcal"
	"loanable-inventory/core/logger"
	"loanable-inventory/core/retention"
	"loanable-inventory/core/storage"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// LibCal holds the API location and OAuth credentials.
	LibCal libcal.Config `mapstructure:"libcal"`
	// Report holds the output directory.
	Report export.Config `mapstructure:"report"`
	// Retention holds the sweep threshold and failure policy.
	Retention retention.Config `mapstructure:"retention"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for optional report publishing.
	Storage storage.Config `mapstructure:"storage"`
}

// ValidationError lists the environment variables that are missing or invalid.
type ValidationError struct {
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s must be set to valid values", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LoadConfig loads configuration from environment variables and an optional
// .env file in path, then validates it. Variables already present in the
// environment take precedence over the .env file.
func LoadConfig(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration without validating it. Commands that only
// need some sections validate those with ValidateSection.
func Load(path string) (*Config, error) {
	// Ignore error if file doesn't exist (e.g. scheduled runs)
	_ = godotenv.Load(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. LIBCAL_CLIENT_ID -> libcal.client_id)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return &config, nil
}

// Validate checks the struct-tag rules of the whole configuration and reports
// offending fields by their environment variable names.
func Validate(cfg *Config) error {
	return validateStruct(cfg, "")
}

// ValidateSection validates one sub-configuration. prefix is its mapstructure
// key (e.g. "report") and is used to build environment variable names.
func ValidateSection(prefix string, section any) error {
	return validateStruct(section, prefix)
}

func validateStruct(s any, prefix string) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := envName(fe.Namespace())
		if prefix != "" {
			name = strings.ToUpper(prefix) + "_" + name
		}
		fields = append(fields, name)
	}
	sort.Strings(fields)

	return &ValidationError{Fields: fields, Err: err}
}

// envName turns a validator namespace such as "Config.libcal.client_id"
// into LIBCAL_CLIENT_ID.
func envName(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToUpper(strings.Join(parts, "_"))
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}

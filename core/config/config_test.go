package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T) {
	t.Setenv("LIBCAL_CLIENT_ID", "client")
	t.Setenv("LIBCAL_CLIENT_SECRET", "secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setCredentials(t)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 2632, cfg.LibCal.LocationID)
	assert.Equal(t, "https://yorku.libcal.com", cfg.LibCal.BaseURL)
	assert.Equal(t, 30, cfg.LibCal.TimeoutSeconds)
	assert.Equal(t, "output", cfg.Report.OutputDir)
	assert.Equal(t, 90, cfg.Retention.Days)
	assert.False(t, cfg.Retention.Strict)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Storage.Enabled)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	setCredentials(t)
	t.Setenv("LIBCAL_LOCATION_ID", "77")
	t.Setenv("REPORT_OUTPUT_DIR", "/tmp/reports")
	t.Setenv("RETENTION_DAYS", "30")
	t.Setenv("RETENTION_STRICT", "true")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 77, cfg.LibCal.LocationID)
	assert.Equal(t, "client", cfg.LibCal.ClientID)
	assert.Equal(t, "secret", cfg.LibCal.ClientSecret)
	assert.Equal(t, "/tmp/reports", cfg.Report.OutputDir)
	assert.Equal(t, 30, cfg.Retention.Days)
	assert.True(t, cfg.Retention.Strict)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_MissingCredentials(t *testing.T) {
	tests := []struct {
		name       string
		clientID   string
		secret     string
		wantFields []string
	}{
		{"NoClientID", "", "secret", []string{"LIBCAL_CLIENT_ID"}},
		{"NoClientSecret", "client", "", []string{"LIBCAL_CLIENT_SECRET"}},
		{"Neither", "", "", []string{"LIBCAL_CLIENT_ID", "LIBCAL_CLIENT_SECRET"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LIBCAL_CLIENT_ID", tt.clientID)
			t.Setenv("LIBCAL_CLIENT_SECRET", tt.secret)

			cfg, err := LoadConfig(t.TempDir())
			assert.Nil(t, cfg)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantFields, verr.Fields)
			assert.Contains(t, err.Error(), tt.wantFields[0])
		})
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	setCredentials(t)
	t.Setenv("LIBCAL_LOCATION_ID", "0")
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := LoadConfig(t.TempDir())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"LIBCAL_LOCATION_ID", "LOG_LEVEL"}, verr.Fields)
}

func TestLoadConfig_RetentionDaysMustBePositive(t *testing.T) {
	setCredentials(t)
	t.Setenv("RETENTION_DAYS", "0")

	_, err := LoadConfig(t.TempDir())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"RETENTION_DAYS"}, verr.Fields)
}

func TestLoadConfig_NonNumericLocation(t *testing.T) {
	setCredentials(t)
	t.Setenv("LIBCAL_LOCATION_ID", "main-library")

	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestLoadConfig_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	t.Setenv("LIBCAL_CLIENT_ID", "from-env")
	dir := t.TempDir()
	content := "LIBCAL_CLIENT_ID=from-file\nLIBCAL_TEST_ONLY_SECRET=unused\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("LIBCAL_TEST_ONLY_SECRET") })
	t.Setenv("LIBCAL_CLIENT_SECRET", "secret")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.LibCal.ClientID)
	assert.Equal(t, "unused", os.Getenv("LIBCAL_TEST_ONLY_SECRET"), ".env values are loaded")
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "LIBCAL_CLIENT_ID", envName("Config.libcal.client_id"))
	assert.Equal(t, "LEVEL", envName("level"))
}

func TestLoad_SkipsValidation(t *testing.T) {
	t.Setenv("LIBCAL_CLIENT_ID", "")
	t.Setenv("LIBCAL_CLIENT_SECRET", "")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, ValidateSection("retention", cfg.Retention))
	assert.NoError(t, ValidateSection("report", cfg.Report))
	assert.Error(t, Validate(cfg))
}

func TestValidateSection_Names(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	cfg.Report.OutputDir = ""

	err = ValidateSection("report", cfg.Report)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"REPORT_OUTPUT_DIR"}, verr.Fields)
}

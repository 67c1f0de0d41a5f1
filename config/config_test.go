package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	c, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 0, c.Fold.MinLoop)
	assert.Equal(t, "json", c.Fold.Format)
	assert.Equal(t, ":5000", c.Server.Addr)
	assert.Equal(t, "*", c.Server.CORSOrigin)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoad_settingsFile(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte(`
fold:
  min-loop: 3
  format: yaml
server:
  addr: 127.0.0.1:8080
  max-length: 500
`), 0644))

	c, err := Load(viper.New(), settings)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Fold.MinLoop)
	assert.Equal(t, "yaml", c.Fold.Format)
	assert.Equal(t, "127.0.0.1:8080", c.Server.Addr)
	assert.Equal(t, 500, c.Server.MaxLength)
	assert.Equal(t, "text", c.Log.Format, "unset keys keep their defaults")
}

func TestLoad_env(t *testing.T) {
	t.Setenv("NUSSINOV_FOLD_MIN_LOOP", "2")
	t.Setenv("NUSSINOV_SERVER_ADDR", ":9000")

	c, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 2, c.Fold.MinLoop)
	assert.Equal(t, ":9000", c.Server.Addr)
}

func TestLoad_errors(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	v := viper.New()
	v.Set("fold.min-loop", -1)
	_, err = Load(v, "")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			"valid",
			Config{Fold: FoldConfig{MinLoop: 3, Format: "yaml"}},
			false,
		},
		{
			"negative min loop",
			Config{Fold: FoldConfig{MinLoop: -1, Format: "json"}},
			true,
		},
		{
			"unknown format",
			Config{Fold: FoldConfig{Format: "csv"}},
			true,
		},
		{
			"unknown gin mode",
			Config{Fold: FoldConfig{Format: "json"}, Server: ServerConfig{Mode: "verbose"}},
			true,
		},
		{
			"negative max length",
			Config{Fold: FoldConfig{Format: "json"}, Server: ServerConfig{MaxLength: -5}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

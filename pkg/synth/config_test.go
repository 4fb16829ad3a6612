package synth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"negative rows", func(c *Config) { c.Rows = -3 }},
		{"missing rate above one", func(c *Config) { c.MissingRate = 1.5 }},
		{"negative missing rate", func(c *Config) { c.MissingRate = -0.1 }},
		{"proportions not summing to one", func(c *Config) {
			c.CityProportions = []float64{0.5, 0.3, 0.3}
		}},
		{"negative proportion", func(c *Config) {
			c.CityProportions = []float64{1.2, -0.1, -0.1}
		}},
		{"wrong proportion arity", func(c *Config) {
			c.AgeProportions = []float64{0.5, 0.5}
		}},
		{"non-positive purchase scale", func(c *Config) { c.PurchaseScale = 0 }},
		{"inverted purchase clip range", func(c *Config) { c.PurchaseMin, c.PurchaseMax = 30, 1 }},
		{"non-positive transaction sigma", func(c *Config) { c.TransactionSigma = -0.9 }},
		{"non-positive digital beta", func(c *Config) { c.DigitalBeta = 0 }},
		{"invalid alpha clamp", func(c *Config) { c.DigitalAlphaMin = 0 }},
		{"non-positive noise sigma", func(c *Config) { c.NoiseSigma = 0 }},
		{"household range inverted", func(c *Config) { c.HouseholdMin, c.HouseholdMax = 7, 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 123\nseed: 7\nmissingRate: 0.1\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 123, cfg.Rows)
	require.EqualValues(t, 7, cfg.Seed)
	require.Equal(t, 0.1, cfg.MissingRate)
	// untouched parameters keep their defaults
	require.EqualValues(t, 43, cfg.MissingSeed)
	require.Equal(t, DefaultConfig().Weights, cfg.Weights)
}

func TestLoadConfigInvalidFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: -1\n"), 0o644))
	_, err = LoadConfig(path)
	require.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/daryltucker/fitness-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "en", cfg.Locale)
	assert.Empty(t, cfg.OutputDir)
	assert.Equal(t, []model.Package{
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}, cfg.Packages)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "tracker.yaml", `
locale: ru
output_dir: ./out
packages:
  - code: RUN
    data: [15000, 1, 75]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ru", cfg.Locale)
	assert.Equal(t, "./out", cfg.OutputDir)
	assert.Equal(t, "workout_results.csv", cfg.OutputFile)
	assert.Equal(t, []model.Package{{Code: "RUN", Data: []float64{15000, 1, 75}}}, cfg.Packages)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, "tracker.yaml", "locale: en\n")
	t.Setenv("FITNESS_LOCALE", "ru")
	t.Setenv("FITNESS_OUTPUT_DIR", "/tmp/results")
	t.Setenv("FITNESS_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ru", cfg.Locale)
	assert.Equal(t, "/tmp/results", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.yaml", "packages: [code: {"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("unknown locale", func(t *testing.T) {
		_, err := Load(writeFile(t, "locale.yaml", "locale: fr\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported locale")
	})

	t.Run("unknown log level", func(t *testing.T) {
		_, err := Load(writeFile(t, "level.yaml", "log_level: chatty\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestLoadPackages(t *testing.T) {
	path := writeFile(t, "week.yaml", `
- code: SWM
  data: [720, 1, 80, 25, 40]
- code: WLK
  data: [9000, 1, 75, 180]
`)

	packages, err := LoadPackages(path)
	require.NoError(t, err)
	require.Len(t, packages, 2)
	assert.Equal(t, "SWM", packages[0].Code)
	assert.Equal(t, []float64{9000, 1, 75, 180}, packages[1].Data)
}

func TestParsePackage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.Package
		wantErr bool
	}{
		{
			name:  "running",
			input: "RUN:15000,1,75",
			want:  model.Package{Code: "RUN", Data: []float64{15000, 1, 75}},
		},
		{
			name:  "spaces and decimals",
			input: " WLK : 9000, 1.5, 75, 180",
			want:  model.Package{Code: "WLK", Data: []float64{9000, 1.5, 75, 180}},
		},
		{
			name:  "code without data",
			input: "SWM:",
			want:  model.Package{Code: "SWM"},
		},
		{
			name:    "missing separator",
			input:   "RUN",
			wantErr: true,
		},
		{
			name:    "missing code",
			input:   ":1,2,3",
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   "RUN:15000,one,75",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePackage(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package output

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/daryltucker/fitness-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []model.Result {
	ts := time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)
	return []model.Result{
		{
			RunID:     "run-1",
			Index:     0,
			Timestamp: ts,
			Package:   model.Package{Code: "RUN", Data: []float64{15000, 1, 75}},
			Report: &model.Report{
				TrainingType: "Running",
				Duration:     1,
				Distance:     9.75,
				Speed:        9.75,
				Calories:     797.805,
			},
			Message: "Workout type: Running; ...",
		},
		{
			RunID:     "run-1",
			Index:     1,
			Timestamp: ts,
			Package:   model.Package{Code: "XYZ", Data: []float64{1, 2}},
			Error:     "unknown workout type: \"XYZ\"",
		},
	}
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	w, err := NewCSVWriter(path)
	require.NoError(t, err)
	for _, r := range sampleResults() {
		require.NoError(t, w.Write(r))
	}
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, CSVHeader, rows[0])
	assert.Equal(t, []string{
		"run-1", "0", "2026-10-19T08:00:00Z", "RUN:15000,1,75",
		"Running", "1", "9.750", "9.750", "797.805", "",
	}, rows[1])
	assert.Equal(t, "XYZ:1,2", rows[2][3])
	assert.Equal(t, []string{"", "", "", "", ""}, rows[2][4:9])
	assert.Equal(t, "unknown workout type: \"XYZ\"", rows[2][9])
}

func TestJSONWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")

	w, err := NewJSONWriter(path)
	require.NoError(t, err)
	for _, r := range sampleResults() {
		require.NoError(t, w.Write(r))
	}
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, lines, 2)

	assert.Equal(t, "Running", lines[0]["training_type"])
	assert.InDelta(t, 9.75, lines[0]["distance_km"], 1e-9)
	assert.NotContains(t, lines[0], "error")
	assert.Equal(t, "XYZ", lines[1]["package"].(map[string]any)["code"])
	assert.Contains(t, lines[1]["error"], "unknown workout type")
	for _, key := range []string{"training_type", "duration_h", "distance_km", "mean_speed_kmh", "calories_kcal"} {
		assert.NotContains(t, lines[1], key, "failed record must not carry metrics")
	}
}

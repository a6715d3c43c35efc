package output

import (
	"strings"
	"testing"

	"github.com/daryltucker/fitness-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMessage(t *testing.T) {
	en, err := LabelsFor("en")
	require.NoError(t, err)

	report := model.Report{
		TrainingType: "Running",
		Duration:     1,
		Distance:     9.75,
		Speed:        9.75,
		Calories:     797.805,
	}

	got := FormatMessage(report, en)
	assert.Equal(t,
		"Workout type: Running; Duration: 1 h.; Distance: 9.750 km; Avg. speed: 9.750 km/h; Calories burned: 797.805.",
		got)
}

func TestFormatMessageFieldOrder(t *testing.T) {
	en, err := LabelsFor("")
	require.NoError(t, err)

	got := FormatMessage(model.Report{TrainingType: "Swimming", Duration: 1.5, Distance: 0.9936, Speed: 1, Calories: 336}, en)

	order := []string{"Workout type: Swimming", "Duration: 1.5 h.", "Distance: 0.994 km", "Avg. speed: 1.000 km/h", "Calories burned: 336.000."}
	last := -1
	for _, part := range order {
		idx := strings.Index(got, part)
		require.GreaterOrEqual(t, idx, 0, "missing %q in %q", part, got)
		assert.Greater(t, idx, last, "%q out of order", part)
		last = idx
	}
}

func TestFormatMessageRussian(t *testing.T) {
	ru, err := LabelsFor("ru")
	require.NoError(t, err)

	got := FormatMessage(model.Report{TrainingType: "SportsWalking", Duration: 1, Distance: 5.85, Speed: 5.85, Calories: 157.5}, ru)
	assert.Equal(t,
		"Тип тренировки: SportsWalking; Длительность: 1 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
		got)
}

func TestLabelsForUnknownLocale(t *testing.T) {
	_, err := LabelsFor("de")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "de")
	assert.Equal(t, []string{"en", "ru"}, Locales())
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"", "debug", "INFO", "warn", "error"} {
		_, err := ParseLevel(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

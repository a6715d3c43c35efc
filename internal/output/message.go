/*
PURPOSE:
  Renders a workout report into the fixed one line summary.

REQUIREMENTS:
  User-specified:
  - Field order: type, duration, distance, speed, calories.
  - Distance, speed and calories with exactly 3 decimals.

  Implementation-discovered:
  - Labels are presentation only; "en" is the default, "ru" keeps the
    wording of the Russian reports.
  - Duration prints in its shortest exact form (1, 1.5).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Report

ERROR HANDLING:
  - LabelsFor returns an error for unknown locales.

USAGE:
  labels, err := output.LabelsFor("en")
  line := output.FormatMessage(report, labels)
*/

package output

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/daryltucker/fitness-tracker/internal/model"
)

// Labels holds the localized field names of a report line.
type Labels struct {
	TrainingType string
	Duration     string
	Hours        string
	Distance     string
	Km           string
	Speed        string
	Kmh          string
	Calories     string
}

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

var locales = map[string]Labels{
	"en": {
		TrainingType: "Workout type",
		Duration:     "Duration",
		Hours:        "h.",
		Distance:     "Distance",
		Km:           "km",
		Speed:        "Avg. speed",
		Kmh:          "km/h",
		Calories:     "Calories burned",
	},
	"ru": {
		TrainingType: "Тип тренировки",
		Duration:     "Длительность",
		Hours:        "ч.",
		Distance:     "Дистанция",
		Km:           "км",
		Speed:        "Ср. скорость",
		Kmh:          "км/ч",
		Calories:     "Потрачено ккал",
	},
}

// Locales returns the supported locale names, sorted.
func Locales() []string {
	names := make([]string, 0, len(locales))
	for name := range locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LabelsFor returns the labels of locale. An empty locale means DefaultLocale.
func LabelsFor(locale string) (Labels, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	l, ok := locales[locale]
	if !ok {
		return Labels{}, fmt.Errorf("unsupported locale %q (supported: %v)", locale, Locales())
	}
	return l, nil
}

// FormatMessage renders r as a single summary line.
func FormatMessage(r model.Report, l Labels) string {
	return fmt.Sprintf("%s: %s; %s: %s %s; %s: %.3f %s; %s: %.3f %s; %s: %.3f.",
		l.TrainingType, r.TrainingType,
		l.Duration, strconv.FormatFloat(r.Duration, 'f', -1, 64), l.Hours,
		l.Distance, r.Distance, l.Km,
		l.Speed, r.Speed, l.Kmh,
		l.Calories, r.Calories,
	)
}

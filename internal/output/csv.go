/*
PURPOSE:
  Writes workout results to a CSV file.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - Output to CSV, one row per processed package.

  Implementation-discovered:
  - Failed packages are written too, with metrics left blank and the
    error column filled.
  - Overwrites the file on every run.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write.
  - Same 3 decimal precision as the report line.

USAGE:
  w, err := output.NewCSVWriter("results.csv")
  w.Write(result)
  w.Close()

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update Write() mapping when Result struct changes.
*/

package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/daryltucker/fitness-tracker/internal/model"
)

// CSVHeader is the first row of every results file.
var CSVHeader = []string{
	"run_id", "index", "timestamp", "package",
	"training_type", "duration_h", "distance_km", "mean_speed_kmh", "calories_kcal",
	"error",
}

// CSVWriter handles writing results to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single result to the CSV file.
// It is thread-safe.
func (cw *CSVWriter) Write(r model.Result) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	record := []string{
		r.RunID,
		strconv.Itoa(r.Index),
		r.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		r.Package.String(),
		"", "", "", "", "",
		r.Error,
	}
	if r.Report != nil {
		record[4] = r.TrainingType
		record[5] = strconv.FormatFloat(r.Duration, 'f', -1, 64)
		record[6] = fmt.Sprintf("%.3f", r.Distance)
		record[7] = fmt.Sprintf("%.3f", r.Speed)
		record[8] = fmt.Sprintf("%.3f", r.Calories)
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}

/*
PURPOSE:
  Streams one JSON object per processed sensor package (JSON Lines), so a
  batch of workout reports can be loaded back with jq or any NDJSON reader.

REQUIREMENTS:
  User-specified:
  - Keep a machine readable copy of every workout report next to the CSV.

  Implementation-discovered:
  - Failed packages are recorded too: the package and its error, with no
    metric fields, so a reader never mistakes them for empty workouts.
  - Labels in report messages may be Cyrillic; HTML escaping is off so
    they stay readable.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (one Write per package, same run id)
  - Consumes: internal/model.Result

ERROR HANDLING:
  - Write errors go back to the runner, which counts them in Summary.

USAGE:
  w, err := output.NewJSONWriter("workout_results.json")
  w.Write(result)
  w.Close()
*/

package output

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/daryltucker/fitness-tracker/internal/model"
)

// JSONWriter appends workout results to a JSON Lines file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

// NewJSONWriter creates path, truncating an existing file.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)

	return &JSONWriter{
		file:    f,
		encoder: enc,
	}, nil
}

// Write encodes r as a single line.
func (jw *JSONWriter) Write(r model.Result) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	return jw.encoder.Encode(r)
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}

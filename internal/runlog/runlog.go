// Package runlog records the outcome of each date processed in a run.
package runlog

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/navps-cli/internal/model"
)

// Outcome is the result of processing one date.
type Outcome string

const (
	OutcomeSaved  Outcome = "saved"
	OutcomeClosed Outcome = "closed"
	OutcomeEmpty  Outcome = "empty"
	OutcomeFailed Outcome = "failed"
)

// Entry is one processed date.
type Entry struct {
	Date    string  `yaml:"date"`
	Outcome Outcome `yaml:"outcome"`
	Records int     `yaml:"records,omitempty"`
	Path    string  `yaml:"path,omitempty"`
	Kind    string  `yaml:"error_kind,omitempty"`
	Error   string  `yaml:"error,omitempty"`
}

// Summary is the ledger of a date-range run.
type Summary struct {
	RunID      string    `yaml:"run_id"`
	Start      string    `yaml:"start"`
	End        string    `yaml:"end"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at,omitempty"`
	Entries    []Entry   `yaml:"entries"`
}

// New starts a ledger for the range [start, end].
func New(start, end time.Time) *Summary {
	return &Summary{
		RunID:     uuid.New().String(),
		Start:     start.Format(model.DateLayout),
		End:       end.Format(model.DateLayout),
		StartedAt: time.Now().UTC(),
	}
}

// Record appends an entry for date.
func (s *Summary) Record(date time.Time, e Entry) {
	e.Date = date.Format(model.DateLayout)
	s.Entries = append(s.Entries, e)
}

// Finish stamps the completion time.
func (s *Summary) Finish() {
	s.FinishedAt = time.Now().UTC()
}

// Counts returns the number of entries per outcome.
func (s *Summary) Counts() map[Outcome]int {
	counts := make(map[Outcome]int)
	for _, e := range s.Entries {
		counts[e.Outcome]++
	}
	return counts
}

// WriteFile writes the ledger as YAML.
func (s *Summary) WriteFile(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return eris.Wrap(err, "runlog: marshal")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return eris.Wrap(err, "runlog: create directory")
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrap(err, "runlog: write file")
	}
	return nil
}

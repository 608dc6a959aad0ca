package report

import (
	"time"

	"github.com/google/uuid"
)

type Entry struct {
	Name      string         `json:"name"`
	Category  string         `json:"category"`
	Evidence  map[string]any `json:"evidence,omitempty"`
	Notes     []string       `json:"notes,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

type Results struct {
	RunID       string    `json:"run_id"`
	Command     string    `json:"command"`
	Entries     []Entry   `json:"entries"`
	Notes       []string  `json:"notes,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// New starts an empty result set for one command invocation.
func New(command string) *Results {
	return &Results{RunID: uuid.NewString(), Command: command, GeneratedAt: time.Now().UTC()}
}

func (r *Results) Add(e Entry) {
	if e.Timestamp.IsZero() { e.Timestamp = time.Now().UTC() }
	r.Entries = append(r.Entries, e)
}

// Merge appends the entries and notes of o, keeping r's run metadata.
func (r *Results) Merge(o *Results) {
	if o == nil { return }
	r.Entries = append(r.Entries, o.Entries...)
	r.Notes = append(r.Notes, o.Notes...)
}

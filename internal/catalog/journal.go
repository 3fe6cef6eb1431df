package catalog

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Hook names an appearance hook received by a page.
type Hook string

const (
	WillAppear    Hook = "will appear"
	DidAppear     Hook = "did appear"
	WillDisappear Hook = "will disappear"
	DidDisappear  Hook = "did disappear"
)

// Record is a hook received by a page.
type Record struct {
	PageID uuid.UUID
	Title  string
	Hook   Hook
	Serial uint
}

func (r Record) String() string {
	return fmt.Sprintf("%s: %s", r.Title, r.Hook)
}

// Journal records the appearance hooks received by pages, retaining at most
// a maximum number of records.
type Journal struct {
	records []Record
	max     int
	serial  uint
	mu      sync.Mutex
}

// NewJournal constructs a journal retaining up to size records. Zero means
// unlimited.
func NewJournal(size int) *Journal {
	return &Journal{max: size}
}

func (j *Journal) record(r Record) {
	j.mu.Lock()
	defer j.mu.Unlock()

	r.Serial = j.serial
	j.serial++
	j.records = append(j.records, r)
	if j.max > 0 && len(j.records) > j.max {
		j.records = j.records[len(j.records)-j.max:]
	}
}

// Records returns the retained records, oldest first.
func (j *Journal) Records() []Record {
	j.mu.Lock()
	defer j.mu.Unlock()

	records := make([]Record, len(j.records))
	copy(records, j.records)
	return records
}

// Last returns the most recent record.
func (j *Journal) Last() (Record, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.records) == 0 {
		return Record{}, false
	}
	return j.records[len(j.records)-1], true
}

// ForPage returns the hooks received by the page with the given ID, oldest
// first.
func (j *Journal) ForPage(id uuid.UUID) []Hook {
	var hooks []Hook
	for _, r := range j.Records() {
		if r.PageID == id {
			hooks = append(hooks, r.Hook)
		}
	}
	return hooks
}

// Package save persists run records across sessions. The mode engine's own
// state is never serialized; only the post-run bests land here.
package save

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordsObject   = "records"
	recordsProperty = "global"
)

// Records are the persisted lifetime bests.
type Records struct {
	BestDistance float64 `yaml:"bestDistance"`
	BestScore    int     `yaml:"bestScore"`
	TotalRuns    int     `yaml:"totalRuns"`
}

// Store wraps gdata storage for the records. A nil manager degrades to
// in-memory records that simply do not survive the process.
type Store struct {
	manager *gdata.Manager
	records Records
}

// NewStore loads existing records through the given manager. Pass nil to run
// without persistence.
func NewStore(manager *gdata.Manager) (*Store, error) {
	st := &Store{manager: manager}
	if err := st.load(); err != nil {
		return st, fmt.Errorf("load records: %w", err)
	}
	return st, nil
}

func (st *Store) load() error {
	if st.manager == nil {
		return nil
	}
	if !st.manager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}
	data, err := st.manager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return err
	}
	var r Records
	if err := yaml.Unmarshal(data, &r); err != nil {
		return err
	}
	st.records = r
	return nil
}

// Records returns the current bests.
func (st *Store) Records() Records {
	return st.records
}

// RecordRun folds one finished run into the records and persists them.
// Returns true when the run set a new best of either kind.
func (st *Store) RecordRun(distance float64, score int) (best bool, err error) {
	st.records.TotalRuns++
	if distance > st.records.BestDistance {
		st.records.BestDistance = distance
		best = true
	}
	if score > st.records.BestScore {
		st.records.BestScore = score
		best = true
	}
	return best, st.flush()
}

func (st *Store) flush() error {
	if st.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(&st.records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := st.manager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}

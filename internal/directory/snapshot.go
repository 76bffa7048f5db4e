// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package directory

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/people-api/pkg/types"
)

// Snapshot is the on-disk copy of a run's directory results. Saving one
// lets extraction be re-run and debugged without re-querying the index.
type Snapshot struct {
	URL       string            `yaml:"url"`
	FetchedAt time.Time         `yaml:"fetched_at"`
	Staff     []types.RawPerson `yaml:"staff,omitempty"`
	Faculty   []types.RawPerson `yaml:"faculty,omitempty"`
}

// NewSnapshot records result sets fetched from url.
func NewSnapshot(url string, rs ResultSets, fetchedAt time.Time) Snapshot {
	return Snapshot{
		URL:       url,
		FetchedAt: fetchedAt.UTC(),
		Staff:     rs.Staff,
		Faculty:   rs.Faculty,
	}
}

// ResultSets returns the stored people.
func (s Snapshot) ResultSets() ResultSets {
	return ResultSets{Staff: s.Staff, Faculty: s.Faculty}
}

// WriteSnapshot saves a snapshot to a YAML file.
func WriteSnapshot(path string, s Snapshot) error {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSnapshot loads a previously saved snapshot from disk.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &s, nil
}

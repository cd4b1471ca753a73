// SPDX-License-Identifier: MIT

package charcache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/diagharm/combin"
	"github.com/katalvlaran/diagharm/grading"
	"gopkg.in/yaml.v3"
)

var (
	// ErrCorrupt - the cache file exists but does not decode.
	ErrCorrupt = errors.New("charcache: corrupt cache entry")
)

// Store is a directory of YAML character files, one per partition.
type Store struct {
	dir string
}

// entry is the on-disk layout.
type entry struct {
	Partition  []int          `yaml:"partition"`
	Character  map[string]int `yaml:"character"`
	ComputedAt time.Time      `yaml:"computed_at"`
}

// Open ensures dir exists and returns a store over it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("charcache: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *Store) Dir() string { return s.dir }

// path maps a partition to its file, e.g. [3,2,1] → "3-2-1.yaml".
func (s *Store) path(mu combin.Partition) string {
	if len(mu) == 0 {
		return filepath.Join(s.dir, "empty.yaml")
	}
	parts := make([]string, len(mu))
	for i, p := range mu {
		parts[i] = fmt.Sprintf("%d", p)
	}

	return filepath.Join(s.dir, strings.Join(parts, "-")+".yaml")
}

// Get returns the cached character of mu, with ok=false on a clean miss.
func (s *Store) Get(mu combin.Partition) (map[grading.Degree]int, bool, error) {
	raw, err := os.ReadFile(s.path(mu))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("charcache: %w", err)
	}

	var e entry
	if err = yaml.Unmarshal(raw, &e); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path(mu), err)
	}
	char := make(map[grading.Degree]int, len(e.Character))
	for d, c := range e.Character {
		char[grading.Degree(d)] = c
	}

	return char, true, nil
}

// Put writes the character of mu, replacing any previous entry.
func (s *Store) Put(mu combin.Partition, char map[grading.Degree]int) error {
	e := entry{
		Partition:  mu,
		Character:  make(map[string]int, len(char)),
		ComputedAt: time.Now().UTC(),
	}
	for d, c := range char {
		e.Character[string(d)] = c
	}
	raw, err := yaml.Marshal(&e)
	if err != nil {
		return fmt.Errorf("charcache: %w", err)
	}
	if err = os.WriteFile(s.path(mu), raw, 0o644); err != nil {
		return fmt.Errorf("charcache: %w", err)
	}

	return nil
}

// GetOrCompute returns the cached character of mu, computing and storing it
// on a miss. Compute errors are returned as-is and nothing is written.
func (s *Store) GetOrCompute(mu combin.Partition, compute func() (map[grading.Degree]int, error)) (map[grading.Degree]int, error) {
	char, ok, err := s.Get(mu)
	if err != nil || ok {
		return char, err
	}
	if char, err = compute(); err != nil {
		return nil, err
	}

	return char, s.Put(mu, char)
}

package store

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sync"

	"binomci/internal/domain"
)

const (
	datasetsDir = "datasets"
	reportsDir  = "reports"
	fileMode    = 0o644
)

var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// FileStore stores datasets and reports on disk.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a store rooted at dir. Subdirectories are created on
// first write.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// Dir returns the root directory.
func (s *FileStore) Dir() string { return s.dir }

// ---------- Datasets ----------

func (s *FileStore) SaveDataset(name string, obs domain.TrialObservation) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := obs.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(s.path(datasetsDir, name), obs, fileMode)
}

func (s *FileStore) LoadDataset(name string) (domain.TrialObservation, error) {
	if err := checkName(name); err != nil {
		return domain.TrialObservation{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var obs domain.TrialObservation
	if err := readJSON(s.path(datasetsDir, name), &obs); err != nil {
		return domain.TrialObservation{}, fmt.Errorf("loading dataset %q: %w", name, err)
	}
	return obs, nil
}

// ---------- Reports ----------

func (s *FileStore) SaveReport(r domain.Report) error {
	if err := checkName(r.ID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(s.path(reportsDir, r.ID), r, fileMode)
}

func (s *FileStore) LoadReport(id string) (domain.Report, error) {
	if err := checkName(id); err != nil {
		return domain.Report{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var r domain.Report
	if err := readJSON(s.path(reportsDir, id), &r); err != nil {
		return domain.Report{}, fmt.Errorf("loading report %q: %w", id, err)
	}
	return r, nil
}

// ---------- helpers ----------

func (s *FileStore) path(kind, name string) string {
	return filepath.Join(s.dir, kind, name+".json")
}

func checkName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: invalid name %q", domain.ErrInvalidArgument, name)
	}
	return nil
}

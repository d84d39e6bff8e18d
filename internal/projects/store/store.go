// Package store persists the project collection as a single JSON
// document on local disk. Every operation re-reads the document, so the
// file stays the source of truth across restarts and manual edits.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/bubom6755/portfolio-backend/internal/projects/domain"
)

// Store owns the projects document. A single mutex serializes
// read-modify-write sequences so concurrent admin calls cannot lose
// updates.
type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

// List returns all projects in document order. A missing or unreadable
// document degrades to an empty list so the public read path stays up.
func (s *Store) List() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get returns the project with the given id.
func (s *Store) Get(id int) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.load() {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, domain.ErrNotFound
}

// Create assigns the next id and appends the project to the document.
// The id is 1 + the current maximum, so deleting the highest project
// frees its id for the next create. That quirk is long-standing and the
// frontend tolerates it, so it is kept as is.
func (s *Store) Create(p domain.Project) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.load()

	maxID := 0
	for _, existing := range projects {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1

	projects = append(projects, p)
	if err := s.save(projects); err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

// Update merges the patch into the stored project and persists the
// whole document. Nil patch fields leave the stored values untouched.
func (s *Store) Update(id int, patch domain.ProjectPatch) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.load()
	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		patch.Apply(&projects[i])
		if err := s.save(projects); err != nil {
			return domain.Project{}, err
		}
		return projects[i], nil
	}
	return domain.Project{}, domain.ErrNotFound
}

// Delete removes the project and persists the remaining collection.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.load()
	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		projects = append(projects[:i], projects[i+1:]...)
		return s.save(projects)
	}
	return domain.ErrNotFound
}

func (s *Store) load() []domain.Project {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("error loading projects: %v", err)
		}
		return []domain.Project{}
	}

	var projects []domain.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		log.Printf("error parsing projects file %s: %v", s.path, err)
		return []domain.Project{}
	}
	return projects
}

// save writes the whole document to a temp file and renames it into
// place, so a crash mid-write cannot leave a truncated document.
func (s *Store) save(projects []domain.Project) error {
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal projects: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "projects-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write projects: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace projects file: %w", err)
	}
	return nil
}

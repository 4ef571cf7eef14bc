package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
)

// DefaultDataDir is the directory name, under the home directory, that the
// file store uses when none is given.
const DefaultDataDir = "HidroDrawData"

// ProjectsFile is the name of the file holding all projects.
const ProjectsFile = "projects.json"

// FileStore keeps every project in one indented JSON array. A missing or
// malformed file reads as an empty store; the next write replaces it.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore creates a file store in dir. If dir is empty it defaults to
// ~/HidroDrawData. The directory and an empty projects file are created if
// missing.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, storageErr(err, "get home dir")
		}
		dir = filepath.Join(home, DefaultDataDir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, storageErr(err, "create data dir %s", dir)
	}
	s := &FileStore{path: filepath.Join(dir, ProjectsFile)}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.write(nil); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Path returns the projects file location.
func (s *FileStore) Path() string { return s.path }

// read loads every project. A missing file, or one that is not a JSON array
// at all, reads as an empty store. A project that fails to decode is an
// error, so a write never replaces projects that could not be read.
func (s *FileStore) read() ([]*drawing.Project, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, storageErr(err, "read %s", s.path)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil
	}
	ps := make([]*drawing.Project, 0, len(raw))
	for i, r := range raw {
		p, err := decode(r)
		if err != nil {
			return nil, storageErr(err, "%s: project %d", s.path, i)
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func (s *FileStore) write(ps []*drawing.Project) error {
	if ps == nil {
		ps = []*drawing.Project{}
	}
	data, err := json.MarshalIndent(ps, "", "  ")
	if err != nil {
		return storageErr(err, "encode projects")
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return storageErr(err, "write %s", s.path)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return storageErr(err, "write %s", s.path)
	}
	return nil
}

func find(ps []*drawing.Project, id string) int {
	for i, p := range ps {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *FileStore) List(ctx context.Context) ([]*drawing.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ps, err := s.read()
	if err != nil {
		return nil, err
	}
	if ps == nil {
		ps = []*drawing.Project{}
	}
	return ps, nil
}

func (s *FileStore) Get(ctx context.Context, id string) (*drawing.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ps, err := s.read()
	if err != nil {
		return nil, err
	}
	if i := find(ps, id); i >= 0 {
		return ps[i], nil
	}
	return nil, notFound(id)
}

func (s *FileStore) Create(ctx context.Context, p *drawing.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps, err := s.read()
	if err != nil {
		return err
	}
	if find(ps, p.ID) >= 0 {
		return exists(p.ID)
	}
	return s.write(append(ps, p))
}

func (s *FileStore) Update(ctx context.Context, p *drawing.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps, err := s.read()
	if err != nil {
		return err
	}
	i := find(ps, p.ID)
	if i < 0 {
		return notFound(p.ID)
	}
	ps[i] = p
	return s.write(ps)
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps, err := s.read()
	if err != nil {
		return err
	}
	i := find(ps, id)
	if i < 0 {
		return notFound(id)
	}
	return s.write(append(ps[:i], ps[i+1:]...))
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)

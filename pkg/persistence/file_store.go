package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"
)

var roomPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// FileStore keeps one YAML file per room below dir.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("could not create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func ValidRoom(room string) bool {
	return roomPattern.MatchString(room)
}

func (s *FileStore) Recent(_ context.Context, room string, limit int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read(room)
	if err != nil {
		return nil, err
	}
	limit = RecentLimit(limit)
	if len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records, nil
}

func (s *FileStore) Append(_ context.Context, record *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read(record.Room)
	if err != nil {
		return err
	}
	record.fill()
	records = append(records, *record)

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("could not encode room %s: %w", record.Room, err)
	}
	if err = os.WriteFile(s.path(record.Room), data, 0640); err != nil {
		return fmt.Errorf("could not write room %s: %w", record.Room, err)
	}
	return nil
}

func (s *FileStore) read(room string) ([]Record, error) {
	if !ValidRoom(room) {
		return nil, fmt.Errorf("invalid room name %q", room)
	}
	data, err := os.ReadFile(s.path(room))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read room %s: %w", room, err)
	}

	var records []Record
	if err = yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("could not decode room %s: %w", room, err)
	}
	return records, nil
}

func (s *FileStore) path(room string) string {
	return filepath.Join(s.dir, room+".yaml")
}

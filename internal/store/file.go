package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileState keeps instance storage in memory and rewrites a JSON file on
// every change. The file holds one object per contract id, so several
// instances can share it the way they share a bolt database.
type FileState struct {
	errOnce
	all        map[string]map[string]string
	db         map[string]string
	contractID string
	filename   string
}

// OpenFile loads filename if it exists and selects contractID's object.
func OpenFile(filename string, contractID string) (*FileState, error) {
	s := &FileState{
		all:        make(map[string]map[string]string),
		contractID: contractID,
		filename:   filename,
	}
	if err := s.loadFromFile(); err != nil {
		return nil, err
	}
	s.db = s.all[contractID]
	if s.db == nil {
		s.db = make(map[string]string)
	}
	return s, nil
}

func (s *FileState) Set(key, value string) {
	s.db[key] = value
	s.all[s.contractID] = s.db
	if err := s.saveToFile(); err != nil {
		s.onErr(err)
	}
}

func (s *FileState) Get(key string) *string {
	val, ok := s.db[key]
	if !ok {
		return nil
	}
	return &val
}

// Keys lists stored keys in sorted order.
func (s *FileState) Keys() []string {
	keys := make([]string, 0, len(s.db))
	for k := range s.db {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *FileState) Close() error { return nil }

// saveToFile writes every instance back to the JSON file
func (s *FileState) saveToFile() error {
	data, err := json.MarshalIndent(s.all, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.filename), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	return os.WriteFile(s.filename, data, 0o644)
}

func (s *FileState) loadFromFile() error {
	data, err := os.ReadFile(s.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // file doesn't exist yet
		}
		return fmt.Errorf("read state file: %w", err)
	}
	if err := json.Unmarshal(data, &s.all); err != nil {
		return fmt.Errorf("decode state file %s: %w", s.filename, err)
	}
	if s.all == nil {
		s.all = make(map[string]map[string]string)
	}
	return nil
}

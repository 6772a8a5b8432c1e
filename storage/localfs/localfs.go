// Package localfs is a filesystem-backed Store binding.
//
// Each key lives in its own file under a 2-character fanout directory, named
// by the hex of the key. Batch atomicity is provided by a journal: the batch
// is serialized and fsynced to a journal file before any entry is applied,
// and a leftover journal is replayed on Open. Individual entry writes go
// through a temp file + rename.
package localfs

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"xdao.co/chainreg/storage"
)

const journalName = "journal"

type Store struct {
	root string

	// Serializes Apply; the journal protocol assumes one writer.
	mu sync.Mutex
}

var _ storage.Store = (*Store)(nil)

// Open constructs a filesystem store rooted at root, creating the directory
// if needed and replaying an interrupted batch if one is found.
func Open(root string) (*Store, error) {
	if root == "" {
		return nil, errors.New("localfs: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	s := &Store{root: root}
	if err := s.replayJournal(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Get(key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, storage.ErrEmptyKey
	}
	b, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Store) Has(key []byte) bool {
	if len(key) == 0 {
		return false
	}
	_, err := os.Stat(s.pathFor(key))
	return err == nil
}

func (s *Store) Apply(batch storage.Batch) error {
	if err := batch.Validate(); err != nil {
		return err
	}
	if len(batch) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeJournal(batch); err != nil {
		return err
	}
	if err := s.applyEntries(batch); err != nil {
		return err
	}
	return os.Remove(s.journalPath())
}

func (s *Store) Keys() ([][]byte, error) {
	var out [][]byte
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() == journalName || filepath.Ext(d.Name()) == ".tmp" {
			return nil
		}
		key, derr := hex.DecodeString(d.Name())
		if derr != nil {
			return storage.ErrCorrupt
		}
		out = append(out, key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) pathFor(key []byte) string {
	name := hex.EncodeToString(key)
	fanout := name
	if len(fanout) > 2 {
		fanout = fanout[:2]
	}
	return filepath.Join(s.root, fanout, name)
}

func (s *Store) journalPath() string { return filepath.Join(s.root, journalName) }

type journalEntry struct {
	Key    string `json:"k"`
	Value  string `json:"v,omitempty"`
	Delete bool   `json:"d,omitempty"`
}

func (s *Store) writeJournal(batch storage.Batch) error {
	entries := make([]journalEntry, 0, len(batch))
	for _, e := range batch {
		entries = append(entries, journalEntry{
			Key:    base64.StdEncoding.EncodeToString(e.Key),
			Value:  base64.StdEncoding.EncodeToString(e.Value),
			Delete: e.Delete,
		})
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	tmp := s.journalPath() + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, s.journalPath())
}

// applyEntries writes every entry via temp file + rename. Entry application
// is idempotent, which is what makes journal replay safe.
func (s *Store) applyEntries(batch storage.Batch) error {
	for _, e := range batch {
		path := s.pathFor(e.Key)
		if e.Delete {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		tmp := path + ".tmp"
		if err := os.WriteFile(tmp, e.Value, 0o644); err != nil {
			return err
		}
		if err := os.Rename(tmp, path); err != nil {
			_ = os.Remove(tmp)
			return err
		}
	}
	return nil
}

func (s *Store) replayJournal() error {
	b, err := os.ReadFile(s.journalPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var entries []journalEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return storage.ErrCorrupt
	}
	batch := make(storage.Batch, 0, len(entries))
	for _, e := range entries {
		key, kerr := base64.StdEncoding.DecodeString(e.Key)
		val, verr := base64.StdEncoding.DecodeString(e.Value)
		if kerr != nil || verr != nil {
			return storage.ErrCorrupt
		}
		batch = append(batch, storage.Entry{Key: key, Value: val, Delete: e.Delete})
	}
	if err := s.applyEntries(batch); err != nil {
		return err
	}
	return os.Remove(s.journalPath())
}

// Package bundle exports and imports store snapshots as deterministic TAR
// archives, for backup and for seeding read-only registry mirrors.
package bundle

import (
	"archive/tar"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"xdao.co/chainreg/storage"
)

// FormatVersion is the current snapshot index schema version.
const FormatVersion = 1

const (
	indexName   = "index.json"
	entryPrefix = "kv/"
)

type index struct {
	Version int      `json:"version"`
	Count   int      `json:"count"`
	Keys    []string `json:"keys"` // hex, lexicographic
}

// Export writes a deterministic TAR snapshot of every key in s.
//
// The bundle bytes are deterministic for a given store state: entry order is
// the lexicographic order of hex-encoded keys and TAR headers are normalized
// (zero timestamps, fixed mode).
func Export(w io.Writer, s storage.Store) error {
	if s == nil {
		return fmt.Errorf("bundle: nil store")
	}
	keys, err := s.Keys()
	if err != nil {
		return err
	}
	hexKeys := make([]string, 0, len(keys))
	for _, k := range keys {
		hexKeys = append(hexKeys, hex.EncodeToString(k))
	}
	sort.Strings(hexKeys)

	tw := tar.NewWriter(w)

	idx, err := json.Marshal(index{Version: FormatVersion, Count: len(hexKeys), Keys: hexKeys})
	if err != nil {
		return err
	}
	if err := writeEntry(tw, indexName, idx); err != nil {
		return err
	}

	for _, hk := range hexKeys {
		key, err := hex.DecodeString(hk)
		if err != nil {
			return storage.ErrCorrupt
		}
		val, err := s.Get(key)
		if err != nil {
			return err
		}
		if err := writeEntry(tw, entryPrefix+hk, val); err != nil {
			return err
		}
	}
	return tw.Close()
}

func writeEntry(tw *tar.Writer, name string, body []byte) error {
	hdr := &tar.Header{
		Name:     name,
		Mode:     0o444,
		Size:     int64(len(body)),
		Typeflag: tar.TypeReg,
		Format:   tar.FormatPAX,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	_, err := tw.Write(body)
	return err
}

// Import reads a snapshot and applies every entry to s as one atomic batch.
// It returns the number of keys written.
func Import(r io.Reader, s storage.Store) (int, error) {
	if s == nil {
		return 0, fmt.Errorf("bundle: nil store")
	}
	tr := tar.NewReader(r)
	var batch storage.Batch
	sawIndex := false
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		body, err := io.ReadAll(tr)
		if err != nil {
			return 0, err
		}
		if hdr.Name == indexName {
			var idx index
			if err := json.Unmarshal(body, &idx); err != nil {
				return 0, fmt.Errorf("bundle: invalid index: %w", err)
			}
			if idx.Version != FormatVersion {
				return 0, fmt.Errorf("bundle: unsupported format version %d", idx.Version)
			}
			sawIndex = true
			continue
		}
		hk, ok := strings.CutPrefix(hdr.Name, entryPrefix)
		if !ok {
			return 0, fmt.Errorf("bundle: unexpected entry %q", hdr.Name)
		}
		key, err := hex.DecodeString(hk)
		if err != nil {
			return 0, fmt.Errorf("bundle: entry name %q is not hex", hdr.Name)
		}
		batch.Put(key, body)
	}
	if !sawIndex {
		return 0, fmt.Errorf("bundle: missing %s", indexName)
	}
	if err := s.Apply(batch); err != nil {
		return 0, err
	}
	return len(batch), nil
}

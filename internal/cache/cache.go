// Package cache stores generated worlds in LevelDB so repeated runs with the
// same parameters skip generation.
package cache

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
	"gopkg.in/yaml.v3"
)

// formatVersion is mixed into every fingerprint; bump it when the stored
// payload layout changes.
const formatVersion = 1

const (
	keyPrefix  = "world-"
	dataSuffix = "-data"
	metaSuffix = "-meta"
)

// ErrNotFound is returned when no entry exists for a key.
var ErrNotFound = errors.New("cache entry not found")

// Metadata describes a stored entry.
type Metadata struct {
	Key        string    `json:"key"`
	Created    time.Time `json:"created"`
	RawSize    int       `json:"raw_size"`
	StoredSize int       `json:"stored_size"`
}

// Store is a LevelDB-backed world cache.
type Store struct {
	db *leveldb.DB
}

// Open opens or creates the cache database at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("opening cache %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Fingerprint derives a stable key from the given parameter values.
// Values are YAML-encoded in order, so field renames change the key.
func Fingerprint(parts ...any) (string, error) {
	h := sha256.New()
	fmt.Fprintf(h, "v%d\n", formatVersion)
	for _, p := range parts {
		data, err := yaml.Marshal(p)
		if err != nil {
			return "", fmt.Errorf("encoding fingerprint part: %w", err)
		}
		h.Write(data)
		h.Write([]byte("---\n"))
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Save stores v as gzip-compressed JSON under key, replacing any previous entry.
func (s *Store) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling cache entry: %w", err)
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(raw); err != nil {
		return fmt.Errorf("compressing cache entry: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("closing gzip writer: %w", err)
	}

	meta, err := json.Marshal(Metadata{
		Key:        key,
		Created:    time.Now().UTC(),
		RawSize:    len(raw),
		StoredSize: buf.Len(),
	})
	if err != nil {
		return fmt.Errorf("marshaling cache metadata: %w", err)
	}

	batch := new(leveldb.Batch)
	batch.Put(dataKey(key), buf.Bytes())
	batch.Put(metaKey(key), meta)
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Load decodes the entry stored under key into v.
func (s *Store) Load(key string, v any) error {
	data, err := s.db.Get(dataKey(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("reading cache entry: %w", err)
	}

	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating gzip reader: %w", err)
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return fmt.Errorf("decompressing cache entry: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("unmarshaling cache entry: %w", err)
	}
	return nil
}

// Metadata returns the metadata of the entry stored under key.
func (s *Store) Metadata(key string) (*Metadata, error) {
	data, err := s.db.Get(metaKey(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading cache metadata: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("unmarshaling cache metadata: %w", err)
	}
	return &meta, nil
}

// Delete removes the entry stored under key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	batch := new(leveldb.Batch)
	batch.Delete(dataKey(key))
	batch.Delete(metaKey(key))
	return s.db.Write(batch, nil)
}

// Keys lists every stored key in ascending order.
func (s *Store) Keys() ([]string, error) {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(keyPrefix)), nil)
	defer iter.Release()

	var keys []string
	for iter.Next() {
		k := string(iter.Key())
		if !strings.HasSuffix(k, metaSuffix) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(strings.TrimPrefix(k, keyPrefix), metaSuffix))
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("iterating cache: %w", err)
	}
	return keys, nil
}

func dataKey(key string) []byte {
	return []byte(keyPrefix + key + dataSuffix)
}

func metaKey(key string) []byte {
	return []byte(keyPrefix + key + metaSuffix)
}

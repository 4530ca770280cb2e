package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"depot/internal/domain"
)

const recordExt = ".json"

// FileStore persists records of type T as individual JSON files, named after
// each record's key. The store directory is <root>/FileStore/<TypeName(T)>/.
type FileStore[T domain.Entity] struct {
	dir string
}

// NewFileStore returns a FileStore rooted under root, creating the store
// directory if it does not exist yet.
func NewFileStore[T domain.Entity](root string) (*FileStore[T], error) {
	dir := filepath.Join(root, storeName[T](), elementName[T]())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore[T]{dir: dir}, nil
}

// Dir returns the directory the store reads and writes.
func (s *FileStore[T]) Dir() string { return s.dir }

// Insert writes item to <dir>/<id>.json, overwriting any existing record
// with the same key.
func (s *FileStore[T]) Insert(item T) error {
	id := item.EntityID()
	if id == "" {
		return ErrEmptyID
	}
	b, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %q: %w", id, err)
	}
	return writeFile(s.path(id), b, 0o600)
}

// Get reads and decodes the record stored under id.
func (s *FileStore[T]) Get(id string) (T, error) {
	var zero T

	b, err := os.ReadFile(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return zero, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return zero, fmt.Errorf("read %q: %w", id, err)
	}
	return s.decode(id, b)
}

// GetAll reads every record in the store directory, in listing order. The
// order is file-system-dependent; a single undecodable file fails the whole
// call.
func (s *FileStore[T]) GetAll() ([]T, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list store dir: %w", err)
	}

	out := make([]T, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, recordExt) {
			continue
		}
		id := strings.TrimSuffix(name, recordExt)
		b, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", id, err)
		}
		item, err := s.decode(id, b)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *FileStore[T]) path(id string) string {
	return filepath.Join(s.dir, id+recordExt)
}

func (s *FileStore[T]) decode(id string, b []byte) (T, error) {
	var item T
	if err := json.Unmarshal(b, &item); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %q: %w", ErrDecode, id, err)
	}
	return item, nil
}

// storeName reports the store's type name with the type argument stripped,
// so every instantiation shares one directory level.
func storeName[T domain.Entity]() string {
	name := reflect.TypeFor[FileStore[T]]().Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

// elementName reports the bare type name of T, e.g. "Employee".
func elementName[T domain.Entity]() string {
	return reflect.TypeFor[T]().Name()
}

// Compile-time assertion that FileStore provides both store capabilities.
var _ domain.ReadWriter[domain.Employee] = (*FileStore[domain.Employee])(nil)

package files

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/corpeningc/compare-rows/internal/logger"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const filePermissions = 0o644

type Store struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOS returns a store backed by the real file system.
func NewOS() *Store {
	return New(afero.NewOsFs())
}

// WriteOptions controls how Write touches an existing file.
type WriteOptions struct {
	Append bool
	// AppendSep follows appended content. nil means "\n"; an empty string
	// appends nothing.
	AppendSep *string
}

func (s *Store) Abs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func (s *Store) Exists(path string) bool {
	ok, err := afero.Exists(s.fs, s.Abs(path))
	return err == nil && ok
}

func (s *Store) Read(path string) ([]byte, error) {
	return afero.ReadFile(s.fs, s.Abs(path))
}

// ReadLenient reads path and treats any failure as empty content.
func (s *Store) ReadLenient(ctx context.Context, path string) []byte {
	content, err := s.Read(path)
	if err != nil {
		logger.FromContext(ctx).Warn("could not read file, comparing it as empty", "path", s.Abs(path), "error", err)
		return nil
	}
	return content
}

// ReadPair reads both files concurrently, each leniently.
func (s *Store) ReadPair(ctx context.Context, pathA, pathB string) ([]byte, []byte) {
	var contentA, contentB []byte
	// Reads never fail, the group only joins the two goroutines.
	var g errgroup.Group
	g.Go(func() error {
		contentA = s.ReadLenient(ctx, pathA)
		return nil
	})
	g.Go(func() error {
		contentB = s.ReadLenient(ctx, pathB)
		return nil
	})
	_ = g.Wait()
	return contentA, contentB
}

// Write creates or replaces the file at path. Strings and byte slices are
// written as is, anything else is encoded as indented JSON.
func (s *Store) Write(path string, content any, opts *WriteOptions) error {
	data, err := encode(content)
	if err != nil {
		return fmt.Errorf("encode content for %s: %w", path, err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if opts != nil && opts.Append {
		sep := "\n"
		if opts.AppendSep != nil {
			sep = *opts.AppendSep
		}
		data = append(data, sep...)
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}

	f, err := s.fs.OpenFile(s.Abs(path), flags, filePermissions)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encode(content any) ([]byte, error) {
	switch c := content.(type) {
	case nil:
		return []byte{}, nil
	case string:
		return []byte(c), nil
	case []byte:
		return append([]byte{}, c...), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(content); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

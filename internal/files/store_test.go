package files

import (
	"bytes"
	"context"
	"testing"

	"github.com/corpeningc/compare-rows/internal/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return New(fs), fs
}

func TestStore_Exists(t *testing.T) {
	t.Run("Should report existing files", func(t *testing.T) {
		s, fs := newTestStore(t)
		require.NoError(t, afero.WriteFile(fs, "/data/a.txt", []byte("a"), 0o644))

		assert.True(t, s.Exists("/data/a.txt"))
		assert.False(t, s.Exists("/data/b.txt"))
	})
}

func TestStore_ReadLenient(t *testing.T) {
	t.Run("Should return content of readable files", func(t *testing.T) {
		s, fs := newTestStore(t)
		require.NoError(t, afero.WriteFile(fs, "/data/a.txt", []byte("apple\n"), 0o644))

		assert.Equal(t, []byte("apple\n"), s.ReadLenient(context.Background(), "/data/a.txt"))
	})

	t.Run("Should treat unreadable files as empty and log a warning", func(t *testing.T) {
		s, _ := newTestStore(t)
		var buf bytes.Buffer
		ctx := logger.ContextWithLogger(context.Background(), logger.NewLogger(&logger.Config{
			Level:  logger.WarnLevel,
			Output: &buf,
		}))

		assert.Empty(t, s.ReadLenient(ctx, "/data/missing.txt"))
		assert.Contains(t, buf.String(), "/data/missing.txt")
	})
}

func TestStore_ReadPair(t *testing.T) {
	t.Run("Should read both files", func(t *testing.T) {
		s, fs := newTestStore(t)
		require.NoError(t, afero.WriteFile(fs, "/a.txt", []byte("a"), 0o644))
		require.NoError(t, afero.WriteFile(fs, "/b.txt", []byte("b"), 0o644))

		a, b := s.ReadPair(context.Background(), "/a.txt", "/b.txt")
		assert.Equal(t, "a", string(a))
		assert.Equal(t, "b", string(b))
	})

	t.Run("Should keep going when one side fails", func(t *testing.T) {
		s, fs := newTestStore(t)
		require.NoError(t, afero.WriteFile(fs, "/b.txt", []byte("b"), 0o644))

		a, b := s.ReadPair(context.Background(), "/a.txt", "/b.txt")
		assert.Empty(t, a)
		assert.Equal(t, "b", string(b))
	})
}

func TestStore_Write(t *testing.T) {
	t.Run("Should write string slices as indented JSON", func(t *testing.T) {
		s, fs := newTestStore(t)

		require.NoError(t, s.Write("/out/common.json", []string{"a", "<b>"}, nil))

		got, err := afero.ReadFile(fs, "/out/common.json")
		require.NoError(t, err)
		assert.Equal(t, "[\n  \"a\",\n  \"<b>\"\n]", string(got))
	})

	t.Run("Should write empty lists as an empty JSON array", func(t *testing.T) {
		s, fs := newTestStore(t)

		require.NoError(t, s.Write("/common.json", []string{}, nil))

		got, err := afero.ReadFile(fs, "/common.json")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(got))
	})

	t.Run("Should write strings and bytes as is", func(t *testing.T) {
		s, fs := newTestStore(t)

		require.NoError(t, s.Write("/a.txt", "plain", nil))
		require.NoError(t, s.Write("/b.txt", []byte("raw"), nil))

		a, _ := afero.ReadFile(fs, "/a.txt")
		b, _ := afero.ReadFile(fs, "/b.txt")
		assert.Equal(t, "plain", string(a))
		assert.Equal(t, "raw", string(b))
	})

	t.Run("Should overwrite existing files", func(t *testing.T) {
		s, fs := newTestStore(t)
		require.NoError(t, afero.WriteFile(fs, "/a.json", []byte("a much longer previous content"), 0o644))

		require.NoError(t, s.Write("/a.json", []string{"x"}, nil))

		got, _ := afero.ReadFile(fs, "/a.json")
		assert.Equal(t, "[\n  \"x\"\n]", string(got))
	})

	t.Run("Should append with the default separator", func(t *testing.T) {
		s, fs := newTestStore(t)

		require.NoError(t, s.Write("/log.txt", "one", &WriteOptions{Append: true}))
		require.NoError(t, s.Write("/log.txt", "two", &WriteOptions{Append: true}))

		got, _ := afero.ReadFile(fs, "/log.txt")
		assert.Equal(t, "one\ntwo\n", string(got))
	})

	t.Run("Should append with a custom separator", func(t *testing.T) {
		s, fs := newTestStore(t)
		sep := ";"

		require.NoError(t, s.Write("/log.txt", "one", &WriteOptions{Append: true, AppendSep: &sep}))
		require.NoError(t, s.Write("/log.txt", "two", &WriteOptions{Append: true, AppendSep: &sep}))

		got, _ := afero.ReadFile(fs, "/log.txt")
		assert.Equal(t, "one;two;", string(got))
	})

	t.Run("Should append without separator when it is empty", func(t *testing.T) {
		s, fs := newTestStore(t)
		sep := ""

		require.NoError(t, s.Write("/log.txt", "one", &WriteOptions{Append: true, AppendSep: &sep}))
		require.NoError(t, s.Write("/log.txt", "two", &WriteOptions{Append: true, AppendSep: &sep}))

		got, _ := afero.ReadFile(fs, "/log.txt")
		assert.Equal(t, "onetwo", string(got))
	})

	t.Run("Should write an empty file for nil content", func(t *testing.T) {
		s, fs := newTestStore(t)

		require.NoError(t, s.Write("/empty.txt", nil, nil))

		got, err := afero.ReadFile(fs, "/empty.txt")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Should fail on a read-only file system", func(t *testing.T) {
		s := New(afero.NewReadOnlyFs(afero.NewMemMapFs()))

		assert.Error(t, s.Write("/common.json", []string{"a"}, nil))
	})
}

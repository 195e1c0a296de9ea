package highscore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, limit int) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), limit)
	require.NoError(t, err)
	return s
}

func TestLoadEmpty(t *testing.T) {
	s := openStore(t, 10)
	list, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, list)
	_, ok := s.Best()
	assert.False(t, ok)
}

func TestAddSortsAndPersists(t *testing.T) {
	s := openStore(t, 10)
	at := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	_, err := s.Add(Record{ID: "a", Name: "Luigi", Score: 120, At: at})
	require.NoError(t, err)
	_, err = s.Add(Record{ID: "b", Name: "Mario", Score: 300, Won: true, At: at})
	require.NoError(t, err)

	reopened, err := Open(s.dir, 10)
	require.NoError(t, err)
	got, err := reopened.Load()
	require.NoError(t, err)

	want := []Record{
		{ID: "b", Name: "Mario", Score: 300, Won: true, At: at},
		{ID: "a", Name: "Luigi", Score: 120, At: at},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("board mismatch (-want +got):\n%s", diff)
	}
	best, ok := reopened.Best()
	require.True(t, ok)
	assert.Equal(t, "Mario", best.Name)
}

func TestAddKeepsBestPerName(t *testing.T) {
	s := openStore(t, 10)
	_, err := s.Add(Record{Name: "Mario", Score: 500})
	require.NoError(t, err)
	list, err := s.Add(Record{Name: " mario ", Score: 200})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 500, list[0].Score)

	list, err = s.Add(Record{ID: "new", Name: "MARIO", Score: 900})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 900, list[0].Score)
	assert.Equal(t, "new", list[0].ID)
}

func TestAddTrimsToLimit(t *testing.T) {
	s := openStore(t, 2)
	for i, name := range []string{"a", "b", "c"} {
		_, err := s.Add(Record{Name: name, Score: (i + 1) * 10})
		require.NoError(t, err)
	}
	list, err := s.Load()
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, r := range list {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"c", "b"}, names)
}

func TestAddRejectsNegative(t *testing.T) {
	s := openStore(t, 10)
	_, err := s.Add(Record{Name: "x", Score: 10})
	require.NoError(t, err)
	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	_, err = s.Add(Record{Name: "x", Score: -1})
	require.ErrorIs(t, err, ErrNegativeScore)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after, "file should remain unchanged on error")
}

func TestLoadLegacyFormats(t *testing.T) {
	t.Run("single object", func(t *testing.T) {
		s := openStore(t, 10)
		require.NoError(t, os.WriteFile(s.Path(), []byte(`{"name":"Bob","score":777}`), 0o644))
		best, ok := s.Best()
		require.True(t, ok)
		assert.Equal(t, Record{Name: "Bob", Score: 777}, best)
	})
	t.Run("text file", func(t *testing.T) {
		s := openStore(t, 10)
		require.NoError(t, os.WriteFile(filepath.Join(s.dir, highScoreTxtFN), []byte("12345\n"), 0o644))
		best, ok := s.Best()
		require.True(t, ok)
		assert.Equal(t, 12345, best.Score)
	})
}

func TestCorruptBoardIsReplacedOnAdd(t *testing.T) {
	s := openStore(t, 10)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))
	_, err := s.Load()
	require.Error(t, err)

	list, err := s.Add(Record{Name: "Mario", Score: 40})
	require.NoError(t, err)
	require.Len(t, list, 1)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	var onDisk []Record
	require.NoError(t, json.Unmarshal(data, &onDisk))
	if diff := cmp.Diff(list, onDisk, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("disk mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultDirEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PACMAN_CONFIG_DIR", dir)
	got, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	s, err := Open("", 5)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, highScoreJSONFN), s.Path())
}

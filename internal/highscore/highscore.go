package highscore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"

	"github.com/marioamitrano01/Mario-s-Pac-Man/internal/log"
)

const (
	configDirName   = "pacman"
	highScoreTxtFN  = "highscore.txt"  // legacy
	highScoreJSONFN = "highscore.json" // current
)

var ErrNegativeScore = errors.New("score must be non-negative")

// Record is one leaderboard entry.
type Record struct {
	ID    string    `json:"id,omitempty"`
	Name  string    `json:"name"`
	Score int       `json:"score"`
	Won   bool      `json:"won,omitempty"`
	At    time.Time `json:"at,omitempty"`
}

// Store keeps the best score per player name in a JSON file.
type Store struct {
	dir    string
	limit  int
	logger zerolog.Logger
}

// DefaultDir determines where scores live.
// If PACMAN_CONFIG_DIR is set, it is used as-is. Otherwise, use UserConfigDir()/pacman.
func DefaultDir() (string, error) {
	if env := os.Getenv("PACMAN_CONFIG_DIR"); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(base, configDirName), nil
}

// Open prepares a store in dir, creating it if needed. An empty dir means DefaultDir.
// limit caps the number of kept records.
func Open(dir string, limit int) (*Store, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create score dir: %w", err)
	}
	if limit < 1 {
		limit = 1
	}
	return &Store{dir: dir, limit: limit, logger: log.WithComponent("highscore")}, nil
}

// Path returns the leaderboard file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, highScoreJSONFN)
}

// Load returns all records sorted by score, best first. A missing file is an empty board.
// Accepts either a JSON array of records or a single record object for backward compatibility,
// and falls back to the legacy txt format.
func (s *Store) Load() ([]Record, error) {
	data, err := os.ReadFile(s.Path())
	switch {
	case err == nil:
		list, perr := parseJSON(data)
		if perr != nil {
			return nil, fmt.Errorf("parse %s: %w", s.Path(), perr)
		}
		sortRecords(list)
		return list, nil
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("read scores: %w", err)
	}
	return s.loadLegacy()
}

func parseJSON(data []byte) ([]Record, error) {
	var arr []Record
	arrErr := json.Unmarshal(data, &arr)
	if arrErr == nil {
		return arr, nil
	}
	var obj Record
	if err := json.Unmarshal(data, &obj); err == nil && obj.Score >= 0 {
		return []Record{obj}, nil
	}
	return nil, arrErr
}

func (s *Store) loadLegacy() ([]Record, error) {
	f, err := os.Open(filepath.Join(s.dir, highScoreTxtFN))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read legacy scores: %w", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= 0 {
			return []Record{{Score: n}}, nil
		}
	}
	return nil, nil
}

// Best returns the top record, if any.
func (s *Store) Best() (Record, bool) {
	list, err := s.Load()
	if err != nil {
		s.logger.Warn().Err(err).Msg("load scores")
		return Record{}, false
	}
	if len(list) == 0 {
		return Record{}, false
	}
	return list[0], true
}

// Add upserts rec by player name (case-insensitive), keeping the better score, and
// writes the board atomically. It returns the updated board.
func (s *Store) Add(rec Record) ([]Record, error) {
	if rec.Score < 0 {
		return nil, ErrNegativeScore
	}
	rec.Name = strings.TrimSpace(rec.Name)
	list, err := s.Load()
	if err != nil {
		// A corrupt board is replaced rather than blocking new scores.
		s.logger.Warn().Err(err).Str("path", s.Path()).Msg("discarding unreadable scores")
		list = nil
	}
	updated := false
	for i := range list {
		if strings.EqualFold(strings.TrimSpace(list[i].Name), rec.Name) {
			if rec.Score > list[i].Score {
				list[i] = rec
			}
			updated = true
			break
		}
	}
	if !updated {
		list = append(list, rec)
	}
	sortRecords(list)
	if len(list) > s.limit {
		list = list[:s.limit]
	}
	if err := s.write(list); err != nil {
		return nil, err
	}
	s.logger.Debug().Str("name", rec.Name).Int("score", rec.Score).Int("entries", len(list)).Msg("scores saved")
	return list, nil
}

func (s *Store) write(list []Record) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := renameio.WriteFile(s.Path(), data, 0o644); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	return nil
}

// sortRecords orders by score descending; ties keep the earlier record first.
func sortRecords(list []Record) {
	slices.SortStableFunc(list, func(a, b Record) int {
		return b.Score - a.Score
	})
}

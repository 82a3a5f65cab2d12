// Package store persists recorded workouts under a root directory:
//
//	workouts/<user>/<id>.msgpack.zst   samples, msgpack then zstd
//	summaries/<user>/<id>.json         aggregate summary
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/danmuck/rowctl/internal/session"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/multierr"
)

const (
	workoutsDir  = "workouts"
	summariesDir = "summaries"
	workoutExt   = ".msgpack.zst"
	summaryExt   = ".json"
)

var (
	ErrNotFound    = errors.New("store: not found")
	ErrInvalidUser = errors.New("store: invalid user")
)

type Store struct {
	root string
	enc  *zstd.Encoder
	dec  *zstd.Decoder
}

// Open prepares root for writing. The zstd coders are shared across calls
// through their stateless EncodeAll/DecodeAll entry points.
func Open(root string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("store: root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("store: create root: %w", err)
	}
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, fmt.Errorf("store: zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(0),
		zstd.WithDecoderMaxMemory(64<<20),
	)
	if err != nil {
		enc.Close()
		return nil, fmt.Errorf("store: zstd decoder: %w", err)
	}
	return &Store{root: root, enc: enc, dec: dec}, nil
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Close() error {
	err := s.enc.Close()
	s.dec.Close()
	return err
}

// WorkoutPath is where SaveWorkout writes the samples of id.
func (s *Store) WorkoutPath(user string, id uuid.UUID) string {
	return filepath.Join(s.root, workoutsDir, user, id.String()+workoutExt)
}

func (s *Store) SummaryPath(user string, id uuid.UUID) string {
	return filepath.Join(s.root, summariesDir, user, id.String()+summaryExt)
}

func (s *Store) SaveWorkout(w session.Workout) (string, error) {
	if err := ValidateUser(w.User); err != nil {
		return "", err
	}
	raw, err := msgpack.Marshal(&w)
	if err != nil {
		return "", fmt.Errorf("store: encode workout %s: %w", w.ID, err)
	}
	path := s.WorkoutPath(w.User, w.ID)
	if err := writeFile(path, s.enc.EncodeAll(raw, nil)); err != nil {
		return "", err
	}
	log.Debug().
		Str("user", w.User).
		Str("workout", w.ID.String()).
		Int("samples", len(w.Samples)).
		Int("raw_bytes", len(raw)).
		Msg("workout saved")
	return path, nil
}

func (s *Store) LoadWorkout(user string, id uuid.UUID) (session.Workout, error) {
	if err := ValidateUser(user); err != nil {
		return session.Workout{}, err
	}
	data, err := readFile(s.WorkoutPath(user, id))
	if err != nil {
		return session.Workout{}, err
	}
	raw, err := s.dec.DecodeAll(data, nil)
	if err != nil {
		return session.Workout{}, fmt.Errorf("store: decompress workout %s: %w", id, err)
	}
	var w session.Workout
	if err := msgpack.Unmarshal(raw, &w); err != nil {
		return session.Workout{}, fmt.Errorf("store: decode workout %s: %w", id, err)
	}
	return w, nil
}

func (s *Store) SaveSummary(sum session.Summary) (string, error) {
	if err := ValidateUser(sum.User); err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return "", fmt.Errorf("store: encode summary %s: %w", sum.WorkoutID, err)
	}
	path := s.SummaryPath(sum.User, sum.WorkoutID)
	if err := writeFile(path, append(data, '\n')); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Store) LoadSummary(user string, id uuid.UUID) (session.Summary, error) {
	if err := ValidateUser(user); err != nil {
		return session.Summary{}, err
	}
	data, err := readFile(s.SummaryPath(user, id))
	if err != nil {
		return session.Summary{}, err
	}
	var sum session.Summary
	if err := json.Unmarshal(data, &sum); err != nil {
		return session.Summary{}, fmt.Errorf("store: decode summary %s: %w", id, err)
	}
	return sum, nil
}

// Save writes both halves of a finished workout. A failure of one half does
// not stop the other.
func (s *Store) Save(w session.Workout, sum session.Summary) error {
	_, werr := s.SaveWorkout(w)
	_, serr := s.SaveSummary(sum)
	return multierr.Combine(werr, serr)
}

// ListWorkouts returns the ids stored for user in ascending order. UUIDv7 ids
// sort by creation time.
func (s *Store) ListWorkouts(user string) ([]uuid.UUID, error) {
	if err := ValidateUser(user); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(s.root, workoutsDir, user))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: list %s: %w", user, err)
	}
	var ids []uuid.UUID
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), workoutExt)
		if e.IsDir() || !ok {
			continue
		}
		id, err := uuid.Parse(name)
		if err != nil {
			log.Warn().Str("file", e.Name()).Msg("skipping unrecognized workout file")
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids, nil
}

// ValidateUser rejects names that would escape the user directory.
func ValidateUser(user string) error {
	if user == "" || user == "." || user == ".." || strings.ContainsAny(user, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidUser, user)
	}
	return nil
}

// writeFile replaces path atomically through a sibling temp file.
func writeFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("store: temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		return multierr.Append(fmt.Errorf("store: write %s: %w", path, err), tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("store: rename %s: %w", path, err)
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	return data, nil
}

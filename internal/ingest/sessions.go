package ingest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/danmuck/rowctl/internal/protocol/rowing"
	"github.com/danmuck/rowctl/internal/session"
	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
)

// Saver persists a finished workout. *store.Store satisfies it.
type Saver interface {
	Save(w session.Workout, sum session.Summary) error
}

// SessionSink records one workout per source. A workout is saved when the
// device reports its end-of-workout summary or when the sink is closed.
type SessionSink struct {
	saver       Saver
	defaultUser string
	opts        []session.Option

	mu   sync.Mutex
	open map[string]*session.Recorder
}

func NewSessionSink(saver Saver, defaultUser string, opts ...session.Option) *SessionSink {
	return &SessionSink{
		saver:       saver,
		defaultUser: defaultUser,
		opts:        opts,
		open:        make(map[string]*session.Recorder),
	}
}

func (*SessionSink) Name() string { return "sessions" }

func (s *SessionSink) Write(_ context.Context, ev Event) error {
	user := ev.Source
	if user == "" {
		user = s.defaultUser
	}

	s.mu.Lock()
	rec, ok := s.open[user]
	if !ok {
		rec = session.NewRecorder(user, s.opts...)
		s.open[user] = rec
		log.Debug().Str("user", user).Str("workout", rec.ID().String()).Msg("ingest.SessionSink opened workout")
	}
	rec.Observe(ev.Record)
	_, ended := ev.Record.(rowing.EndOfWorkoutSummary)
	if ended {
		delete(s.open, user)
	}
	s.mu.Unlock()

	if !ended {
		return nil
	}
	return s.save(rec)
}

// Active lists the sources with an open workout.
func (s *SessionSink) Active() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.open))
	for user := range s.open {
		out = append(out, user)
	}
	sort.Strings(out)
	return out
}

// Close saves every open workout.
func (s *SessionSink) Close() error {
	s.mu.Lock()
	open := s.open
	s.open = make(map[string]*session.Recorder)
	s.mu.Unlock()

	var errs error
	for _, rec := range open {
		errs = multierr.Append(errs, s.save(rec))
	}
	return errs
}

func (s *SessionSink) save(rec *session.Recorder) error {
	w := rec.Finish()
	sum, err := rec.Summary("")
	if errors.Is(err, session.ErrNoSamples) {
		log.Debug().Str("user", w.User).Str("workout", w.ID.String()).Msg("ingest.SessionSink dropped empty workout")
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.saver.Save(w, sum); err != nil {
		return fmt.Errorf("save workout %s: %w", w.ID, err)
	}
	log.Info().
		Str("user", w.User).
		Str("workout", w.ID.String()).
		Int("samples", sum.Samples).
		Int64("duration_ms", sum.DurationMS).
		Msg("ingest.SessionSink saved workout")
	return nil
}

package ingest

import (
	"context"
	"sync"

	"github.com/danmuck/rowctl/internal/session"
	"github.com/rs/zerolog"
)

// RecorderSink feeds a session recorder.
type RecorderSink struct {
	Recorder *session.Recorder
}

func (RecorderSink) Name() string { return "recorder" }

func (s RecorderSink) Write(_ context.Context, ev Event) error {
	s.Recorder.Observe(ev.Record)
	return nil
}

// LogSink logs every Nth event at info and the rest at debug.
type LogSink struct {
	Logger zerolog.Logger
	Every  int

	mu    sync.Mutex
	count int
}

func (*LogSink) Name() string { return "log" }

func (s *LogSink) Write(_ context.Context, ev Event) error {
	s.mu.Lock()
	s.count++
	n := s.count
	s.mu.Unlock()

	level := zerolog.DebugLevel
	if s.Every > 0 && n%s.Every == 0 {
		level = zerolog.InfoLevel
	}
	s.Logger.WithLevel(level).
		Str("characteristic", ev.Characteristic.String()).
		Interface("record", ev.Record).
		Int("seq", n).
		Msg("record")
	return nil
}

// SinkFunc adapts a function to Sink.
type SinkFunc struct {
	Label string
	Fn    func(ctx context.Context, ev Event) error
}

func (f SinkFunc) Name() string { return f.Label }

func (f SinkFunc) Write(ctx context.Context, ev Event) error {
	return f.Fn(ctx, ev)
}

// Package ingest runs the receive loop that decodes notifications and hands
// the records to sinks. Failed notifications are logged and discarded, so a
// bad packet never stops the loop.
package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/danmuck/rowctl/internal/observability"
	"github.com/danmuck/rowctl/internal/protocol"
	"github.com/danmuck/rowctl/internal/protocol/ident"
	"github.com/danmuck/rowctl/internal/protocol/rowing"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
	"golang.org/x/time/rate"
)

// Notification is one value pushed by the monitor. Source names the rower
// it came from and may be empty.
type Notification struct {
	ID       uuid.UUID
	Payload  []byte
	Received time.Time
	Source   string
}

// Event is a successfully decoded notification.
type Event struct {
	Characteristic ident.Characteristic `json:"characteristic"`
	Record         rowing.Record        `json:"record"`
	Received       time.Time            `json:"received"`
	Source         string               `json:"source,omitempty"`
}

type Sink interface {
	Name() string
	Write(ctx context.Context, ev Event) error
}

// Decoder is satisfied by *protocol.Registry.
type Decoder interface {
	Decode(id uuid.UUID, payload []byte) (rowing.Record, error)
}

type Stats struct {
	Received   int            `json:"received"`
	Decoded    int            `json:"decoded"`
	Failed     int            `json:"failed"`
	SinkErrors int            `json:"sink_errors"`
	Failures   map[string]int `json:"failures,omitempty"`
}

type Option func(*Pipeline)

func WithDecoder(d Decoder) Option {
	return func(p *Pipeline) { p.decoder = d }
}

func WithSinks(sinks ...Sink) Option {
	return func(p *Pipeline) { p.sinks = append(p.sinks, sinks...) }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

func WithClock(c clock.Clock) Option {
	return func(p *Pipeline) { p.clock = c }
}

// WithFailureLogRate bounds how many decode failures are logged per second.
// Suppressed failures are still counted.
func WithFailureLogRate(perSecond float64, burst int) Option {
	return func(p *Pipeline) { p.limiter = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

type Pipeline struct {
	decoder Decoder
	sinks   []Sink
	logger  zerolog.Logger
	clock   clock.Clock
	limiter *rate.Limiter

	mu         sync.Mutex
	stats      Stats
	suppressed int
}

func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		decoder: protocol.Default(),
		logger:  log.Logger,
		clock:   clock.New(),
		limiter: rate.NewLimiter(rate.Limit(5), 10),
		stats:   Stats{Failures: make(map[string]int)},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run consumes in until it is closed or ctx is done.
func (p *Pipeline) Run(ctx context.Context, in <-chan Notification) (Stats, error) {
	p.logger.Debug().Int("sinks", len(p.sinks)).Msg("ingest.Pipeline.Run start")
	for {
		select {
		case <-ctx.Done():
			return p.Stats(), ctx.Err()
		case n, ok := <-in:
			if !ok {
				stats := p.Stats()
				p.logger.Info().
					Int("received", stats.Received).
					Int("decoded", stats.Decoded).
					Int("failed", stats.Failed).
					Msg("ingest.Pipeline.Run complete")
				return stats, nil
			}
			_ = p.Handle(ctx, n)
		}
	}
}

// Handle processes a single notification. The returned error is the decode
// failure or the combined sink failures; Run discards it.
func (p *Pipeline) Handle(ctx context.Context, n Notification) error {
	if n.Received.IsZero() {
		n.Received = p.clock.Now()
	}
	c, _ := ident.Lookup(n.ID)

	rec, err := p.decoder.Decode(n.ID, n.Payload)
	kind := protocol.Kind(err)
	observability.RecordDecode(c.String(), kind, len(n.Payload))

	p.mu.Lock()
	p.stats.Received++
	if err != nil {
		p.stats.Failed++
		p.stats.Failures[kind]++
	} else {
		p.stats.Decoded++
	}
	p.mu.Unlock()

	if err != nil {
		p.logFailure(n, kind, err)
		return err
	}

	ev := Event{Characteristic: rec.Characteristic(), Record: rec, Received: n.Received, Source: n.Source}
	var errs error
	for _, sink := range p.sinks {
		start := time.Now()
		werr := sink.Write(ctx, ev)
		observability.RecordSinkWrite(sink.Name(), time.Since(start), werr == nil)
		if werr != nil {
			p.logger.Warn().Err(werr).Str("sink", sink.Name()).Str("characteristic", ev.Characteristic.String()).
				Msg("ingest.Pipeline.Handle sink write failed")
			errs = multierr.Append(errs, werr)
		}
	}
	if errs != nil {
		p.mu.Lock()
		p.stats.SinkErrors += len(multierr.Errors(errs))
		p.mu.Unlock()
	}
	return errs
}

func (p *Pipeline) logFailure(n Notification, kind string, err error) {
	p.mu.Lock()
	if !p.limiter.AllowN(p.clock.Now(), 1) {
		p.suppressed++
		p.mu.Unlock()
		return
	}
	suppressed := p.suppressed
	p.suppressed = 0
	p.mu.Unlock()

	p.logger.Warn().
		Err(err).
		Str("id", n.ID.String()).
		Str("kind", kind).
		Int("payload_len", len(n.Payload)).
		Int("suppressed", suppressed).
		Msg("ingest.Pipeline.Handle discarded notification")
}

func (p *Pipeline) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.stats
	out.Failures = make(map[string]int, len(p.stats.Failures))
	for k, v := range p.stats.Failures {
		out.Failures[k] = v
	}
	return out
}

package ingest

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/danmuck/rowctl/internal/capture"
)

// Replay pushes captured notifications into out and closes it. With paced
// set, each send waits until its capture offset has elapsed on clk;
// otherwise the capture is replayed as fast as out accepts it.
func Replay(ctx context.Context, clk clock.Clock, notes []capture.Notification, out chan<- Notification, paced bool) error {
	defer close(out)
	start := clk.Now()
	for _, n := range notes {
		if paced {
			if wait := n.Offset - clk.Since(start); wait > 0 {
				timer := clk.Timer(wait)
				select {
				case <-ctx.Done():
					timer.Stop()
					return ctx.Err()
				case <-timer.C:
				}
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- Notification{ID: n.ID, Payload: n.Payload, Received: start.Add(n.Offset)}:
		}
	}
	return nil
}

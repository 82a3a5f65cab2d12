package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"

	"github.com/benbjohnson/clock"
	"github.com/danmuck/rowctl/internal/capture"
	"github.com/danmuck/rowctl/internal/ingest"
	"github.com/danmuck/rowctl/internal/publish"
	"github.com/danmuck/rowctl/internal/session"
	"github.com/danmuck/rowctl/internal/store"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type replayOptions struct {
	capture string
	profile string
	user    string
	save    bool
	mqtt    bool
	paced   bool
}

func newReplayCmd() *cobra.Command {
	var opts replayOptions
	cmd := &cobra.Command{
		Use:   "replay <capture.yaml>",
		Short: "Replay a capture file through the decoder and recorder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.capture = args[0]
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runReplay(ctx, cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.profile, "profile", "", "recorder profile (toml)")
	cmd.Flags().StringVar(&opts.user, "user", "", "override the profile user")
	cmd.Flags().BoolVar(&opts.save, "save", false, "store the workout and its summary")
	cmd.Flags().BoolVar(&opts.mqtt, "mqtt", false, "publish records to the profile broker")
	cmd.Flags().BoolVar(&opts.paced, "paced", false, "honour capture offsets instead of replaying at full speed")
	return cmd
}

func runReplay(ctx context.Context, out io.Writer, opts replayOptions) error {
	prof := defaultRecordProfile()
	if opts.profile != "" {
		var err error
		if prof, err = loadRecordProfile(opts.profile); err != nil {
			return err
		}
	}
	if opts.user != "" {
		prof.User = opts.user
	}
	if opts.save {
		prof.Save = true
	}

	file, err := capture.Load(opts.capture)
	if err != nil {
		return err
	}
	notes, err := file.Resolve()
	if err != nil {
		return fmt.Errorf("capture %s: %w", opts.capture, err)
	}

	rec := session.NewRecorder(prof.User)
	sinks := []ingest.Sink{
		ingest.RecorderSink{Recorder: rec},
		&ingest.LogSink{Logger: log.Logger, Every: prof.LogEvery},
	}
	if opts.mqtt {
		if !prof.MQTT.Enabled() {
			return errors.New("--mqtt needs mqtt_broker in the profile")
		}
		pub, err := publish.Connect(ctx, prof.MQTT)
		if err != nil {
			return err
		}
		defer pub.Close()
		sinks = append(sinks, pub)
	}
	pipeline := ingest.NewPipeline(ingest.WithSinks(sinks...))

	ch := make(chan ingest.Notification, 64)
	var stats ingest.Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ingest.Replay(gctx, clock.New(), notes, ch, opts.paced)
	})
	g.Go(func() error {
		var err error
		stats, err = pipeline.Run(gctx, ch)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	renderStats(out, opts.capture, stats)
	workout := rec.Finish()
	sum, err := rec.Summary(prof.RaceID)
	if errors.Is(err, session.ErrNoSamples) {
		fmt.Fprintln(out, "no samples recorded")
		return nil
	}
	if err != nil {
		return err
	}
	renderSummary(out, sum)

	if !prof.Save {
		return nil
	}
	st, err := store.Open(prof.StorageRoot)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Save(workout, sum); err != nil {
		return err
	}
	fmt.Fprintf(out, "saved %s\n", st.WorkoutPath(prof.User, rec.ID()))
	return nil
}

func renderStats(out io.Writer, name string, stats ingest.Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetTitle(name)
	t.AppendHeader(table.Row{"METRIC", "COUNT"})
	t.AppendRows([]table.Row{
		{"received", stats.Received},
		{"decoded", stats.Decoded},
		{"failed", stats.Failed},
		{"sink errors", stats.SinkErrors},
	})
	kinds := make([]string, 0, len(stats.Failures))
	for k := range stats.Failures {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		t.AppendRow(table.Row{"failed: " + k, stats.Failures[k]})
	}
	t.Render()
}

func renderSummary(out io.Writer, sum session.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetTitle("workout " + sum.WorkoutID.String())
	t.AppendRows([]table.Row{
		{"user", sum.User},
		{"samples", sum.Samples},
		{"duration", fmt.Sprintf("%.1fs", float64(sum.DurationMS)/1000)},
		{"distance", fmt.Sprintf("%.1fm", sum.DistanceM)},
		{"calories", sum.Calories},
		{"avg heart rate", fmt.Sprintf("%.1f", sum.AvgHeartRate)},
		{"max heart rate", sum.MaxHeartRate},
		{"avg power", fmt.Sprintf("%.1fW", sum.AvgPower)},
		{"avg stroke rate", fmt.Sprintf("%.1f", sum.AvgStrokeRate)},
		{"avg pace", fmt.Sprintf("%.1fs/500m", sum.AvgPaceMS/1000)},
	})
	if sum.RaceID != "" {
		t.AppendRow(table.Row{"race", sum.RaceID})
	}
	t.Render()
}

package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/stickyscroll/retained"
)

// Play runs the frame loop on wall time while the list smooth scrolls to
// its end. Stops when the scroll completes or on interrupt.
func Play(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	duration := fs.Duration("duration", 3*time.Second, "Length of the scroll animation")
	easing := fs.String("easing", "ease-in-out", "Easing: linear, ease-in, ease-out, ease-in-out, cubic, cubic-in-out, expo")
	fps := fs.Int("fps", 60, "Frame loop rate")
	common := addCommonFlags(fs)
	fs.Usage = func() {
		fmt.Println(`Usage: sticky play [options]

Animate a scroll through the demo list in real time, printing pin changes.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	ease := retained.EasingByName(*easing)
	if ease == nil {
		return fmt.Errorf("unknown easing %q", *easing)
	}

	config, err := common.loadConfig()
	if err != nil {
		return err
	}
	demo, err := buildDemo(config, nil)
	if err != nil {
		return err
	}
	view := demo.View

	start := time.Now()
	view.OnPinChange(func(prev, next *retained.Widget) {
		fmt.Printf("  %6s  %7.1f  %s -> %s\n", time.Since(start).Round(time.Millisecond), view.ScrollY(), describe(prev), describe(next))
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	loopCtx, stopLoop := context.WithCancel(ctx)
	defer stopLoop()

	// Posted before the loop starts; from here on the view belongs to the
	// loop goroutine.
	finished := make(chan struct{})
	view.SmoothScrollTo(view.MaxScrollY(), retained.ScrollToConfig{
		Duration:   *duration,
		Easing:     ease,
		OnComplete: func() { close(finished) },
	})

	loop := retained.NewLoop(view.ScrollView, retained.LoopConfig{TargetFPS: *fps})
	g.Go(func() error {
		if err := loop.Run(loopCtx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		defer stopLoop()
		select {
		case <-finished:
		case <-ctx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	stats := loop.Stats()
	fmt.Println()
	fmt.Printf("  pinned:  %s\n", describe(view.Pinned()))
	fmt.Printf("  frames:  %d (%d rendered) in %s\n", stats.Frames, stats.Rendered, time.Since(start).Round(time.Millisecond))
	fmt.Printf("  tasks:   %d\n", stats.TasksRun)
	return nil
}

package commands

import (
	"flag"
	"fmt"
	"time"

	"github.com/agiangrant/stickyscroll/retained"
)

// Simulate scrolls the demo list and prints each pin transition.
func Simulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	from := fs.Float64("from", 0, "Start scroll offset")
	to := fs.Float64("to", -1, "End scroll offset (default: max scroll)")
	step := fs.Float64("step", 10, "Pixels scrolled per frame")
	common := addCommonFlags(fs)
	fs.Usage = func() {
		fmt.Println(`Usage: sticky simulate [options]

Scroll the demo list one frame at a time and report which header is pinned.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *step <= 0 {
		return fmt.Errorf("--step must be positive, got %v", *step)
	}

	demo, err := common.load()
	if err != nil {
		return err
	}
	view := demo.View

	end := float32(*to)
	if end < 0 {
		end = view.MaxScrollY()
	}
	start := float32(*from)
	delta := float32(*step)
	if end < start {
		delta = -delta
	}

	transitions := 0
	view.OnPinChange(func(prev, next *retained.Widget) {
		transitions++
		fmt.Printf("  %7.1f  %s -> %s\n", view.ScrollY(), describe(prev), describe(next))
	})

	loop := retained.NewLoop(view.ScrollView, retained.DefaultLoopConfig())
	interval := loop.FrameInterval()

	fmt.Printf("Scrolling %.0f -> %.0f (max %.0f), %d sticky views\n", start, end, view.MaxScrollY(), len(view.StickyViews()))
	view.ScrollTo(start)
	for y := start; ; y += delta {
		if (delta > 0 && y > end) || (delta < 0 && y < end) {
			y = end
		}
		view.ScrollTo(y)
		loop.Tick()
		demo.Clock.Advance(interval)
		if y == end {
			break
		}
	}

	// Let a pending redraw task run once more
	demo.Clock.Advance(interval)
	loop.Tick()

	stats := loop.Stats()
	fmt.Println()
	fmt.Printf("  pinned:      %s (offset %.1f)\n", describe(view.Pinned()), view.PinOffset())
	fmt.Printf("  transitions: %d\n", transitions)
	fmt.Printf("  frames:      %d (%d rendered)\n", stats.Frames, stats.Rendered)
	fmt.Printf("  tasks:       %d run, %d cancelled\n", view.Tasks().Ran(), view.Tasks().Cancelled())
	fmt.Printf("  duration:    %s virtual\n", time.Duration(stats.Frames)*interval)
	return nil
}

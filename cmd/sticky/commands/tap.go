package commands

import (
	"flag"
	"fmt"

	"github.com/agiangrant/stickyscroll/retained"
)

// TapResult describes where a simulated tap landed.
type TapResult struct {
	Clicked    string
	Redirected bool
	Pinned     *retained.Widget
}

// SimulateTap delivers a down/up pair at (x, y) in view coordinates.
func SimulateTap(demo *Demo, x, y float32) TapResult {
	demo.Clicked = ""
	var res TapResult

	down := retained.NewTouchEvent(retained.TouchDown, x, y)
	demo.View.DispatchTouch(down)
	res.Redirected = demo.View.IsRedirectingTouches()
	down.Release()

	up := retained.NewTouchEvent(retained.TouchUp, x, y)
	demo.View.DispatchTouch(up)
	up.Release()

	res.Clicked = demo.Clicked
	res.Pinned = demo.View.Pinned()
	return res
}

// Tap simulates a tap on the demo list and reports what received it.
func Tap(args []string) error {
	fs := flag.NewFlagSet("tap", flag.ExitOnError)
	scroll := fs.Float64("scroll", 0, "Scroll offset before tapping")
	x := fs.Float64("x", 20, "Tap X in view coordinates")
	y := fs.Float64("y", 10, "Tap Y in view coordinates")
	common := addCommonFlags(fs)
	fs.Usage = func() {
		fmt.Println(`Usage: sticky tap [options]

Tap the demo list and report which row or header was clicked.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	demo, err := common.load()
	if err != nil {
		return err
	}
	demo.View.ScrollTo(float32(*scroll))

	res := SimulateTap(demo, float32(*x), float32(*y))
	clicked := res.Clicked
	if clicked == "" {
		clicked = "nothing"
	}
	fmt.Printf("  pinned:     %s\n", describe(res.Pinned))
	fmt.Printf("  redirected: %v\n", res.Redirected)
	fmt.Printf("  clicked:    %s\n", clicked)
	return nil
}

package commands

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/agiangrant/stickyscroll/retained"
)

// Demo is a sectioned list built from a DemoConfig.
type Demo struct {
	View    *retained.StickyScrollView
	Headers []*retained.Widget

	// Clock drives the task queue; nil when the demo runs on wall time.
	Clock *VirtualClock

	// Title of the header or row that last received a click
	Clicked string
}

// VirtualClock lets commands step time frame by frame.
type VirtualClock struct {
	now time.Time
}

func (c *VirtualClock) Now() time.Time          { return c.now }
func (c *VirtualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// BuildDemo creates and lays out the list described by config, on a
// virtual clock.
func BuildDemo(config ProjectConfig) (*Demo, error) {
	clock := &VirtualClock{now: time.Unix(0, 0)}
	return buildDemo(config, clock)
}

func buildDemo(config ProjectConfig, clock *VirtualClock) (*Demo, error) {
	d := &Demo{Clock: clock}
	var taskConfig retained.TaskQueueConfig
	if clock != nil {
		taskConfig.Now = clock.Now
	}
	tasks := retained.NewTaskQueue(taskConfig)

	view, err := retained.NewStickyScrollView(config.Sticky, tasks)
	if err != nil {
		return nil, err
	}
	d.View = view

	demo := config.Demo
	content := retained.VStack().SetGap(demo.Gap)
	for _, section := range demo.Sections {
		title := section.Title
		header := retained.Button(title, func() { d.Clicked = title }).
			SetHeight(section.HeaderHeight).
			SetTag(section.Tag).
			SetPaddingAll(8, 16, 8, 16)
		if section.Color != "" {
			color, err := retained.ParseColor(section.Color)
			if err != nil {
				return nil, err
			}
			header.SetBackgroundColor(color)
		}
		d.Headers = append(d.Headers, header)
		content.AddChild(header)

		for i := 0; i < section.Rows; i++ {
			label := fmt.Sprintf("%s%d", title, i+1)
			row := retained.Button(label, func() { d.Clicked = label }).
				SetHeight(section.RowHeight).
				SetPaddingAll(12, 16, 12, 16).
				SetTextColor(0x212121FF)
			content.AddChild(row)
		}
	}

	if len(demo.Padding) == 4 {
		view.Widget().SetPaddingAll(demo.Padding[0], demo.Padding[1], demo.Padding[2], demo.Padding[3])
	}
	view.SetContent(content)
	view.Layout(demo.Width, demo.Height)
	return d, nil
}

// describe names a widget for output.
func describe(w *retained.Widget) string {
	if w == nil {
		return "none"
	}
	return fmt.Sprintf("%q [%s]", w.Text(), w.StickyFlags())
}

// commonFlags are shared by the commands that load a project.
type commonFlags struct {
	config  *string
	verbose *bool
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		config:  fs.String("config", "", "Path to sticky.toml (default: project root)"),
		verbose: fs.Bool("v", false, "Log pin transitions and touch routing to stderr"),
	}
}

func (f commonFlags) load() (*Demo, error) {
	config, err := f.loadConfig()
	if err != nil {
		return nil, err
	}
	return BuildDemo(config)
}

func (f commonFlags) loadConfig() (ProjectConfig, error) {
	if *f.verbose {
		retained.SetDebugOutput(os.Stderr)
		log.SetFlags(log.Lmicroseconds)
	}
	config, err := LoadConfig(*f.config)
	if err != nil {
		return config, err
	}
	if *f.verbose {
		log.Printf("[sticky] loaded %d sections, viewport %vx%v", len(config.Demo.Sections), config.Demo.Width, config.Demo.Height)
	}
	return config, nil
}

package commands

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
)

// Render prints the render commands of one frame at a scroll offset.
func Render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	scroll := fs.Float64("scroll", 0, "Scroll offset to render at")
	pretty := fs.Bool("pretty", false, "Indent the JSON output")
	common := addCommonFlags(fs)
	fs.Usage = func() {
		fmt.Println(`Usage: sticky render [options]

Render one frame of the demo list and print its commands as JSON.

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

	out, err := demo.View.Render().ToJSON()
	if err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}

	if *pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(out), "", "  "); err != nil {
			return fmt.Errorf("failed to indent frame: %w", err)
		}
		out = buf.String()
	}
	fmt.Println(out)
	return nil
}

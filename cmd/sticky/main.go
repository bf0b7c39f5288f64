package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/stickyscroll"
	"github.com/agiangrant/stickyscroll/cmd/sticky/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "init":
		err = commands.Init(args)
	case "simulate":
		err = commands.Simulate(args)
	case "play":
		err = commands.Play(args)
	case "render":
		err = commands.Render(args)
	case "tap":
		err = commands.Tap(args)
	case "version", "-v", "--version":
		fmt.Printf("sticky version %s\n", stickyscroll.Version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sticky - sticky header scroll view playground

Usage: sticky <command> [options]

Commands:
  init            Write a default sticky.toml
  simulate        Scroll the demo list and print pin transitions
  play            Animate a scroll through the list in real time
  render          Print one frame as JSON render commands
  tap             Tap the demo list and report what was clicked
  version         Print version information
  help            Show this help message

Examples:
  sticky init                          Create sticky.toml in the current directory
  sticky simulate --step 5 -v          Scroll top to bottom, logging pin changes
  sticky render --scroll 600 --pretty  Show the frame with a header pinned
  sticky tap --scroll 600 --y 10       Tap the pinned header

Run 'sticky <command> -h' for command options.`)
}

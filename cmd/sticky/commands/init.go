package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// Init writes a default sticky.toml into the given directory.
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	force := fs.Bool("force", false, "Overwrite an existing sticky.toml")
	fs.Usage = func() {
		fmt.Println(`Usage: sticky init [options] [dir]

Write a default sticky.toml with a demo section list.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	dir := "."
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	path := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := SaveConfig(path, DefaultConfig()); err != nil {
		return err
	}

	fmt.Printf("  ✓ Created %s\n", path)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  sticky simulate     # scroll the demo list and watch headers pin")
	fmt.Println("  sticky render       # dump a frame as render commands")
	return nil
}

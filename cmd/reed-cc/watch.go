package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// newWatchCmd builds the watch subcommand, which re-parses C files in
// the given directories whenever they change on disk.
func newWatchCmd(out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dirs]",
		Short: "Watch directories and re-parse C files as they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()

			for _, dir := range args {
				if err := watcher.Add(dir); err != nil {
					return fmt.Errorf("watching %s: %w", dir, err)
				}
				fmt.Fprintf(out, "reed-cc: watching %s\n", dir)
			}

			return watchLoop(cmd.Context().Done(), watcher, out, errOut)
		},
	}
}

// watchLoop services watcher events until done closes. Each write to
// a .c file triggers a fresh parse with its own typedef state.
func watchLoop(done <-chan struct{}, watcher *fsnotify.Watcher, out, errOut io.Writer) error {
	for {
		select {
		case <-done:
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !strings.HasSuffix(ev.Name, ".c") && !strings.HasSuffix(ev.Name, ".h") {
				continue
			}
			if err := processFile(ev.Name, out, errOut); err != nil {
				fmt.Fprintf(errOut, "reed-cc: %s: %v\n", ev.Name, err)
			} else {
				fmt.Fprintf(out, "reed-cc: %s: ok\n", ev.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(errOut, "reed-cc: watch error: %v\n", err)
		}
	}
}

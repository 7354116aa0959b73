// Command vtreplay replays a recorded byte stream through a vt100 Screen
// and prints the resulting grid.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vt100go/vt100"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var rows, cols int
	var path string

	cmd := &cobra.Command{
		Use:   "vtreplay",
		Short: "Replay a byte stream through a vt100 screen and print the grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return replay(cmd.OutOrStdout(), path, rows, cols)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 24, "screen height")
	cmd.Flags().IntVar(&cols, "cols", 80, "screen width")
	cmd.Flags().StringVar(&path, "file", "", "input file (defaults to stdin)")

	return cmd
}

func replay(out io.Writer, path string, rows, cols int) error {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	screen := vt100.NewScreen(cols, rows)
	stream := vt100.NewStream(vt100.WithListener(screen))

	dec := vt100.NewDecoder()
	stream.Feed(dec.Decode(raw))

	for _, line := range screen.Display() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

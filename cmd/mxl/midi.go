package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmoller/go-musicxml"
)

func init() {
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi <score.xml> <out.mid>",
	Short: "Render a score to a Standard MIDI File",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toMIDI(args[0], args[1])
	},
}

func toMIDI(in, out string) error {
	score, err := musicxml.ParseFile(in)
	if err != nil {
		return err
	}
	file, err := score.SMF()
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if _, err := file.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s: %d tracks at %v\n", out, len(file.Tracks), file.TimeFormat)
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmoller/go-musicxml"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <score.xml>",
	Short: "Summarize the parts, measures and notes of a score",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	score, err := musicxml.ParseFile(path, musicxml.InheritAttributes())
	if err != nil {
		return err
	}
	if err := score.Validate(); err != nil {
		return err
	}

	for _, p := range score.Parts {
		name := p.ID
		if sp := score.PartList.ByID(p.ID); sp != nil {
			name = fmt.Sprintf("%s (%s)", sp.Name, p.ID)
		}
		notes, rests := 0, 0
		for _, m := range p.Measures {
			for _, n := range m.Notes {
				if _, ok := n.Content.(musicxml.Pitch); ok {
					notes++
				} else {
					rests++
				}
			}
		}
		fmt.Printf("%s: %d measures, %d notes, %d rests\n", name, len(p.Measures), notes, rests)
		if len(p.Measures) > 0 && p.Measures[0].Attributes != nil {
			a := p.Measures[0].Attributes
			fmt.Printf("  divisions %d, %d/%d, %d fifths\n", a.Divisions, a.Time.Beats, a.Time.BeatType, a.Key.Fifths)
		}
	}
	return nil
}

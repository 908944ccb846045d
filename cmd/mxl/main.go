// Command mxl is a small front end to the musicxml package: it summarizes
// score-partwise documents and converts them to Standard MIDI Files.
package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mxl",
	Short: "Inspect and convert MusicXML scores",
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

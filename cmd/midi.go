package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DMGiulioRomano/tuning-systems-numbers-music/midi"
	"github.com/DMGiulioRomano/tuning-systems-numbers-music/tuning"
)

var outPath string

func init() {
	rootCmd.AddCommand(midiCmd)
	midiCmd.Flags().StringVarP(&outPath, "out", "o", "pythagorean53.mid", "output MIDI file")
}

var midiCmd = &cobra.Command{
	Use:   "midi",
	Short: "Writes the scale as a MIDI file",
	Long:  `Writes the scale as a MIDI file`,
	Run: func(cmd *cobra.Command, args []string) {
		checkConfig()
		writeMidi()
	},
}

func writeMidi() {
	scale := tuning.New(tuning.Config{Fundamental: fundamental, Octave: octave})
	if err := midi.WriteScaleFile(scale, outPath); err != nil {
		panic("Could not write MIDI file: " + err.Error())
	}
	fmt.Printf("Wrote %v degrees to %v\n", tuning.Degrees, outPath)
}

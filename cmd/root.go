package cmd

import (
	"github.com/spf13/cobra"

	"github.com/DMGiulioRomano/tuning-systems-numbers-music/constants"
)

var (
	fundamental float64
	octave      float64
)

var rootCmd = &cobra.Command{
	Use:   "tuning53",
	Short: "53-tone Pythagorean tuning",
	Long:  `Computes the 53-interval Pythagorean tuning built from stacked perfect fifths, octave-reduced.`,
}

func init() {
	rootCmd.PersistentFlags().Float64Var(&fundamental, "fundamental", constants.DefaultFundamental, "reference frequency in Hz")
	rootCmd.PersistentFlags().Float64Var(&octave, "octave", constants.DefaultOctave, "octave multiplier applied to the fundamental")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func checkConfig() {
	if fundamental <= 0 || octave <= 0 {
		panic("fundamental and octave must be positive")
	}
}

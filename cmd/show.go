package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DMGiulioRomano/tuning-systems-numbers-music/tuning"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the sorted scale",
	Long:  `Prints the sorted scale`,
	Run: func(cmd *cobra.Command, args []string) {
		checkConfig()
		show()
	},
}

func show() {
	scale := tuning.New(tuning.Config{Fundamental: fundamental, Octave: octave})

	fmt.Printf("Fundamental: %v Hz\n\n", scale.Fundamental)
	fmt.Printf("%4s  %-26s %10s %14s\n", "deg", "ratio", "cents", "frequency")
	for i, iv := range tuning.Intervals(scale) {
		ratio := iv.Numerator + "/" + iv.Denominator
		fmt.Printf("%4d  %-26s %10.3f %14.6f\n", i, ratio, iv.Cents, iv.Frequency)
	}
}

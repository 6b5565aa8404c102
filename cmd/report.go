package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DMGiulioRomano/tuning-systems-numbers-music/tuning"
	"github.com/DMGiulioRomano/tuning-systems-numbers-music/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Reports the commas and step sizes of the cycle",
	Long:  `Reports the commas and step sizes of the cycle`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

func report() {
	ratios := tuning.GenerateRatios()
	tuning.SortRatios(ratios)

	pyth := ratios[1]
	merc := tuning.MercatorComma()
	fmt.Printf("Pythagorean comma: %v (%.4f cents)\n", pyth, tuning.Cents(pyth))
	fmt.Printf("Mercator's comma: %v (%.4f cents)\n", merc, tuning.Cents(merc))

	// the 53 steps: between consecutive degrees, plus the step that
	// closes the cycle at the octave
	var steps []float64
	for i := 1; i < len(ratios); i++ {
		steps = append(steps, tuning.Cents(ratios[i])-tuning.Cents(ratios[i-1]))
	}
	steps = append(steps, 1200-tuning.Cents(util.Last(ratios)))

	smallest, largest := steps[0], steps[0]
	for _, s := range steps {
		smallest = util.Min(smallest, s)
		if s > largest {
			largest = s
		}
	}
	fmt.Printf("steps: %v\n", len(steps))
	fmt.Printf("smallest step: %.4f cents\n", smallest)
	fmt.Printf("largest step: %.4f cents\n", largest)
}

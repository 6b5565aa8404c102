package tuning

import (
	"math"
	"math/big"
	"sort"

	"github.com/DMGiulioRomano/tuning-systems-numbers-music/model"
	"github.com/DMGiulioRomano/tuning-systems-numbers-music/util"
)

// Degrees is the number of intervals in the cycle, unison included.
const Degrees = 53

var (
	fifth  = big.NewRat(3, 2)
	octave = big.NewRat(2, 1)
)

// Config holds the two inputs the caller controls. The effective
// fundamental fed to the frequency conversion is Fundamental * Octave.
type Config struct {
	Fundamental float64
	Octave      float64
}

// Scale is one computed tuning: the 53 exact ratios sorted ascending
// and the frequencies they map to, index-aligned.
type Scale struct {
	Fundamental float64
	Ratios      []*big.Rat
	Frequencies []float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.Octave == 0 {
		cfg.Octave = 1
	}
	return cfg
}

// New runs the whole pipeline: generate, sort, convert.
func New(cfg Config) Scale {
	cfg = normalizeConfig(cfg)
	fundamental := cfg.Fundamental * cfg.Octave
	ratios := GenerateRatios()
	SortRatios(ratios)
	return Scale{
		Fundamental: fundamental,
		Ratios:      ratios,
		Frequencies: Frequencies(ratios, fundamental),
	}
}

// GenerateRatios stacks 52 perfect fifths on the unison, folding every
// result back into [1, 2). The arithmetic stays rational throughout so
// no rounding error can accumulate across the 52 multiplications.
func GenerateRatios() []*big.Rat {
	ratios := make([]*big.Rat, 0, Degrees)
	ratios = append(ratios, big.NewRat(1, 1))

	for i := 1; i < Degrees; i++ {
		next := new(big.Rat).Mul(util.Last(ratios), fifth)
		// a loop, not a single halving: the reduction must stay correct
		// for generator intervals wider than an octave
		for next.Cmp(octave) >= 0 {
			next.Quo(next, octave)
		}
		ratios = append(ratios, next)
	}

	return ratios
}

// SortRatios orders the ratios ascending by their real value. Values
// are compared exactly, so equal value means identical ratio.
func SortRatios(ratios []*big.Rat) {
	sort.Slice(ratios, func(i, j int) bool {
		return ratios[i].Cmp(ratios[j]) < 0
	})
}

// Frequencies maps each ratio to ratio * fundamental as a float64. The
// multiplication happens in exact arithmetic and converts once at the
// end, like the rest of the pipeline.
func Frequencies(ratios []*big.Rat, fundamental float64) []float64 {
	freqs := make([]float64, 0, len(ratios))
	f := new(big.Rat).SetFloat64(fundamental)
	for _, r := range ratios {
		if f == nil {
			// non-finite fundamentals have no rational lift
			v, _ := r.Float64()
			freqs = append(freqs, v*fundamental)
			continue
		}
		v, _ := new(big.Rat).Mul(r, f).Float64()
		freqs = append(freqs, v)
	}
	return freqs
}

// Cents returns the size of a ratio in cents (1200 per octave).
func Cents(r *big.Rat) float64 {
	v, _ := r.Float64()
	return 1200 * math.Log2(v)
}

// MercatorComma is the residue left after 53 fifths against 31 octaves,
// 3^53 / 2^84. Its small size (~3.6 cents) is what makes the 53-degree
// cycle close so well.
func MercatorComma() *big.Rat {
	num := new(big.Int).Exp(big.NewInt(3), big.NewInt(53), nil)
	den := new(big.Int).Exp(big.NewInt(2), big.NewInt(84), nil)
	return new(big.Rat).SetFrac(num, den)
}

// Intervals renders a scale in its wire form.
func Intervals(s Scale) []model.Interval {
	res := make([]model.Interval, 0, len(s.Ratios))
	for i, r := range s.Ratios {
		v, _ := r.Float64()
		res = append(res, model.Interval{
			Numerator:   r.Num().String(),
			Denominator: r.Denom().String(),
			Value:       v,
			Cents:       Cents(r),
			Frequency:   s.Frequencies[i],
		})
	}
	return res
}

package midi

import (
	"math"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/DMGiulioRomano/tuning-systems-numbers-music/tuning"
	"github.com/DMGiulioRomano/tuning-systems-numbers-music/util"
)

const (
	ticksPerQuarter = 480
	noteTicks       = 480
	velocity        = 100

	// GM default pitch-bend range, +/- 2 semitones
	bendRangeSemitones = 2
)

// WriteScaleFile renders the sorted scale as a standard MIDI file: one
// note per degree, ascending, each preceded by the pitch bend that
// lands it on the exact frequency.
func WriteScaleFile(s tuning.Scale, path string) error {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var tr smf.Track
	for _, freq := range s.Frequencies {
		key, bend := keyAndBend(freq)
		tr.Add(0, midi.Pitchbend(0, bend))
		tr.Add(0, midi.NoteOn(0, key, velocity))
		tr.Add(noteTicks, midi.NoteOff(0, key))
	}
	tr.Close(0)
	sm.Add(tr)

	return sm.WriteFile(path)
}

// keyAndBend maps a frequency to the nearest equal-tempered key plus
// the bend offset covering the remainder.
func keyAndBend(freq float64) (uint8, int16) {
	n := 69 + 12*math.Log2(freq/440)
	key := util.Clamp(math.Round(n), 0, 127)
	bend := util.Clamp((n-key)*8192/bendRangeSemitones, -8192, 8191)
	return uint8(key), int16(bend)
}

package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/DMGiulioRomano/tuning-systems-numbers-music/tuning"
)

func TestKeyAndBend(t *testing.T) {
	assert := assert.New(t)

	key, bend := keyAndBend(440)
	assert.Equal(uint8(69), key)
	assert.Equal(int16(0), bend)

	key, bend = keyAndBend(220)
	assert.Equal(uint8(57), key)
	assert.Equal(int16(0), bend)

	// a quarter tone above A4 bends halfway up
	key, bend = keyAndBend(440 * 1.0293022366) // 2^(0.5/12)
	assert.Equal(uint8(69), key)
	assert.InDelta(2048, float64(bend), 2)
}

func TestWriteScaleFileProducesAscendingNotes(t *testing.T) {
	scale := tuning.New(tuning.Config{Fundamental: 100})
	path := filepath.Join(t.TempDir(), "scale.mid")

	assert := assert.New(t)
	assert.NoError(WriteScaleFile(scale, path))

	dat, err := os.ReadFile(path)
	assert.NoError(err)
	s, err := smf.ReadFrom(bytes.NewReader(dat))
	assert.NoError(err)

	noteOns := 0
	var prevKey uint8
	for _, events := range s.Tracks {
		for _, event := range events {
			var ch, key, vel uint8
			if event.Message.GetNoteOn(&ch, &key, &vel) {
				assert.True(key >= prevKey, "keys descend at note %v", noteOns)
				prevKey = key
				noteOns++
			}
		}
	}
	assert.Equal(tuning.Degrees, noteOns)
}

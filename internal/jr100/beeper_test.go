package jr100

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The generator is exercised without a host audio device: Read produces
// samples whether or not playback ever started.

func readSamples(b *Beeper, n int) []byte {
	buf := make([]byte, n*4)
	b.Read(buf)
	return buf
}

func allZero(buf []byte) bool {
	for _, v := range buf {
		if v != 0 {
			return false
		}
	}
	return true
}

func Test_BeeperSilentWhileGated(t *testing.T) {
	b := NewBeeper(DefaultSampleRate)
	b.SetFrequency(880)

	assert.True(t, allZero(readSamples(b, 256)), "line off keeps the output flat")

	b.LineOn()
	assert.False(t, allZero(readSamples(b, 256)), "line on produces the square wave")

	b.LineOff()
	assert.True(t, allZero(readSamples(b, 256)))
}

func Test_BeeperZeroFrequencyIsSilent(t *testing.T) {
	b := NewBeeper(DefaultSampleRate)
	b.LineOn()
	b.SetFrequency(0)

	assert.True(t, allZero(readSamples(b, 64)))
}

func Test_BeeperSquareWavePeriod(t *testing.T) {
	const rate = 44100
	b := NewBeeper(rate)
	b.SetFrequency(rate / 100) // 100 samples per period
	b.LineOn()

	buf := readSamples(b, 300)

	// Three periods: the level flips once per half period.
	transitions := 0
	for i := 1; i < 300; i++ {
		if !bytes.Equal(buf[i*4:i*4+4], buf[(i-1)*4:i*4]) {
			transitions++
		}
	}
	assert.GreaterOrEqual(t, transitions, 5)
	assert.LessOrEqual(t, transitions, 7)
}

func Test_BeeperReset(t *testing.T) {
	b := NewBeeper(0)
	b.SetFrequency(440)
	b.LineOn()

	b.Reset()

	assert.True(t, allZero(readSamples(b, 64)))
	assert.Equal(t, DefaultSampleRate, b.sampleRate, "zero config picks the default")
}

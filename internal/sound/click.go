package sound

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	clickDuration = 0.035 // seconds
	clickFreq     = 1800.0

	// Impact speeds (units/s) mapped onto the volume range.
	minAudibleSpeed = 20.0
	fullVolumeSpeed = 900.0

	// maxClicksPerTick keeps a break shot from stacking dozens of players.
	maxClicksPerTick = 4
)

// Clicker plays a short procedural click for each collision.
type Clicker struct {
	ctx    *audio.Context
	sample []byte
	volume float64
	played int
}

func NewClicker(ctx *audio.Context, volume float64) *Clicker {
	return &Clicker{
		ctx:    ctx,
		sample: ClickSample(ctx.SampleRate()),
		volume: volume,
	}
}

// Tick resets the per-tick rate limit.
func (c *Clicker) Tick() {
	c.played = 0
}

// Hit plays a click scaled by impact speed.
func (c *Clicker) Hit(speed float64) {
	v := Volume(speed, c.volume)
	if v <= 0 || c.played >= maxClicksPerTick {
		return
	}
	c.played++
	p := c.ctx.NewPlayerFromBytes(c.sample)
	p.SetVolume(v)
	p.Play()
}

// Volume maps impact speed onto [0, master].
func Volume(speed, master float64) float64 {
	if speed < minAudibleSpeed {
		return 0
	}
	v := (speed - minAudibleSpeed) / (fullVolumeSpeed - minAudibleSpeed)
	return math.Min(v, 1) * master
}

// ClickSample renders a decaying square wave as 16-bit little endian
// stereo PCM.
func ClickSample(sampleRate int) []byte {
	n := int(float64(sampleRate) * clickDuration)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-t * 120)
		val := 0.4 * env
		phase := int(t * clickFreq * 2)
		if phase%2 == 1 {
			val = -val
		}

		v := int16(val * 32767)
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(v >> 8)
	}
	return buf
}

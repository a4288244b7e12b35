package player

import "math"

// silentVolume is the effects.Volume exponent used for level 0.
const silentVolume = -10

// SetVolume sets the output level in [0, 1]. Out-of-range values are clamped.
// The level survives track changes.
func (p *Player) SetVolume(level float64) {
	p.volumeLevel = min(max(level, 0), 1)
	if p.volume == nil {
		return
	}
	exp, silent := volumeExponent(p.volumeLevel)
	locked(func() {
		p.volume.Volume = exp
		p.volume.Silent = silent
	})
}

// Volume returns the output level in [0, 1].
func (p *Player) Volume() float64 {
	return p.volumeLevel
}

// volumeExponent maps a linear level onto effects.Volume with Base 2, where
// the gain is 2^exp: 1 -> 0, 0.5 -> -1, 0.25 -> -2.
func volumeExponent(level float64) (exp float64, silent bool) {
	switch {
	case level <= 0:
		return silentVolume, true
	case level >= 1:
		return 0, false
	default:
		return math.Log2(level), false
	}
}

package sim

import (
	"math"
	"math/rand"
	"time"

	"motor-twin/internal/model"
)

// Live-mode channel bands for a 400V/72A three-phase induction motor under
// steady load. Each channel walks randomly inside [low, high] with the given
// max step per cycle.
const (
	currentLow  = 60.0
	currentHigh = 90.0
	currentStep = 0.25

	voltageLow  = 395.0
	voltageHigh = 410.0
	voltageStep = 0.3

	freqLow  = 49.8
	freqHigh = 50.2
	freqStep = 0.005

	pfMin    = 0.83
	pfMax    = 0.96
	pfJitter = 0.002

	t1Low    = 45.0
	t1High   = 75.0
	t2Low    = 40.0
	t2High   = 65.0
	tempStep = 0.2

	vibLow  = 1.2
	vibHigh = 3.0
	vibStep = 0.04
)

// WalkState carries the last emitted value per channel between live cycles.
// It replaces nothing persistent: create one at startup, advance it with
// Next, drop it on exit.
type WalkState struct {
	I1, I2, I3 float64
	V1, V2, V3 float64
	Freq       float64
	PF         float64
	T1, T2     float64
	Vib        float64

	cycle int
	rng   *rand.Rand
}

// NewWalkState returns live-mode state seeded at the nominal operating point.
func NewWalkState(rng *rand.Rand) *WalkState {
	return &WalkState{
		I1: 72.0, I2: 72.5, I3: 71.5,
		V1: 400.0, V2: 401.0, V3: 399.0,
		Freq: 50.0,
		PF:   0.9,
		T1:   55.0, T2: 50.0,
		Vib: 2.1,
		rng: rng,
	}
}

// step moves v by a uniform delta in [-maxDelta, maxDelta]. A value that
// crosses an edge is bounced back with 0.3 damping rather than hard-clamped,
// so channels never visibly stick at a boundary.
func step(rng *rand.Rand, v, low, high, maxDelta float64) float64 {
	v += rng.Float64()*2*maxDelta - maxDelta
	if v < low {
		v = low + (low-v)*0.3
	}
	if v > high {
		v = high - (v-high)*0.3
	}
	return round2(v)
}

// Next advances every channel by one step and returns the resulting sample
// stamped with now.
func (s *WalkState) Next(now time.Time) model.MotorReading {
	s.I1 = step(s.rng, s.I1, currentLow, currentHigh, currentStep)
	s.I2 = step(s.rng, s.I2, currentLow, currentHigh, currentStep)
	s.I3 = step(s.rng, s.I3, currentLow, currentHigh, currentStep)

	s.V1 = step(s.rng, s.V1, voltageLow, voltageHigh, voltageStep)
	s.V2 = step(s.rng, s.V2, voltageLow, voltageHigh, voltageStep)
	s.V3 = step(s.rng, s.V3, voltageLow, voltageHigh, voltageStep)

	s.Freq = step(s.rng, s.Freq, freqLow, freqHigh, freqStep)

	// Power factor keeps its original hard clamp instead of the damped
	// reflection the other channels use.
	pf := s.PF + s.rng.Float64()*2*pfJitter - pfJitter
	s.PF = round3(math.Max(pfMin, math.Min(pfMax, pf)))

	s.T1 = step(s.rng, s.T1, t1Low, t1High, tempStep)
	s.T2 = step(s.rng, s.T2, t2Low, t2High, tempStep)

	// Vibration rides two slow sines so the envelope oscillates instead of
	// wandering; the walk only adds jitter around that base.
	t := float64(s.cycle) / 40.0
	base := 2.0 + 0.35*math.Sin(2*math.Pi*0.06*t) + 0.2*math.Sin(2*math.Pi*0.32*t)
	s.Vib = step(s.rng, base, vibLow, vibHigh, vibStep)

	s.cycle++

	return model.MotorReading{
		I1: s.I1, I2: s.I2, I3: s.I3,
		V1: s.V1, V2: s.V2, V3: s.V3,
		Frequency: s.Freq,
		PF:        s.PF,
		T1:        s.T1, T2: s.T2,
		Vibration: s.Vib,
		Timestamp: now.Format(model.TimeLayout),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

package sim

import (
	"math"
	"math/rand"
	"time"

	"motor-twin/internal/model"
)

const (
	baseCurrent = 70.0  // A
	baseVoltage = 400.0 // V

	// Samples are spaced 10s apart, stepping back from the series end so a
	// fresh backfill appears to finish at the present moment.
	sampleSpacing = 10 * time.Second
)

// Series computes n historical samples from closed-form trend functions of
// the normalized position in the series: warm-up over the first 100 samples,
// a periodic load wave, slow degradation over the final 30%, and sporadic
// vibration spikes near the end. Each sample depends only on its index, not
// on its predecessors.
func Series(rng *rand.Rand, n int, end time.Time) []model.MotorReading {
	start := end.Add(-time.Duration(n) * sampleSpacing)

	out := make([]model.MotorReading, 0, n)
	for i := 1; i <= n; i++ {
		tNorm := float64(i) / float64(n)

		warmup := math.Min(1.0, float64(i)/100.0)
		loadWave := 0.8 + 0.4*math.Sin(2*math.Pi*tNorm*3.0)
		degradation := 1.0 + 0.3*math.Max(0.0, tNorm-0.7)

		// Phase currents with slight unbalance and noise.
		i1 := baseCurrent * loadWave * gauss(rng, 1.0, 0.03) * degradation
		i2 := baseCurrent * 1.03 * loadWave * gauss(rng, 1.0, 0.03) * degradation
		i3 := baseCurrent * 0.97 * loadWave * gauss(rng, 1.0, 0.03) * degradation

		// Line voltages with a small ripple, distinct phase per line.
		ripple := 0.01 * math.Sin(2*math.Pi*tNorm*5.0)
		v1 := baseVoltage*(1.0+ripple) + gauss(rng, 0.0, 2.0)
		v2 := baseVoltage*(1.0-ripple/2.0) + gauss(rng, 0.0, 2.0)
		v3 := baseVoltage*(1.0+ripple/3.0) + gauss(rng, 0.0, 2.0)

		freq := 50.0 + gauss(rng, 0.0, 0.05)

		// Power factor sags with lower load and with wear.
		pf := 0.94 - 0.04*(1.0-loadWave) - 0.05*(degradation-1.0) + gauss(rng, 0.0, 0.01)
		pf = math.Max(0.75, math.Min(0.98, pf))

		t1 := 35.0 + 45.0*warmup + 8.0*(degradation-1.0) + gauss(rng, 0.0, 1.0)
		t2 := t1 - 4.0 + gauss(rng, 0.0, 1.0)

		vib := 1.5 + 0.8*loadWave + 4.0*(degradation-1.0) + gauss(rng, 0.0, 0.2)
		vib += bearingSpike(rng, i, n)

		ts := start.Add(time.Duration(i) * sampleSpacing)

		out = append(out, model.MotorReading{
			I1: round2(i1), I2: round2(i2), I3: round2(i3),
			V1: round2(v1), V2: round2(v2), V3: round2(v3),
			Frequency: round2(freq),
			PF:        round2(pf),
			T1:        round2(t1), T2: round2(t2),
			Vibration: round2(vib),
			Timestamp: ts.Format(model.TimeLayout),
		})
	}
	return out
}

// bearingSpike models a sporadic bearing fault: once the series is past 70%
// of its span, each sample has a 5% chance of an extra vibration spike of
// magnitude 1.0–2.5.
func bearingSpike(rng *rand.Rand, i, n int) float64 {
	if i <= int(float64(n)*0.7) {
		return 0
	}
	if rng.Float64() >= 0.05 {
		return 0
	}
	return 1.0 + rng.Float64()*1.5
}

func gauss(rng *rand.Rand, mean, stddev float64) float64 {
	return mean + stddev*rng.NormFloat64()
}

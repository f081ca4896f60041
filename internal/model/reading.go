package model

import (
	"fmt"
	"time"
)

// TimeLayout is the wall-clock format the dashboard expects, second precision.
const TimeLayout = "2006-01-02 15:04:05"

// MotorReading is one point-in-time sample of the simulated three-phase
// motor, in the flat shape stored under <motor>/logs/entry_NNN.
type MotorReading struct {
	I1        float64 `json:"I1"` // phase currents, A
	I2        float64 `json:"I2"`
	I3        float64 `json:"I3"`
	V1        float64 `json:"V1"` // line voltages, V
	V2        float64 `json:"V2"`
	V3        float64 `json:"V3"`
	Frequency float64 `json:"frequency"` // Hz
	PF        float64 `json:"pf"`
	T1        float64 `json:"T1"` // winding/bearing temperatures, °C
	T2        float64 `json:"T2"`
	Vibration float64 `json:"vibration"`
	Timestamp string  `json:"timestamp"`
}

// PhaseCurrents groups the three phase currents for the live payload.
type PhaseCurrents struct {
	I1 float64 `json:"I1"`
	I2 float64 `json:"I2"`
	I3 float64 `json:"I3"`
}

// PhaseVoltages groups the three line voltages for the live payload.
type PhaseVoltages struct {
	V1 float64 `json:"V1"`
	V2 float64 `json:"V2"`
	V3 float64 `json:"V3"`
}

// Temperatures groups the two temperature channels for the live payload.
type Temperatures struct {
	T1 float64 `json:"T1"`
	T2 float64 `json:"T2"`
}

// LivePayload is the nested shape the dashboard reads from
// <motor>/live_reading. It carries no power factor; gauges only show the
// fields below.
type LivePayload struct {
	Current     PhaseCurrents `json:"current"`
	Voltage     PhaseVoltages `json:"voltage"`
	Temperature Temperatures  `json:"temperature"`
	Frequency   float64       `json:"frequency"`
	Vibration   float64       `json:"vibration"`
	Timestamp   string        `json:"timestamp"`
}

// Live converts a flat reading into the nested live_reading payload.
func (r MotorReading) Live() LivePayload {
	return LivePayload{
		Current:     PhaseCurrents{I1: r.I1, I2: r.I2, I3: r.I3},
		Voltage:     PhaseVoltages{V1: r.V1, V2: r.V2, V3: r.V3},
		Temperature: Temperatures{T1: r.T1, T2: r.T2},
		Frequency:   r.Frequency,
		Vibration:   r.Vibration,
		Timestamp:   r.Timestamp,
	}
}

// Time parses the reading's wall-clock timestamp; zero time if malformed.
func (r MotorReading) Time() time.Time {
	t, err := time.ParseInLocation(TimeLayout, r.Timestamp, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// EntryKey returns the log key for a 1-based entry number, zero-padded to
// three digits: entry_001, entry_002, ...
func EntryKey(n int) string {
	return fmt.Sprintf("entry_%03d", n)
}

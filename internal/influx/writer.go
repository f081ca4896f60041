package influx

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"motor-twin/internal/model"
)

const measurement = "motor_telemetry"

// Writer mirrors motor readings into InfluxDB so history survives the live
// generator's log reset.
type Writer struct {
	client  influxdb2.Client
	api     api.WriteAPIBlocking
	motorID string
}

// NewWriter creates an InfluxDB write API client. Caller should call Close() when done.
func NewWriter(url, token, org, bucket, motorID string) *Writer {
	client := influxdb2.NewClient(url, token)
	writeAPI := client.WriteAPIBlocking(org, bucket)
	return &Writer{client: client, api: writeAPI, motorID: motorID}
}

// Close releases the InfluxDB client.
func (w *Writer) Close() {
	w.client.Close()
}

// Health checks that InfluxDB is reachable and the token is valid.
func (w *Writer) Health(ctx context.Context) error {
	_, err := w.client.Health(ctx)
	return err
}

// Write saves one reading as a point stamped with the reading's own
// timestamp, falling back to now if it does not parse.
func (w *Writer) Write(ctx context.Context, r model.MotorReading) error {
	pointTime := r.Time()
	if pointTime.IsZero() {
		pointTime = time.Now()
	}
	p := influxdb2.NewPointWithMeasurement(measurement).
		AddTag("motorId", w.motorID).
		AddField("I1", r.I1).
		AddField("I2", r.I2).
		AddField("I3", r.I3).
		AddField("V1", r.V1).
		AddField("V2", r.V2).
		AddField("V3", r.V3).
		AddField("frequency", r.Frequency).
		AddField("pf", r.PF).
		AddField("T1", r.T1).
		AddField("T2", r.T2).
		AddField("vibration", r.Vibration).
		SetTime(pointTime)
	if err := w.api.WritePoint(ctx, p); err != nil {
		return fmt.Errorf("influx write: %w", err)
	}
	return nil
}

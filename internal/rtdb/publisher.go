package rtdb

import (
	"context"
	"fmt"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"motor-twin/internal/model"
)

// Publisher writes motor readings into the Firebase Realtime Database the
// dashboard reads from. Two locations per motor: live_reading, overwritten
// every cycle, and logs/entry_NNN, append-only history.
type Publisher struct {
	live *db.Ref
	logs *db.Ref
	test *db.Ref
}

// NewPublisher authenticates with the service account JSON at
// credentialsFile and opens the database at databaseURL.
func NewPublisher(ctx context.Context, credentialsFile, databaseURL, motorID string) (*Publisher, error) {
	app, err := firebase.NewApp(ctx,
		&firebase.Config{DatabaseURL: databaseURL},
		option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase database: %w", err)
	}
	root := client.NewRef(motorID)
	return &Publisher{
		live: root.Child("live_reading"),
		logs: root.Child("logs"),
		test: root.Child("_test"),
	}, nil
}

// Ping verifies the database accepts writes: set, read back and delete a
// scratch record under <motor>/_test. Run it before generating anything.
func (p *Publisher) Ping(ctx context.Context) error {
	if err := p.test.Set(ctx, map[string]string{"ping": time.Now().Format(time.RFC3339)}); err != nil {
		return fmt.Errorf("write test: %w", err)
	}
	var got map[string]string
	if err := p.test.Get(ctx, &got); err != nil {
		return fmt.Errorf("read back: %w", err)
	}
	if err := p.test.Delete(ctx); err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}
	return nil
}

// SetLive overwrites the live reading with r in the nested dashboard shape.
func (p *Publisher) SetLive(ctx context.Context, r model.MotorReading) error {
	if err := p.live.Set(ctx, r.Live()); err != nil {
		return fmt.Errorf("set live_reading: %w", err)
	}
	return nil
}

// AppendLog stores r as log entry n. Entries are only ever added, never
// revised.
func (p *Publisher) AppendLog(ctx context.Context, n int, r model.MotorReading) error {
	key := model.EntryKey(n)
	if err := p.logs.Update(ctx, map[string]interface{}{key: r}); err != nil {
		return fmt.Errorf("append logs/%s: %w", key, err)
	}
	return nil
}

// ReplaceLogs writes a whole series as the log collection, dropping whatever
// was stored under logs before.
func (p *Publisher) ReplaceLogs(ctx context.Context, readings []model.MotorReading) error {
	if err := p.logs.Set(ctx, LogCollection(readings)); err != nil {
		return fmt.Errorf("replace logs: %w", err)
	}
	return nil
}

// ClearLogs deletes every stored log entry. The live generator calls this
// once at startup, so history from a previous run is gone the moment a new
// run begins - there is no confirmation step.
func (p *Publisher) ClearLogs(ctx context.Context) error {
	if err := p.logs.Delete(ctx); err != nil {
		return fmt.Errorf("clear logs: %w", err)
	}
	return nil
}

// LogCollection keys a series by 1-based zero-padded entry number, the shape
// stored under <motor>/logs.
func LogCollection(readings []model.MotorReading) map[string]model.MotorReading {
	logs := make(map[string]model.MotorReading, len(readings))
	for i, r := range readings {
		logs[model.EntryKey(i+1)] = r
	}
	return logs
}

package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"motor-twin/internal/config"
	"motor-twin/internal/influx"
	"motor-twin/internal/model"
	"motor-twin/internal/rtdb"
	"motor-twin/internal/sim"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	pub, err := rtdb.NewPublisher(ctx, cfg.FirebaseCredentials, cfg.FirebaseDatabaseURL, cfg.MotorID)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	log.Printf("connected to %s", cfg.FirebaseDatabaseURL)

	if err := pub.Ping(ctx); err != nil {
		log.Fatalf("write test failed: %v (check database rules, service account role and URL)", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed()))

	log.Printf("simulating %d motor samples into %s/logs ...", cfg.BackfillPoints, cfg.MotorID)
	readings := sim.Series(rng, cfg.BackfillPoints, time.Now())

	if err := pub.ReplaceLogs(ctx, readings); err != nil {
		log.Fatalf("write logs: %v", err)
	}
	log.Printf("wrote %d log entries to %s/logs (%s -> %s)",
		len(readings), cfg.MotorID, model.EntryKey(1), model.EntryKey(len(readings)))

	// Keep the dashboard gauges consistent with the end of the history.
	latest := readings[len(readings)-1]
	if err := pub.SetLive(ctx, latest); err != nil {
		log.Fatalf("update live_reading: %v", err)
	}
	log.Println("live_reading updated with latest simulated values")

	if cfg.InfluxURL != "" {
		mirror := influx.NewWriter(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket, cfg.MotorID)
		defer mirror.Close()
		if err := mirror.Health(ctx); err != nil {
			log.Fatalf("influx: %v", err)
		}
		mirrored := 0
		for _, r := range readings {
			if err := mirror.Write(ctx, r); err != nil {
				log.Printf("influx mirror: %v", err)
				break
			}
			mirrored++
		}
		log.Printf("mirrored %d points to InfluxDB", mirrored)
	}
}

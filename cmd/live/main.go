package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"motor-twin/internal/config"
	"motor-twin/internal/influx"
	"motor-twin/internal/model"
	"motor-twin/internal/mqtt"
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
	log.Println("write test: OK")

	// History from any previous run is dropped the moment we start.
	if err := pub.ClearLogs(ctx); err != nil {
		log.Fatalf("clear logs: %v", err)
	}
	log.Println("cleared old logs")

	var mirror *influx.Writer
	if cfg.InfluxURL != "" {
		mirror = influx.NewWriter(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket, cfg.MotorID)
		defer mirror.Close()
		if err := mirror.Health(ctx); err != nil {
			log.Fatalf("influx: %v", err)
		}
		log.Printf("mirroring history to %s", cfg.InfluxURL)
	}

	var announcer *mqtt.Announcer
	if cfg.MQTTBroker != "" {
		announcer, err = mqtt.Connect(cfg.MQTTBroker, cfg.MQTTClientID, cfg.MQTTUser, cfg.MQTTPass, cfg.MotorID)
		if err != nil {
			log.Fatalf("mqtt: %v", err)
		}
		defer announcer.Close()
		log.Printf("announcing on %s", mqtt.Topic(cfg.MotorID))
	}

	state := sim.NewWalkState(rand.New(rand.NewSource(cfg.Seed())))

	log.Printf("generating data every %v (Ctrl+C to stop)", cfg.UpdateInterval)
	log.Printf("  - %s/live_reading: latest values for dashboard", cfg.MotorID)
	log.Printf("  - %s/logs: entry_001, entry_002, ... (incrementing)", cfg.MotorID)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.UpdateInterval)
	defer ticker.Stop()

	entry := 0
	for {
		reading := state.Next(time.Now())

		// A failed cycle is logged and skipped; the loop carries on.
		if err := pub.SetLive(ctx, reading); err != nil {
			log.Printf("ERROR writing to Firebase: %v", err)
		} else {
			entry++
			if err := pub.AppendLog(ctx, entry, reading); err != nil {
				log.Printf("ERROR writing to Firebase: %v", err)
			} else {
				log.Printf("updated at %s | live_reading ok | logs/%s ok", reading.Timestamp, model.EntryKey(entry))
			}
		}

		if mirror != nil {
			if err := mirror.Write(ctx, reading); err != nil {
				log.Printf("influx mirror: %v", err)
			}
		}
		if announcer != nil {
			if err := announcer.Announce(reading); err != nil {
				log.Printf("mqtt announce: %v", err)
			}
		}

		select {
		case <-sig:
			log.Println("stopped")
			return
		case <-ticker.C:
		}
	}
}

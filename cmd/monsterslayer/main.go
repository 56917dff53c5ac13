// Package main is the entry point for the Monster Slayer core engine.
// It runs a scripted headless session: load the save, report progress,
// and simulate a boss fight. The rendering front end drives the same
// Session API; this binary exists for smoke-testing and telemetry.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/monsterslayer/internal/event"
	"github.com/samdwyer/monsterslayer/internal/game"
	"github.com/samdwyer/monsterslayer/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	session, err := game.New(game.Config{
		DataDir:    os.Getenv("MONSTERSLAYER_DATA_DIR"),
		BackendURL: os.Getenv("MONSTERSLAYER_BACKEND_URL"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize session: %v", err)
	}

	if err := run(ctx, session); err != nil {
		log.Fatalf("Session error: %v", err)
	}
}

// run plays a short scripted session against the first boss.
func run(ctx context.Context, session *game.Session) error {
	d := session.Saves().Data()
	log.Printf("Loaded save: %d souls, %d weapons unlocked, equipped %s",
		d.Souls, len(d.UnlockedWeapons), d.EquippedWeapon)

	// Log boss activity as it happens.
	session.Bus().Subscribe(event.BossPhaseChanged, event.ListenerFunc(func(e event.Event) {
		p := e.Data.(event.BossPhasePayload)
		log.Printf("%s entered phase %d (%s)", p.BossID, p.Phase, p.AttackPattern)
	}))
	session.Bus().Subscribe(event.BossAttack, event.ListenerFunc(func(e event.Event) {
		p := e.Data.(event.BossAttackPayload)
		log.Printf("%s uses %s", p.BossID, p.AttackID)
	}))
	session.Bus().Subscribe(event.BossDefeated, event.ListenerFunc(func(e event.Event) {
		p := e.Data.(event.BossDefeatedPayload)
		log.Printf("%s defeated! +%d souls", p.BossID, p.SoulReward)
	}))

	b, err := session.StartBossFight("flame_tyrant")
	if err != nil {
		return err
	}

	// Simulate 10 slices per second against the boss.
	now := time.Now()
	for !b.Defeated {
		b.Update(now)
		b.TakeDamage(12, now)
		now = now.Add(100 * time.Millisecond)
	}

	session.SyncSave(ctx)

	log.Printf("Session over: %d souls banked", session.Saves().Souls())
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_MONSTERSLAYER_API_KEY")
	dataset := os.Getenv("HONEYCOMB_MONSTERSLAYER_DATASET")
	if dataset == "" {
		dataset = "monsterslayer" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}

package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/monsterslayer/internal/backend"
	"github.com/samdwyer/monsterslayer/internal/boss"
	"github.com/samdwyer/monsterslayer/internal/event"
	"github.com/samdwyer/monsterslayer/internal/gamedata"
	"github.com/samdwyer/monsterslayer/internal/gameerr"
	"github.com/samdwyer/monsterslayer/internal/save"
	"github.com/samdwyer/monsterslayer/internal/shop"
	"github.com/samdwyer/monsterslayer/internal/telemetry"
	"github.com/samdwyer/monsterslayer/internal/weapon"
)

// EndlessMode is the high-score key for the endless arena.
const EndlessMode = "endless"

var (
	// ErrUnknownLevel is returned for level ids absent from the registry.
	ErrUnknownLevel = errors.New("game: unknown level")
	// ErrUnknownBoss is returned for boss ids absent from the registry.
	ErrUnknownBoss = errors.New("game: unknown boss")
)

// Config holds session configuration options.
type Config struct {
	// DataDir is where save files live. Empty means in-memory only
	// (progress lost on exit; used by tests and dry runs).
	DataDir string
	// BackendURL is the optional hosted service. Empty disables all
	// online features.
	BackendURL string
	// Seed for the gameplay RNG. 0 means seed from the clock.
	Seed int64
	// Logger receives error-handler output. Nil uses the standard logger.
	Logger *log.Logger
}

// Session holds the entire game state. It replaces the original's
// manager singletons with one explicitly constructed object graph.
type Session struct {
	weapons  *gamedata.WeaponRegistry
	upgrades *gamedata.UpgradeRegistry
	bosses   *gamedata.BossRegistry
	levels   *gamedata.LevelRegistry

	saves    *save.Manager
	shop     *shop.Shop
	resolver *weapon.Resolver
	client   *backend.Client
	errors   *gameerr.Handler
	bus      *event.Bus
	rng      *rand.Rand

	state State
}

// New creates a session: loads content, opens the save store, and wires
// everything to a shared event bus.
func New(cfg Config) (*Session, error) {
	bus := event.NewBus()
	handler := gameerr.NewHandler(cfg.Logger, bus)

	weapons, err := gamedata.LoadWeaponRegistry()
	if err != nil {
		handler.Handle(gameerr.Asset(err).Critical())
		return nil, err
	}
	upgrades, err := gamedata.LoadUpgradeRegistry()
	if err != nil {
		handler.Handle(gameerr.Asset(err).Critical())
		return nil, err
	}
	bosses, err := gamedata.LoadBossRegistry()
	if err != nil {
		handler.Handle(gameerr.Asset(err).Critical())
		return nil, err
	}
	levels, err := gamedata.LoadLevelRegistry()
	if err != nil {
		handler.Handle(gameerr.Asset(err).Critical())
		return nil, err
	}

	var store save.Store
	if cfg.DataDir != "" {
		fileStore, err := save.NewFileStore(cfg.DataDir)
		if err != nil {
			handler.Handle(gameerr.Init(err))
			return nil, err
		}
		store = fileStore
	} else {
		store = save.NewMemoryStore()
	}

	saves := save.NewManager(store)
	saves.OnPersistError(func(err error) {
		handler.Handle(gameerr.Save(err))
	})

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		weapons:  weapons,
		upgrades: upgrades,
		bosses:   bosses,
		levels:   levels,
		saves:    saves,
		shop:     shop.New(weapons, upgrades, saves),
		resolver: weapon.NewResolver(weapons, bus),
		client:   backend.NewClient(cfg.BackendURL, store),
		errors:   handler,
		bus:      bus,
		rng:      rand.New(rand.NewSource(seed)),
		state:    StateIdle,
	}

	// Boss rewards and critical errors route through the bus so the
	// boss package stays ignorant of the save layer.
	bus.Subscribe(event.BossDefeated, event.ListenerFunc(func(e event.Event) {
		payload := e.Data.(event.BossDefeatedPayload)
		if err := saves.AddSouls(payload.SoulReward); err != nil {
			handler.Handle(gameerr.Save(err))
		}
		s.state = StateIdle
	}))
	bus.Subscribe(event.CriticalError, event.ListenerFunc(func(event.Event) {
		s.state = StateError
	}))

	return s, nil
}

// State returns what the session is currently doing.
func (s *Session) State() State { return s.state }

// Saves returns the save manager.
func (s *Session) Saves() *save.Manager { return s.saves }

// Shop returns the shop.
func (s *Session) Shop() *shop.Shop { return s.shop }

// Bus returns the session event bus.
func (s *Session) Bus() *event.Bus { return s.bus }

// Levels returns the level registry.
func (s *Session) Levels() *gamedata.LevelRegistry { return s.levels }

// Bosses returns the boss registry.
func (s *Session) Bosses() *gamedata.BossRegistry { return s.bosses }

// SliceMonster applies the equipped weapon's current tier to a struck
// monster.
func (s *Session) SliceMonster(target weapon.Target) weapon.ApplyResult {
	equipped := s.saves.EquippedWeapon()
	return s.resolver.Apply(equipped, s.saves.WeaponTier(equipped), target, s.rng)
}

// StartLevel marks the session as running the given level.
func (s *Session) StartLevel(levelID string) error {
	if s.levels.GetByID(levelID) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, levelID)
	}
	s.state = StateLevel
	return nil
}

// CompleteLevel records a finished campaign level: completion, stars
// computed from the level's thresholds, earned souls, and a best-effort
// leaderboard submission. Returns the stars earned.
func (s *Session) CompleteLevel(ctx context.Context, levelID string, score, soulsEarned int) (int, error) {
	level := s.levels.GetByID(levelID)
	if level == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, levelID)
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "level.complete")
	defer span.End()

	stars := level.Stars(score)
	s.saves.CompleteLevel(levelID)
	s.saves.SetLevelStars(levelID, stars)
	s.saves.RecordHighScore(levelID, score)
	if err := s.saves.AddSouls(soulsEarned); err != nil {
		return 0, err
	}
	s.state = StateIdle

	span.SetAttributes(
		attribute.String("level.id", levelID),
		attribute.Int("level.score", score),
		attribute.Int("level.stars", stars),
		attribute.Int("souls.earned", soulsEarned),
	)

	s.submitScore(ctx, levelID, score)
	return stars, nil
}

// RecordEndlessRun records a finished endless run: high-score
// bookkeeping, earned souls, best-effort submission. Returns whether the
// score is a new personal best.
func (s *Session) RecordEndlessRun(ctx context.Context, score, soulsEarned int) (bool, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "endless.complete")
	defer span.End()

	newBest := s.saves.RecordHighScore(EndlessMode, score)
	if err := s.saves.AddSouls(soulsEarned); err != nil {
		return false, err
	}
	s.state = StateIdle

	span.SetAttributes(
		attribute.Int("endless.score", score),
		attribute.Bool("endless.new_best", newBest),
		attribute.Int("souls.earned", soulsEarned),
	)

	s.submitScore(ctx, EndlessMode, score)
	return newBest, nil
}

// StartBossFight spawns the boss runtime wired to the session bus. The
// defeat reward is granted through the bus subscription in New.
func (s *Session) StartBossFight(bossID string) (*boss.Boss, error) {
	def := s.bosses.GetByID(bossID)
	if def == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBoss, bossID)
	}
	picker := boss.PickerFor(bossID)
	if picker == nil {
		return nil, fmt.Errorf("%w: no attack picker for %q", ErrUnknownBoss, bossID)
	}

	b, err := boss.New(def, picker, s.bus, s.rng, time.Now())
	if err != nil {
		return nil, err
	}
	s.state = StateBossFight

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(context.Background(), "boss.start")
	span.SetAttributes(
		attribute.String("boss.id", bossID),
		attribute.Int("boss.health", def.Health),
		attribute.Int("boss.phases", def.PhaseCount()),
	)
	span.End()

	return b, nil
}

// SyncSave uploads the exported save to the backend, best effort.
func (s *Session) SyncSave(ctx context.Context) {
	if !s.client.Enabled() || !s.client.Available(ctx) {
		return
	}
	exported, err := s.saves.Export()
	if err != nil {
		s.errors.Handle(gameerr.Save(err))
		return
	}
	if err := s.client.SyncSave(ctx, []byte(exported)); err != nil {
		s.errors.Handle(gameerr.Network(err))
	}
}

// submitScore pushes a score to the leaderboard when the backend is up.
// Failures are logged and swallowed; scores are never worth blocking on.
func (s *Session) submitScore(ctx context.Context, mode string, score int) {
	if !s.client.Enabled() || !s.client.Available(ctx) {
		return
	}
	if err := s.client.SubmitScore(ctx, mode, score); err != nil {
		s.errors.Handle(gameerr.Network(err))
	}
}

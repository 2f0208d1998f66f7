package factory

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/fastlane/internal/api/sse"
	"github.com/mcoot/fastlane/internal/catalog"
	"github.com/mcoot/fastlane/internal/config"
	"github.com/mcoot/fastlane/internal/dependencies/clock"
	"github.com/mcoot/fastlane/internal/dependencies/random"
	"github.com/mcoot/fastlane/internal/dependencies/scheduler"
	"github.com/mcoot/fastlane/internal/eventbus"
	"github.com/mcoot/fastlane/internal/model"
	"github.com/mcoot/fastlane/internal/services/bot"
	"github.com/mcoot/fastlane/internal/services/economy"
	"github.com/mcoot/fastlane/internal/services/game"
	"github.com/mcoot/fastlane/internal/services/journal"
	"github.com/mcoot/fastlane/internal/services/turn"
	"github.com/mcoot/fastlane/internal/session"
	"github.com/mcoot/fastlane/internal/storage"
	"github.com/mcoot/fastlane/internal/storage/memory"
	redisstorage "github.com/mcoot/fastlane/internal/storage/redis"
	"github.com/mcoot/fastlane/internal/storage/sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Bus   *eventbus.Bus
	Queue *scheduler.Queue

	// Game data
	Catalog *catalog.Catalog
	Rules   model.Rules

	// Services
	Journal    *journal.Journal
	Economy    *economy.Service
	Turns      *turn.Service
	Strategy   bot.Strategy
	Controller *game.Controller
	Host       *session.Host

	// Event stream
	Hub         *sse.Hub
	Broadcaster *sse.Broadcaster
}

// New creates a new application with all dependencies wired
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
	}

	rules := model.DefaultRules()
	rules.AIDelay = cfg.AIDelay

	control := model.SeatControl(cfg.AIStrategy)
	if control == "" {
		control = model.ControlHeuristic
	}
	return newWithDependencies(store, clock.New(), random.New(), cat, rules, control, logger), nil
}

func newStore(cfg config.Config) (storage.Store, error) {
	switch cfg.StorageType {
	case config.StorageTypeMemory, "":
		return memory.New(), nil
	case config.StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.Slot = cfg.SaveSlot
		redisCfg.SaveTTL = cfg.RedisSaveTTL
		return redisstorage.New(redisCfg)
	case config.StorageTypeSQLite:
		return sqlite.Open(cfg.SQLitePath, cfg.SaveSlot)
	default:
		return nil, fmt.Errorf("invalid storage type %q: must be memory, redis or sqlite", cfg.StorageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Store,
	clk clock.Clock,
	rnd random.Random,
	cat *catalog.Catalog,
	rules model.Rules,
	control model.SeatControl,
	logger *slog.Logger,
) *App {
	bus := eventbus.New(logger)
	queue := scheduler.NewQueue(clk, logger)

	j := journal.New(bus, clk, logger)
	econ := economy.New(cat, rules, j, logger)
	turns := turn.New(econ, rules, j, queue, logger)
	strategy, ok := bot.Strategies(cat, rules, rnd, logger)[control]
	if !ok {
		logger.Warn("unknown ai strategy, using heuristic", slog.String("strategy", string(control)))
		strategy = bot.NewHeuristicStrategy(cat, rules, logger)
	}
	controller := game.NewController(cat, rules, econ, turns, strategy, j, queue, clk, logger)
	host := session.New(controller, queue, clk, store, logger)

	hub := sse.NewHub(logger)
	broadcaster := sse.NewBroadcaster(hub, logger)
	broadcaster.Attach(bus)

	return &App{
		Store:       store,
		Clock:       clk,
		Random:      rnd,
		Bus:         bus,
		Queue:       queue,
		Catalog:     cat,
		Rules:       rules,
		Journal:     j,
		Economy:     econ,
		Turns:       turns,
		Strategy:    strategy,
		Controller:  controller,
		Host:        host,
		Hub:         hub,
		Broadcaster: broadcaster,
	}
}

// Close releases the store and stops the event stream
func (a *App) Close() error {
	a.Hub.Close()
	return a.Store.Close()
}

package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/AryavP/AntBridge/internal/catalog"
	"github.com/AryavP/AntBridge/internal/feed"
)

// Config holds everything needed to create a new game engine.
type Config struct {
	GameID  string // generated when empty
	Seats   []Seat
	Catalog *catalog.Catalog
	Logger  feed.Logger
	Seed    int64 // RNG seed (0 for random)

	// NoShuffle skips all shuffling, for deterministic tests.
	NoShuffle bool
}

// Engine owns one game's state and exposes the command surface. There is no
// ambient global: every command is a method on the engine, and each process
// holds exactly one engine per game.
type Engine struct {
	State   *GameState
	Catalog *catalog.Catalog
	Logger  feed.Logger

	rng       *rand.Rand
	noShuffle bool
}

// NewEngine creates an engine with a fresh, pre-setup game state.
func NewEngine(cfg Config) *Engine {
	id := cfg.GameID
	if id == "" {
		id = uuid.NewString()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = feed.NewMemoryLogger()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		State:     NewGameState(id, cfg.Seats),
		Catalog:   cfg.Catalog,
		Logger:    logger,
		rng:       rand.New(rand.NewSource(seed)),
		noShuffle: cfg.NoShuffle,
	}
}

// NewEngineFromState wraps an existing (e.g. deserialized) game state.
func NewEngineFromState(state *GameState, cat *catalog.Catalog, logger feed.Logger, seed int64) *Engine {
	if logger == nil {
		logger = feed.NewMemoryLogger()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		State:   state,
		Catalog: cat,
		Logger:  logger,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// shuffle randomizes a card or objective ID list in place.
func (e *Engine) shuffle(ids []string) {
	if e.noShuffle {
		return
	}
	e.rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}

// log emits an event to the activity feed.
func (e *Engine) log(event feed.Event) {
	e.Logger.Log(event)
}

// playerName returns a display name for feed lines.
func (e *Engine) playerName(id string) string {
	if p := e.State.Player(id); p != nil {
		return p.Name
	}
	return id
}

func newEventID() string {
	return uuid.NewString()
}

// Package app assembles the game engine: board, ledger, note registry,
// victory tracker, and the deal API over a chosen store.
package app

import (
	"fmt"

	"github.com/NoahPeres/ti4engine/internal/game/audit"
	"github.com/NoahPeres/ti4engine/internal/game/board"
	"github.com/NoahPeres/ti4engine/internal/game/economy"
	"github.com/NoahPeres/ti4engine/internal/game/notes"
	"github.com/NoahPeres/ti4engine/internal/game/trade"
	"github.com/NoahPeres/ti4engine/internal/game/victory"
	"github.com/NoahPeres/ti4engine/internal/storage/bbolt"
	"github.com/NoahPeres/ti4engine/internal/storage/memory"
	"github.com/NoahPeres/ti4engine/internal/storage/sqlite"
)

// dealStore is the storage surface the engine needs: deal snapshots plus
// the audit trail.
type dealStore interface {
	trade.TransactionStore
	audit.Store
}

// App is a fully wired engine instance.
type App struct {
	Config  Config
	Board   *board.Board
	Ledger  *economy.Ledger
	Notes   *notes.Registry
	Victory *victory.Tracker
	Deals   *trade.API
	Manager *trade.Manager

	store     dealStore
	closeable interface{ Close() error }
}

// New assembles an engine from the config. A DBPath selects the SQLite
// store; otherwise state lives in memory for the session.
func New(cfg Config) (*App, error) {
	tracker, err := victory.NewTracker(cfg.MaxScore)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:  cfg,
		Board:   board.New(),
		Ledger:  economy.NewLedger(),
		Notes:   notes.NewRegistry(),
		Victory: tracker,
	}

	if cfg.DBPath != "" {
		store, err := openStore(cfg)
		if err != nil {
			return nil, err
		}
		a.store = store
		a.closeable = store
	} else {
		a.store = memory.New()
	}

	manager := trade.NewManager(a.store,
		trade.NewValidator(a.Board, a.Ledger, a.Notes),
		trade.NewResourceManager(a.Ledger, a.Notes),
		trade.NewEffectActivator(tracker),
		audit.NewEmitter(a.store))
	a.Manager = manager
	a.Deals = trade.NewAPI(manager)
	return a, nil
}

type durableStore interface {
	dealStore
	Close() error
}

func openStore(cfg Config) (durableStore, error) {
	switch cfg.DBBackend {
	case "", "sqlite":
		return sqlite.Open(cfg.DBPath)
	case "bolt":
		return bbolt.Open(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.DBBackend)
	}
}

// AddPlayer registers a player with every subsystem. An opening balance
// without a commodity ceiling inherits the configured default.
func (a *App) AddPlayer(player, system string, opening economy.Balance) {
	if opening.CommodityCeiling == 0 {
		opening.CommodityCeiling = a.Config.CommodityCeiling
	}
	a.Board.PlacePlayer(player, system)
	a.Ledger.AddPlayer(player, opening)
	a.Victory.AddPlayer(player)
}

// Close releases the backing store, if it holds external resources.
func (a *App) Close() error {
	if a.closeable == nil {
		return nil
	}
	return a.closeable.Close()
}

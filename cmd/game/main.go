// Command game runs a demonstration session of the trade engine: it seeds
// a small galaxy, walks a few deals through their lifecycle, and prints the
// resulting ledger.
package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/NoahPeres/ti4engine/internal/game/app"
	"github.com/NoahPeres/ti4engine/internal/game/economy"
	"github.com/NoahPeres/ti4engine/internal/game/notes"
	"github.com/NoahPeres/ti4engine/internal/game/trade"
	"github.com/NoahPeres/ti4engine/internal/platform/config"
	"github.com/NoahPeres/ti4engine/internal/platform/otel"
)

func main() {
	dbPath := flag.String("db", "", "SQLite database path (overrides TI4ENGINE_DB_PATH; empty keeps state in memory)")
	flag.Parse()

	log.SetPrefix("[GAME] ")
	ctx := context.Background()

	shutdown, err := otel.Setup(ctx, "ti4engine")
	if err != nil {
		config.Exitf("telemetry setup: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	cfg, err := app.LoadConfig()
	if err != nil {
		config.Exitf("load config: %v", err)
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	engine, err := app.New(cfg)
	if err != nil {
		config.Exitf("assemble engine: %v", err)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	seedGalaxy(engine)

	if err := runDemo(ctx, engine); err != nil {
		config.Exitf("demo session: %v", err)
	}
}

// seedGalaxy places three factions: sol and xxcha border each other through
// Mecatol Rex, hacan sits one system away from both.
func seedGalaxy(engine *app.App) {
	engine.Board.LinkSystems("mecatol", "archon")
	engine.Board.LinkSystems("mecatol", "arretze")

	engine.AddPlayer("sol", "mecatol", economy.Balance{TradeGoods: 5, Commodities: 4, RelicFragments: 1})
	engine.AddPlayer("xxcha", "archon", economy.Balance{TradeGoods: 3, Commodities: 2, RelicFragments: 2})
	engine.AddPlayer("hacan", "arretze", economy.Balance{TradeGoods: 8, Commodities: 6, CommodityCeiling: 6})

	support, err := notes.New(notes.KindSupportForThrone, "xxcha")
	if err != nil {
		config.Exitf("create note: %v", err)
	}
	if err := engine.Notes.AddToHand("xxcha", support); err != nil {
		config.Exitf("seed note: %v", err)
	}
}

func runDemo(ctx context.Context, engine *app.App) error {
	// A straightforward goods-for-commodities exchange.
	result, err := engine.Deals.Propose(ctx, "sol", "xxcha",
		trade.Offer{TradeGoods: 2}, trade.Offer{Commodities: 1})
	if err != nil {
		return err
	}
	logResult("propose", result)

	if result.Success {
		accepted, err := engine.Deals.Accept(ctx, result.Deal.ID)
		if err != nil {
			return err
		}
		logResult("accept", accepted)
	}

	// xxcha offers Support for the Throne for sol's relic fragment.
	if hand := engine.Notes.Hand("xxcha"); len(hand) == 1 {
		note := hand[0]
		result, err = engine.Deals.Propose(ctx, "xxcha", "sol",
			trade.Offer{Note: &note}, trade.Offer{RelicFragments: 1})
		if err != nil {
			return err
		}
		logResult("propose", result)

		if result.Success {
			accepted, err := engine.Deals.Accept(ctx, result.Deal.ID)
			if err != nil {
				return err
			}
			logResult("accept", accepted)
			for _, effect := range accepted.Effects {
				log.Printf("effect: %s for %s: %s", effect.Note.Label(), effect.Receiver, effect.Reason)
			}
		}
	}

	// A deal across the galaxy fails validation and is never stored.
	result, err = engine.Deals.Propose(ctx, "xxcha", "hacan",
		trade.Offer{TradeGoods: 1}, trade.Offer{TradeGoods: 1})
	if err != nil {
		return err
	}
	logResult("propose", result)

	history, err := engine.Deals.GetHistory(ctx, "sol")
	if err != nil {
		return err
	}
	for _, deal := range history.Deals {
		log.Printf("history: %s %s: %s -> %s", deal.ID, trade.StatusLabel(deal.Status), deal.Proposer, deal.Target)
	}

	for _, player := range []string{"sol", "xxcha", "hacan"} {
		balance, err := engine.Ledger.Balance(player)
		if err != nil {
			return err
		}
		score, err := engine.Victory.Score(player)
		if err != nil {
			return err
		}
		log.Printf("ledger: %s: %d trade goods, %d commodities, %d fragments, %d points",
			player, balance.TradeGoods, balance.Commodities, balance.RelicFragments, score)
	}
	return nil
}

func logResult(operation string, result trade.Result) {
	if result.Success {
		id := ""
		if result.Deal != nil {
			id = result.Deal.ID
		}
		log.Printf("%s: ok %s", operation, id)
		return
	}
	log.Printf("%s: failed (%s) %s", operation, result.ErrorCode, result.ErrorMessage)
	if len(result.ValidationErrors) > 0 {
		log.Printf("%s: violations: %s", operation, strings.Join(result.ValidationErrors, "; "))
	}
}

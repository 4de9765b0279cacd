package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dukerupert/choreboard/internal/config"
	"github.com/dukerupert/choreboard/internal/database"
	"github.com/dukerupert/choreboard/internal/logging"
	"github.com/dukerupert/choreboard/internal/rules"
	"github.com/dukerupert/choreboard/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	st := store.New(store.WithLatency(cfg.StoreLatency))

	if cfg.DBPath != "" {
		db, err := database.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open snapshot db: %w", err)
		}
		defer db.Close()

		if err := st.ImportFrom(db); err != nil {
			return fmt.Errorf("import snapshot: %w", err)
		}
		logger.Info("snapshot loaded", "path", cfg.DBPath)

		if cfg.ExportOnExit {
			defer func() {
				if err := st.ExportTo(db); err != nil {
					logger.Error("export snapshot", "error", err)
				}
			}()
		}
	}

	children, err := st.Children().ListByParent(ctx, cfg.ParentEmail)
	if err != nil {
		return fmt.Errorf("list children: %w", err)
	}
	if len(children) == 0 && cfg.SeedDemo {
		if err := store.SeedDemo(ctx, st); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		logger.Info("demo household seeded")
		if children, err = st.Children().ListByParent(ctx, cfg.ParentEmail); err != nil {
			return fmt.Errorf("list children: %w", err)
		}
	}

	engine := rules.New(st, logger)
	stats, err := engine.DashboardStats(ctx, cfg.ParentEmail)
	if err != nil {
		return fmt.Errorf("dashboard stats: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Choreboard for %s\n", cfg.ParentEmail)
	fmt.Fprintf(os.Stdout, "children: %d  pending: %d  completed today: %d  points: %d  unread: %d\n",
		stats.TotalChildren, stats.PendingChores, stats.CompletedToday, stats.TotalPoints, stats.UnreadNotifications)
	for _, child := range children {
		fmt.Fprintf(os.Stdout, "  %-10s level %d  %3d pts (%d to next)  $%s banked, $%s/week\n",
			child.Name, child.Level, child.TotalPoints, rules.PointsToNext(child.TotalPoints),
			child.TotalMoney.StringFixed(2), child.WeeklyPocketMoney.StringFixed(2))
	}
	return nil
}

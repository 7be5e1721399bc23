package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/crumbs/restaurant-service/internal/app"
	"github.com/crumbs/restaurant-service/internal/pkg/logger"
	"github.com/crumbs/restaurant-service/internal/services"
)

// service is the part of *app.App the process lifecycle drives.
type service interface {
	Seed(ctx context.Context) (services.SeedResult, error)
	Run(ctx context.Context) error
	Close()
}

func main() {
	var seed bool
	flag.BoolVar(&seed, "seed", false, "wipe the store and load the sample directory before serving")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	application, err := app.New(ctx)
	if err != nil {
		stop()
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	code := run(ctx, application, application.Log, seed || application.Cfg.SeedOnStart)
	stop()
	os.Exit(code)
}

// run seeds when asked, serves until ctx ends and always closes svc before returning the exit code.
func run(ctx context.Context, svc service, log *logger.Logger, seed bool) int {
	defer svc.Close()

	if seed {
		res, err := svc.Seed(ctx)
		if err != nil {
			log.Error("Seeding failed", "error", err)
			return 1
		}
		log.Info("Seeded sample directory",
			"categories", res.Categories,
			"restaurants", res.Restaurants,
			"menu_items", res.MenuItems,
		)
	}

	if err := svc.Run(ctx); err != nil {
		log.Error("Server failed", "error", err)
		return 1
	}
	log.Info("Server stopped")
	return 0
}

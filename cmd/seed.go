package main

import (
	"fmt"

	"github.com/farellandr/hostspot/config"
	"github.com/farellandr/hostspot/internal/repository"
	"github.com/farellandr/hostspot/internal/seed"
	"github.com/farellandr/hostspot/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with categories and, optionally, demo hosts",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "demo",
			Usage: "Number of demo hosts to create",
		},
		&cli.IntFlag{
			Name:  "listings",
			Usage: "Maximum listings per demo host",
			Value: 3,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "Fake data seed; 0 picks one from the clock",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := newLogger(cfg)

		db, err := config.InitDatabase(cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		logger.Info("categories seeded")

		hosts := c.Int("demo")
		if hosts == 0 {
			return nil
		}

		store := repository.NewStore(db)
		hasher := service.NewPasswordHasher(cfg.BcryptCost)
		factory := seed.NewFactory(
			service.NewSignupService(store, hasher, nil, logger),
			service.NewListingService(store, nil, logger),
			c.Int64("seed"),
		)

		res, err := factory.Demo(c.Context, hosts, c.Int("listings"))
		if err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}

		logger.WithFields(logrus.Fields{
			"hosts":    res.Hosts,
			"listings": res.Listings,
			"password": seed.DemoPassword,
		}).Info("demo data seeded")
		return nil
	},
}

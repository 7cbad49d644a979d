package main

import (
	"fmt"

	"github.com/farellandr/hostspot/config"
	"github.com/urfave/cli/v2"
)

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Create or update the schema and the default categories",
	Action: func(c *cli.Context) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := newLogger(cfg)

		db, err := config.OpenDatabase(cfg)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err := config.Migrate(db); err != nil {
			return err
		}

		logger.WithField("driver", cfg.DBDriver).Info("schema migrated")
		return nil
	},
}

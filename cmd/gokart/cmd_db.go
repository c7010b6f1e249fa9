package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/gokart/config"
	"github.com/shashiranjanraj/gokart/database/seeders"
	"github.com/shashiranjanraj/gokart/pkg/database"
)

// bootDB loads config and opens the database connection.
func bootDB(ctx context.Context) error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect(ctx)
}

// gokart seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := bootDB(ctx); err != nil {
			return err
		}
		defer func() { _ = database.Disconnect(context.Background()) }()

		fmt.Println("Running seeders…")
		return seeders.RunAll(ctx, database.DB())
	},
}

// gokart db:index
var indexCmd = &cobra.Command{
	Use:   "db:index",
	Short: "Create the indexes the service relies on",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := bootDB(ctx); err != nil {
			return err
		}
		defer func() { _ = database.Disconnect(context.Background()) }()

		fmt.Println("Ensuring indexes…")
		return database.EnsureIndexes(ctx)
	},
}

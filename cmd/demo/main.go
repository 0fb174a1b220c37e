/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"flag"
	"fmt"

	"mini-venmo-go/internal/common"
	"mini-venmo-go/internal/config"
	"mini-venmo-go/internal/ledger"
	"mini-venmo-go/internal/processor"
	"mini-venmo-go/internal/venmo"

	"go.uber.org/zap"
)

// defaultSeedUsers drives the demo when no seed file is available.
var defaultSeedUsers = []common.SeedUser{
	{Username: "Bobby", Balance: "5.00", CreditCard: "4111111111111111"},
	{Username: "Carol", Balance: "10.00", CreditCard: "4242424242424242"},
}

func loadSeedUsers(seedFile string, logger *zap.Logger) []common.SeedUser {
	users, err := common.LoadSeedUsers(seedFile)
	if err != nil {
		logger.Warn("Using built-in seed users",
			zap.String("seed_file", seedFile),
			zap.Error(err))
		return defaultSeedUsers
	}
	if len(users) < 2 {
		logger.Warn("Seed file needs at least two users, using built-in seed users",
			zap.String("seed_file", seedFile),
			zap.Int("count", len(users)))
		return defaultSeedUsers
	}
	return users
}

func createUsers(app *venmo.App, seeds []common.SeedUser, logger *zap.Logger) ([]*ledger.User, error) {
	users := make([]*ledger.User, 0, len(seeds))
	for _, seed := range seeds {
		user, err := app.CreateUser(seed.Username, seed.Balance, seed.CreditCard)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", seed.Username, err)
		}
		users = append(users, user)
	}

	logger.Info("Seed users created", zap.Int("count", len(users)))
	return users, nil
}

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	seedFlag := flag.String("seed", "", "Path to the user seed file (optional)")
	flag.Parse()

	logger.Info("Starting payment demo")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	seedFile := cfg.Demo.SeedFile
	if *seedFlag != "" {
		seedFile = *seedFlag
	}

	app := venmo.NewApp(processor.NewSandbox())

	users, err := createUsers(app, loadSeedUsers(seedFile, logger), logger)
	if err != nil {
		logger.Fatal("Failed to create users", zap.Error(err))
	}

	bobby, carol := users[0], users[1]

	// Demo scenario: one payment covered by the balance, one that falls back
	// to the card. This is the only layer that catches and displays payment
	// errors; everything below surfaces them untouched.
	if _, err := bobby.Pay(ctx, carol, "5.00", "Coffee"); err != nil {
		fmt.Println(err)
	}
	if _, err := carol.Pay(ctx, bobby, "15.00", "Lunch"); err != nil {
		fmt.Println(err)
	}

	common.PrintHeader(fmt.Sprintf("ACTIVITY FEED: %s", bobby.Username()), cfg.Demo.RenderWidth)
	app.RenderFeed(bobby.RetrieveFeed())

	bobby.AddFriend(carol)

	summary := fmt.Sprintf("SUMMARY: %s balance %s, %s balance %s",
		bobby.Username(), bobby.Balance().StringFixed(2),
		carol.Username(), carol.Balance().StringFixed(2))
	common.PrintFooter(summary, cfg.Demo.RenderWidth)

	logger.Info("Payment demo completed",
		zap.String("bobby_balance", bobby.Balance().String()),
		zap.String("carol_balance", carol.Balance().String()))
}

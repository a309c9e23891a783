package main

//  ____                        ____             _
// |  _ \     ___      ___     / ___|    __ _   | |_     ___
// | |_) |   / _ \    / _ \   | |  _    / _` |  | __|   / _ \
// |  __/   | (_) |  |  __/   | |_| |  | (_| |  | |_   |  __/
// |_|       \___/    \___|    \____|   \__,_|   \__|   \___|
//  .  .  .  all  prompts  lead  through  the  gate

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"poegate/internal/bot"
	"poegate/internal/config"
)

const version = "0.2"

func main() {
	fmt.Printf("%s\n", bot.GetBanner(version))

	cmd := &cli.Command{
		Name:    "poegate",
		Usage:   "a discord gateway to poe.com",
		Version: version,
		Flags:   config.GetFlags(),
		Action:  runBot,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		// Print to stderr first in case logger isn't initialized
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		zap.S().Fatal(err)
	}
}

func runBot(ctx context.Context, c *cli.Command) error {
	cfg := config.NewConfiguration(c)

	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Bot.Verbose {
		cfg.PrintConfig()
	}

	return bot.Run(ctx, cfg)
}

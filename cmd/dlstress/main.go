package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirkon/errors"
	"github.com/sirkon/lfdlist/internal/stress"
	"github.com/sirkon/message"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		message.Critical(err)
	}
}

func newApp() *cli.App {
	def := stress.DefaultConfig()

	return &cli.App{
		Name:  "dlstress",
		Usage: "concurrent removal stress runs over a shared doubly linked list",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "nodes",
				Aliases: []string{"n"},
				Value:   def.Nodes,
				Usage:   "list size on every round",
				EnvVars: []string{"DLSTRESS_NODES"},
			},
			&cli.IntFlag{
				Name:    "threads",
				Aliases: []string{"t"},
				Value:   def.Threads,
				Usage:   "goroutines sharing the removals",
				EnvVars: []string{"DLSTRESS_THREADS"},
			},
			&cli.IntFlag{
				Name:    "remove",
				Aliases: []string{"r"},
				Value:   def.Remove,
				Usage:   "distinct nodes removed on every round",
				EnvVars: []string{"DLSTRESS_REMOVE"},
			},
			&cli.IntFlag{
				Name:    "rounds",
				Value:   def.Rounds,
				Usage:   "rounds to run",
				EnvVars: []string{"DLSTRESS_ROUNDS"},
			},
			&cli.IntFlag{
				Name:    "yield",
				Value:   def.YieldPercent,
				Usage:   "probability in percents to yield before a removal",
				EnvVars: []string{"DLSTRESS_YIELD"},
			},
			&cli.Int64Flag{
				Name:    "seed",
				Value:   def.Seed,
				Usage:   "random seed",
				EnvVars: []string{"DLSTRESS_SEED"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "report every passed round",
				EnvVars: []string{"DLSTRESS_VERBOSE"},
			},
		},
		Action: run,
	}
}

func run(cCtx *cli.Context) error {
	cfg := stress.Config{
		Nodes:        cCtx.Int("nodes"),
		Threads:      cCtx.Int("threads"),
		Remove:       cCtx.Int("remove"),
		Rounds:       cCtx.Int("rounds"),
		YieldPercent: cCtx.Int("yield"),
		Seed:         cCtx.Int64("seed"),
	}

	rep, err := stress.Run(cCtx.Context, cfg, &logger{verbose: cCtx.Bool("verbose")})
	if err != nil {
		return errors.Wrap(err, "stress run")
	}

	message.Infof(
		"run %s: %d rounds passed, %d removals, %d nodes left per round",
		rep.RunID,
		rep.Rounds,
		rep.Removed,
		rep.Left,
	)
	message.Infof(
		"contention: %d self claim retries, %d predecessor claim retries, %d restabilizations, %d successor waits",
		rep.Stats.SelfClaimRetries,
		rep.Stats.PredClaimRetries,
		rep.Stats.Restabilizations,
		rep.Stats.SuccessorWaits,
	)

	return nil
}

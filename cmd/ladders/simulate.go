package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/ladders/internal/ai"
	"github.com/vovakirdan/ladders/internal/config"
	"github.com/vovakirdan/ladders/internal/dice"
	"github.com/vovakirdan/ladders/internal/rooms"
	"github.com/vovakirdan/ladders/internal/storage"
)

var (
	flagGames    int
	flagDriver   string
	flagSimStore bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play the driver strategy against every computer level",
	Long: `Play full games between a driver seat and each computer level, then
report how often the computer won.

The driver rolls and moves through the same room service as a human; the
computer plays when the room is polled. Games run in memory unless --persist
is given.

Examples:
  ladders simulate
  ladders simulate --games 500 --driver hard --variant quick --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 100, "Games per computer level")
	simulateCmd.Flags().StringVar(&flagDriver, "driver", string(config.DifficultyNormal), "Strategy for the first seat")
	simulateCmd.Flags().StringVar(&flagVariant, "variant", "", "Board variant (default from config)")
	simulateCmd.Flags().BoolVar(&flagSimStore, "persist", false, "Store simulated rooms in the database")
}

// simStats accumulates results for one computer level.
type simStats struct {
	games, computerWins, moves int
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagGames <= 0 {
		return fmt.Errorf("--games must be positive")
	}
	driverLevel, err := config.ParseDifficulty(flagDriver)
	if err != nil {
		return fmt.Errorf("driver %q: %w", flagDriver, err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var svc *rooms.Service
	if flagSimStore {
		s, store, err := openService()
		if err != nil {
			return err
		}
		defer store.Close()
		svc = s
	} else {
		mem := storage.NewMemory()
		svc = rooms.NewService(appConfig, mem, dice.NewSource(seed), logger)
		svc.SetResultSaver(mem)
	}

	stats, err := simulateTiers(cmd.Context(), svc, appConfig, simOptions{
		seed:    seed,
		games:   flagGames,
		driver:  driverLevel,
		variant: flagVariant,
	})
	if err != nil {
		return err
	}

	th := defaultTheme()
	fmt.Println(th.Title.Render(fmt.Sprintf("Driver: %s, %d games per level, seed %d", driverLevel, flagGames, seed)))
	fmt.Println()
	fmt.Printf("  %-8s  %-13s  %s\n", "Computer", "Computer wins", "Avg moves")
	fmt.Printf("  %-8s  %-13s  %s\n", "--------", "-------------", "---------")
	for _, level := range config.Difficulties() {
		s := stats[level]
		rate := 100 * float64(s.computerWins) / float64(s.games)
		avg := float64(s.moves) / float64(s.games)
		fmt.Printf("  %-8s  %12.1f%%  %9.1f\n", level, rate, avg)
	}
	return nil
}

type simOptions struct {
	seed    int64
	games   int
	driver  config.Difficulty
	variant string
}

// simulateTiers plays opts.games matches against each computer level, one
// goroutine per level. Level i draws everything from seed+i, so a seed
// reproduces the whole run regardless of scheduling.
func simulateTiers(ctx context.Context, svc *rooms.Service, cfg config.Config, opts simOptions) (map[config.Difficulty]*simStats, error) {
	var mu sync.Mutex
	stats := make(map[config.Difficulty]*simStats)
	for _, level := range config.Difficulties() {
		stats[level] = &simStats{}
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, level := range config.Difficulties() {
		src := dice.NewSource(opts.seed + int64(i))
		tier := svc.WithSource(src)
		driver, err := ai.New(cfg, opts.driver, src)
		if err != nil {
			return nil, err
		}

		g.Go(func() error {
			for range opts.games {
				st, err := rooms.PlayMatch(gctx, tier, opts.variant, driver, string(level))
				if err != nil {
					return fmt.Errorf("%s: %w", level, err)
				}
				mu.Lock()
				s := stats[level]
				s.games++
				s.moves += st.Moves
				if *st.Winner == 1 {
					s.computerWins++
				}
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

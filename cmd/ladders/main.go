// ladders is a two-seat Snakes and Ladders engine driven from the command line.
//
// Usage:
//
//	ladders create [--variant quick]     - Open a room and print its code and your token
//	ladders join <room>                  - Take the second seat
//	ladders vs-computer <room> <level>   - Seat a computer opponent
//	ladders roll <room> --token <t>      - Roll the die
//	ladders move <room> --token <t> -p 1 - Move a pawn by the pending roll
//	ladders state <room>                 - Show a room (plays computer turns)
//	ladders board <room>                 - Draw the board
//	ladders rooms                        - List rooms
//	ladders history                      - Show finished games
//	ladders simulate                     - Pit strategies against each other
//
// Global flags:
//
//	--db <path>        - Database path (default from config: ~/.ladders/ladders.db)
//	--config <path>    - Config file
//	--seed <value>     - RNG seed for reproducible boards and dice
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ladders/internal/config"
	"github.com/vovakirdan/ladders/internal/dice"
	"github.com/vovakirdan/ladders/internal/rooms"
	"github.com/vovakirdan/ladders/internal/storage"
)

var (
	// Global flags
	flagDBPath   string
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

// Loaded once in the root PersistentPreRunE.
var (
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ladders",
	Short: "Snakes and Ladders rooms for two seats",
	Long: `Ladders runs two-seat Snakes and Ladders games stored in a local database.
Each player moves several pawns; all of them must land exactly on 100 to win.

Available commands:
  create       - Open a room
  join         - Join a room as the second player
  vs-computer  - Play against the computer
  roll, move   - Take your turn
  state        - Show a room (the computer plays when it is its turn)
  board        - Draw the board
  rooms        - List rooms
  history      - Finished games
  simulate     - Run computer tiers against each other

Examples:
  ladders create --variant quick
  ladders vs-computer K3QF7A hard
  ladders roll K3QF7A --token <token>
  ladders move K3QF7A --token <token> --pawn 2
  ladders state K3QF7A`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to rooms database (env LADDERS_DB)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (env LADDERS_CONFIG)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error (env LADDERS_LOG_LEVEL)")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(vsComputerCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(roomsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup applies environment defaults, then loads config and the logger.
func setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	envDefault(flags.Changed("db"), &flagDBPath, "LADDERS_DB")
	envDefault(flags.Changed("config"), &flagConfig, "LADDERS_CONFIG")
	envDefault(flags.Changed("log-level"), &flagLogLevel, "LADDERS_LOG_LEVEL")

	var err error
	logger, err = newLogger(flagLogLevel)
	if err != nil {
		return err
	}

	appConfig, err = config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagDBPath == "" {
		flagDBPath = appConfig.Store.Path
	}
	return nil
}

func envDefault(changed bool, dst *string, key string) {
	if changed {
		return
	}
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// newLogger writes text to a terminal and JSON everywhere else.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ladders",
		Level:           lvl,
	})
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		l.SetFormatter(log.JSONFormatter)
	}
	return l, nil
}

// openService opens the database and wires the room service to it.
// The caller closes the returned store.
func openService() (*rooms.Service, *storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, nil, err
	}
	svc := rooms.NewService(appConfig, store, dice.NewSource(flagSeed), logger)
	svc.SetResultSaver(store)
	return svc, store, nil
}

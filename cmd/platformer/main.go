// platformer is a tile-based platformer played in the terminal.
//
// Usage:
//
//	platformer list              - List available levels
//	platformer play [level]      - Play the campaign, or start at a level
//	platformer menu              - Pick levels interactively
//	platformer run <level>       - Simulate a level headlessly from scripted input
//	platformer scores [level]    - Show high scores and level results
//	platformer serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.platformer/scores.db)
//	--config <path>       - Use a custom physics/campaign config
//	--difficulty <preset> - easy, normal or hard
//	--levels <dir>        - Load extra levels from a directory
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagLogLevel   string

	logger  *log.Logger
	gameCfg config.PlatformerConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - Jump, collect coins, avoid lava",
	Long: `TUI Platformer is a tile-based platform game for the terminal.

Collect every coin in a level to clear it. Touching lava or a monster
costs a life.

Available commands:
  list     - Show all levels
  play     - Play the campaign or a single level
  menu     - Interactive level picker
  run      - Simulate a level without a terminal UI
  scores   - View high scores and level results
  serve    - Start SSH server for remote play

Examples:
  platformer list
  platformer play
  platformer play 02-stairs --difficulty easy
  platformer run 01-warm-up --input "right:90,jump:1,right:60"
  platformer serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory with extra level YAML files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger, loads configuration and fills the level catalog.
func setup(_ *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	gameCfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(&gameCfg, preset)
	}
	logger.Debug("config loaded",
		"lives", gameCfg.Campaign.Lives,
		"end_delay", gameCfg.Campaign.EndDelayDuration(),
		"gravity", gameCfg.Physics.Gravity,
	)

	if err := levels.RegisterDefaults(); err != nil {
		return err
	}
	if flagLevels != "" {
		defs, err := levels.NewLoader(flagLevels).LoadAll()
		if err != nil {
			return err
		}
		if err := levels.Register(defs); err != nil {
			logger.Warn("some levels were skipped", "err", err)
		}
		logger.Debug("loaded extra levels", "dir", flagLevels, "count", len(defs))
	}
	return nil
}

// newGame builds a campaign, optionally starting at levelID.
// store may be nil.
func newGame(levelID string, store *storage.Store) registry.Game {
	opts := []platformer.Option{platformer.WithLogger(logger)}
	if levelID != "" {
		opts = append(opts, platformer.WithStartLevel(levelID))
	}
	if store != nil {
		opts = append(opts, platformer.WithResultSink(store))
	}
	return platformer.New(gameCfg, opts...)
}

// openStore opens the scores database, or returns nil if it cannot.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// resolveLevel finds a level by catalog ID, or loads and registers it when
// arg is a level file.
func resolveLevel(arg string) (registry.Entry, error) {
	if e, err := registry.Lookup(arg); err == nil {
		return e, nil
	}
	if !slices.Contains(levels.FormatExtensions(), filepath.Ext(arg)) {
		return registry.Entry{}, fmt.Errorf("unknown level %q (run 'platformer list' to see available levels)", arg)
	}

	def, err := levels.NewLoader(filepath.Dir(arg)).LoadFile(arg)
	if err != nil {
		return registry.Entry{}, err
	}
	if err := levels.Register([]levels.Def{def}); err != nil {
		return registry.Entry{}, err
	}
	logger.Debug("loaded level file", "id", def.ID, "file", arg, "size", fmt.Sprintf("%dx%d", def.Width, def.Height))
	return def.Entry(), nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagInput  string
	flagTicks  int
	flagExpect string
)

var runCmd = &cobra.Command{
	Use:   "run <level|file.yaml>",
	Short: "Simulate a level without a terminal UI",
	Long: `Play a level headlessly from scripted input and print the outcome.

Input is a comma-separated list of action[+action]:ticks steps. Actions
are left, right, jump and none. Inputs are held for the given number of
ticks; after the script ends nothing is held.

The simulation stops when the level is won or lost, or after --ticks
ticks (default: the length of the script). With --expect, the command
fails unless the level ends with that status.

Examples:
  platformer run 01-warm-up --input "right:120"
  platformer run 02-stairs --input "right:20,right+jump:1,right:40" --seed 7
  platformer run 01-warm-up --input "right:300" --expect won`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagInput, "input", "", "Scripted input, e.g. right:30,jump:1,none:20")
	runCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Ticks to simulate (0 = length of input)")
	runCmd.Flags().StringVar(&flagExpect, "expect", "", "Fail unless the final status is this (playing, won, lost)")
}

func runRun(_ *cobra.Command, args []string) error {
	entry, err := resolveLevel(args[0])
	if err != nil {
		return err
	}

	sc, err := parseScript(flagInput)
	if err != nil {
		return err
	}

	state, err := simulate(entry.Plan, gameCfg.Physics.Sim(), flagSeed, flagFPS, sc, flagTicks)
	if err != nil {
		return fmt.Errorf("level %s: %w", entry.ID, err)
	}

	fmt.Fprintf(os.Stdout, "level:  %s\n", entry.ID)
	fmt.Fprintf(os.Stdout, "status: %s\n", state.Status())
	fmt.Fprintf(os.Stdout, "ticks:  %d\n", state.Tick())
	fmt.Fprintf(os.Stdout, "coins:  %d left\n", state.Coins())
	if p, ok := state.Player(); ok {
		fmt.Fprintf(os.Stdout, "player: %s\n", p.Pos())
	}

	logger.Info("simulation finished", "level", entry.ID, "status", state.Status(), "ticks", state.Tick())

	if flagExpect != "" && flagExpect != state.Status().String() {
		return fmt.Errorf("expected status %s, got %s", flagExpect, state.Status())
	}
	return nil
}

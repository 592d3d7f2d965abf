package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores and level results",
	Long: `Without arguments, display the top 10 campaign scores and a summary
of every level played. With a level ID, display that level's results.

Examples:
  platformer scores
  platformer scores 02-stairs
  platformer scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var flagClear bool

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all campaign high scores")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(platformer.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("High scores cleared.")
		return
	}

	if len(args) == 1 {
		if err := printLevelStats(store, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	if err := printCampaignScores(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printCampaignScores(store *storage.Store) error {
	scores, err := store.TopScores(platformer.GameID, 10)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Campaign")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		highScore, err := store.HighScore(platformer.GameID)
		if err == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", highScore)
		}
	}

	stats, err := store.AllLevelStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Levels")
	fmt.Println()
	fmt.Printf("  %-16s  %6s  %4s  %4s  %6s\n", "Level", "Played", "Won", "Lost", "Best")
	for _, e := range registry.List() {
		st, ok := stats[e.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-16s  %6d  %4d  %4d  %6s\n", e.ID, st.Attempts, st.Wins, st.Losses, bestTicks(st))
	}
	return nil
}

func printLevelStats(store *storage.Store, levelID string) error {
	title := levelID
	if e, err := registry.Lookup(levelID); err == nil {
		title = e.Name
	}

	st, err := store.LevelStats(levelID)
	if err != nil {
		return err
	}

	fmt.Printf("Results - %s\n", title)
	fmt.Println()

	if st.Attempts == 0 {
		fmt.Println("Not played yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %s' to give it a try!\n", levelID)
		return nil
	}

	fmt.Printf("  Played:      %d\n", st.Attempts)
	fmt.Printf("  Won:         %d\n", st.Wins)
	fmt.Printf("  Lost:        %d\n", st.Losses)
	fmt.Printf("  Fastest win: %s ticks\n", bestTicks(st))
	fmt.Printf("  Coins:       %d\n", st.Coins)
	fmt.Printf("  Last played: %s\n", st.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}

func bestTicks(st *storage.LevelStats) string {
	if st.Wins == 0 {
		return "-"
	}
	return fmt.Sprint(st.BestTicks)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordfall/internal/storage"
	"github.com/vovakirdan/wordfall/internal/words"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored word lists",
	Long: `Shows the built-in word list and every list stored in the database,
with the number of words in each tier.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening word list database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	lists, err := store.Lists()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading word lists: %v\n", err)
		return
	}

	// Calculate column widths
	maxNameLen := len("(built-in)")
	for _, l := range lists {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Printf("  %-*s  %6s  %5s  %6s  %5s  %s\n", maxNameLen, "Name", "Words", "Easy", "Medium", "Hard", "Created")
	fmt.Printf("  %-*s  %6s  %5s  %6s  %5s  %s\n", maxNameLen, "----", "-----", "----", "------", "----", "-------")

	printRow := func(name string, list []string, created string) {
		catalog := words.NewCatalog(list, words.DefaultTiers())
		c := catalog.Counts()
		fmt.Printf("  %-*s  %6d  %5d  %6d  %5d  %s\n", maxNameLen, name, catalog.Size(),
			c[words.TierEasy], c[words.TierMedium], c[words.TierHard], created)
	}

	printRow("(built-in)", words.Default(), "-")
	for _, l := range lists {
		list, err := store.Words(l.Name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading list %q: %v\n", l.Name, err)
			continue
		}
		printRow(l.Name, list, l.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'wordfall play --list <name>' to play with a stored list.")
}

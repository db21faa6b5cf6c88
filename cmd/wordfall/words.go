package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordfall/internal/storage"
	"github.com/vovakirdan/wordfall/internal/words"
)

var flagTier string

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage stored word lists",
	Long: `Import, show or remove named word lists in the database.

Word files are JSON arrays, YAML sequences, or YAML/JSON objects with a
"words" key.

Examples:
  wordfall words import cebuano ./cebuano.json
  wordfall words show cebuano --tier hard
  wordfall words remove cebuano`,
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <name> <file>",
	Short: "Store a word list, replacing any list with the same name",
	Args:  cobra.ExactArgs(2),
	Run:   runWordsImport,
}

var wordsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a stored word list",
	Args:  cobra.ExactArgs(1),
	Run:   runWordsShow,
}

var wordsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a stored word list",
	Args:  cobra.ExactArgs(1),
	Run:   runWordsRemove,
}

func init() {
	wordsShowCmd.Flags().StringVar(&flagTier, "tier", "", "Only show one tier: easy, medium, hard")

	wordsCmd.AddCommand(wordsImportCmd)
	wordsCmd.AddCommand(wordsShowCmd)
	wordsCmd.AddCommand(wordsRemoveCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening word list database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runWordsImport(_ *cobra.Command, args []string) {
	name, path := args[0], args[1]

	list, err := words.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	n, err := store.ImportWords(name, list)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	c := words.NewCatalog(list, words.DefaultTiers()).Counts()
	fmt.Printf("Imported %d words into %q (easy %d, medium %d, hard %d).\n",
		n, name, c[words.TierEasy], c[words.TierMedium], c[words.TierHard])
}

func runWordsShow(_ *cobra.Command, args []string) {
	name := args[0]

	store := openStore()
	defer store.Close()

	list, err := store.Words(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	if flagTier != "" {
		tier, err := words.ParseTier(flagTier)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		list = words.NewCatalog(list, words.DefaultTiers()).Words(tier)
	}

	for _, w := range list {
		fmt.Println(w)
	}
}

func runWordsRemove(_ *cobra.Command, args []string) {
	name := args[0]

	store := openStore()
	defer store.Close()

	if err := store.RemoveList(name); err != nil {
		if errors.Is(err, storage.ErrListNotFound) {
			fmt.Fprintf(os.Stderr, "No word list named %q.\n", name)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Removed %q.\n", name)
}

// wordfall is a terminal typing game: words ride down on meteors and
// typing one fires an interceptor at it.
//
// Usage:
//
//	wordfall play                       - Play with the built-in word list
//	wordfall play --list <name>         - Play with a stored word list
//	wordfall list                       - Show stored word lists
//	wordfall words import <name> <file> - Store a word list from JSON or YAML
//	wordfall words show <name>          - Print a stored word list
//	wordfall words remove <name>        - Delete a stored word list
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.wordfall/words.db)
//	--log <path>     - Set log file path (default: ~/.wordfall/wordfall.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordfall",
	Short: "Wordfall - type the words before they hit the ground",
	Long: `Wordfall is a terminal typing game. Words fall toward the ground on
meteors; type a word and press Enter to launch an interceptor at it.
Every word that lands costs a life.

Available commands:
  play     - Start a game
  list     - Show stored word lists
  words    - Import, show or remove word lists

Examples:
  wordfall play
  wordfall play --difficulty hard
  wordfall words import cebuano ./cebuano.yaml
  wordfall play --list cebuano`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordfall/words.db", "Path to word list database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.wordfall/wordfall.log", "Path to log file (empty = no log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(wordsCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// openLogger opens the log file for appending. The game owns the terminal,
// so logs never go to stderr; without a usable path they are discarded.
func openLogger(path, level string) (*log.Logger, func()) {
	discard := log.New(io.Discard)
	noop := func() {}

	path, err := expandHome(path)
	if err != nil || path == "" {
		return discard, noop
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discard, noop
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard, noop
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordfall",
		Level:           lvl,
	})
	return logger, func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/games/wordfall"
	"github.com/vovakirdan/wordfall/internal/platform/audio"
	"github.com/vovakirdan/wordfall/internal/platform/tui"
	"github.com/vovakirdan/wordfall/internal/storage"
	"github.com/vovakirdan/wordfall/internal/words"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWords      string
	flagList       string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play wordfall",
	Long: `Start a game of wordfall.

Controls:
  Letters    - Type a word
  Enter      - Fire at the typed word
  Backspace  - Erase
  Esc        - Pause / resume
  1 2 3      - Pick a word tier (while paused)
  Enter/R    - Play again (after game over)
  Q          - Quit (while paused)
  Ctrl+C     - Quit

Difficulty options:
  easy   - Short words, lowest starting speed
  normal - Medium words, starts at 30% difficulty
  hard   - Long words, starts at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  wordfall play
  wordfall play --difficulty hard
  wordfall play --words ./my-words.json
  wordfall play --list cebuano --mute
  wordfall play --config ./wordfall.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagWords, "words", "", "Word list file (JSON or YAML)")
	playCmd.Flags().StringVar(&flagList, "list", "", "Name of a stored word list")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagWords != "" && flagList != "" {
		return errors.New("use either --words or --list, not both")
	}

	logger, closeLog := openLogger(flagLogPath, flagLogLevel)
	defer closeLog()

	wordfall.SetConfigPath(flagConfig)
	wordfall.SetDifficultyPreset(flagDifficulty)

	list := loadWordList(logger)
	game := wordfall.New(list, logger)

	player := audio.NewPlayer(flagMute, logger)
	//nolint:errcheck // Logged by the player; the game runs without sound
	player.Init()
	defer player.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, player, logger, cfg); err != nil {
		return err
	}

	st := game.State()
	fmt.Printf("Score: %d  Level: %d\n", st.Score, st.Level)
	return nil
}

// loadWordList picks the word source from the flags. Unreadable sources
// leave the game with no words rather than aborting.
func loadWordList(logger *log.Logger) []string {
	if flagList == "" {
		return words.LoadOrEmpty(flagWords, logger)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("word list database unavailable, continuing with no words", "db", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open word list database: %v\n", err)
		return nil
	}
	defer store.Close()

	list, err := store.Words(flagList)
	if err != nil {
		logger.Warn("stored word list unavailable, continuing with no words", "list", flagList, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	logger.Info("loaded stored word list", "list", flagList, "words", len(list))
	return list
}

package words

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed default_words.json
var defaultWordsJSON []byte

// listFile is the mapping form of a word file: `words: [...]`.
type listFile struct {
	Words []string `yaml:"words"`
}

// Parse decodes a word list. Accepts a JSON array, a YAML sequence,
// or a mapping with a "words" key.
func Parse(data []byte) ([]string, error) {
	var list []string
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var file listFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("words: cannot parse word list: %w", err)
	}
	return file.Words, nil
}

// LoadFile reads and parses a word list file.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot read %s: %w", path, err)
	}
	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return list, nil
}

// Default returns the embedded default word list.
func Default() []string {
	list, err := Parse(defaultWordsJSON)
	if err != nil {
		return nil
	}
	return list
}

// LoadOrEmpty reads a word list, degrading to an empty list with a warning
// when the file is missing or corrupt. An empty path yields the default list.
func LoadOrEmpty(path string, logger *log.Logger) []string {
	if path == "" {
		return Default()
	}
	list, err := LoadFile(path)
	if err != nil {
		if logger != nil {
			logger.Warn("word list unavailable, continuing with no words", "path", path, "err", err)
		}
		return nil
	}
	return list
}

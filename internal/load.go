// Package internal loads crossword structure and word-list files into the
// inputs the solver consumes.
package internal

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ParseStructure converts structure lines into an occupancy matrix: '_'
// marks a fillable cell, anything else is blocked. Lines shorter than the
// widest line are padded with blocked cells.
func ParseStructure(lines []string) ([][]bool, error) {
	if len(lines) == 0 {
		return nil, errors.New("structure is empty")
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	structure := make([][]bool, len(lines))
	for i, line := range lines {
		structure[i] = make([]bool, width)
		for j, r := range line {
			structure[i][j] = r == '_'
		}
	}
	return structure, nil
}

// LoadStructure reads a structure file and parses it with ParseStructure.
func LoadStructure(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ParseStructure(lines)
}

// LoadWords reads a word list, one word per line. Words are trimmed and
// lower-cased, '#' comment lines are skipped, and duplicates are dropped.
// A word containing anything but letters is an error.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seen := make(map[string]bool)
	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		for _, r := range word {
			if r < 'a' || r > 'z' {
				return nil, fmt.Errorf("word %s contains non-letter character %q", word, r)
			}
		}
		if seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	return words, scanner.Err()
}

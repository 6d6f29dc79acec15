package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"

	"github.com/robalobadob/wordscramble/internal/game"
)

//go:embed start.txt dictionary.txt resorts.json sql/*.sql
var FS embed.FS

// ReadLines returns the non-blank lines of r, each passed through game.Normalize.
// Lines starting with '#' are comments.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, game.Normalize(s))
	}
	return out, sc.Err()
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// StartWords returns the bundled root word list.
func StartWords() ([]string, error) {
	return readLines("start.txt")
}

// DictionaryWords returns the bundled English word list.
func DictionaryWords() ([]string, error) {
	return readLines("dictionary.txt")
}

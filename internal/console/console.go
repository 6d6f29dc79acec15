// internal/console/console.go
//
// Line-oriented host for a game.Game.
// Each input line is a submitted word; two commands are recognized:
//   :restart  start a new session with a new root word
//   :quit     stop (EOF does the same)
//
// Rejections are printed as "Title: message", accepted words as the new
// score followed by the used words (most recent first).

package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordscramble/internal/game"
)

const (
	cmdRestart = ":restart"
	cmdQuit    = ":quit"
)

// Run starts a session on g and plays it from in until :quit, EOF or ctx is done.
// The logger is taken from ctx (zerolog.Ctx). Cancelling ctx returns promptly even
// while a read is pending; the reader goroutine exits on its next line or EOF.
func Run(ctx context.Context, in io.Reader, out io.Writer, g *game.Game) error {
	logger := zerolog.Ctx(ctx)

	s := g.Start()
	logger.Info().Str("session_id", s.ID).Str("root", s.RootWord).Msg("game started")
	printRoot(out, s)

	lines, errc := readLines(ctx, in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, "> ")

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				return nil
			}
			line = l
		}

		switch strings.TrimSpace(line) {
		case cmdQuit:
			return nil
		case cmdRestart:
			s = g.Start()
			logger.Info().Str("session_id", s.ID).Str("root", s.RootWord).Msg("game restarted")
			printRoot(out, s)
			continue
		}

		res, err := g.Submit(line)
		if err != nil {
			return err
		}
		s, _ = g.Session()
		printResult(out, res, s)
	}
}

// readLines scans in on its own goroutine. lines is closed at EOF or on a read
// error, after the error (or nil) has been sent on errc.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}

func printRoot(out io.Writer, s game.Session) {
	fmt.Fprintf(out, "Root word: %s  (%s for a new word, %s to leave)\n", s.RootWord, cmdRestart, cmdQuit)
}

func printResult(out io.Writer, res game.Result, s game.Session) {
	switch res.Outcome {
	case game.OutcomeAccepted:
		fmt.Fprintf(out, "+%d  score %d  [%s]\n", res.ScoreDelta, s.Score, strings.Join(s.UsedWords, " "))
	case game.OutcomeEmpty:
		// nothing to say
	default:
		fmt.Fprintf(out, "%s: %s\n", res.Title(), res.Message())
	}
}

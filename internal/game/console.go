package game

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/samdwyer/mazecrawl/internal/ui"
)

// Status returns the status lines shown under the maze.
func (s *Session) Status() []string {
	return []string{
		fmt.Sprintf("Life: %d/%d  Monsters: %d  Turn: %d",
			s.Player.GetLife(), s.Player.MaxLife, s.Monsters.Len(), s.Turn),
		s.LastMessage,
	}
}

// RunConsole plays the session on a line-oriented console: the maze is
// printed, then one token is read per turn. End of input ends the session
// like the exit token.
func RunConsole(ctx context.Context, s *Session, in io.Reader, out io.Writer) (Outcome, error) {
	scanner := bufio.NewScanner(in)

	for !s.Outcome().IsTerminal() {
		if err := ctx.Err(); err != nil {
			return s.Outcome(), err
		}

		fmt.Fprint(out, ui.Render(s.Grid))
		for _, line := range s.Status() {
			fmt.Fprintln(out, line)
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return s.Outcome(), fmt.Errorf("read command: %w", err)
			}
			s.Step(ctx, CommandExit)
			break
		}
		s.Apply(ctx, scanner.Text())
	}

	fmt.Fprint(out, ui.Render(s.Grid))
	fmt.Fprintln(out, s.LastMessage)
	return s.Outcome(), nil
}

package game

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazecrawl/internal/ui"
)

// Game runs a session on a full-screen tcell terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	logger   *log.Logger
	running  bool
}

// New creates a terminal game for the session.
func New(screen *ui.Screen, renderer *ui.Renderer, session *Session, logger *log.Logger) *Game {
	return &Game{
		screen:   screen,
		renderer: renderer,
		session:  session,
		logger:   logger,
		running:  true,
	}
}

// Run executes the main game loop until the session ends or the player
// quits. After a win or loss the final board stays up until a key is pressed.
func (g *Game) Run(ctx context.Context) (Outcome, error) {
	for g.running {
		if err := ctx.Err(); err != nil {
			return g.session.Outcome(), err
		}

		g.renderer.Render(g.session.Grid, g.session.Status()...)

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	outcome := g.session.Outcome()
	if outcome == OutcomeWon || outcome == OutcomeLost {
		g.renderer.Render(g.session.Grid, append(g.session.Status(), "Press any key to leave.")...)
		g.waitForKey()
	}
	return outcome, nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		token := ui.KeyToken(ev)
		if token == "" {
			return
		}
		result := g.session.Apply(ctx, token)
		if g.logger != nil {
			g.logger.Debug("turn", "token", token, "moved", result.Move.Moved, "outcome", result.Outcome)
		}
		if result.Outcome.IsTerminal() {
			g.running = false
		}
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// waitForKey blocks until a key is pressed or the screen closes.
func (g *Game) waitForKey() {
	for {
		switch g.screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		}
	}
}

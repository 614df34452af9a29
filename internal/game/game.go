// Package game runs the terminal front end: input, the frame loop and wiring
// between the session and its listeners.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/memoryflash/internal/audio"
	"github.com/samdwyer/memoryflash/internal/gamedata"
	"github.com/samdwyer/memoryflash/internal/grid"
	"github.com/samdwyer/memoryflash/internal/notify"
	"github.com/samdwyer/memoryflash/internal/session"
	"github.com/samdwyer/memoryflash/internal/spectate"
	"github.com/samdwyer/memoryflash/internal/telemetry"
	"github.com/samdwyer/memoryflash/internal/ui"
)

const (
	frameInterval   = 16 * time.Millisecond // ~60 FPS
	shutdownTimeout = 2 * time.Second
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	layout   ui.Layout

	session  *session.Session
	notes    *notify.Center
	pulses   *ui.Pulses
	audio    *audio.Player
	spectate *spectate.Server

	clock     func() time.Time
	cursor    int  // Box under the keyboard cursor, 0 for none
	mouseDown bool // Left button held on the previous mouse event
	dirty     bool // Session changed since the last publish
	running   bool
	closed    bool
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := newGame(cfg, screen, time.Now)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing to an existing tcell screen.
func NewWithScreen(cfg Config, s tcell.Screen) (*Game, error) {
	screen, err := ui.NewScreenFrom(s)
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return newGame(cfg, screen, time.Now)
}

func newGame(cfg Config, screen *ui.Screen, clock func() time.Time) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rules, err := gamedata.LoadRules()
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}

	player := cfg.PlayerName
	if player == "" {
		player = rules.Leaderboard.PlayerName
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	notes := notify.NewCenter(rules.NotificationTTL(), clock)
	s, err := session.New(session.Config{
		Grid:        grid.New(cfg.Columns, cfg.Rows, palette.Colors()),
		Rules:       rules.SessionRules(),
		PlayerName:  player,
		Leaderboard: rules.NewLeaderboard(),
		Rand:        rng,
		Start:       clock(),
		Notifier:    notes,
	})
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		layout:   ui.NewLayout(cfg.Columns, cfg.Rows),
		session:  s,
		notes:    notes,
		pulses:   ui.NewPulses(),
		audio:    audio.New(cfg.Sound),
		clock:    clock,
		dirty:    true,
		running:  true,
	}

	s.Subscribe(session.ListenerFunc(g.handleSessionEvent))
	s.Subscribe(g.audio)
	return g, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("session.id", g.session.ID()),
		attribute.Int("grid.columns", g.cfg.Columns),
		attribute.Int("grid.rows", g.cfg.Rows),
		attribute.Bool("sound", g.audio.Enabled()),
	)
	if g.cfg.SpectateAddr != "" {
		srv := spectate.New()
		addr, err := srv.Listen(g.cfg.SpectateAddr)
		if err != nil {
			// Spectating is optional; the game still works.
			log.WithError(err).Warn("spectator feed disabled")
			initSpan.SetAttributes(attribute.String("spectate.error", err.Error()))
		} else {
			g.spectate = srv
			initSpan.SetAttributes(attribute.String("spectate.addr", addr.String()))
			log.WithField("addr", addr.String()).Info("spectator feed listening")
		}
	}
	initSpan.End()

	log.WithField("session", g.session.ID()).Info("game started")

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	last := g.clock()
	g.render()
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev := <-events:
			g.handleEvent(ctx, ev)
		case <-ticker.C:
			now := g.clock()
			g.update(ctx, now, now.Sub(last))
			last = now
			g.render()
		}
	}

	log.WithFields(log.Fields{
		"session": g.session.ID(),
		"level":   g.session.Progress().Level,
		"high":    g.session.Progress().HighScore,
	}).Info("game finished")
	return nil
}

// update advances everything time based to now.
func (g *Game) update(ctx context.Context, now time.Time, dt time.Duration) {
	g.session.Tick(ctx, now)
	g.notes.Prune()
	g.pulses.Update(dt)
	g.publish()
}

// publish sends a fresh snapshot to spectators when the session changed.
func (g *Game) publish() {
	if !g.dirty || g.spectate == nil {
		return
	}
	g.dirty = false
	if err := g.spectate.Publish(g.session.Snapshot()); err != nil {
		log.WithError(err).Warn("publish snapshot")
	}
}

func (g *Game) render() {
	g.renderer.Render(ui.Frame{
		Snapshot:      g.session.Snapshot(),
		Notifications: g.notes.Visible(),
		Cursor:        g.cursor,
		Pulses:        g.pulses,
	})
}

// handleSessionEvent keeps presentation state in step with the session.
func (g *Game) handleSessionEvent(_ context.Context, ev session.Event) {
	g.dirty = true
	switch ev.Kind {
	case session.EventBoxActivated, session.EventBoxSelected:
		g.pulses.Trigger(ev.Box, ui.DefaultPulse)
	case session.EventReset:
		g.pulses.Clear()
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.running = false

	g.session.Close()
	g.audio.Close()
	if g.spectate != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := g.spectate.Shutdown(ctx); err != nil {
			log.WithError(err).Warn("spectator shutdown")
		}
	}
	if g.screen != nil {
		g.screen.Close()
	}
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridrun/lightcycles/internal/core"
	"github.com/gridrun/lightcycles/internal/game"
	"github.com/gridrun/lightcycles/internal/storage"
)

// Rows reserved above and below the arena box.
const (
	hudHeight = 2
	footerH   = 1
)

// Model is the Bubble Tea model driving a match session. Rendering runs
// at the configured FPS while simulation ticks are admitted through the
// engine's fixed-interval gate, so a fast terminal never speeds the game
// up and a stalled one never triggers a catch-up burst.
type Model struct {
	engine   *game.Engine
	gate     *game.Gate
	screen   *core.Screen
	store    *storage.Store
	keymap   KeyMap
	config   core.RuntimeConfig
	mode     string
	saved    bool // match record saved for the current game over
	quitting bool
}

// NewModel creates a match session model. store may be nil; match
// results are then simply not persisted.
func NewModel(engine *game.Engine, store *storage.Store, keymap KeyMap, cfg core.RuntimeConfig, mode string) Model {
	return Model{
		engine: engine,
		gate:   game.NewGate(engine.TickInterval()),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		keymap: keymap,
		config: cfg,
		mode:   mode,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if id, turn, ok := m.keymap.MapSteering(msg); ok {
		m.engine.SubmitTurn(id, turn)
		return m, nil
	}

	switch MapAction(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionConfirm:
		if m.engine.State() == game.StateMenu {
			m.engine.StartMatch()
			m.gate.Reset()
			m.saved = false
		}

	case core.ActionRestart:
		if m.engine.State() == game.StateGameOver {
			m.engine.Restart()
			m.gate.Reset()
			m.saved = false
		}

	case core.ActionPause:
		m.engine.TogglePause()
		if m.engine.State() == game.StatePlaying {
			// Resuming must not burn through the paused backlog.
			m.gate.Reset()
		}

	case core.ActionBack:
		switch m.engine.State() {
		case game.StatePlaying, game.StatePaused, game.StateGameOver:
			m.engine.Abort()
		default:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleFrame advances the simulation when the gate admits a tick and
// always schedules the next frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.engine.State() == game.StatePlaying && m.gate.Admit(now) {
		events := m.engine.Step()
		for _, ev := range events {
			if ended, ok := ev.(game.MatchEndedEvent); ok {
				m.saveResult(ended)
			}
		}
	}

	return m, frameCmd(m.config.FPS)
}

// saveResult persists the finished match once per game over.
func (m *Model) saveResult(ended game.MatchEndedEvent) {
	if m.saved || m.store == nil {
		return
	}
	rec := storage.MatchRecord{
		Mode:   m.mode,
		Winner: ended.Winner,
		Draw:   ended.Draw,
		Score1: ended.Scores[core.Player1],
		Score2: ended.Scores[core.Player2],
		Ticks:  ended.Ticks,
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveMatch(rec)
	m.saved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(engine *game.Engine, store *storage.Store, keymap KeyMap, cfg core.RuntimeConfig, mode string) error {
	model := NewModel(engine, store, keymap, cfg, mode)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

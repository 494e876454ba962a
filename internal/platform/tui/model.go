package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monkeytrain/internal/audio"
	"github.com/vovakirdan/monkeytrain/internal/config"
	"github.com/vovakirdan/monkeytrain/internal/core"
	"github.com/vovakirdan/monkeytrain/internal/games/monkeytrain"
	"github.com/vovakirdan/monkeytrain/internal/storage"
	"github.com/vovakirdan/monkeytrain/internal/synth"
)

// FooterHeight is the number of rows below the playfield used by the key help.
const FooterHeight = monkeytrain.FooterRows

// View identifies the active screen.
type View int

const (
	ViewStart View = iota
	ViewHelp
	ViewPlay
)

// Options wires the model to its collaborators.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Player  audio.Player   // nil plays nothing
	Store   *storage.Store // nil keeps no history
	Logger  *log.Logger    // nil logs nothing
}

// Model is the Bubble Tea model hosting the game.
type Model struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	game    *monkeytrain.Game
	screen  *core.Screen
	player  audio.Player
	store   *storage.Store
	logger  *log.Logger

	keys       KeyMap
	footer     help.Model
	menu       *StartMenu
	helpScreen *HelpScreen
	theme      Theme

	view     View
	dark     bool
	paused   bool
	banner   *Banner
	quitting bool
}

// NewModel creates the host model. The game is idle until Start Game is chosen.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game, err := monkeytrain.New(monkeytrain.Options{
		Layout:     opts.Config.Layout,
		Difficulty: opts.Config.Difficulty,
		ClickFlash: opts.Config.Feedback.ClickFlash,
	})
	if err != nil {
		return Model{}, err
	}
	game.Reset(cfg)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.OnTransition(func(from, to monkeytrain.Phase) {
		logger.Debug("phase", "from", from, "to", to, "level", game.Level())
	})

	player := opts.Player
	if player == nil {
		player = &audio.Silent{}
	}

	keys := DefaultKeyMap()
	return Model{
		cfg:        opts.Config,
		runtime:    cfg,
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		player:     player,
		store:      opts.Store,
		logger:     logger,
		keys:       keys,
		footer:     help.New(),
		menu:       NewStartMenu(cfg.ScreenW, cfg.ScreenH),
		helpScreen: NewHelpScreen(game.Policy(), keys),
		theme:      ThemeFor(opts.Config.Theme.Dark),
		dark:       opts.Config.Theme.Dark,
	}, nil
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	// Global keys
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionToggleTheme:
		m.setDark(!m.dark)
		return m, nil
	case core.ActionToggleSound:
		m.player.SetMuted(!m.player.Muted())
		m.logger.Info("sound toggled", "muted", m.player.Muted())
		return m, nil
	}

	switch m.view {
	case ViewStart:
		switch action {
		case core.ActionUp:
			m.menu.Move(-1)
		case core.ActionDown:
			m.menu.Move(1)
		case core.ActionConfirm:
			m.activate(m.menu.Cursor())
		}

	case ViewHelp:
		if action == core.ActionBack || action == core.ActionConfirm {
			m.player.Play(synth.CueUIClick)
			m.view = ViewStart
		}

	case ViewPlay:
		switch action {
		case core.ActionBack:
			m.leaveGame()
		case core.ActionPause:
			m.paused = !m.paused
			m.syncFreeze()
		}
	}

	return m, nil
}

// handleMouse processes left button presses. Motion, release and wheel
// events are ignored so that each physical press is handled once.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch m.view {
	case ViewStart:
		if item, ok := m.menu.ButtonAt(msg.X, msg.Y); ok {
			m.menu.cursor = int(item)
			m.activate(item)
		}

	case ViewHelp:
		m.player.Play(synth.CueUIClick)
		m.view = ViewStart

	case ViewPlay:
		x, y := m.game.Viewport().ToCanvas(msg.X, msg.Y)
		result := m.game.HandlePointerPress(x, y)
		m.logger.Debug("press", "col", msg.X, "row", msg.Y, "result", result)
		m.flush()
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.menu.Layout(msg.Width, msg.Height)
	m.game.SetCanvas(m.game.Viewport().Canvas(msg.Width, msg.Height))
	m.syncFreeze()
	return m, nil
}

// handleTick advances the game by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.view == ViewPlay {
		dt := m.runtime.FrameDelta()
		if m.banner != nil {
			m.banner.Remaining -= dt
			if m.banner.Remaining <= 0 {
				m.banner = nil
			}
		}
		m.syncFreeze()
		m.game.AdvanceTime(dt)
		m.flush()
	}
	return m, tickCmd(m.runtime.TickRate)
}

// activate runs a start screen button.
func (m *Model) activate(item MenuItem) {
	m.player.Play(synth.CueUIClick)

	switch item {
	case MenuStart:
		m.view = ViewPlay
		m.paused = false
		m.banner = nil
		m.game.Start()
		m.syncFreeze()
		m.logger.Info("game started", "level", m.game.Level(), "tier", m.game.Tier().Name)
	case MenuHelp:
		m.view = ViewHelp
	case MenuTheme:
		m.setDark(!m.dark)
	}
}

// leaveGame abandons the round and returns to the start screen.
func (m *Model) leaveGame() {
	m.game.Stop()
	m.banner = nil
	m.paused = false
	m.view = ViewStart
}

func (m *Model) setDark(dark bool) {
	m.dark = dark
	m.theme = ThemeFor(dark)
}

// tooSmall reports whether the terminal cannot show the current board.
func (m *Model) tooSmall() bool {
	cols, rows := m.game.MinScreen()
	return m.runtime.ScreenW < cols || m.runtime.ScreenH < rows
}

// syncFreeze freezes the game while paused, while the result banner is up
// and while the terminal is too small.
func (m *Model) syncFreeze() {
	if !m.game.Active() {
		return
	}
	m.game.SetFrozen(m.paused || m.banner != nil || m.tooSmall())
}

// flush plays emitted cues and records finished rounds.
func (m *Model) flush() {
	for _, c := range m.game.DrainCues() {
		m.player.Play(c)
	}

	for _, r := range m.game.DrainResults() {
		m.logger.Info("round finished",
			"outcome", r.Outcome,
			"level", r.Level,
			"grid", r.Tier.GridSize,
			"clicks", r.Clicks,
			"played", fmt.Sprintf("%.1fs", r.PlayedFor),
		)

		stats := m.record(r)
		if m.cfg.Feedback.Duration > 0 {
			m.banner = &Banner{Result: r, Stats: stats, Remaining: m.cfg.Feedback.Duration}
		}
	}
	m.syncFreeze()
}

// record stores a round in the session history and returns the updated
// session stats.
func (m *Model) record(r monkeytrain.RoundResult) storage.SessionStats {
	none := storage.SessionStats{BestLevel: -1}
	if m.store == nil {
		return none
	}

	outcome := storage.OutcomeFailed
	if r.Outcome == monkeytrain.OutcomeComplete {
		outcome = storage.OutcomeComplete
	}
	if _, err := m.store.RecordRound(storage.RoundRecord{
		Level:         r.Level,
		Tier:          r.Tier.Name,
		GridSize:      r.Tier.GridSize,
		Outcome:       outcome,
		RevealSeconds: r.Tier.Reveal,
		Clicks:        r.Clicks,
		PlayedFor:     r.PlayedFor,
	}); err != nil {
		m.logger.Warn("could not record round", "error", err)
		return none
	}

	stats, err := m.store.Stats()
	if err != nil {
		m.logger.Warn("could not read session stats", "error", err)
		return none
	}
	return stats
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.runtime.ScreenW, m.runtime.ScreenH
	if m.view == ViewHelp {
		return m.helpScreen.View(m.theme, w, h)
	}

	switch m.view {
	case ViewStart:
		m.menu.Render(m.screen, m.dark)
	case ViewPlay:
		if m.tooSmall() {
			cols, rows := m.game.MinScreen()
			renderTooSmall(m.screen, cols, rows)
			break
		}
		m.game.Render(m.screen)
		m.renderStatus()
		switch {
		case m.banner != nil:
			m.banner.Render(m.screen)
		case m.paused:
			renderPaused(m.screen)
		}
	}

	body := RenderRows(m.screen, m.theme, 0, m.screen.Height()-FooterHeight)
	footer := lipgloss.PlaceHorizontal(w, lipgloss.Center, m.footer.ShortHelpView(m.keys.ShortHelp()),
		lipgloss.WithWhitespaceBackground(m.theme.Palette.Background))
	return body + "\n" + footer
}

// renderStatus draws the sound and theme state in the top right corner.
func (m Model) renderStatus() {
	status := fmt.Sprintf("Sound: %s  Dark: %s", onOff(!m.player.Muted()), onOff(m.dark))
	m.screen.DrawText(m.screen.Width()-len(status)-1, 0, status, core.ColorSubtitle)
}

// CurrentView returns the active screen.
func (m Model) CurrentView() View {
	return m.view
}

// Game returns the hosted game.
func (m Model) Game() *monkeytrain.Game {
	return m.game
}

// Banner returns the result banner, or nil when none is shown.
func (m Model) Banner() *Banner {
	return m.banner
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Tile and button presses
	)

	_, err = p.Run()
	return err
}

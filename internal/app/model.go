package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fenwick-labs/mineoracle/internal/mineengine"
	"github.com/fenwick-labs/mineoracle/internal/menu"
	"github.com/fenwick-labs/mineoracle/internal/scores"
	"github.com/fenwick-labs/mineoracle/internal/settings"
	"github.com/fenwick-labs/mineoracle/internal/splash"
	"github.com/fenwick-labs/mineoracle/internal/transition"
	"github.com/fenwick-labs/mineoracle/internal/ui"
)

// gameModel is implemented by the playable game screen.
type gameModel interface {
	tea.Model
	Done() bool
}

// screen identifies the active screen.
type screen int

const (
	screenSplash screen = iota
	screenTransition
	screenMenu
	screenGame
	screenSettings
)

// Model is the top-level container that routes between screens.
type Model struct {
	active     screen
	width      int
	height     int
	splash     splash.Model
	transition transition.Model
	menu       menu.Model
	game       gameModel
	scores     *scores.Store
	settings   *settings.Store
	settingsUI settings.Model
}

// New creates the top-level app model starting at the splash screen.
func New() Model {
	s, _ := scores.Load()
	cfg, _ := settings.Load()
	m := menu.New(s)
	m.SetPolicy(string(cfg.Config.Policy))
	return Model{
		active:   screenSplash,
		splash:   splash.New(),
		menu:     m,
		scores:   s,
		settings: cfg,
	}
}

// Init delegates to the active sub-model's Init.
func (m Model) Init() tea.Cmd {
	return m.splash.Init()
}

// Update handles messages and routes them to the active sub-model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.splash, _ = m.splash.Update(msg)
		m.transition, _ = m.transition.Update(msg)
		m.menu, _ = m.menu.Update(msg)
		m.settingsUI, _ = m.settingsUI.Update(msg)
		if m.game != nil {
			var updated tea.Model
			updated, _ = m.game.Update(msg)
			m.game = updated.(gameModel)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.active == screenSplash {
			splashText := splash.TitleArt + "\n\n" + splash.Credits
			menuText := m.menu.TransitionText()
			m.transition = transition.New(m.width, m.height, splashText, menuText)
			m.active = screenTransition
			return m, m.transition.Init()
		}
	}

	switch m.active {
	case screenSplash:
		var cmd tea.Cmd
		m.splash, cmd = m.splash.Update(msg)
		return m, cmd

	case screenTransition:
		var cmd tea.Cmd
		m.transition, cmd = m.transition.Update(msg)
		if m.transition.Done() {
			m.active = screenMenu
			return m, m.menu.Init()
		}
		return m, cmd

	case screenMenu:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		if m.menu.Quitting() {
			return m, tea.Quit
		}
		if sel := m.menu.Selected(); sel >= 0 {
			if sel == menu.SettingsIndex {
				m.settingsUI = settings.NewModel(m.settings)
				sizeMsg := tea.WindowSizeMsg{Width: m.width, Height: m.height}
				m.settingsUI, _ = m.settingsUI.Update(sizeMsg)
				m.active = screenSettings
				m.menu.ResetSelection()
				return m, m.settingsUI.Init()
			}
			return m.launchGame(sel)
		}
		return m, cmd

	case screenSettings:
		var cmd tea.Cmd
		m.settingsUI, cmd = m.settingsUI.Update(msg)
		if m.settingsUI.Done() {
			m.menu.SetPolicy(string(m.settings.Config.Policy))
			m.active = screenMenu
			m.menu.ResetSelection()
			return m, nil
		}
		return m, cmd

	case screenGame:
		var cmd tea.Cmd
		var updated tea.Model
		updated, cmd = m.game.Update(msg)
		m.game = updated.(gameModel)
		if m.game.Done() {
			m.extractScore()
			m.game = nil
			m.active = screenMenu
			m.menu.ResetSelection()
			m.menu.IncrementGamesPlayed()
			m.menu.TriggerEntrance()
			return m, menu.AnimCmd()
		}
		return m, cmd
	}

	return m, nil
}

// difficultyNames maps menu.Games indices to settings.Difficulty values.
var difficultyNames = []settings.Difficulty{
	settings.DifficultyBeginner,
	settings.DifficultyIntermediate,
	settings.DifficultyExpert,
	settings.DifficultyInfinite,
}

// policyJudges maps a settings.PolicyName to its mineengine.Judge.
var policyJudges = map[settings.PolicyName]mineengine.Judge{
	settings.PolicyRandom:       mineengine.Random,
	settings.PolicyStrict:       mineengine.Strict,
	settings.PolicyKind:         mineengine.Kind,
	settings.PolicyLocal:        mineengine.Local,
	settings.PolicyGlobal:       mineengine.Global,
	settings.PolicyKaboomGlobal: mineengine.KaboomGlobal,
	settings.PolicyKaboomLocal:  mineengine.KaboomLocal,
}

// launchGame creates a Field for the chosen difficulty preset, applying
// the current fairness policy and solvability setting, and wraps it in
// the board UI.
func (m Model) launchGame(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(difficultyNames) {
		m.menu.ResetSelection()
		return m, nil
	}

	diff := difficultyNames[index]
	cfg := m.settings.Config

	judge, ok := policyJudges[cfg.Policy]
	if !ok {
		judge = mineengine.Kind
	}

	var size *mineengine.Size
	if w, h, bounded := diff.BoardSize(); bounded {
		size = &mineengine.Size{Width: w, Height: h}
	}

	field := mineengine.New(diff.Density(), judge, cfg.Solvable, size, mineengine.DefaultOptions())
	g := ui.New(field, judge, string(diff), string(cfg.Policy))
	m.game = &g

	m.active = screenGame
	cmd := m.game.Init()
	sizeMsg := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	var updated tea.Model
	updated, _ = m.game.Update(sizeMsg)
	m.game = updated.(gameModel)
	return m, cmd
}

// extractScore saves the game result to the scores store.
func (m *Model) extractScore() {
	if m.scores == nil || m.game == nil {
		return
	}

	g, ok := m.game.(*ui.Model)
	if !ok || !g.Won() {
		return
	}

	key := scores.Key(g.DifficultyName(), g.PolicyName())
	m.scores.UpdateTime(key, g.ElapsedSeconds())
	m.scores.UpdateReveals(key, g.CellsRevealed())
	_ = m.scores.Save()
}

// View renders the active sub-model.
func (m Model) View() string {
	switch m.active {
	case screenSplash:
		return m.splash.View()
	case screenTransition:
		return m.transition.View()
	case screenMenu:
		return m.menu.View()
	case screenSettings:
		return m.settingsUI.View()
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	}
	return ""
}

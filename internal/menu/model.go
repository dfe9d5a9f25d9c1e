package menu

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fenwick-labs/mineoracle/internal/scores"
)

// GameChoice represents a selectable difficulty entry.
type GameChoice struct {
	Name        string
	Description string
}

// Games is the list of selectable difficulty presets.
var Games = []GameChoice{
	{"Beginner", "9x9, 12% mines"},
	{"Intermediate", "16x16, 16% mines"},
	{"Expert", "30x16, 21% mines"},
	{"Infinite", "unbounded, 18% mines"},
}

// SettingsIndex is the menu index for the Settings entry.
const SettingsIndex = 4

// allChoices returns Games plus the Settings entry.
var allChoices = append(Games, GameChoice{"Settings", "Preferences and configuration"})

// menuRow represents a single row in the rendered menu. It is either a
// category header (negative gameIndex) or a selectable difficulty/settings entry.
type menuRow struct {
	gameIndex    int // -(category index+1) for category header, 0-3 for difficulties, SettingsIndex for settings
	displayIndex int // sequential position among selectable items (for shortcut keys)
}

// buildRows constructs the flat list of menu rows from categories + settings.
func buildRows() []menuRow {
	rows := make([]menuRow, 0, len(Games)+len(categories)+2)
	displayIdx := 0
	for catIdx := range categories {
		rows = append(rows, menuRow{gameIndex: -(catIdx + 1), displayIndex: -1})
		for _, gi := range categories[catIdx].Indices {
			rows = append(rows, menuRow{gameIndex: gi, displayIndex: displayIdx})
			displayIdx++
		}
	}
	rows = append(rows, menuRow{gameIndex: SettingsIndex, displayIndex: displayIdx})
	return rows
}

var menuRows = buildRows()

// isSelectable returns true if this row can be cursor-selected.
func (r menuRow) isSelectable() bool {
	return r.gameIndex >= 0
}

// Tick messages.
type (
	tipTickMsg   struct{}
	blinkTickMsg struct{}
	timerTickMsg struct{}
	animTickMsg  struct{}
)

const (
	tipInterval   = 4 * time.Second
	blinkInterval = 500 * time.Millisecond
	timerInterval = 1 * time.Minute
	animInterval  = 40 * time.Millisecond
)

func tipTick() tea.Cmd {
	return tea.Tick(tipInterval, func(time.Time) tea.Msg { return tipTickMsg{} })
}

func blinkTick() tea.Cmd {
	return tea.Tick(blinkInterval, func(time.Time) tea.Msg { return blinkTickMsg{} })
}

func timerTick() tea.Cmd {
	return tea.Tick(timerInterval, func(time.Time) tea.Msg { return timerTickMsg{} })
}

func animTick() tea.Cmd {
	return tea.Tick(animInterval, func(time.Time) tea.Msg { return animTickMsg{} })
}

// AnimCmd returns a tea.Cmd that starts the entrance animation tick.
// The app model calls this when returning from a game.
func AnimCmd() tea.Cmd {
	return animTick()
}

// Model is the difficulty selection menu.
type Model struct {
	choices  []GameChoice
	cursor   int // index into menuRows (only lands on selectable rows)
	width    int
	height   int
	selected int
	quitting bool
	scores   *scores.Store
	policy   string // current fairness policy name, for high-score lookups

	tipIndex int

	blinkOn bool

	gamesPlayed  int
	sessionStart time.Time
	sessionMins  int

	animStep    int
	showWelcome bool
}

// New creates a menu model with optional score display.
func New(s *scores.Store) Model {
	return Model{
		choices:      allChoices,
		cursor:       firstSelectableRow(),
		selected:     -1,
		scores:       s,
		policy:       "kind",
		blinkOn:      true,
		sessionStart: time.Now(),
		animStep:     -1,
	}
}

// SetPolicy updates the fairness policy used to key high-score lookups.
// The app model calls this after the settings screen changes it.
func (m *Model) SetPolicy(policy string) {
	m.policy = policy
}

// firstSelectableRow returns the index of the first selectable row.
func firstSelectableRow() int {
	for i := range menuRows {
		if menuRows[i].isSelectable() {
			return i
		}
	}
	return 0
}

// Init starts background tickers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tipTick(), blinkTick(), timerTick())
}

// IncrementGamesPlayed bumps the session game counter. Called by the
// app model when returning from a game.
func (m *Model) IncrementGamesPlayed() {
	m.gamesPlayed++
}

// TriggerEntrance starts the entrance animation (items appear one by one).
func (m *Model) TriggerEntrance() {
	m.animStep = 0
	m.showWelcome = true
}

// Update handles key navigation, ticks, and quick-select.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tipTickMsg:
		m.tipIndex = (m.tipIndex + 1) % len(tips)
		return m, tipTick()

	case blinkTickMsg:
		m.blinkOn = !m.blinkOn
		return m, blinkTick()

	case timerTickMsg:
		m.sessionMins = int(time.Since(m.sessionStart).Minutes())
		return m, timerTick()

	case animTickMsg:
		if m.animStep >= 0 {
			m.animStep++
			totalRows := len(menuRows)
			if m.animStep > totalRows+5 {
				m.animStep = -1
				m.showWelcome = false
			}
			return m, animTick()
		}
		return m, nil

	case tea.KeyMsg:
		if m.animStep >= 0 {
			m.animStep = -1
			m.showWelcome = false
			return m, nil
		}

		cols := m.columnCount()
		switch msg.String() {
		case "up", "k":
			m.cursor = m.skipSelectableN(m.cursor, -cols)
		case "down", "j":
			m.cursor = m.skipSelectableN(m.cursor, cols)
		case "left", "h":
			m.cursor = m.prevSelectable(m.cursor)
		case "right", "l":
			m.cursor = m.nextSelectable(m.cursor)
		case "enter":
			m.selected = menuRows[m.cursor].gameIndex
		case "q", "esc":
			m.quitting = true
		default:
			if idx, ok := m.shortcutToGameIndex(msg.String()); ok {
				m.selected = idx
			}
		}
	}

	return m, nil
}

// nextSelectable finds the next selectable row after current, wrapping.
func (m Model) nextSelectable(current int) int {
	n := len(menuRows)
	for i := 1; i < n; i++ {
		idx := (current + i) % n
		if menuRows[idx].isSelectable() {
			return idx
		}
	}
	return current
}

// prevSelectable finds the previous selectable row before current, wrapping.
func (m Model) prevSelectable(current int) int {
	n := len(menuRows)
	for i := 1; i < n; i++ {
		idx := (current - i + n) % n
		if menuRows[idx].isSelectable() {
			return idx
		}
	}
	return current
}

// skipSelectableN jumps n selectable items forward (positive) or backward (negative).
func (m Model) skipSelectableN(current, n int) int {
	pos := current
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	for i := 0; i < n; i++ {
		if step > 0 {
			pos = m.nextSelectable(pos)
		} else {
			pos = m.prevSelectable(pos)
		}
	}
	return pos
}

// renderEntry renders a single difficulty/settings entry. When compact is
// true (multi-column mode), descriptions and high scores are omitted.
func (m Model) renderEntry(row menuRow, rowIdx int, compact bool) string {
	var e strings.Builder

	indicator := "   "
	ns := nameStyle
	if rowIdx == m.cursor {
		if m.blinkOn {
			indicator = " ▶ "
		} else {
			indicator = " ▷ "
		}
		ns = nameSelectedStyle
	}
	e.WriteString(cursorStyle.Render(indicator))

	if row.gameIndex < SettingsIndex && row.displayIndex >= 0 {
		label := shortcutLabel(row.displayIndex)
		e.WriteString(shortcutStyle.Render(fmt.Sprintf("[%s] ", label)))
	} else {
		e.WriteString("    ")
	}

	if icon, ok := gameIcon[row.gameIndex]; ok {
		e.WriteString(iconStyle.Render(fmt.Sprintf("%-3s", icon)))
	} else if row.gameIndex == SettingsIndex {
		e.WriteString(iconStyle.Render("⚙  "))
	}

	name := ""
	if row.gameIndex == SettingsIndex {
		name = "Settings"
	} else if row.gameIndex >= 0 && row.gameIndex < len(Games) {
		name = Games[row.gameIndex].Name
	}
	e.WriteString(ns.Render(fmt.Sprintf("%-16s", name)))

	if !compact {
		desc := ""
		if row.gameIndex == SettingsIndex {
			desc = "Preferences and configuration"
		} else if row.gameIndex >= 0 && row.gameIndex < len(Games) {
			desc = Games[row.gameIndex].Description
		}
		e.WriteString(descStyle.Render(desc))

		if hs := m.highScoreLabel(row.gameIndex); hs != "" {
			e.WriteString("  ")
			e.WriteString(highScoreStyle.Render(hs))
		}
	}

	return e.String()
}

// shortcutToGameIndex maps a key press to a difficulty index.
func (m Model) shortcutToGameIndex(key string) (int, bool) {
	displayIdx := -1
	if len(key) == 1 {
		ch := key[0]
		switch {
		case ch >= '1' && ch <= '9':
			displayIdx = int(ch - '1')
		case ch == '0':
			displayIdx = 9
		case ch >= 'a' && ch <= 'f':
			displayIdx = int(ch-'a') + 10
		}
	}
	if displayIdx < 0 {
		return -1, false
	}
	for i := range menuRows {
		if menuRows[i].displayIndex == displayIdx && menuRows[i].gameIndex >= 0 && menuRows[i].gameIndex < SettingsIndex {
			return menuRows[i].gameIndex, true
		}
	}
	return -1, false
}

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF87"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	nameSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFD700"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	tipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	highScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	previewBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("250")).
			Padding(0, 1).
			Width(42)

	previewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF"))

	previewDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	panelBorder = lipgloss.RoundedBorder()

	shortcutStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	iconStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	welcomeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF87"))
)

// compactTitle is a single-line styled title for the menu header.
const compactTitle = "MINEORACLE"

// colWidth is the fixed visual width of a single entry in multi-column mode.
const colWidth = 28

// columnCount returns how many columns fit in the available width.
func (m Model) columnCount() int {
	innerW := m.width - 6
	cols := innerW / colWidth
	if cols < 1 {
		cols = 1
	}
	if cols > 3 {
		cols = 3
	}
	return cols
}

// contentHeight estimates the number of inner lines used by the menu,
// excluding the border/padding chrome.
func (m Model) contentHeight(showTitle, showStats, showPreview, showTip bool) int {
	cols := m.columnCount()
	lines := 0
	if showTitle {
		lines++
	}
	if showStats {
		lines++
	}
	for _, cat := range categories {
		lines++
		lines += (len(cat.Indices) + cols - 1) / cols
	}
	lines++ // settings row
	if showPreview {
		lines += 8
	}
	if showTip {
		lines++
	}
	lines++ // footer
	return lines
}

// View renders the menu with categories, icons, preview, stats, and tips.
func (m Model) View() string {
	var b strings.Builder

	innerH := m.height - 2

	showTitle := true
	showStats := true
	showPreview := true
	showTip := true

	if m.contentHeight(showTitle, showStats, showPreview, showTip) > innerH {
		showPreview = false
	}
	if m.contentHeight(showTitle, showStats, showPreview, showTip) > innerH {
		showTitle = false
	}
	if m.contentHeight(showTitle, showStats, showPreview, showTip) > innerH {
		showStats = false
	}
	if m.contentHeight(showTitle, showStats, showPreview, showTip) > innerH {
		showTip = false
	}

	if showTitle {
		b.WriteString(titleStyle.Render(compactTitle))
		b.WriteString("\n")
	}

	if showStats {
		elapsed := m.sessionMins
		if elapsed == 0 && time.Since(m.sessionStart) >= 30*time.Second {
			elapsed = 1
		}
		statsLine := fmt.Sprintf("Games played: %d | Session: %dm", m.gamesPlayed, elapsed)
		b.WriteString(statsStyle.Render(statsLine))
		b.WriteString("\n")
	}

	if m.showWelcome {
		b.WriteString(welcomeStyle.Render("  Welcome back!"))
		b.WriteString("\n")
	}

	cols := m.columnCount()
	compact := cols > 1
	visualRow := 0
	gameRows := make([]int, 0, 8)

	for catI := range categories {
		if m.animStep >= 0 && visualRow > m.animStep {
			break
		}

		cat := categories[catI]
		b.WriteString(categoryStyle.Render(fmt.Sprintf("  %s %s", cat.Icon, cat.Name)))
		b.WriteString("\n")
		visualRow++

		gameRows = gameRows[:0]
		for _, gi := range cat.Indices {
			for ri, row := range menuRows {
				if row.gameIndex == gi {
					gameRows = append(gameRows, ri)
					break
				}
			}
		}

		for i := 0; i < len(gameRows); i += cols {
			if m.animStep >= 0 && visualRow > m.animStep {
				break
			}
			for j := 0; j < cols && i+j < len(gameRows); j++ {
				ri := gameRows[i+j]
				b.WriteString(m.renderEntry(menuRows[ri], ri, compact))
				if compact && j < cols-1 && i+j+1 < len(gameRows) {
					b.WriteString("  ")
				}
			}
			b.WriteString("\n")
			visualRow++
		}
	}

	for ri, row := range menuRows {
		if row.gameIndex == SettingsIndex {
			b.WriteString(m.renderEntry(row, ri, compact))
			b.WriteString("\n")
			break
		}
	}

	if showPreview {
		preview := m.renderPreview()
		if preview != "" {
			b.WriteString("\n")
			b.WriteString(preview)
		}
	}

	b.WriteString("\n")

	if showTip && m.tipIndex < len(tips) {
		b.WriteString(tipStyle.Render(tips[m.tipIndex]))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render("  ←↑↓→ Navigate | Enter Select | 1-4 Quick Select | Q Quit"))

	panel := lipgloss.NewStyle().
		Border(panelBorder).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

// renderPreview returns the preview panel for the currently highlighted difficulty.
func (m Model) renderPreview() string {
	gameIdx := -1
	if m.cursor >= 0 && m.cursor < len(menuRows) {
		row := menuRows[m.cursor]
		if row.gameIndex >= 0 && row.gameIndex < len(Games) {
			gameIdx = row.gameIndex
		}
	}
	if gameIdx < 0 {
		return ""
	}

	p, ok := previews[gameIdx]
	if !ok {
		return ""
	}

	var pb strings.Builder
	pb.WriteString(previewTitleStyle.Render(Games[gameIdx].Name))
	pb.WriteString("\n")
	pb.WriteString(previewDimStyle.Render(p.Rules))
	pb.WriteString("\n\n")
	pb.WriteString(previewDimStyle.Render("Controls: " + p.Controls))

	return previewBorder.Render(pb.String())
}

// TransitionText returns the menu layout as plain text (no ANSI, no border)
// for the transition reveal animation. It mirrors the View() content using
// the same responsive logic so the revealed text matches the real menu layout.
func (m Model) TransitionText() string {
	var b strings.Builder

	innerH := m.height - 2
	showTitle := true
	showStats := true
	showPreview := true
	showTip := true

	if m.contentHeight(showTitle, showStats, showPreview, showTip) > innerH {
		showPreview = false
	}
	if m.contentHeight(showTitle, showStats, showPreview, showTip) > innerH {
		showTitle = false
	}
	if m.contentHeight(showTitle, showStats, showPreview, showTip) > innerH {
		showStats = false
	}
	if m.contentHeight(showTitle, showStats, showPreview, showTip) > innerH {
		showTip = false
	}

	if showTitle {
		b.WriteString(compactTitle)
		b.WriteString("\n")
	}
	if showStats {
		b.WriteString(fmt.Sprintf("Games played: %d | Session: 0m", m.gamesPlayed))
		b.WriteString("\n")
	}

	cols := m.columnCount()
	compact := cols > 1

	for catI := range categories {
		cat := categories[catI]
		b.WriteString(fmt.Sprintf("  %s\n", cat.Name))

		var catGames []int
		for _, gi := range cat.Indices {
			for ri, row := range menuRows {
				if row.gameIndex == gi {
					catGames = append(catGames, ri)
					break
				}
			}
		}

		for i := 0; i < len(catGames); i += cols {
			for j := 0; j < cols && i+j < len(catGames); j++ {
				ri := catGames[i+j]
				row := menuRows[ri]
				b.WriteString(plainEntry(row, ri == m.cursor, compact))
				if compact && j < cols-1 && i+j+1 < len(catGames) {
					b.WriteString("  ")
				}
			}
			b.WriteString("\n")
		}
	}

	for ri, row := range menuRows {
		if row.gameIndex == SettingsIndex {
			b.WriteString(plainEntry(row, ri == m.cursor, compact))
			b.WriteString("\n")
			break
		}
	}

	b.WriteString("\n")
	if showTip && m.tipIndex < len(tips) {
		b.WriteString(tips[m.tipIndex])
		b.WriteString("\n")
	}
	b.WriteString("  ←↑↓→ Navigate | Enter Select | 1-4 Quick Select | Q Quit")

	return b.String()
}

// plainEntry renders a single menu entry as plain text (no ANSI).
func plainEntry(row menuRow, selected, compact bool) string {
	var e strings.Builder

	if selected {
		e.WriteString(" ▶ ")
	} else {
		e.WriteString("   ")
	}

	if row.gameIndex < SettingsIndex && row.displayIndex >= 0 {
		e.WriteString(fmt.Sprintf("[%s] ", shortcutLabel(row.displayIndex)))
	} else {
		e.WriteString("    ")
	}

	if icon, ok := gameIcon[row.gameIndex]; ok {
		e.WriteString(fmt.Sprintf("%-3s", icon))
	} else if row.gameIndex == SettingsIndex {
		e.WriteString("⚙  ")
	}

	name := ""
	if row.gameIndex == SettingsIndex {
		name = "Settings"
	} else if row.gameIndex >= 0 && row.gameIndex < len(Games) {
		name = Games[row.gameIndex].Name
	}
	e.WriteString(fmt.Sprintf("%-16s", name))

	if !compact {
		if row.gameIndex == SettingsIndex {
			e.WriteString("Preferences and configuration")
		} else if row.gameIndex >= 0 && row.gameIndex < len(Games) {
			e.WriteString(Games[row.gameIndex].Description)
		}
	}

	return e.String()
}

// Selected returns the index of the selected difficulty, or -1 if none.
func (m Model) Selected() int {
	return m.selected
}

// ResetSelection clears the selected state so the menu can be reused
// after returning from a game.
func (m *Model) ResetSelection() {
	m.selected = -1
}

// difficultyKeys maps a Games index to the settings.Difficulty string used
// as the first half of a scores.Key.
var difficultyKeys = []string{"beginner", "intermediate", "expert", "infinite"}

// highScoreLabel returns a formatted high score string for the given
// difficulty index, keyed by the currently selected fairness policy.
func (m Model) highScoreLabel(index int) string {
	if m.scores == nil || index < 0 || index >= len(difficultyKeys) {
		return ""
	}
	key := scores.Key(difficultyKeys[index], m.policy)
	e := m.scores.GetTime(key)
	if e == nil {
		return ""
	}
	mins := e.Value / 60
	secs := e.Value % 60
	return fmt.Sprintf("[Best: %d:%02d]", mins, secs)
}

// Quitting returns true if the user pressed quit.
func (m Model) Quitting() bool {
	return m.quitting
}

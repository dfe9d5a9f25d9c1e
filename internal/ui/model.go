// Package ui renders a single Field (internal/mineengine) as a
// scrolling Bubbletea view: a camera follows the cursor across an
// unbounded board, hidden cells are tinted by their cached posterior
// risk, and the status bar tracks elapsed time and reveals.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fenwick-labs/mineoracle/internal/mineengine"
)

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{} })
}

// Model is the Bubbletea model driving one mineengine.Field.
type Model struct {
	field *mineengine.Field
	judge mineengine.Judge

	difficultyName string
	policyName     string

	cursor mineengine.Coord
	camX   int32
	camY   int32

	width  int
	height int

	flags int

	ticking  bool
	done     bool
	gameOver bool
	won      bool
}

// New creates a game model around an already-configured Field.
func New(field *mineengine.Field, judge mineengine.Judge, difficultyName, policyName string) Model {
	return Model{
		field:          field,
		judge:          judge,
		difficultyName: difficultyName,
		policyName:     policyName,
	}
}

// Init returns nil; the first tick starts on the first reveal.
func (m Model) Init() tea.Cmd {
	return nil
}

// Done returns true when the player wants to exit to the menu.
func (m Model) Done() bool {
	return m.done
}

// Won reports whether the just-finished game ended in a win.
func (m Model) Won() bool {
	return m.won
}

// GameOver reports whether play has stopped (win or mine hit).
func (m Model) GameOver() bool {
	return m.gameOver
}

// ElapsedSeconds returns the field's accumulated play time in seconds.
func (m Model) ElapsedSeconds() int {
	return int(m.field.TimeElapsed() / time.Second)
}

// CellsRevealed returns the field's running reveal count.
func (m Model) CellsRevealed() int {
	return m.field.CellsRevealed()
}

// DifficultyName returns the preset name this game was launched with.
func (m Model) DifficultyName() string {
	return m.difficultyName
}

// PolicyName returns the fairness policy name this game was launched with.
func (m Model) PolicyName() string {
	return m.policyName
}

// isFirstReveal reports whether no cell has been revealed and no risk
// has yet been cached -- the moment RevealCellFirstZero's hint applies.
func (m Model) isFirstReveal() bool {
	return m.field.CellsRevealed() == 0 && len(m.field.Risks()) == 0
}

// Update handles input, ticks, and reveal/flag actions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.gameOver && m.ticking {
			m.field.PassTime(time.Second)
			return m, tickCmd()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if !m.gameOver {
				m.cursor.Y--
			}
		case "down", "j":
			if !m.gameOver {
				m.cursor.Y++
			}
		case "left", "h":
			if !m.gameOver {
				m.cursor.X--
			}
		case "right", "l":
			if !m.gameOver {
				m.cursor.X++
			}
		case "enter", " ":
			if !m.gameOver {
				return m.reveal()
			}
		case "f":
			if !m.gameOver {
				m.toggleFlag()
			}
		case "n":
			m.restart()
		case "q", "esc":
			m.done = true
		}
	}

	return m, nil
}

func (m Model) reveal() (tea.Model, tea.Cmd) {
	wasFirst := m.isFirstReveal()
	riskBefore := m.field.CellRisk(m.cursor)

	var ok bool
	if wasFirst {
		_, ok = m.field.RevealCellFirstZero(m.cursor)
	} else {
		_, ok = m.field.RevealCell(m.cursor)
	}

	var cmd tea.Cmd
	if wasFirst && ok {
		m.ticking = true
		cmd = tickCmd()
	}

	if !ok {
		if m.hitMine(riskBefore) {
			m.gameOver = true
			m.won = false
		}
		return m, cmd
	}

	if m.field.IsWon() {
		m.gameOver = true
		m.won = true
	}
	return m, cmd
}

// hitMine reports whether a refused reveal represents the policy being
// honest about an existing mine, as opposed to merely declining a
// reveal that doesn't yet meet its fairness bar.
func (m Model) hitMine(riskBefore float32) bool {
	switch m.judge {
	case mineengine.Random:
		return true
	case mineengine.KaboomGlobal, mineengine.KaboomLocal:
		return riskBefore == 1.0
	default:
		return false
	}
}

func (m *Model) toggleFlag() {
	cell, inBounds := m.field.Get(m.cursor)
	if !inBounds || cell.IsRevealed() {
		return
	}
	wasFlagged := cell.IsFlagged()
	m.field.ToggleFlag(m.cursor)
	if wasFlagged {
		m.flags--
	} else {
		m.flags++
	}
}

func (m *Model) restart() {
	m.field.Clear()
	m.cursor = mineengine.Coord{}
	m.camX, m.camY = 0, 0
	m.flags = 0
	m.ticking = false
	m.gameOver = false
	m.won = false
}

// viewport returns the visible board rectangle in cell columns/rows,
// centred on the cursor once it strays outside the current camera.
func (m *Model) viewport() (cols, rows int32) {
	cols = int32(m.width-6) / 3
	if cols < 5 {
		cols = 5
	}
	rows = int32(m.height - 8)
	if rows < 5 {
		rows = 5
	}

	margin := int32(2)
	if m.cursor.X < m.camX+margin {
		m.camX = m.cursor.X - margin
	}
	if m.cursor.X > m.camX+cols-1-margin {
		m.camX = m.cursor.X - cols + 1 + margin
	}
	if m.cursor.Y < m.camY+margin {
		m.camY = m.cursor.Y - margin
	}
	if m.cursor.Y > m.camY+rows-1-margin {
		m.camY = m.cursor.Y - rows + 1 + margin
	}
	return cols, rows
}

// View renders the status bar and the scrolled board.
func (m Model) View() string {
	cols, rows := m.viewport()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Mineoracle - %s / %s", m.difficultyName, m.policyName)))
	b.WriteString("\n")

	status := fmt.Sprintf("Revealed: %d  Flags: %d  Time: %ds", m.field.CellsRevealed(), m.flags, m.ElapsedSeconds())
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n\n")

	b.WriteString(m.renderGrid(cols, rows))
	b.WriteString("\n")

	if m.gameOver {
		if m.won {
			b.WriteString(winStyle.Render("CLEARED"))
		} else {
			b.WriteString(loseStyle.Render("MINE HIT"))
		}
		b.WriteString("\n")
	}

	footer := "Arrows Move | Enter Reveal | F Flag | N New | Q Quit"
	b.WriteString(footerStyle.Render(footer))

	content := lipgloss.JoinVertical(lipgloss.Center, b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderGrid(cols, rows int32) string {
	risks := m.field.Risks()
	var g strings.Builder
	for y := m.camY; y < m.camY+rows; y++ {
		for x := m.camX; x < m.camX+cols; x++ {
			c := mineengine.Coord{X: x, Y: y}
			isCursor := c == m.cursor
			g.WriteString(m.renderCell(c, risks, isCursor))
		}
		g.WriteString("\n")
	}
	return strings.TrimRight(g.String(), "\n")
}

func (m Model) renderCell(c mineengine.Coord, risks map[mineengine.Coord]float32, isCursor bool) string {
	cell, inBounds := m.field.Get(c)

	style := cellStyle
	if isCursor {
		style = cursorCellStyle
	}

	if !inBounds {
		return style.Foreground(lipgloss.Color("235")).Render(" · ")
	}

	if cell.IsRevealed() {
		n := cell.Count()
		if n == 0 {
			return style.Render("   ")
		}
		return style.Foreground(numberColor(n)).Render(fmt.Sprintf(" %d ", n))
	}

	if cell.IsFlagged() {
		return style.Foreground(lipgloss.Color("#FF0000")).Render(" F ")
	}

	if r, ok := risks[c]; ok {
		return style.Foreground(riskColor(r)).Render(" ▒ ")
	}

	return style.Foreground(lipgloss.Color("#808080")).Render(" ░ ")
}

// riskColor maps a posterior probability in [0, 1] to a green-to-red
// gradient, matching the classic low-risk/high-risk reading order.
func riskColor(r float32) lipgloss.Color {
	if r < 0 {
		r = 0
	}
	if r > 1 {
		r = 1
	}
	red := int(r * 255)
	green := int((1 - r) * 255)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x00", red, green))
}

func numberColor(n uint8) lipgloss.Color {
	switch n {
	case 1:
		return lipgloss.Color("#0000FF")
	case 2:
		return lipgloss.Color("#008200")
	case 3:
		return lipgloss.Color("#FF0000")
	case 4:
		return lipgloss.Color("#000084")
	case 5:
		return lipgloss.Color("#840000")
	case 6:
		return lipgloss.Color("#008284")
	case 7:
		return lipgloss.Color("#840084")
	case 8:
		return lipgloss.Color("#808080")
	default:
		return lipgloss.Color("#FFFFFF")
	}
}

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00E632"))

	loseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))

	cellStyle = lipgloss.NewStyle().Width(3)

	cursorCellStyle = lipgloss.NewStyle().
			Width(3).
			Background(lipgloss.Color("#444444")).
			Bold(true)
)

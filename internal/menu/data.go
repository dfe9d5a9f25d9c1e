package menu

// gameIcon maps a difficulty index (from the Games slice) to a display icon.
var gameIcon = map[int]string{
	0: "○", // Beginner: white circle
	1: "◑", // Intermediate: half-shaded circle
	2: "●", // Expert: black circle
	3: "∞", // Infinite: infinity
}

// category groups difficulties by theme. Each category references game
// indices from the original Games slice (preserving launch indices).
type category struct {
	Name    string
	Icon    string
	Indices []int
}

var categories = []category{
	{Name: "Bounded Boards", Icon: "\U0001f9e9", Indices: []int{0, 1, 2}},
	{Name: "Unbounded", Icon: "\U0001f30c", Indices: []int{3}},
}

// gamePreview holds the info panel text for each difficulty.
type gamePreview struct {
	Rules    string
	Controls string
}

var previews = map[int]gamePreview{
	0: {
		Rules:    "9x9 board, 12% mine density.\nMines are decided lazily as you\nreveal, not placed in advance.",
		Controls: "Arrows: move | Space: reveal | F: flag",
	},
	1: {
		Rules:    "16x16 board, 16% mine density.\nA wider frontier means the solver\nleans harder on its constraints.",
		Controls: "Arrows: move | Space: reveal | F: flag",
	},
	2: {
		Rules:    "30x16 board, 21% mine density.\nLong counts make backtracking the\nconstraint solver's main cost.",
		Controls: "Arrows: move | Space: reveal | F: flag",
	},
	3: {
		Rules:    "Unbounded board, 18% mine density.\nThe camera follows you; nothing is\ndecided until you look at it.",
		Controls: "Arrows: move | Space: reveal | F: flag",
	},
}

// tips shown in the rotating ticker at the bottom of the menu.
var tips = []string{
	"Tip: the board is lazy -- a cell's number is only decided the moment you reveal it",
	"Tip: Kind and Strict policies never place a mine under your very first click",
	"Tip: Global policies compare against every hidden cell, Local only against the frontier",
	"Tip: Preserve Solvability tries to avoid 50/50 guesses wherever the constraints allow it",
	"Tip: flag a cell with F to mark a suspected mine without revealing it",
	"Tip: the risk shown on a hidden cell is a posterior, not a guarantee",
	"Tip: Kaboom policies are honest about an existing mine instead of deflecting it elsewhere",
	"Tip: a revealed zero does not auto-clear its neighbours, but none of them is a mine",
	"Tip: press 1-4 to quick-select a difficulty",
}

// shortcutLabel maps the display position (0-based) within the flattened
// category list to a shortcut label. Difficulties 1-9 use "1"-"9".
func shortcutLabel(displayIndex int) string {
	if displayIndex < 9 {
		return string(rune('1' + displayIndex))
	}
	if displayIndex == 9 {
		return "0"
	}
	return string(rune('a' + displayIndex - 10))
}

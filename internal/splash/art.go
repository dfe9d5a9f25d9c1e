package splash

// TitleArt is the splash screen's ASCII title.
const TitleArt = `
 __  __ _                                _
|  \/  (_)_ __   ___  ___  _ __ __ _  ___| | ___
| |\/| | | '_ \ / _ \/ _ \| '__/ _` + "`" + ` |/ __| |/ _ \
| |  | | | | | |  __/ (_) | | | (_| | (__| |  __/
|_|  |_|_|_| |_|\___|\___/|_|  \__,_|\___|_|\___|
`

// Credits is the small byline shown under the title.
const Credits = "a lazy, probabilistic minesweeper"

// Prompt is the blinking call-to-action at the bottom of the splash screen.
const Prompt = "Press any key to continue"

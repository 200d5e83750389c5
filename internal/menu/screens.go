package menu

import (
	"github.com/i474232898/sense-weather/internal/matrix"
	"github.com/i474232898/sense-weather/internal/palette"
)

// barColors is the menu bar on row 0, one color per slot.
var barColors = [matrix.Width]palette.Color{
	palette.White,
	palette.Red,
	palette.Orange,
	palette.Yellow,
	palette.Green,
	palette.Blue,
	palette.Violet,
	palette.Pink,
}

// rainbow colors the letters of the welcome greeting.
var rainbow = []palette.Color{
	palette.Red,
	palette.Orange,
	palette.Yellow,
	palette.Green,
	palette.Blue,
	palette.Violet,
	palette.Pink,
}

type point struct{ x, y int }

// Glyph halves. The first character sits top left, the second bottom right.
var (
	glyphO = []point{{0, 1}, {1, 1}, {2, 1}, {0, 2}, {2, 2}, {0, 3}, {2, 3}, {0, 4}, {1, 4}, {2, 4}}
	glyphI = []point{{0, 1}, {1, 1}, {2, 1}, {1, 2}, {1, 3}, {0, 4}, {1, 4}, {2, 4}}
	glyph3 = []point{{0, 1}, {1, 1}, {2, 1}, {2, 2}, {0, 3}, {1, 3}, {2, 3}, {2, 4}, {0, 5}, {1, 5}, {2, 5}}
	glyph8 = []point{{0, 1}, {1, 1}, {2, 1}, {0, 2}, {2, 2}, {0, 3}, {1, 3}, {2, 3}, {0, 4}, {2, 4}, {0, 5}, {1, 5}, {2, 5}}
	glyphH = []point{{4, 4}, {6, 4}, {4, 5}, {6, 5}, {4, 6}, {5, 6}, {6, 6}, {4, 7}, {6, 7}}
	glyphD = []point{{4, 4}, {5, 4}, {4, 5}, {6, 5}, {4, 6}, {6, 6}, {4, 7}, {5, 7}}
)

// glyphs shows which mode a slot opens: "OH", "IH", "3H" and "8D".
var glyphs = map[Mode][][]point{
	OutdoorHud:       {glyphO, glyphH},
	IndoorHud:        {glyphI, glyphH},
	ThreeHourReadout: {glyph3, glyphH},
	EightDayReadout:  {glyph8, glyphD},
}

// welcomeScreen is a sunny landscape under the menu bar.
var welcomeScreen = func() matrix.Frame {
	const (
		sk = 'b' // sky
		cl = 'c' // cloud
		sn = 's' // sun
		so = 'o' // sun edge
		ld = 'g' // land
	)
	rows := [matrix.Height - 1]string{
		"sobbbbcc",
		"oobbbbbb",
		"bbbbccbb",
		"bccbbbcc",
		"bbbbbbbb",
		"gggggggg",
		"gggggggg",
	}
	colors := map[byte]palette.Color{
		sk: palette.Blue,
		cl: palette.White,
		sn: palette.Yellow,
		so: palette.Orange,
		ld: palette.Green,
	}
	buf := &matrix.Buffer{}
	for x, c := range barColors {
		buf.Set(x, 0, c)
	}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			buf.Set(x, y+1, colors[row[x]])
		}
	}
	return buf.Frame()
}()

// drawMenu paints the menu bar, the glyph of the slot under the cursor and
// the cursor itself onto a blank buffer.
func drawMenu(buf *matrix.Buffer, cursor int, slots []Mode) {
	buf.Clear()
	for x, c := range barColors {
		buf.Set(x, 0, c)
	}
	color := barColors[cursor%len(barColors)]
	if cursor < len(slots) {
		for _, half := range glyphs[slots[cursor]] {
			for _, p := range half {
				buf.Set(p.x, p.y, color)
			}
		}
	}
	buf.Set(cursor, 0, palette.Grey)
}

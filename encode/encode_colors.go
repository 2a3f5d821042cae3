package encode

import (
	"github.com/fatih/color"
)

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	FieldColor
	StringColor
	NumberColor
	LiteralColor
	PunctColor
)

// Colors maps token classes to terminal color functions. Coloring only
// wraps spans; the underlying byte stream is unchanged apart from the
// escape sequences.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			CommentColor: color.BlueString,
			FieldColor:   color.RGB(196, 96, 16).SprintfFunc(),
			StringColor:  color.GreenString,
			NumberColor:  color.RGB(128, 216, 236).SprintfFunc(),
			LiteralColor: color.MagentaString,
			PunctColor:   color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
}

func (c *Colors) Paint(attr ColorAttr, s string) string {
	f := c.Map[attr]
	if f == nil {
		f = c.Default
	}
	return f("%s", s)
}

func colorDefault(msg string, args ...any) string {
	return color.WhiteString(msg, args...)
}

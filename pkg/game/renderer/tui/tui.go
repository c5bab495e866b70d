package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"riftwalker/pkg/engine/terminal"
	"riftwalker/pkg/game/devtools"
	"riftwalker/pkg/game/renderer"
	"riftwalker/pkg/game/state"
	gameworld "riftwalker/pkg/game/world"
	"riftwalker/pkg/logger"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 15
	// Lines needed outside viewport:
	// - Header + blank (2)
	// - Room line + exits + blank (3)
	// - Legend (2)
	// - Messages pane (header + 5 messages + footer = 7)
	// - Input prompt (2)
	ViewportTopMargin = 16
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	in       io.Reader
	out      io.Writer
	dumpPath string

	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
	colorRoom        color.Style

	glyphStyles map[renderer.Glyph]color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer reading commands from stdin.
// dumpPath is where the "d" command writes a map dump.
func New(dumpPath string) *TUIRenderer {
	r := NewWithIO(os.Stdin, os.Stdout)
	r.dumpPath = dumpPath
	return r
}

// NewWithIO creates a TUI renderer on the given streams
func NewWithIO(in io.Reader, out io.Writer) *TUIRenderer {
	return &TUIRenderer{in: in, out: out, dumpPath: devtools.DefaultDumpFilename}
}

// Name returns the renderer name
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorRoom = color.Style{color.FgBlue}

	t.glyphStyles = map[renderer.Glyph]color.Style{
		renderer.GlyphFloor:         {color.FgGray},
		renderer.GlyphWall:          {color.FgGray, color.OpBold},
		renderer.GlyphDoorway:       {color.FgYellow, color.OpBold},
		renderer.GlyphLockedDoorway: {color.FgRed, color.OpBold},
		renderer.GlyphHealth:        {color.FgGreen},
		renderer.GlyphPatrol:        {color.FgRed},
		renderer.GlyphFlyer:         {color.FgRed},
		renderer.GlyphTurret:        {color.FgRed},
		renderer.GlyphAbility:       {color.FgCyan, color.OpBold},
		renderer.GlyphPlayer:        {color.FgGreen, color.BgBlack, color.OpBold},
	}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Run draws frames and executes commands until "q" or end of input
func (t *TUIRenderer) Run(s *state.Session) error {
	if s.World == nil {
		if err := s.RegenerateRandom(); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(t.in)
	for {
		t.clear()
		cols, rows := t.GetViewportSize()
		fmt.Fprint(t.out, t.Frame(s, cols, rows))

		if !scanner.Scan() {
			return scanner.Err()
		}
		if quit := t.Execute(s, scanner.Text()); quit {
			return nil
		}
	}
}

// Execute runs one command line against the session. Returns true on quit.
func (t *TUIRenderer) Execute(s *state.Session, line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "q", "quit":
		return true
	case "r", "regen":
		if err := s.RegenerateRandom(); err != nil {
			s.AddMessage(t.colorDenied.Sprint(err.Error()))
		}
	case "s", "seed":
		if len(fields) < 2 {
			s.AddMessage(t.colorDenied.Sprint("usage: s <seed>"))
			return false
		}
		seed, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			s.AddMessage(t.colorDenied.Sprintf("bad seed %q", fields[1]))
			return false
		}
		if err := s.Regenerate(seed); err != nil {
			s.AddMessage(t.colorDenied.Sprint(err.Error()))
		}
	case "d", "dump":
		path, err := devtools.DumpToFile(s, t.dumpPath)
		if err != nil {
			s.AddMessage(t.colorDenied.Sprintf("dump failed: %v", err))
		} else {
			s.AddMessage("map written to " + path)
		}
	case "m", "devmap":
		devtools.SwitchToDevMap(s)
	case "g", "go":
		if len(fields) < 2 {
			s.AddMessage(t.colorDenied.Sprint("usage: g <room>"))
			return false
		}
		t.enter(s, fields[1])
	default:
		// A bare number moves to that room
		t.enter(s, fields[0])
	}
	return false
}

func (t *TUIRenderer) enter(s *state.Session, arg string) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		s.AddMessage(t.colorDenied.Sprintf("unknown command %q", arg))
		return
	}
	if err := s.Enter(id); err != nil {
		if !errors.Is(err, state.ErrLocked) {
			s.AddMessage(t.colorDenied.Sprintf("cannot enter room %d: %v", id, err))
		}
		logger.Log.WithField("room", id).WithError(err).Debug("move refused")
	}
}

// Frame renders a complete frame for a cols x rows map viewport
func (t *TUIRenderer) Frame(s *state.Session, cols, rows int) string {
	var sb strings.Builder

	sb.WriteString(t.colorAction.Sprintf("Seed %d  (world #%d)", s.Seed, s.Generation) + "\n\n")

	room := s.Current()
	if room == nil {
		sb.WriteString(t.colorSubtle.Sprint("(no world)") + "\n")
		return sb.String()
	}

	sb.WriteString(t.FormatText("GT{IN_ROOM} ROOM{%d} (GT{%s})\n", room.ID, roomTypeKey(room.Type)))
	sb.WriteString(t.exitsLine(s, room) + "\n\n")

	t.writeMap(&sb, renderer.SessionCanvas(s), room, cols, rows)
	sb.WriteString("\n")

	sb.WriteString(t.abilitiesLine(s) + "\n")
	sb.WriteString(t.legendLine() + "\n")

	t.writeMessagesPane(&sb, s, cols)
	sb.WriteString(t.FormatText("ACTION{r}egen  ACTION{s}eed <n>  ACTION{g}o <room>  ACTION{d}ump  dev ACTION{m}ap  ACTION{q}uit\n> "))

	return sb.String()
}

func (t *TUIRenderer) writeMap(sb *strings.Builder, c *renderer.Canvas, room *gameworld.Room, cols, rows int) {
	px, py := room.CenterCell()
	x0, y0 := c.Window(px, py, cols, rows)

	for y := y0; y < y0+rows && y < c.Height; y++ {
		for x := x0; x < x0+cols && x < c.Width; x++ {
			sb.WriteString(t.renderGlyph(c.At(x, y)))
		}
		sb.WriteString("\n")
	}
}

// renderGlyph returns the styled symbol of a glyph
func (t *TUIRenderer) renderGlyph(g renderer.Glyph) string {
	symbol := string(g.Symbol())
	if style, ok := t.glyphStyles[g]; ok {
		return style.Sprint(symbol)
	}
	return symbol
}

func (t *TUIRenderer) exitsLine(s *state.Session, room *gameworld.Room) string {
	parts := make([]string, 0, len(room.Connections))
	for _, id := range room.Connections {
		next := s.World.Room(id)
		if next == nil {
			continue
		}
		label := t.FormatText("ACTION{%d}", id)
		if next.IsGated() && !s.HasAbility(next.RequiredAbility) {
			label += t.colorDenied.Sprintf(" (%s)", dynamicGet(abilityKey(next.RequiredAbility)))
		}
		parts = append(parts, label)
	}
	if len(parts) == 0 {
		return t.FormatText("GT{EXITS} ") + t.colorSubtle.Sprint("-")
	}
	// Labels are already formatted; translated names must not reach FormatText again
	return t.FormatText("GT{EXITS} ") + strings.Join(parts, ", ")
}

func (t *TUIRenderer) abilitiesLine(s *state.Session) string {
	held := []string{}
	for _, a := range gameworld.Abilities() {
		if s.HasAbility(a) {
			held = append(held, t.glyphStyles[renderer.GlyphAbility].Sprint(dynamicGet(abilityKey(a))))
		}
	}
	line := t.colorSubtle.Sprint(dynamicGet("ABILITIES") + ": ")
	if len(held) == 0 {
		return line + t.colorSubtle.Sprint("(none)")
	}
	return line + strings.Join(held, t.colorSubtle.Sprint(", "))
}

func (t *TUIRenderer) legendLine() string {
	parts := make([]string, 0, len(renderer.Glyphs()))
	for _, g := range renderer.Glyphs() {
		parts = append(parts, t.renderGlyph(g)+" "+dynamicGet(g.LegendKey()))
	}
	return strings.Join(parts, "  ")
}

// writeMessagesPane renders the messages log pane
func (t *TUIRenderer) writeMessagesPane(sb *strings.Builder, s *state.Session, width int) {
	label := " Messages "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - len(label)
	if rightLen < 1 {
		rightLen = 1
	}

	sb.WriteString("\n")
	sb.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)) + "\n")
	if len(s.Messages) == 0 {
		sb.WriteString(t.colorSubtle.Sprint("  (no messages)") + "\n")
	} else {
		for _, msg := range s.Messages {
			sb.WriteString("  " + msg + "\n")
		}
	}
	sb.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", width)) + "\n\n")
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ROOM":
			val = t.colorRoom.Sprint(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
			continue
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// GetViewportSize returns the viewport dimensions (cols, rows) based on terminal size
func (t *TUIRenderer) GetViewportSize() (cols, rows int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth - 2
	rows = termHeight - ViewportTopMargin

	// Ensure minimum size
	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	return cols, rows
}

// clear clears the terminal screen
func (t *TUIRenderer) clear() {
	if t.out != os.Stdout || !terminal.IsInteractive() {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

func roomTypeKey(rt gameworld.RoomType) string {
	return "ROOM_TYPE_" + strings.ToUpper(string(rt))
}

func abilityKey(a gameworld.Ability) string {
	return "ABILITY_" + strings.ToUpper(string(a))
}

package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"github.com/sheikhrachel/toroidal-gol/model"
	"github.com/sheikhrachel/toroidal-gol/utils"
)

const (
	universeView = "universe"
	statusView   = "status"

	minInterval = 16 * time.Millisecond
	maxTicks    = 64
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI is an interactive terminal front end for a single universe.
// Every universe access happens on the gocui main loop.
type ConsoleUI struct {
	u     *model.Universe
	src   model.Source
	timer *utils.Timer
	g     *gocui.Gui
	k     []keyBinding

	interval   time.Duration
	ticks      int
	running    bool
	generation int

	// selected cell, kept visible by layout
	row, column int

	liveFiller string
	deadFiller string
	runState   map[bool]string
}

// NewConsoleUI prepares the view. src feeds randomization and timer records
// the tick scopes.
func NewConsoleUI(u *model.Universe, src model.Source, timer *utils.Timer, config utils.Config) *ConsoleUI {
	au := aurora.NewAurora(config.Colors)
	t := &ConsoleUI{
		u:          u,
		src:        src,
		timer:      timer,
		interval:   max(config.FrameRate, minInterval),
		ticks:      max(config.TicksPerFrame, 1),
		liveFiller: au.Green("█").String(),
		deadFiller: "░",
		runState: map[bool]string{
			false: au.Blue("paused").String(),
			true:  au.Cyan("running").String(),
		},
	}
	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Run/Pause", t.cmdRun, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'r', "R", "Randomize", t.cmdRandomize, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'g', "G", "Glider", t.stamp("glider"), ""},
		{'b', "B", "Blinker", t.stamp("blinker"), ""},
		{'s', "S", "Set cell", t.cmdSet, ""},
		{'x', "X", "Kill cell", t.cmdKill, ""},
		{'+', "+", "More ticks", t.cmdTicks(1), ""},
		{'-', "-", "Fewer ticks", t.cmdTicks(-1), ""},
		{gocui.KeyArrowUp, "", "", t.cmdMove(-1, 0), universeView},
		{gocui.KeyArrowDown, "", "", t.cmdMove(1, 0), universeView},
		{gocui.KeyArrowLeft, "", "", t.cmdMove(0, -1), universeView},
		{gocui.KeyArrowRight, "", "", t.cmdMove(0, 1), universeView},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdToggle, universeView},
	}
	return t
}

// Run blocks until the user quits or ctx is cancelled
func (t *ConsoleUI) Run(ctx context.Context) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return err
	}
	defer g.Close()

	t.g = g
	g.Mouse = true
	g.Cursor = true
	g.SetManagerFunc(t.layout)
	if err = t.initKeyBindings(); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go t.schedule(ctx, done)

	if err = g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

// Generation returns the number of generations advanced so far
func (t *ConsoleUI) Generation() int {
	return t.generation
}

func (t *ConsoleUI) initKeyBindings() error {
	for _, kb := range t.k {
		h := kb.handler
		err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone,
			func(_ *gocui.Gui, v *gocui.View) error { return h(v) })
		if err != nil {
			return err
		}
	}
	return nil
}

// schedule requests a frame every interval until done is closed
func (t *ConsoleUI) schedule(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
			return
		case <-ticker.C:
			t.g.Update(t.frame)
		}
	}
}

func (t *ConsoleUI) frame(*gocui.Gui) error {
	if t.running {
		t.advance()
	}
	return nil
}

func (t *ConsoleUI) advance() {
	for range t.ticks {
		stop := t.timer.Time("Universe::tick")
		t.u.Tick()
		stop()
		t.generation++
	}
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	x1 := max(1, min(t.u.Width()+1, maxX-1))
	y1 := max(1, min(t.u.Height()+1, maxY-5))

	v, err := g.SetView(universeView, 0, 0, x1, y1)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = fmt.Sprintf("universe %dx%d", t.u.Width(), t.u.Height())
		if _, err = g.SetCurrentView(universeView); err != nil {
			return err
		}
	}
	v.Clear()
	t.drawUniverse(v)
	t.showCursor(v)

	s, err := g.SetView(statusView, 0, max(y1+1, maxY-4), max(1, maxX-1), max(y1+2, maxY-1))
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	s.Clear()
	t.drawStatus(s)
	return nil
}

func (t *ConsoleUI) drawUniverse(v *gocui.View) {
	var sb strings.Builder
	for row := range t.u.Height() {
		for column := range t.u.Width() {
			if t.u.Get(row, column) == model.Alive {
				sb.WriteString(t.liveFiller)
			} else {
				sb.WriteString(t.deadFiller)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(v, sb.String())
}

func (t *ConsoleUI) drawStatus(v *gocui.View) {
	var tickMean time.Duration
	for _, s := range t.timer.Spans() {
		if s.Name == "Universe::tick" {
			tickMean = s.Mean()
		}
	}
	fmt.Fprintf(v, " %s | gen %d | pop %d | ticks/frame %d | tick %v\n",
		t.runState[t.running], t.generation, t.u.Population(), t.ticks, tickMean)

	help := make([]string, 0, len(t.k))
	for _, kb := range t.k {
		if kb.name == "" || kb.key == 'q' {
			continue
		}
		help = append(help, kb.name+" "+kb.descr)
	}
	fmt.Fprint(v, " "+strings.Join(help, " | "))
}

// showCursor scrolls v so the selected cell is inside the pane and places
// the cursor on it
func (t *ConsoleUI) showCursor(v *gocui.View) {
	sx, sy := v.Size()
	if sx <= 0 || sy <= 0 || t.u.Width() == 0 || t.u.Height() == 0 {
		return
	}
	ox, oy := v.Origin()
	ox, oy = follow(t.column, ox, sx), follow(t.row, oy, sy)
	if err := v.SetOrigin(ox, oy); err != nil {
		return
	}
	// follow keeps the point inside the pane
	_ = v.SetCursor(t.column-ox, t.row-oy)
}

// follow returns the origin of a window of the given size that contains pos,
// moving origin as little as possible
func follow(pos, origin, size int) int {
	switch {
	case pos < origin:
		return pos
	case pos >= origin+size:
		return pos - size + 1
	}
	return origin
}

// pick selects the cell under the cursor of v. Mouse clicks move the view
// cursor before the handler runs.
func (t *ConsoleUI) pick(v *gocui.View) {
	if v == nil || v.Name() != universeView {
		return
	}
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	if row, column := cy+oy, cx+ox; t.contains(row, column) {
		t.row, t.column = row, column
	}
}

// selected returns the selected cell, false on an empty universe
func (t *ConsoleUI) selected(v *gocui.View) (row, column int, ok bool) {
	t.pick(v)
	return t.row, t.column, t.contains(t.row, t.column)
}

func (t *ConsoleUI) contains(row, column int) bool {
	return row >= 0 && row < t.u.Height() && column >= 0 && column < t.u.Width()
}

func (t *ConsoleUI) cmdQuit(*gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdRun(*gocui.View) error {
	t.running = !t.running
	return nil
}

func (t *ConsoleUI) cmdStep(*gocui.View) error {
	t.running = false
	t.advance()
	return nil
}

func (t *ConsoleUI) cmdRandomize(*gocui.View) error {
	t.u.Randomize(t.src)
	t.generation = 0
	return nil
}

func (t *ConsoleUI) cmdClear(*gocui.View) error {
	t.running = false
	t.u.Clear()
	t.generation = 0
	return nil
}

func (t *ConsoleUI) cmdSet(v *gocui.View) error {
	if row, column, ok := t.selected(v); ok {
		t.u.SetCell(row, column)
	}
	return nil
}

func (t *ConsoleUI) cmdKill(v *gocui.View) error {
	if row, column, ok := t.selected(v); ok {
		t.u.ClearCell(row, column)
	}
	return nil
}

func (t *ConsoleUI) cmdToggle(v *gocui.View) error {
	if row, column, ok := t.selected(v); ok {
		t.u.ToggleCell(row, column)
	}
	return nil
}

func (t *ConsoleUI) stamp(name string) func(*gocui.View) error {
	p, _ := model.LookupPattern(name)
	return func(v *gocui.View) error {
		if row, column, ok := t.selected(v); ok {
			p.Stamp(t.u, row, column)
		}
		return nil
	}
}

func (t *ConsoleUI) cmdTicks(delta int) func(*gocui.View) error {
	return func(*gocui.View) error {
		t.ticks = min(max(t.ticks+delta, 1), maxTicks)
		return nil
	}
}

func (t *ConsoleUI) cmdMove(dRow, dColumn int) func(*gocui.View) error {
	return func(v *gocui.View) error {
		if _, _, ok := t.selected(v); !ok {
			return nil
		}
		t.row = min(max(t.row+dRow, 0), t.u.Height()-1)
		t.column = min(max(t.column+dColumn, 0), t.u.Width()-1)
		if v != nil {
			t.showCursor(v)
		}
		return nil
	}
}

package main

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/message"

	"github.com/gogpu/ggbench"
)

var (
	labelStyle     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	valueStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	growingStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	saturatedStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	helpStyle      = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

var dashboardHelp = []string{
	"r restart  space overlay  1-6 graphic  n next bench  q quit",
	"+/- step  ]/[ max  >/< target fps",
}

// adjustKeys scale a tunable and restart the run.
var adjustKeys = map[rune]command{
	'+': {kind: cmdAdjust, param: ggbench.ParamStepCount, factor: adjustUp},
	'-': {kind: cmdAdjust, param: ggbench.ParamStepCount, factor: adjustDown},
	']': {kind: cmdAdjust, param: ggbench.ParamMaxCount, factor: adjustUp},
	'[': {kind: cmdAdjust, param: ggbench.ParamMaxCount, factor: adjustDown},
	'>': {kind: cmdAdjust, param: ggbench.ParamTargetFPS, factor: adjustUp},
	'<': {kind: cmdAdjust, param: ggbench.ParamTargetFPS, factor: adjustDown},
}

func openScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// dashboard shows the latest report in the terminal and turns key
// presses into commands for the frame loop.
type dashboard struct {
	screen  tcell.Screen
	printer *message.Printer
	events  chan command
	done    chan struct{}
	once    sync.Once

	perf    ggbench.PerfData
	changed bool
}

// newDashboard takes ownership of an initialized screen.
func newDashboard(screen tcell.Screen, printer *message.Printer) *dashboard {
	d := &dashboard{
		screen:  screen,
		printer: printer,
		events:  make(chan command, 16),
		done:    make(chan struct{}),
	}
	go d.poll()
	return d
}

func (d *dashboard) poll() {
	defer close(d.events)
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		cmd, ok := keyCommand(ev)
		if !ok {
			continue
		}
		select {
		case d.events <- cmd:
		case <-d.done:
			return
		}
	}
}

// keyCommand maps a terminal event to a command.
func keyCommand(ev tcell.Event) (command, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return command{kind: cmdRedraw}, true
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return command{kind: cmdQuit}, true
		case tcell.KeyRune:
		default:
			return command{}, false
		}
		switch r := ev.Rune(); {
		case r == 'q':
			return command{kind: cmdQuit}, true
		case r == 'r':
			return command{kind: cmdRestart}, true
		case r == ' ':
			return command{kind: cmdToggleStatus}, true
		case r == 'n':
			return command{kind: cmdNextBench}, true
		case r >= '1' && r < '1'+rune(len(ggbench.GraphicTypes())):
			return command{kind: cmdGraphic, graphic: ggbench.GraphicType(r - '1')}, true
		}
		if adj, ok := adjustKeys[ev.Rune()]; ok {
			return adj, true
		}
	}
	return command{}, false
}

func (d *dashboard) commands() <-chan command { return d.events }

// update stores a report; it is drawn after the current frame.
func (d *dashboard) update(p ggbench.PerfData) {
	d.perf = p
	d.changed = true
}

func (d *dashboard) dirty() bool { return d.changed }

func (d *dashboard) draw(view *ggbench.View) {
	d.changed = false
	s := d.screen
	s.Clear()

	params := view.Host().Params()
	overlay := "off"
	if params.ShowStatus {
		overlay = "on"
	}
	state := growingStyle
	if d.perf.Saturated {
		state = saturatedStyle
	}

	rows := []struct {
		label, value string
		style        tcell.Style
	}{
		{"bench", view.Bench().Name(), valueStyle},
		{"fps", d.printer.Sprintf("%.1f / %.0f", d.perf.FPS, params.TargetFPS), valueStyle},
		{"draw", d.printer.Sprintf("%.2f ms", d.perf.DrawTime), valueStyle},
		{"shapes", d.printer.Sprintf("%d", d.perf.DrawCount), valueStyle},
		{"state", stateName(d.perf.Saturated), state},
		{"graphic", params.Graphic.String(), valueStyle},
		{"overlay", overlay, valueStyle},
		{"step", d.printer.Sprintf("%d", params.StepCount), valueStyle},
		{"max", d.printer.Sprintf("%d", params.MaxCount), valueStyle},
	}
	for y, row := range rows {
		drawText(s, 1, y+1, labelStyle, row.label)
		drawText(s, 10, y+1, row.style, row.value)
	}
	for i, line := range dashboardHelp {
		drawText(s, 1, len(rows)+2+i, helpStyle, line)
	}
	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func (d *dashboard) close() {
	d.once.Do(func() {
		close(d.done)
		d.screen.Fini()
	})
}

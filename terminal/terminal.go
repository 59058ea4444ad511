// Package terminal runs the interactive configurator on a tcell
// screen: it feeds key and pointer events to the editor, repaints the
// rendered frame after every state change, and performs the file and
// design-library I/O the editor requests.
package terminal

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"plank/core"
	"plank/editor"
	"plank/export"
	"plank/render"
	"plank/store"
)

// statusRows is the number of rows reserved below the drawing area.
const statusRows = 2

// UI couples the editor to one tcell screen.
type UI struct {
	screen tcell.Screen
	editor *editor.Editor
	store  *store.Store // may be nil when no design library is open

	frame    *render.Frame
	dragID   string
	dragKind render.HitKind
	status   string
}

// Run starts the interactive loop and blocks until the user quits.
func Run(ed *editor.Editor, st *store.Store) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	ui := &UI{screen: screen, editor: ed, store: st}
	return ui.loop()
}

func (ui *UI) loop() error {
	for {
		ui.draw()

		switch ev := ui.screen.PollEvent().(type) {
		case *tcell.EventResize:
			ui.screen.Sync()
		case *tcell.EventKey:
			ui.handleKey(ev)
		case *tcell.EventMouse:
			ui.handleMouse(ev)
		}

		if err := ui.service(); err != nil {
			ui.editor.SetStatus(fmt.Sprintf("error: %v", err))
		}
		if ui.editor.IsQuitRequested() {
			return nil
		}
	}
}

func (ui *UI) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ui.editor.HandleRune('q')
	case tcell.KeyTab:
		ui.editor.HandleTab()
	case tcell.KeyEnter:
		ui.editor.HandleEnter()
	case tcell.KeyEscape:
		ui.editor.HandleEscape()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ui.editor.HandleBackspace()
	case tcell.KeyRune:
		ui.editor.HandleRune(ev.Rune())
	}
}

// handleMouse turns pointer events into drag gestures: a press over a
// shelf or column board grabs it, motion while held feeds normalized
// positions to the editor, release ends the gesture.
func (ui *UI) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	if ev.Buttons()&tcell.Button1 == 0 {
		if ui.dragID != "" {
			ui.dragID = ""
			ui.editor.DragEnd()
		}
		return
	}

	if ui.dragID == "" && ui.frame != nil {
		for _, hit := range ui.frame.Hits {
			if hit.Contains(x, y) {
				ui.dragID = hit.ID
				ui.dragKind = hit.Kind
				break
			}
		}
	}
	if ui.dragID == "" || ui.frame == nil {
		return
	}

	var pos float64
	if ui.dragKind == render.HitShelf {
		pos = ui.frame.Front.ShelfPosition(y)
	} else {
		pos = ui.frame.Front.ColumnPosition(x)
	}
	ui.editor.DragUpdate(ui.dragID, pos)
}

// service acts on any I/O the editor requested during event handling.
func (ui *UI) service() error {
	u := ui.editor.Unit()

	if format, filename := ui.editor.GetExportRequest(); format != "" {
		if err := ui.export(u, format, filename); err != nil {
			return err
		}
	}
	if name := ui.editor.GetSaveRequest(); name != "" {
		if ui.store == nil {
			return fmt.Errorf("no design library open")
		}
		if err := ui.store.Save(name, u); err != nil {
			return err
		}
		ui.editor.SetStatus(fmt.Sprintf("saved %q", name))
	}
	if name := ui.editor.GetLoadRequest(); name != "" {
		if ui.store == nil {
			return fmt.Errorf("no design library open")
		}
		loaded, err := ui.store.Load(name)
		if err != nil {
			return err
		}
		ui.editor.SetUnit(loaded)
		ui.editor.SetStatus(fmt.Sprintf("loaded %q", name))
	}
	if name := ui.editor.GetDeleteRequest(); name != "" {
		if ui.store == nil {
			return fmt.Errorf("no design library open")
		}
		if err := ui.store.Delete(name); err != nil {
			return err
		}
		ui.editor.SetStatus(fmt.Sprintf("deleted %q", name))
	}
	if ui.editor.GetListRequest() {
		if ui.store == nil {
			return fmt.Errorf("no design library open")
		}
		designs, err := ui.store.List()
		if err != nil {
			return err
		}
		names := make([]string, len(designs))
		for i, d := range designs {
			names[i] = d.Name
		}
		if len(names) == 0 {
			ui.editor.SetStatus("design library is empty")
		} else {
			ui.editor.SetStatus("designs: " + strings.Join(names, ", "))
		}
	}
	return nil
}

func (ui *UI) export(u *core.Unit, formatName, filename string) error {
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	exp, err := export.NewExporter(format)
	if err != nil {
		return err
	}
	out, err := exp.Export(u)
	if err != nil {
		return err
	}
	if filename == "" {
		filename = "design" + exp.GetFileExtension()
	}
	if err := os.WriteFile(filename, []byte(out), 0644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	ui.editor.SetStatus(fmt.Sprintf("exported %s to %s", exp.GetFormatName(), filename))
	return nil
}

func (ui *UI) draw() {
	ui.screen.Clear()
	w, h := ui.screen.Size()
	u := ui.editor.Unit()

	if msg := ui.editor.Status(); msg != "" {
		ui.status = msg
	}

	if h > statusRows {
		frame, err := render.NewRenderer(w, h-statusRows).Render(u, ui.editor.Geometry())
		if err != nil {
			ui.frame = nil
			ui.drawText(0, 0, err.Error(), tcell.StyleDefault)
		} else {
			ui.frame = frame
			ui.drawFrame(frame, u)
		}
	}

	ui.drawStatusBar(w, h, u)
	ui.screen.Show()
}

// drawFrame paints the rendered canvas: geometry runes in the
// material color, everything else (labels, dimension lines) in the
// annotation color.
func (ui *UI) drawFrame(frame *render.Frame, u *core.Unit) {
	boardColor := render.MaterialColor(u.Material)
	if u.ShowWireframe {
		boardColor = render.WireframeColor(u.Material)
	}
	boardStyle := tcell.StyleDefault.Foreground(toTcell(boardColor))
	annoStyle := tcell.StyleDefault.Foreground(toTcell(render.AnnotationColor()))

	cols, rows := frame.Canvas.Size()
	for y := 0; y < rows; y++ {
		row := frame.Canvas.Row(y)
		for x := 0; x < cols; x++ {
			r := row[x]
			if r == ' ' {
				continue
			}
			style := annoStyle
			if isBoardRune(r) {
				style = boardStyle
			}
			ui.screen.SetContent(x, y, r, nil, style)
		}
	}
}

// isBoardRune reports whether a canvas rune belongs to panel geometry
// rather than annotations.
func isBoardRune(r rune) bool {
	switch r {
	case '█', '▓', '░', '┆', '┌', '┐', '└', '┘':
		return true
	}
	return false
}

func (ui *UI) drawStatusBar(w, h int, u *core.Unit) {
	if h < statusRows {
		return
	}
	bar := tcell.StyleDefault.Reverse(true)

	summary := fmt.Sprintf(" %dx%dx%d mm  t=%d  %s  %s  [%s]  shelves:%d cols:%d ",
		core.Millimeters(u.Width), core.Millimeters(u.Height), core.Millimeters(u.Depth),
		core.Millimeters(u.Thickness), u.Material, u.ViewMode,
		ui.editor.FieldName(), len(u.Shelves), len(u.Columns))
	ui.drawText(0, h-2, pad(summary, w), bar)

	var line string
	if ui.editor.Mode() == editor.ModeCommand {
		line = ":" + ui.editor.CommandLine()
	} else if ui.status != "" {
		line = ui.status
	} else {
		line = "tab:field +/-:adjust s/c:add x:del drag:divide m:material v:view f:wire d:dims u/r:undo ::cmd q:quit"
	}
	ui.drawText(0, h-1, pad(line, w), tcell.StyleDefault)
}

func (ui *UI) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		ui.screen.SetContent(x+i, y, r, nil, style)
	}
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s[:w]
	}
	return s + strings.Repeat(" ", w-len(s))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

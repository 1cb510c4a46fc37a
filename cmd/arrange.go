package cmd

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/internal/core/services"
	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var arrangeCmd = &cobra.Command{
	Use:   "arrange",
	Short: "Reorder the portfolio interactively",
	Long: `Full-screen reordering of the display order. Move the cursor
with j/k, shift a piece with J/K, delete with d, undo the last delete
with u. Enter saves, Esc leaves the project untouched.`,
	RunE: runArrange,
}

func runArrange(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	if err := openProject(ctx); err != nil {
		return err
	}

	if projectService.Store().Len() == 0 {
		fmt.Println(ui.FormatWarning("Project is empty"))
		return nil
	}

	view, err := newArrangeView(projectService)
	if err != nil {
		return err
	}
	saved, err := view.Run()
	if err != nil {
		return err
	}
	if !saved {
		fmt.Println(ui.FormatInfo("Cancelled, nothing saved."))
		return nil
	}

	if err := projectService.SaveCurrent(ctx); err != nil {
		fmt.Println(ui.FormatError("Failed to save project"))
		return err
	}
	fmt.Println(ui.FormatSuccess("Order saved"))
	return nil
}

// arrangeView is a tcell screen for reordering the asset list
type arrangeView struct {
	project      *services.ProjectService
	screen       tcell.Screen
	width        int
	height       int
	cursor       int
	scrollOffset int
	status       string
}

func newArrangeView(project *services.ProjectService) (*arrangeView, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	width, height := screen.Size()
	return &arrangeView{
		project: project,
		screen:  screen,
		width:   width,
		height:  height,
	}, nil
}

// Run starts the event loop. It returns true when the user confirmed
// the new order.
func (v *arrangeView) Run() (bool, error) {
	defer v.screen.Fini()

	v.screen.Clear()
	v.render()

	for {
		ev := v.screen.PollEvent()

		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.width, v.height = ev.Size()
			v.screen.Sync()
			v.render()

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return false, nil
			}
			if ev.Key() == tcell.KeyEnter {
				return true, nil
			}
			v.handleKeyPress(ev)
			v.render()
		}
	}
}

func (v *arrangeView) handleKeyPress(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		v.moveCursor(-1)
	case tcell.KeyDown:
		v.moveCursor(1)
	case tcell.KeyHome:
		v.cursor = 0
		v.scrollOffset = 0
	case tcell.KeyEnd:
		v.cursor = v.project.Store().Len() - 1
		v.adjustScroll()
	}

	switch ev.Rune() {
	case 'j':
		v.moveCursor(1)
	case 'k':
		v.moveCursor(-1)
	case 'J':
		v.shiftCurrent(1)
	case 'K':
		v.shiftCurrent(-1)
	case 'g':
		v.cursor = 0
		v.scrollOffset = 0
	case 'G':
		v.cursor = v.project.Store().Len() - 1
		v.adjustScroll()
	case 'd':
		v.deleteCurrent()
	case 'u':
		v.undoDelete()
	}
}

func (v *arrangeView) moveCursor(delta int) {
	n := v.project.Store().Len()
	if n == 0 {
		return
	}
	v.cursor += delta
	if v.cursor < 0 {
		v.cursor = 0
	}
	if v.cursor >= n {
		v.cursor = n - 1
	}
	v.adjustScroll()
}

// shiftCurrent moves the piece under the cursor up or down one slot,
// keeping the cursor on it
func (v *arrangeView) shiftCurrent(delta int) {
	store := v.project.Store()
	target := v.cursor + delta
	if target < 0 || target >= store.Len() {
		return
	}
	store.MoveTo(v.cursor, target)
	v.cursor = target
	v.adjustScroll()
	v.status = ""
}

func (v *arrangeView) deleteCurrent() {
	store := v.project.Store()
	asset := store.At(v.cursor)
	if asset == nil {
		return
	}
	v.project.Delete([]string{asset.ID})
	if v.cursor >= store.Len() && v.cursor > 0 {
		v.cursor--
	}
	v.status = "Deleted " + asset.Title + " (u to undo)"
}

func (v *arrangeView) undoDelete() {
	if n := v.project.Undo(); n > 0 {
		v.status = fmt.Sprintf("Restored %d piece(s)", n)
	} else {
		v.status = "Nothing to undo"
	}
}

func (v *arrangeView) adjustScroll() {
	visibleLines := v.height - 6
	if v.cursor < v.scrollOffset {
		v.scrollOffset = v.cursor
	}
	if v.cursor >= v.scrollOffset+visibleLines {
		v.scrollOffset = v.cursor - visibleLines + 1
	}
}

func (v *arrangeView) render() {
	v.screen.Clear()

	store := v.project.Store()
	y := 0

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorPurple)
	v.drawText(0, y, "┌─ "+store.Metadata.PortfolioTitle, titleStyle)
	y++
	v.drawText(0, y, fmt.Sprintf("│  %d piece(s)", store.Len()), tcell.StyleDefault.Foreground(tcell.ColorGray))
	y++
	v.drawText(0, y, "└─────────────────────────────────────────────", tcell.StyleDefault.Foreground(tcell.ColorGray))
	y++

	visibleLines := v.height - 6
	for i := v.scrollOffset; i < store.Len() && i < v.scrollOffset+visibleLines; i++ {
		asset := store.At(i)
		style := tcell.StyleDefault
		prefix := "  "
		if i == v.cursor {
			style = style.Reverse(true)
			prefix = "▶ "
		}

		line := fmt.Sprintf("%s%3d  %s", prefix, i+1, asset.Title)
		if asset.Year != "" {
			line += "  (" + asset.Year + ")"
		}
		v.drawText(0, y, line, style)
		y++
	}

	footerY := v.height - 2
	v.drawText(0, footerY, strings.Repeat("─", v.width), tcell.StyleDefault.Foreground(tcell.ColorGray))
	footerY++
	help := "jk: Cursor │ JK: Shift piece │ d: Delete │ u: Undo │ Enter: Save │ Esc: Cancel"
	if v.status != "" {
		help = v.status
	}
	v.drawText(0, footerY, help, tcell.StyleDefault.Foreground(tcell.ColorGray))

	v.screen.Show()
}

func (v *arrangeView) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		if x+i >= v.width {
			break
		}
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

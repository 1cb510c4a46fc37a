package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/internal/core/services"
	"github.com/cadmiumcmyk/curator/pkg/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the portfolio interactively",
	Long: `Full-screen browser over the project: filter as you type,
sort for presentation, delete and undo, reorder. The stored order only
changes when you reorder; filtering and sorting are presentation only.
Changes are autosaved in the background and saved on quit.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	if err := openProject(ctx); err != nil {
		return err
	}

	m := newBrowseModel(projectService, time.Duration(appConfig.AutosaveSeconds)*time.Second)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("browse failed: %w", err)
	}

	if fm, ok := final.(browseModel); ok && fm.saveOnExit && projectService.Dirty() {
		if err := projectService.SaveCurrent(ctx); err != nil {
			fmt.Println(ui.FormatError("Failed to save project"))
			return err
		}
		fmt.Println(ui.FormatSuccess("Project saved"))
	}
	return nil
}

// autosaveTickMsg fires the periodic background save
type autosaveTickMsg time.Time

// browseModel is the bubbletea model for the project browser
type browseModel struct {
	project  *services.ProjectService
	interval time.Duration

	filter    textinput.Model
	filtering bool
	sort      domain.SortMode

	visible []*domain.Asset
	cursor  int

	width  int
	height int

	status     string
	saveOnExit bool
}

func newBrowseModel(project *services.ProjectService, interval time.Duration) browseModel {
	filter := textinput.New()
	filter.Placeholder = "filter by title or tag"
	filter.Prompt = "/ "
	filter.CharLimit = 64

	m := browseModel{
		project:    project,
		interval:   interval,
		filter:     filter,
		sort:       domain.SortAdded,
		saveOnExit: true,
	}
	m.refresh()
	return m
}

func (m browseModel) Init() tea.Cmd {
	return m.autosaveTick()
}

func (m browseModel) autosaveTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return autosaveTickMsg(t)
	})
}

// refresh recomputes the visible slice from the store
func (m *browseModel) refresh() {
	view := domain.View{Query: m.filter.Value(), Sort: m.sort}
	m.visible = view.Compute(m.project.Store())
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case autosaveTickMsg:
		if m.project.Dirty() {
			if err := m.project.Autosave(getContext()); err != nil {
				m.status = "autosave failed: " + err.Error()
			} else {
				m.status = "autosaved " + time.Time(msg).Format("15:04:05")
			}
		}
		return m, m.autosaveTick()

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFiltering(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m browseModel) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.refresh()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refresh()
	return m, cmd
}

func (m browseModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "ctrl+c":
		m.saveOnExit = false
		return m, tea.Quit

	case "/":
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case "g":
		m.cursor = 0

	case "G":
		m.cursor = len(m.visible) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}

	case "s":
		m.sort = nextSortMode(m.sort)
		m.refresh()
		m.status = "sort: " + sortModeName(m.sort)

	case "J":
		m.shiftCurrent(1)

	case "K":
		m.shiftCurrent(-1)

	case "d":
		if asset := m.current(); asset != nil {
			m.project.Delete([]string{asset.ID})
			m.refresh()
			m.status = "deleted " + asset.Title + " (u to undo)"
		}

	case "u":
		if n := m.project.Undo(); n > 0 {
			m.refresh()
			m.status = fmt.Sprintf("restored %d piece(s)", n)
		} else {
			m.status = "nothing to undo"
		}

	case "w":
		if err := m.project.SaveCurrent(getContext()); err != nil {
			m.status = "save failed: " + err.Error()
		} else {
			m.status = "saved"
		}
	}
	return m, nil
}

// shiftCurrent reorders the stored list. Only allowed in stored order
// with no filter, so the visible index matches the store index.
func (m *browseModel) shiftCurrent(delta int) {
	if m.sort != domain.SortAdded || m.filter.Value() != "" {
		m.status = "reorder needs the added order and no filter"
		return
	}
	target := m.cursor + delta
	if target < 0 || target >= m.project.Store().Len() {
		return
	}
	m.project.Store().MoveTo(m.cursor, target)
	m.cursor = target
	m.refresh()
}

func (m browseModel) current() *domain.Asset {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return m.visible[m.cursor]
}

func (m browseModel) View() string {
	store := m.project.Store()

	header := ui.FormatTitle(store.Metadata.PortfolioTitle)
	header += ui.FormatMuted(fmt.Sprintf("  %d of %d piece(s), sort: %s",
		len(m.visible), store.Len(), sortModeName(m.sort)))
	if m.project.Dirty() {
		header += ui.StyleAccent.Render(" *")
	}
	out := header + "\n"

	if m.filtering || m.filter.Value() != "" {
		out += m.filter.View() + "\n"
	}
	out += "\n"

	visibleLines := m.height - 7
	if visibleLines < 1 {
		visibleLines = 10
	}
	start := 0
	if m.cursor >= visibleLines {
		start = m.cursor - visibleLines + 1
	}

	for i := start; i < len(m.visible) && i < start+visibleLines; i++ {
		asset := m.visible[i]
		line := fmt.Sprintf("%3d  %s", i+1, asset.Title)
		if asset.Year != "" {
			line += "  (" + asset.Year + ")"
		}
		if len(asset.Tags) > 0 {
			line += "  " + ui.FormatMuted(asset.TagsString())
		}
		if i == m.cursor {
			out += ui.StyleSelected.Render("▶ "+line) + "\n"
		} else {
			out += "  " + line + "\n"
		}
	}
	if len(m.visible) == 0 {
		out += ui.FormatMuted("  nothing matches") + "\n"
	}

	out += "\n"
	if m.status != "" {
		out += ui.FormatMuted(m.status) + "\n"
	}
	out += ui.FormatMuted("jk: move │ JK: reorder │ /: filter │ s: sort │ d: delete │ u: undo │ w: save │ q: quit")
	return out
}

func nextSortMode(s domain.SortMode) domain.SortMode {
	switch s {
	case domain.SortAdded:
		return domain.SortTitle
	case domain.SortTitle:
		return domain.SortYear
	default:
		return domain.SortAdded
	}
}

func sortModeName(s domain.SortMode) string {
	switch s {
	case domain.SortTitle:
		return "title"
	case domain.SortYear:
		return "year"
	default:
		return "added"
	}
}

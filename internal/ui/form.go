package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spotbird/spotmix/internal/models"
	"github.com/spotbird/spotmix/internal/shared"
)

// focusArea identifies the dashboard form field holding keyboard focus.
type focusArea int

const (
	focusName focusArea = iota
	focusCount
	focusDesc
	focusGenres
	focusAreaCount
)

var _ list.Item = genreItem{}

// genreItem wraps a catalog genre to implement [list.Item].
type genreItem struct {
	name     string
	selected bool
}

func (i genreItem) FilterValue() string { return i.name }
func (i genreItem) Description() string { return "" }
func (i genreItem) Title() string {
	if i.selected {
		return styles.ok.Render("✓ " + i.name)
	}
	return "  " + i.name
}

// dashboardForm holds the generation form: playlist settings inputs plus the
// genre picker. The selection survives view changes; it is never reset
// automatically.
type dashboardForm struct {
	name      textinput.Model
	count     textinput.Model
	desc      textinput.Model
	genres    list.Model
	selection *models.GenreSelection
	catalog   []string
	loading   bool
	focus     focusArea
}

func newDashboardForm(defaults shared.DefaultsConfig) dashboardForm {
	name := textinput.New()
	name.Placeholder = "Playlist Name (Ex: Summer Vibes)"
	name.CharLimit = 100
	name.SetValue(defaults.PlaylistName)
	name.Focus()

	count := textinput.New()
	count.Placeholder = "500"
	count.CharLimit = 6
	if defaults.TrackCount > 0 {
		count.SetValue(strconv.Itoa(defaults.TrackCount))
	}

	desc := textinput.New()
	desc.Placeholder = "Description (Optional)"
	desc.CharLimit = 200
	desc.SetValue(defaults.Description)

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	genres := list.New(nil, delegate, 0, 0)
	genres.Title = "Select Genres"
	genres.SetShowStatusBar(false)
	genres.SetFilteringEnabled(false)
	genres.SetShowHelp(false)

	return dashboardForm{
		name:      name,
		count:     count,
		desc:      desc,
		genres:    genres,
		selection: models.NewGenreSelection(defaults.Genres...),
	}
}

// setCatalog replaces the genre catalog and rebuilds the list items.
func (f *dashboardForm) setCatalog(catalog []string) {
	f.catalog = catalog
	f.genres.SetItems(f.items())
}

func (f *dashboardForm) items() []list.Item {
	items := make([]list.Item, len(f.catalog))
	for i, g := range f.catalog {
		items[i] = genreItem{name: g, selected: f.selection.Has(g)}
	}
	return items
}

// toggleCurrent flips membership of the genre under the cursor.
func (f *dashboardForm) toggleCurrent() {
	item, ok := f.genres.SelectedItem().(genreItem)
	if !ok {
		return
	}
	f.selection.Toggle(item.name)
	f.genres.SetItem(f.genres.Index(), genreItem{name: item.name, selected: f.selection.Has(item.name)})
}

// clearSelection empties the selection and repaints the list.
func (f *dashboardForm) clearSelection() {
	f.selection.Clear()
	f.genres.SetItems(f.items())
}

// cycleFocus moves focus to the next (or previous) field.
func (f *dashboardForm) cycleFocus(reverse bool) tea.Cmd {
	if reverse {
		f.focus = (f.focus - 1 + focusAreaCount) % focusAreaCount
	} else {
		f.focus = (f.focus + 1) % focusAreaCount
	}

	f.name.Blur()
	f.count.Blur()
	f.desc.Blur()

	switch f.focus {
	case focusName:
		return f.name.Focus()
	case focusCount:
		return f.count.Focus()
	case focusDesc:
		return f.desc.Focus()
	}
	return nil
}

// buildRequest assembles and validates a [models.PlaylistRequest] from the
// current form state. Non-numeric track counts are rejected here and never
// reach the backend.
func (f *dashboardForm) buildRequest() (models.PlaylistRequest, error) {
	countText := strings.TrimSpace(f.count.Value())
	trackCount, err := strconv.Atoi(countText)
	if err != nil {
		return models.PlaylistRequest{}, fmt.Errorf("track count must be a number, got %q", countText)
	}

	req := models.PlaylistRequest{
		Name:        strings.TrimSpace(f.name.Value()),
		Description: strings.TrimSpace(f.desc.Value()),
		TrackCount:  trackCount,
		Genres:      f.selection.Values(),
	}

	if err := req.Validate(); err != nil {
		return models.PlaylistRequest{}, err
	}
	return req, nil
}

// update forwards a message to the focused field.
func (f *dashboardForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case focusName:
		f.name, cmd = f.name.Update(msg)
	case focusCount:
		f.count, cmd = f.count.Update(msg)
	case focusDesc:
		f.desc, cmd = f.desc.Update(msg)
	case focusGenres:
		f.genres, cmd = f.genres.Update(msg)
	}
	return cmd
}

func (f *dashboardForm) setSize(width, height int) {
	inputWidth := width - 8
	if inputWidth > 60 {
		inputWidth = 60
	}
	if inputWidth > 0 {
		f.name.Width = inputWidth
		f.count.Width = inputWidth
		f.desc.Width = inputWidth
	}

	listHeight := height - 14
	if listHeight < 5 {
		listHeight = 5
	}
	f.genres.SetSize(width-4, listHeight)
}

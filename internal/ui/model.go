package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/overlaykit/ctxmenu/focus"
	"github.com/overlaykit/ctxmenu/internal/logging/events"
	"github.com/overlaykit/ctxmenu/menu"
	"github.com/overlaykit/ctxmenu/theme"
)

var styles = theme.Default()

const menuWidth = 36

// File is a demo entry the context menu operates on.
type File struct {
	Name      string
	Protected bool
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Menu   key.Binding
	Filter key.Binding
	Escape key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate")),
		Menu:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "open menu")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// Model implements the Bubble Tea model for the demo browser: a file list
// whose entries carry a right-click context menu.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	files  []File
	cursor int

	clipboard string
	infoMsg   string
	errMsg    string

	registry    *focus.Table
	renderer    *menu.Renderer
	contextMenu *menu.Menu
	menuCursor  int

	filterInput textinput.Model
	filtering   bool

	keys keyMap
}

func defaultFiles() []File {
	return []File{
		{Name: "notes.txt"},
		{Name: "report.pdf"},
		{Name: "archive.tar.gz"},
		{Name: "system.cfg", Protected: true},
	}
}

// NewModel initialises the demo state.
func NewModel(width, height int, showFooter, verbose bool) *Model {
	registry := focus.NewTable()
	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "filter"
	if styles.FilterPrompt != nil {
		input.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		input.TextStyle = *styles.Filter
	}
	m := &Model{
		showFooter:  showFooter,
		verbose:     verbose,
		files:       defaultFiles(),
		registry:    registry,
		renderer:    menu.NewRenderer(styles, menuWidth),
		filterInput: input,
		keys:        defaultKeyMap(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	return m
}

// Registry exposes the focus registry for tests.
func (m *Model) Registry() *focus.Table { return m.registry }

// Menu exposes the open context menu, nil when closed.
func (m *Model) Menu() *menu.Menu { return m.contextMenu }

// MenuCursor returns the index of the focused node.
func (m *Model) MenuCursor() int { return m.menuCursor }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.handleWindowSize(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) tea.Cmd {
	if !m.fixedWidth {
		m.width = msg.Width
	}
	if !m.fixedHeight {
		m.height = msg.Height
	}
	if m.width > 0 && m.width < menuWidth {
		m.renderer.SetWidth(m.width)
	} else {
		m.renderer.SetWidth(menuWidth)
	}
	return nil
}

func (m *Model) menuOpen() bool {
	return m.contextMenu != nil && m.contextMenu.Visible()
}

func (m *Model) openMenu(trigger tea.Msg) {
	if len(m.files) == 0 {
		return
	}
	target := m.files[m.cursor]
	props := &menu.TriggerProps{
		Data: target,
		DisabledPredicates: map[string]menu.PredicateFunc{
			"delete": func(p *menu.Params) bool {
				f, ok := menu.PropsData[File](p)
				return ok && f.Protected
			},
		},
		OnClickHandlers: map[string]menu.HandlerFunc{
			"paste": func(p *menu.Params) {
				f, _ := menu.PropsData[File](p)
				m.infoMsg = fmt.Sprintf("Pasted %s into %s", m.clipboard, f.Name)
			},
		},
	}
	m.contextMenu = menu.New("context", "Actions", m.menuItems(), m.registry, m.renderer)
	m.contextMenu.Show(props, trigger)
	m.menuCursor = m.firstFocusableIndex()
	m.errMsg = ""
	events.UI.MenuOpened(m.contextMenu.ID(), target.Name)
}

func (m *Model) closeMenu() {
	if m.contextMenu == nil {
		return
	}
	id := m.contextMenu.ID()
	m.contextMenu.Hide()
	m.contextMenu = nil
	m.menuCursor = 0
	m.filtering = false
	m.filterInput.Blur()
	m.filterInput.SetValue("")
	events.UI.MenuClosed(id)
}

// menuItems builds the item set for the selected file. Handlers close over
// the model; the target file travels via the opener props.
func (m *Model) menuItems() []menu.Item {
	return []menu.Item{
		{ID: "open", Label: "Open", Hint: "enter", OnClick: func(p *menu.Params) {
			f, _ := menu.PropsData[File](p)
			m.infoMsg = fmt.Sprintf("Opened %s", f.Name)
		}},
		{ID: "copy", Label: "Copy", Hint: "c", OnClick: func(p *menu.Params) {
			f, _ := menu.PropsData[File](p)
			m.clipboard = f.Name
			m.infoMsg = fmt.Sprintf("Copied %s", f.Name)
		}},
		// Paste has no handler of its own; the opener supplies one.
		{ID: "paste", Label: "Paste", Hint: "v", Disabled: menu.Fn(func(*menu.Params) bool {
			return m.clipboard == ""
		})},
		{ID: "rename", Label: "Rename", Render: func(p *menu.Params) string {
			f, _ := menu.PropsData[File](p)
			return "Rename " + f.Name
		}, OnClick: func(p *menu.Params) {
			f, _ := menu.PropsData[File](p)
			m.renameFile(f.Name, f.Name+"~")
		}},
		{ID: "delete", Label: "Delete", OnClick: func(p *menu.Params) {
			f, _ := menu.PropsData[File](p)
			m.deleteFile(f.Name)
		}},
		{ID: "details", Label: "Details", Hidden: menu.Fn(func(*menu.Params) bool {
			return !m.verbose
		}), OnClick: func(p *menu.Params) {
			f, _ := menu.PropsData[File](p)
			m.infoMsg = fmt.Sprintf("%s protected=%v", f.Name, f.Protected)
		}},
	}
}

func (m *Model) renameFile(from, to string) {
	for i := range m.files {
		if m.files[i].Name == from {
			m.files[i].Name = to
			m.infoMsg = fmt.Sprintf("Renamed %s to %s", from, to)
			return
		}
	}
}

func (m *Model) deleteFile(name string) {
	for i := range m.files {
		if m.files[i].Name == name {
			m.files = append(m.files[:i], m.files[i+1:]...)
			m.infoMsg = fmt.Sprintf("Deleted %s", name)
			if m.cursor >= len(m.files) && m.cursor > 0 {
				m.cursor--
			}
			return
		}
	}
}

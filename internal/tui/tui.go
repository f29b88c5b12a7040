package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"statereadr/internal/config"
	"statereadr/internal/fetch"
	"statereadr/pkg/models"
)

type View int

const (
	ViewDashboard View = iota
	ViewDetail
	ViewWrite
	ViewLogin
	ViewRegister
	ViewHelp
)

type Model struct {
	cfg  *config.Config
	orch *fetch.Orchestrator

	view     View
	prevView View

	dashboard *fetch.Dashboard
	activeTab int
	list      list.Model
	viewport  viewport.Model

	article    models.Article
	notFoundID string

	viewer   models.User
	loggedIn bool

	writeForm    writeForm
	loginForm    loginForm
	registerForm registerForm

	width     int
	height    int
	err       error
	statusMsg string
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("27")).
			Padding(0, 1)

	sidebarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			PaddingLeft(2).
			Width(34)

	sidebarHeadStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))

	initialStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("63")).
			Padding(0, 1)

	articleTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86")).
				MarginBottom(1)
)

func New(cfg *config.Config, orch *fetch.Orchestrator) Model {
	delegate := list.NewDefaultDelegate()
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "State — Dashboard"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{
		cfg:          cfg,
		orch:         orch,
		view:         ViewDashboard,
		list:         l,
		viewport:     viewport.New(0, 0),
		writeForm:    newWriteForm(),
		loginForm:    newLoginForm(),
		registerForm: newRegisterForm(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadDashboard(m.orch),
		resolveViewer(m.orch),
		tea.EnterAltScreen,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.listWidth(), msg.Height-6)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 3
		if m.view == ViewDetail && m.notFoundID == "" {
			m.viewport.SetContent(renderArticle(m.article, m.width))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case dashboardLoadedMsg:
		m.dashboard = msg.dashboard
		m.err = nil
		if m.dashboard.Err != "" {
			m.err = fmt.Errorf("%s", m.dashboard.Err)
		}
		if m.activeTab >= len(m.tabs()) {
			m.activeTab = 0
		}
		m.refreshList()
		m.statusMsg = fmt.Sprintf("Loaded %d articles", len(m.dashboard.Articles))
		return m, nil

	case articleLoadedMsg:
		m.article = msg.article
		m.notFoundID = ""
		m.view = ViewDetail
		m.viewport.SetContent(renderArticle(m.article, m.width))
		m.viewport.GotoTop()
		m.statusMsg = ""
		return m, nil

	case articleNotFoundMsg:
		m.notFoundID = msg.id
		m.view = ViewDetail
		m.statusMsg = ""
		return m, nil

	case viewerResolvedMsg:
		m.viewer = msg.user
		m.loggedIn = msg.loggedIn
		return m, nil

	case loginDoneMsg:
		m.view = ViewDashboard
		m.err = nil
		m.statusMsg = "Logged in"
		return m, tea.Batch(loadDashboard(m.orch), resolveViewer(m.orch))

	case registerDoneMsg:
		m.view = ViewLogin
		m.err = nil
		m.statusMsg = "Registration successful! You can now log in."
		return m, nil

	case publishedMsg:
		m.view = ViewDashboard
		m.err = nil
		m.writeForm = newWriteForm()
		m.statusMsg = fmt.Sprintf("Published %q", msg.article.Title)
		return m, loadDashboard(m.orch)

	case errorMsg:
		m.err = msg.err
		return m, nil

	case statusMsg:
		m.statusMsg = string(msg)
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewDashboard:
		return m.handleDashboardKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewWrite:
		return m.handleWriteKeys(msg)
	case ViewLogin:
		return m.handleLoginKeys(msg)
	case ViewRegister:
		return m.handleRegisterKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	}
	return m, nil
}

func (m Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "enter":
		if i, ok := m.list.SelectedItem().(articleItem); ok {
			return m, tea.Batch(
				loadArticle(m.orch, i.article.ID),
				func() tea.Msg { return statusMsg("Loading article...") },
			)
		}

	case "tab":
		m.activeTab = (m.activeTab + 1) % len(m.tabs())
		m.refreshList()
		return m, nil

	case "shift+tab":
		m.activeTab = (m.activeTab - 1 + len(m.tabs())) % len(m.tabs())
		m.refreshList()
		return m, nil

	case "r":
		return m, tea.Batch(
			loadDashboard(m.orch),
			func() tea.Msg { return statusMsg("Refreshing articles...") },
		)

	case "w":
		if !m.loggedIn {
			m.view = ViewLogin
			m.statusMsg = "Log in to write an article"
			return m, nil
		}
		m.view = ViewWrite
		m.writeForm = newWriteForm()
		m.writeForm.setCategories(m.categories())
		return m, m.writeForm.focusCurrent()

	case "l":
		if m.loggedIn {
			if err := m.orch.Logout(); err != nil {
				m.err = err
				return m, nil
			}
			m.loggedIn = false
			m.viewer = models.User{}
			m.statusMsg = "Logged out"
			return m, loadDashboard(m.orch)
		}
		m.view = ViewLogin
		m.loginForm = newLoginForm()
		return m, m.loginForm.focusCurrent()

	case "?":
		m.prevView = m.view
		m.view = ViewHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc", "backspace":
		m.view = ViewDashboard
		m.notFoundID = ""
		return m, nil

	case "?":
		m.prevView = m.view
		m.view = ViewHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q":
		m.view = m.prevView
		return m, nil
	}
	return m, nil
}

// updateFocused routes non-key messages to whichever component owns the
// current view.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ViewDashboard:
		m.list, cmd = m.list.Update(msg)
	case ViewDetail:
		m.viewport, cmd = m.viewport.Update(msg)
	case ViewWrite:
		m.writeForm, cmd = m.writeForm.update(msg)
	case ViewLogin:
		m.loginForm, cmd = m.loginForm.update(msg)
	case ViewRegister:
		m.registerForm, cmd = m.registerForm.update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	switch m.view {
	case ViewDashboard:
		return m.renderDashboard()
	case ViewDetail:
		return m.renderDetail()
	case ViewWrite:
		return m.renderWrite()
	case ViewLogin:
		return m.renderLogin()
	case ViewRegister:
		return m.renderRegister()
	case ViewHelp:
		return m.renderHelp()
	}
	return ""
}

func (m Model) renderDashboard() string {
	var s strings.Builder

	s.WriteString(m.renderTabs())
	s.WriteString("\n")

	main := m.list.View()
	if sidebar := m.renderSidebar(); sidebar != "" {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, sidebar)
	}
	s.WriteString(main)
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("%v — press r to try again", m.err)))
	} else if m.statusMsg != "" {
		s.WriteString(statusStyle.Render(m.statusMsg))
	}
	s.WriteString("\n")

	account := "l: log in"
	if m.loggedIn {
		account = fmt.Sprintf("l: log out (%s)", m.viewer.Name)
	}
	s.WriteString(helpStyle.Render(
		"enter: read • tab: category • r: refresh • w: write • " + account + " • ?: help • q: quit",
	))

	return s.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.tabs()))
	for i, name := range m.tabs() {
		if i == m.activeTab {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	return brandStyle.Render("State") + "  " + strings.Join(tabs, " ")
}

// renderSidebar shows staff picks and recommended topics when the
// terminal is wide enough for the extra column.
func (m Model) renderSidebar() string {
	if m.width < 110 || m.dashboard == nil {
		return ""
	}

	var s strings.Builder
	s.WriteString(sidebarHeadStyle.Render("Staff Picks"))
	s.WriteString("\n\n")
	picks := m.dashboard.Articles
	if len(picks) > 3 {
		picks = picks[:3]
	}
	for _, a := range picks {
		s.WriteString(a.Title)
		s.WriteString("\n")
		s.WriteString(helpStyle.Render(fmt.Sprintf("%s · %s", a.Author.Name, formatPublishedDate(a.CreatedAt))))
		s.WriteString("\n\n")
	}

	s.WriteString(sidebarHeadStyle.Render("Recommended topics"))
	s.WriteString("\n\n")
	topics := m.dashboard.Categories
	if len(topics) > 6 {
		topics = topics[:6]
	}
	for _, c := range topics {
		s.WriteString("· " + c.Name + "\n")
	}

	return sidebarStyle.Render(s.String())
}

func (m Model) renderDetail() string {
	if m.notFoundID != "" {
		var s strings.Builder
		s.WriteString(errorStyle.Render(fmt.Sprintf("Article %s not found.", m.notFoundID)))
		s.WriteString("\n\n")
		s.WriteString(helpStyle.Render("esc: back to dashboard • q: quit"))
		return s.String()
	}

	var s strings.Builder
	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("↑/↓: scroll • esc: back • ?: help • q: quit"))
	return s.String()
}

func (m Model) renderHelp() string {
	help := `
State — Keyboard Shortcuts

Dashboard:
  ↑/↓, j/k     Navigate articles
  enter        Read article
  tab          Next category
  shift+tab    Previous category
  r            Refresh
  w            Write a new article
  l            Log in / log out
  /            Filter articles
  q, ctrl+c    Quit

Article:
  ↑/↓          Scroll
  esc          Back to dashboard

Write:
  tab          Next field
  ←/→          Pick category (when selected)
  ctrl+s       Publish
  esc          Discard and go back

General:
  ?            Show/hide this help
`
	return help + "\n" + helpStyle.Render("Press ? or esc to close help")
}

// tabs returns the tab labels: the for-you pseudo-tab plus one per
// category.
func (m Model) tabs() []string {
	tabs := []string{"For you"}
	for _, c := range m.categories() {
		tabs = append(tabs, c.Name)
	}
	return tabs
}

func (m Model) categories() []models.Category {
	if m.dashboard == nil {
		return nil
	}
	return m.dashboard.Categories
}

// refreshList rebuilds the visible items for the active category tab.
func (m *Model) refreshList() {
	if m.dashboard == nil {
		return
	}

	slug := fetch.ForYouSlug
	if m.activeTab > 0 && m.activeTab-1 < len(m.dashboard.Categories) {
		slug = m.dashboard.Categories[m.activeTab-1].Slug
	}

	articles := m.dashboard.Filter(slug)
	items := make([]list.Item, len(articles))
	for i, article := range articles {
		items[i] = newArticleItem(article, m.cfg.UI.ExcerptLength)
	}
	m.list.SetItems(items)
}

func (m Model) listWidth() int {
	if m.width >= 110 {
		return m.width - 36
	}
	return m.width
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"statereadr/internal/api"
	"statereadr/pkg/models"
)

// --- write form ---

const (
	writeFocusTitle = iota
	writeFocusCategory
	writeFocusBody
)

type writeForm struct {
	title      textinput.Model
	body       textarea.Model
	categories []models.Category
	catIndex   int // 0 means no category
	focus      int
}

func newWriteForm() writeForm {
	title := textinput.New()
	title.Placeholder = "Untitled article"
	title.CharLimit = 200

	body := textarea.New()
	body.Placeholder = "Start writing here..."

	return writeForm{title: title, body: body}
}

func (f *writeForm) setCategories(categories []models.Category) {
	f.categories = categories
	f.catIndex = 0
}

func (f *writeForm) focusCurrent() tea.Cmd {
	f.title.Blur()
	f.body.Blur()
	switch f.focus {
	case writeFocusTitle:
		return f.title.Focus()
	case writeFocusBody:
		return f.body.Focus()
	}
	return nil
}

func (f writeForm) update(msg tea.Msg) (writeForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case writeFocusTitle:
		f.title, cmd = f.title.Update(msg)
	case writeFocusBody:
		f.body, cmd = f.body.Update(msg)
	}
	return f, cmd
}

func (f writeForm) categoryID() string {
	if f.catIndex == 0 || f.catIndex-1 >= len(f.categories) {
		return ""
	}
	return f.categories[f.catIndex-1].ID
}

func (f writeForm) categoryLabel() string {
	if f.catIndex == 0 {
		return "(none)"
	}
	return f.categories[f.catIndex-1].Name
}

func (m Model) handleWriteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.view = ViewDashboard
		m.statusMsg = ""
		return m, nil

	case "tab":
		m.writeForm.focus = (m.writeForm.focus + 1) % 3
		return m, m.writeForm.focusCurrent()

	case "shift+tab":
		m.writeForm.focus = (m.writeForm.focus + 2) % 3
		return m, m.writeForm.focusCurrent()

	case "left", "right":
		if m.writeForm.focus == writeFocusCategory {
			n := len(m.writeForm.categories) + 1
			if msg.String() == "right" {
				m.writeForm.catIndex = (m.writeForm.catIndex + 1) % n
			} else {
				m.writeForm.catIndex = (m.writeForm.catIndex + n - 1) % n
			}
			return m, nil
		}

	case "ctrl+s":
		title := strings.TrimSpace(m.writeForm.title.Value())
		body := m.writeForm.body.Value()
		if title == "" || strings.TrimSpace(body) == "" {
			m.err = fmt.Errorf("title and content are required")
			return m, nil
		}
		m.err = nil
		draft := api.ArticleDraft{
			Title:    title,
			Content:  body,
			Category: m.writeForm.categoryID(),
		}
		return m, tea.Batch(
			doPublish(m.orch, draft),
			func() tea.Msg { return statusMsg("Publishing...") },
		)
	}

	var cmd tea.Cmd
	m.writeForm, cmd = m.writeForm.update(msg)
	return m, cmd
}

func (m Model) renderWrite() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("State — New Article"))
	s.WriteString("\n")

	s.WriteString(fieldLabel("Title", m.writeForm.focus == writeFocusTitle))
	s.WriteString(m.writeForm.title.View())
	s.WriteString("\n\n")

	s.WriteString(fieldLabel("Category", m.writeForm.focus == writeFocusCategory))
	s.WriteString("◂ " + m.writeForm.categoryLabel() + " ▸")
	s.WriteString("\n\n")

	s.WriteString(fieldLabel("Content", m.writeForm.focus == writeFocusBody))
	s.WriteString(m.writeForm.body.View())
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n")
	} else if m.statusMsg != "" {
		s.WriteString(statusStyle.Render(m.statusMsg))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("tab: next field • ←/→: category • ctrl+s: publish • esc: back"))
	return s.String()
}

// --- login form ---

type loginForm struct {
	username textinput.Model
	password textinput.Model
	focus    int
}

func newLoginForm() loginForm {
	username := textinput.New()
	username.Placeholder = "your_username"

	password := textinput.New()
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{username: username, password: password}
}

func (f *loginForm) focusCurrent() tea.Cmd {
	f.username.Blur()
	f.password.Blur()
	if f.focus == 0 {
		return f.username.Focus()
	}
	return f.password.Focus()
}

func (f loginForm) update(msg tea.Msg) (loginForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.username, cmd = f.username.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return f, cmd
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.view = ViewDashboard
		m.statusMsg = ""
		m.err = nil
		return m, nil

	case "tab", "shift+tab":
		m.loginForm.focus = 1 - m.loginForm.focus
		return m, m.loginForm.focusCurrent()

	case "ctrl+r":
		m.view = ViewRegister
		m.err = nil
		m.registerForm = newRegisterForm()
		return m, m.registerForm.focusCurrent()

	case "enter":
		username := strings.TrimSpace(m.loginForm.username.Value())
		password := m.loginForm.password.Value()
		if username == "" || password == "" {
			m.err = fmt.Errorf("username and password are required")
			return m, nil
		}
		m.err = nil
		return m, tea.Batch(
			doLogin(m.orch, username, password),
			func() tea.Msg { return statusMsg("Logging in...") },
		)
	}

	var cmd tea.Cmd
	m.loginForm, cmd = m.loginForm.update(msg)
	return m, cmd
}

func (m Model) renderLogin() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("State — Login"))
	s.WriteString("\n")

	s.WriteString(fieldLabel("Username", m.loginForm.focus == 0))
	s.WriteString(m.loginForm.username.View())
	s.WriteString("\n\n")
	s.WriteString(fieldLabel("Password", m.loginForm.focus == 1))
	s.WriteString(m.loginForm.password.View())
	s.WriteString("\n\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n")
	} else if m.statusMsg != "" {
		s.WriteString(statusStyle.Render(m.statusMsg))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("enter: log in • tab: switch field • ctrl+r: register • esc: back"))
	return s.String()
}

// --- register form ---

type registerForm struct {
	inputs []textinput.Model
	focus  int
}

var registerLabels = []string{"Username", "Email", "Password", "First Name", "Last Name", "Bio"}

func newRegisterForm() registerForm {
	inputs := make([]textinput.Model, len(registerLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
	}
	inputs[0].Placeholder = "your_username"
	inputs[1].Placeholder = "your_email@example.com"
	inputs[2].EchoMode = textinput.EchoPassword
	inputs[2].EchoCharacter = '•'
	inputs[5].Placeholder = "Tell us about yourself"

	return registerForm{inputs: inputs}
}

func (f *registerForm) focusCurrent() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f.inputs[f.focus].Focus()
}

func (f registerForm) update(msg tea.Msg) (registerForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (m Model) handleRegisterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.view = ViewLogin
		m.err = nil
		return m, m.loginForm.focusCurrent()

	case "tab":
		m.registerForm.focus = (m.registerForm.focus + 1) % len(m.registerForm.inputs)
		return m, m.registerForm.focusCurrent()

	case "shift+tab":
		n := len(m.registerForm.inputs)
		m.registerForm.focus = (m.registerForm.focus + n - 1) % n
		return m, m.registerForm.focusCurrent()

	case "enter":
		f := m.registerForm
		reg := api.Registration{
			Username:  strings.TrimSpace(f.inputs[0].Value()),
			Email:     strings.TrimSpace(f.inputs[1].Value()),
			Password:  f.inputs[2].Value(),
			FirstName: strings.TrimSpace(f.inputs[3].Value()),
			LastName:  strings.TrimSpace(f.inputs[4].Value()),
			Bio:       strings.TrimSpace(f.inputs[5].Value()),
		}
		if reg.Username == "" || reg.Email == "" || reg.Password == "" {
			m.err = fmt.Errorf("username, email and password are required")
			return m, nil
		}
		m.err = nil
		return m, tea.Batch(
			doRegister(m.orch, reg),
			func() tea.Msg { return statusMsg("Registering...") },
		)
	}

	var cmd tea.Cmd
	m.registerForm, cmd = m.registerForm.update(msg)
	return m, cmd
}

func (m Model) renderRegister() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("State — Register"))
	s.WriteString("\n")

	for i, input := range m.registerForm.inputs {
		s.WriteString(fieldLabel(registerLabels[i], m.registerForm.focus == i))
		s.WriteString(input.View())
		s.WriteString("\n\n")
	}

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n")
	} else if m.statusMsg != "" {
		s.WriteString(statusStyle.Render(m.statusMsg))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render("enter: create account • tab: next field • esc: back to login"))
	return s.String()
}

func fieldLabel(name string, focused bool) string {
	if focused {
		return sidebarHeadStyle.Render(name) + "\n"
	}
	return helpStyle.Render(name) + "\n"
}

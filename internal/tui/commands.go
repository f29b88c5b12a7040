package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"statereadr/internal/api"
	"statereadr/internal/fetch"
	"statereadr/pkg/models"
)

type dashboardLoadedMsg struct {
	dashboard *fetch.Dashboard
}

type articleLoadedMsg struct {
	article models.Article
}

type articleNotFoundMsg struct {
	id string
}

type viewerResolvedMsg struct {
	user     models.User
	loggedIn bool
}

type loginDoneMsg struct{}

type registerDoneMsg struct{}

type publishedMsg struct {
	article models.Article
}

type errorMsg struct {
	err error
}

type statusMsg string

func loadDashboard(orch *fetch.Orchestrator) tea.Cmd {
	return func() tea.Msg {
		return dashboardLoadedMsg{orch.LoadDashboard(context.Background())}
	}
}

func loadArticle(orch *fetch.Orchestrator, id string) tea.Cmd {
	return func() tea.Msg {
		article, err := orch.LoadArticle(context.Background(), id)
		if errors.Is(err, api.ErrNotFound) {
			return articleNotFoundMsg{id}
		}
		if err != nil {
			return errorMsg{err}
		}
		return articleLoadedMsg{article}
	}
}

func resolveViewer(orch *fetch.Orchestrator) tea.Cmd {
	return func() tea.Msg {
		user, ok := orch.CurrentUser(context.Background())
		return viewerResolvedMsg{user, ok}
	}
}

func doLogin(orch *fetch.Orchestrator, username, password string) tea.Cmd {
	return func() tea.Msg {
		if err := orch.Login(context.Background(), username, password); err != nil {
			return errorMsg{err}
		}
		return loginDoneMsg{}
	}
}

func doRegister(orch *fetch.Orchestrator, reg api.Registration) tea.Cmd {
	return func() tea.Msg {
		if err := orch.Register(context.Background(), reg); err != nil {
			return errorMsg{err}
		}
		return registerDoneMsg{}
	}
}

func doPublish(orch *fetch.Orchestrator, draft api.ArticleDraft) tea.Cmd {
	return func() tea.Msg {
		article, err := orch.Publish(context.Background(), draft)
		if err != nil {
			return errorMsg{err}
		}
		return publishedMsg{article}
	}
}

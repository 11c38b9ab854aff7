package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case ArticlesLoadedMsg:
		return m.handleArticlesLoaded(msg)
	case ArticleLoadedMsg:
		return m.handleArticleLoaded(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.State == StateList && m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.State == StateList && m.Cursor < len(m.Articles)-1 {
			m.Cursor++
		}
	case "enter":
		if m.State == StateList && len(m.Articles) > 0 {
			m.State = StateLoading
			return m, loadArticle(m.Client, m.Articles[m.Cursor].ID)
		}
	case "b", "esc":
		if m.State == StateDetail || m.State == StateError {
			m.State = StateList
			m.Detail = nil
			m.Err = nil
		}
	case "c":
		if m.State == StateList {
			m.CategoryIdx = (m.CategoryIdx + 1) % len(Categories)
			m.State = StateLoading
			m.Cursor = 0
			return m, loadArticles(m.Client, m.Category())
		}
	case "r":
		if m.State == StateList || m.State == StateError {
			m.State = StateLoading
			m.Cursor = 0
			return m, loadArticles(m.Client, m.Category())
		}
	}
	return m, nil
}

// handleArticlesLoaded processes list fetch completion
func (m Model) handleArticlesLoaded(msg ArticlesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Articles = msg.Articles
	m.State = StateList
	if m.Cursor >= len(m.Articles) {
		m.Cursor = 0
	}
	return m, nil
}

// handleArticleLoaded processes detail fetch completion
func (m Model) handleArticleLoaded(msg ArticleLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Detail = msg.Article
	m.State = StateDetail
	return m, nil
}

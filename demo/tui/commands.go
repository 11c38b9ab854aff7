package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// loadArticles creates a command to fetch the aggregated list
func loadArticles(client *APIClient, category string) tea.Cmd {
	return func() tea.Msg {
		articles, err := client.GetNews(category)
		return ArticlesLoadedMsg{
			Articles: articles,
			Err:      err,
		}
	}
}

// loadArticle creates a command to fetch one article's detail
func loadArticle(client *APIClient, id string) tea.Cmd {
	return func() tea.Msg {
		article, err := client.GetArticle(id)
		return ArticleLoadedMsg{
			Article: article,
			Err:     err,
		}
	}
}

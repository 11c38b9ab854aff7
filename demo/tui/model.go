package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"enlighten/types"
)

// State represents the browser state machine
type State string

const (
	StateLoading State = "loading"
	StateList    State = "list"
	StateDetail  State = "detail"
	StateError   State = "error"
)

// Categories the browser cycles through with 'c'. "All" maps to the
// providers' default top listings.
var Categories = []string{"All", "Technology", "Business", "Science", "Health", "Sports"}

// Model represents the TUI news browser state
type Model struct {
	Client *APIClient

	State       State
	CategoryIdx int
	Articles    []types.Article
	Cursor      int
	Detail      *types.ArticleDetail
	Err         error
}

// NewModel creates a new TUI model
func NewModel(apiURL string) Model {
	return Model{
		Client: NewAPIClient(apiURL),
		State:  StateLoading,
	}
}

// Category returns the currently selected category filter
func (m Model) Category() string {
	return Categories[m.CategoryIdx]
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return loadArticles(m.Client, m.Category())
}

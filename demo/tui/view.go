package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("📰 Enlighten News Browser"))
	b.WriteString("\n")
	b.WriteString(HighlightStyle.Render("Category: " + m.Category()))
	b.WriteString("\n\n")

	switch m.State {
	case StateLoading:
		b.WriteString(InfoStyle.Render("Loading..."))
		b.WriteString("\n")
	case StateError:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("❌ %v", m.Err)))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press 'r' to retry | 'b' to go back | 'q' to quit"))
	case StateList:
		m.renderList(&b)
	case StateDetail:
		m.renderDetail(&b)
	}

	return b.String()
}

func (m Model) renderList(b *strings.Builder) {
	if len(m.Articles) == 0 {
		b.WriteString(InfoStyle.Render("No articles available right now."))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press 'r' to refresh | 'c' to change category | 'q' to quit"))
		return
	}

	for i, a := range m.Articles {
		line := fmt.Sprintf("%s  %s (%s)", a.PublishedAt.Format("Jan 02 15:04"), a.Title, a.Source)
		if i == m.Cursor {
			b.WriteString(StatusStyle.Render("> " + line))
		} else {
			b.WriteString(InfoStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("↑/↓ move | enter: read | c: category | r: refresh | q: quit"))
}

func (m Model) renderDetail(b *strings.Builder) {
	if m.Detail == nil {
		b.WriteString(ErrorStyle.Render("Nothing to show"))
		return
	}

	var box strings.Builder
	box.WriteString(m.Detail.Title)
	box.WriteString("\n\n")
	if m.Detail.Author != "" {
		box.WriteString("By " + m.Detail.Author + "\n")
	}
	box.WriteString(m.Detail.Source + " · " + m.Detail.PublishedAt.Format("Jan 02 2006 15:04"))
	box.WriteString("\n\n")
	if m.Detail.Content != "" {
		box.WriteString(m.Detail.Content)
	} else {
		box.WriteString(m.Detail.Description)
	}
	box.WriteString("\n\n")
	box.WriteString(m.Detail.URL)

	b.WriteString(BoxStyle.Render(box.String()))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("b: back to list | q: quit"))
}

package tui

import "enlighten/types"

// Messages for the tea program

// ArticlesLoadedMsg is sent when a news list fetch completes
type ArticlesLoadedMsg struct {
	Articles []types.Article
	Err      error
}

// ArticleLoadedMsg is sent when a detail fetch completes
type ArticleLoadedMsg struct {
	Article *types.ArticleDetail
	Err     error
}

package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"enlighten/news"
	"enlighten/types"
)

// NewsController serves the news aggregation and resolution endpoints.
type NewsController struct {
	aggregator *news.Aggregator
	resolver   *news.Resolver
	newsAPI    news.Provider
	guardian   news.Provider
	mediaStack news.Provider
}

// NewNewsController wires the controller to the aggregation core. The
// individual providers back the single-source routes.
func NewNewsController(agg *news.Aggregator, res *news.Resolver, newsAPI, guardian, mediaStack news.Provider) *NewsController {
	return &NewsController{
		aggregator: agg,
		resolver:   res,
		newsAPI:    newsAPI,
		guardian:   guardian,
		mediaStack: mediaStack,
	}
}

// RegisterNewsRoutes registers the news endpoints.
func RegisterNewsRoutes(r *gin.Engine, nc *NewsController) {
	g := r.Group("/api/news")
	g.GET("", nc.handleAggregate)
	g.GET("/all", nc.handleAggregate)
	g.GET("/newsapi", nc.sourceHandler(nc.newsAPI))
	g.GET("/guardian", nc.sourceHandler(nc.guardian))
	g.GET("/mediastack", nc.sourceHandler(nc.mediaStack))
	// Wildcard so raw article URLs with slashes survive routing
	g.GET("/article/*id", nc.handleArticle)
}

// NewsResponse is the list-endpoint envelope.
type NewsResponse struct {
	Success  bool            `json:"success"`
	Articles []types.Article `json:"articles"`
}

// ArticleResponse is the single-article envelope.
type ArticleResponse struct {
	Success bool                 `json:"success"`
	Article *types.ArticleDetail `json:"article,omitempty"`
	Message string               `json:"message,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// handleAggregate merges all providers for the requested category. Provider
// outages degrade to fewer (or zero) articles, never to an error status.
func (nc *NewsController) handleAggregate(c *gin.Context) {
	articles, err := nc.aggregator.Aggregate(c.Request.Context(), c.Query("category"))
	if err != nil {
		log.Printf("⚠️ aggregate degraded: %v", err)
	}
	c.JSON(http.StatusOK, NewsResponse{Success: true, Articles: articles})
}

// sourceHandler serves a single provider's list. With no second source to
// fall back on, a provider failure here surfaces as 502.
func (nc *NewsController) sourceHandler(p news.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		articles, err := p.FetchList(c.Request.Context(), c.Query("category"))
		if err != nil {
			log.Printf("⚠️ %s fetch failed: %v", p.Name(), err)
			c.JSON(http.StatusBadGateway, ArticleResponse{
				Success: false,
				Message: "Failed to fetch news from " + p.Name(),
				Error:   err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, NewsResponse{Success: true, Articles: articles})
	}
}

// handleArticle resolves a single article by identifier or URL.
func (nc *NewsController) handleArticle(c *gin.Context) {
	id := strings.TrimPrefix(c.Param("id"), "/")

	article, err := nc.resolver.Resolve(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, ArticleResponse{Success: true, Article: article})
	case errors.Is(err, news.ErrNotFound):
		c.JSON(http.StatusNotFound, ArticleResponse{Success: false, Message: "Article not found"})
	default:
		c.JSON(http.StatusInternalServerError, ArticleResponse{
			Success: false,
			Message: "Failed to fetch article",
			Error:   err.Error(),
		})
	}
}

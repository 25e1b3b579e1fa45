package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/postdeck/internal/db"
	"github.com/postdeck/internal/service"
	"go.uber.org/zap"
)

type postCreateRequest struct {
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Excerpt      *string    `json:"excerpt"`
	PlatformID   string     `json:"platformId"`
	Status       string     `json:"status"`
	ScheduledFor *time.Time `json:"scheduledFor"`
	PublishedAt  *time.Time `json:"publishedAt"`
}

type postUpdateRequest struct {
	Title        *string    `json:"title"`
	Content      *string    `json:"content"`
	Excerpt      *string    `json:"excerpt"`
	PlatformID   *string    `json:"platformId"`
	Status       *string    `json:"status"`
	Likes        *int       `json:"likes"`
	Comments     *int       `json:"comments"`
	ScheduledFor *time.Time `json:"scheduledFor"`
	PublishedAt  *time.Time `json:"publishedAt"`
}

// GetPosts 获取帖子列表，支持 platform 与 status 过滤。
// 两个过滤条件同时出现时 platform 优先，status 被忽略（沿用既有行为）。
func (a *API) GetPosts(c *gin.Context) {
	platform := c.Query("platform")
	status := c.Query("status")

	var (
		posts []db.Post
		err   error
	)
	switch {
	case platform != "" && platform != "all":
		posts, err = a.posts.ListByPlatform(platform)
	case status != "" && status != "all":
		posts, err = a.posts.ListByStatus(status)
	default:
		posts, err = a.posts.ListAll()
	}
	if err != nil {
		a.logger.Error("list posts failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	if posts == nil {
		posts = []db.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost 获取单个帖子。
func (a *API) GetPost(c *gin.Context) {
	post, err := a.posts.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		a.logger.Error("get post failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost 创建新帖子，校验失败时逐字段返回错误列表。
func (a *API) CreatePost(c *gin.Context) {
	var req postCreateRequest
	if !bindJSON(c, &req, "Invalid post data") {
		return
	}

	post, err := a.posts.Create(service.PostInput{
		Title:        req.Title,
		Content:      req.Content,
		Excerpt:      req.Excerpt,
		PlatformID:   req.PlatformID,
		Status:       req.Status,
		ScheduledFor: req.ScheduledFor,
		PublishedAt:  req.PublishedAt,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid post data",
				"errors":  verr.Fields,
			})
			return
		}
		a.logger.Error("create post failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost 合并部分字段更新，updatedAt 总会被刷新。
// 空请求体等价于空对象：不改任何字段，只刷新 updatedAt。
func (a *API) UpdatePost(c *gin.Context) {
	var req postUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, "Invalid post data")
		return
	}

	post, err := a.posts.Update(c.Param("id"), service.PostUpdate{
		Title:        req.Title,
		Content:      req.Content,
		Excerpt:      req.Excerpt,
		PlatformID:   req.PlatformID,
		Status:       req.Status,
		Likes:        req.Likes,
		Comments:     req.Comments,
		ScheduledFor: req.ScheduledFor,
		PublishedAt:  req.PublishedAt,
	})
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		a.logger.Error("update post failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost 硬删除帖子，目标不存在时返回 404。
func (a *API) DeletePost(c *gin.Context) {
	deleted, err := a.posts.Delete(c.Param("id"))
	if err != nil {
		a.logger.Error("delete post failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "Post not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// PreviewPost 将帖子正文渲染为消毒后的 HTML。
func (a *API) PreviewPost(c *gin.Context) {
	post, err := a.posts.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		a.logger.Error("preview post failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	rendered, err := service.RenderMarkdown(post.Content)
	if err != nil {
		a.logger.Error("render post preview failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to render post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"html": rendered})
}

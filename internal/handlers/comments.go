package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"gamescove/internal/content"
	"gamescove/internal/models"
	"gamescove/internal/repository"
	"gamescove/internal/services"
	"gamescove/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Comment submission bounds.
const (
	minAuthorLen = 2
	maxAuthorLen = 50
	minTextLen   = 10
	maxTextLen   = 1000
)

type CommentsHandler struct {
	repos     *repository.Repos
	recaptcha *services.RecaptchaService
}

func NewCommentsHandler(repos *repository.Repos) *CommentsHandler {
	return &CommentsHandler{
		repos:     repos,
		recaptcha: services.GetRecaptchaService(),
	}
}

// ForPost returns every comment on a post regardless of moderation status;
// the client decides what to show.
func (h *CommentsHandler) ForPost(c *gin.Context) {
	postID := utils.StringToInt(c.Param("blogId"))
	if postID <= 0 {
		jsonError(c, http.StatusBadRequest, "invalid blog id")
		return
	}

	cachedJSON(c, func() (interface{}, error) {
		return h.repos.Comments.ForPost(uint(postID))
	})
}

// Submit runs the public submission pipeline: external verification, shape
// validation, persistence as pending, then best-effort revalidation.
func (h *CommentsHandler) Submit(c *gin.Context) {
	var req struct {
		PostID            uint   `json:"postId"`
		Author            string `json:"author"`
		Text              string `json:"text"`
		VerificationToken string `json:"verificationToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.VerificationToken == "" {
		jsonError(c, http.StatusBadRequest, "please complete the verification")
		return
	}
	ok, err := h.recaptcha.Verify(req.VerificationToken)
	if err != nil {
		logrus.Errorf("Captcha verification error: %v", err)
		jsonError(c, http.StatusInternalServerError, "error during verification")
		return
	}
	if !ok {
		jsonError(c, http.StatusBadRequest, "failed verification")
		return
	}

	if req.PostID == 0 {
		jsonError(c, http.StatusBadRequest, "postId is required")
		return
	}

	author := strings.TrimSpace(content.StripTags(req.Author))
	text := strings.TrimSpace(content.StripTags(req.Text))

	if len(author) < minAuthorLen || len(author) > maxAuthorLen {
		jsonError(c, http.StatusBadRequest,
			fmt.Sprintf("name must be between %d and %d characters", minAuthorLen, maxAuthorLen))
		return
	}
	if len(text) < minTextLen || len(text) > maxTextLen {
		jsonError(c, http.StatusBadRequest,
			fmt.Sprintf("comment must be between %d and %d characters", minTextLen, maxTextLen))
		return
	}

	now := time.Now()
	comment := models.Comment{
		BlogPostID: req.PostID,
		Author:     author,
		// Placeholder avatar keyed by submission time; there are no accounts
		// to key it by.
		Avatar: fmt.Sprintf("https://api.dicebear.com/9.x/bottts/svg?seed=%d", now.UnixNano()),
		Date:   now.Format("Jan 2, 2006"),
		Text:   text,
		Status: models.CommentPending,
	}

	if err := h.repos.Comments.Create(&comment); err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to save comment")
		return
	}

	services.Revalidate(
		fmt.Sprintf("/api/comments/%d", req.PostID),
		fmt.Sprintf("/api/blogs/%d", req.PostID),
	)
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentsHandler) AdminList(c *gin.Context) {
	status := c.Query("status")
	if status != "" && status != models.CommentPending &&
		status != models.CommentApproved && status != models.CommentRejected {
		jsonError(c, http.StatusBadRequest, "unknown status: "+status)
		return
	}

	comments, err := h.repos.Comments.All(status)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to load comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// UpdateStatus moves a comment out of pending. Only approved/rejected are
// accepted targets.
func (h *CommentsHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		jsonError(c, http.StatusBadRequest, "id is required")
		return
	}
	if req.Status != models.CommentApproved && req.Status != models.CommentRejected {
		jsonError(c, http.StatusBadRequest, "status must be approved or rejected")
		return
	}

	comment, err := h.repos.Comments.ByID(req.ID)
	if err != nil {
		respondFetch(c, err, "comment")
		return
	}

	if err := h.repos.Comments.SetStatus(req.ID, req.Status); err != nil {
		respondFetch(c, err, "comment")
		return
	}

	services.Revalidate(
		fmt.Sprintf("/api/comments/%d", comment.BlogPostID),
		fmt.Sprintf("/api/blogs/%d", comment.BlogPostID),
	)
	comment.Status = req.Status
	c.JSON(http.StatusOK, comment)
}

func (h *CommentsHandler) Delete(c *gin.Context) {
	id := queryID(c)
	if id == 0 {
		jsonError(c, http.StatusBadRequest, "id is required")
		return
	}

	comment, err := h.repos.Comments.ByID(id)
	if err != nil {
		respondFetch(c, err, "comment")
		return
	}

	if err := h.repos.Comments.Delete(id); err != nil {
		respondFetch(c, err, "comment")
		return
	}

	services.Revalidate(
		fmt.Sprintf("/api/comments/%d", comment.BlogPostID),
		fmt.Sprintf("/api/blogs/%d", comment.BlogPostID),
	)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

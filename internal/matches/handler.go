package matches

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"careervault-backend/internal/scoring/quality"
	"careervault-backend/internal/shared/server/middleware"
	"careervault-backend/internal/shared/server/respond"
)

// DocumentTextProvider resolves an uploaded document to its extracted text,
// so clients can score against a stored resume instead of pasting it.
type DocumentTextProvider interface {
	ExtractedText(ctx context.Context, userID, documentID string) (string, error)
}

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc  *Service
	Docs DocumentTextProvider
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, docs DocumentTextProvider) *Handler {
	return &Handler{Svc: svc, Docs: docs}
}

// RegisterRoutes attaches match scoring routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/matches/score", h.score)
	rg.POST("/matches/keywords", h.keywords)
	rg.POST("/matches/quality", h.quality)
	rg.POST("/matches/compare", h.compare)
	rg.GET("/matches", h.list)
	rg.GET("/matches/:id", h.get)
}

func (h *Handler) score(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if strings.TrimSpace(req.Content) == "" && strings.TrimSpace(req.DocumentID) != "" {
		if h.Docs == nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "documentId lookups are not available", nil)
			return
		}
		text, err := h.Docs.ExtractedText(c.Request.Context(), userID, req.DocumentID)
		if err != nil {
			respond.Error(c, http.StatusNotFound, "not_found", "document not found or has no extracted text", nil)
			return
		}
		req.Content = text
	}
	if strings.TrimSpace(req.Content) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "content or documentId is required", nil)
		return
	}

	outcome, err := h.Svc.ScoreResume(c.Request.Context(), userID, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrLimitExceeded):
			respond.Error(c, http.StatusTooManyRequests, "limit_exceeded", "scoring limit reached for this period", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to score resume", nil)
		}
		return
	}

	c.Set("scoreId", outcome.Record.ID)
	respond.JSON(c, http.StatusCreated, toScoreResponse(outcome))
}

func (h *Handler) keywords(c *gin.Context) {
	var req keywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription is required", nil)
		return
	}

	comparison := h.Svc.MatchKeywords(req.JobDescription, req.ResumeText)
	respond.OK(c, keywordsResponse{
		JobKeywords:    comparison.JobKeywords,
		ResumeKeywords: comparison.ResumeKeywords,
		Match:          comparison.Match,
	})
}

func (h *Handler) quality(c *gin.Context) {
	var req qualityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.SectionQuality(c.Request.Context(), quality.Input{
		Content:      req.Content,
		ATSKeywords:  req.ATSKeywords,
		Requirements: req.Requirements,
		JobAnalysis: quality.JobAnalysis{
			Seniority: req.Seniority,
			Industry:  req.Industry,
			JobTitle:  req.JobTitle,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "content is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to evaluate section", nil)
		}
		return
	}

	respond.OK(c, result)
}

func (h *Handler) compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	respond.OK(c, h.Svc.Compare(req.IdealScore, req.PersonalizedScore, req.ResumeStrength))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	score, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "match score not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch match score", nil)
		}
		return
	}

	respond.OK(c, toHistoryItem(score))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	scores, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list match scores", nil)
		return
	}

	resp := make([]gin.H, 0, len(scores))
	for _, score := range scores {
		resp = append(resp, toHistoryItem(score))
	}
	respond.OK(c, resp)
}

func toHistoryItem(score MatchScore) gin.H {
	return gin.H{
		"id":       score.ID,
		"jobTitle": score.JobTitle,
		"score":    score.Score,
		"breakdown": gin.H{
			"keywordScore":     score.KeywordScore,
			"requirementScore": score.RequirementScore,
			"evidenceScore":    score.EvidenceScore,
		},
		"humanVoiceScore": score.VoiceScore,
		"createdAt":       score.CreatedAt,
	}
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jageocoder-go/app/requests"
	"github.com/jageocoder-go/app/responses"
	"github.com/jageocoder-go/app/services"
)

// AdminController exposes the alias-review workflow, generalized from
// the teacher's AdminController (same route-table shape, traded
// Meilisearch-synonym/gazetteer-seed endpoints for review-queue ones).
type AdminController struct {
	reviewService *services.AdminReviewService
	cacheService  services.ICacheService
	logger        *zap.Logger
}

func NewAdminController(reviewService *services.AdminReviewService, cacheService services.ICacheService, logger *zap.Logger) *AdminController {
	return &AdminController{
		reviewService: reviewService,
		cacheService:  cacheService,
		logger:        logger,
	}
}

// ListReviews handles GET /v1/admin/reviews.
func (ac *AdminController) ListReviews(c *gin.Context) {
	reviews, err := ac.reviewService.ListPending(c.Request.Context(), 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "LIST_REVIEWS_ERROR",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, responses.ReviewListResponse{Reviews: reviews, Total: len(reviews)})
}

// ApproveReview handles POST /v1/admin/reviews/approve.
func (ac *AdminController) ApproveReview(c *gin.Context) {
	var req requests.ApproveReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: err.Error(),
		})
		return
	}

	err := ac.reviewService.Approve(c.Request.Context(), req.Query, req.ReviewerID, req.OriginalToken, req.CanonicalName, req.NodeID, req.Level)
	if err != nil {
		ac.logger.Error("approve review failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "APPROVE_ERROR",
			Message: err.Error(),
		})
		return
	}

	if err := ac.cacheService.InvalidateAll(c.Request.Context()); err != nil {
		ac.logger.Warn("cache invalidate after approve failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, responses.SuccessResponse{Success: true, Message: "review approved"})
}

// RejectReview handles POST /v1/admin/reviews/reject.
func (ac *AdminController) RejectReview(c *gin.Context) {
	var req requests.RejectReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: err.Error(),
		})
		return
	}

	if err := ac.reviewService.Reject(c.Request.Context(), req.Query, req.ReviewerID); err != nil {
		ac.logger.Error("reject review failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "REJECT_ERROR",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, responses.SuccessResponse{Success: true, Message: "review rejected"})
}

// GetStats handles GET /v1/admin/stats.
func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.reviewService.GetSystemStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "STATS_ERROR",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.AdminStatsResponse{
		CacheHitRate:      ac.cacheService.Stats().HitRate,
		PendingReviews:    stats.PendingReviews,
		ApprovedReviews:   stats.ApprovedReviews,
		LearnedAliases:    stats.LearnedAliases,
		DictionaryReloads: stats.DictionaryReloads,
		UptimeSeconds:     stats.UptimeSeconds,
		MemoryUsage:       stats.MemoryUsage,
	})
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jageocoder-go/app/models"
	"github.com/jageocoder-go/app/requests"
	"github.com/jageocoder-go/app/responses"
	"github.com/jageocoder-go/app/services"
	"github.com/jageocoder-go/internal/geocoder"
)

// GeocodeController exposes the §6 Query API over gin, generalized
// from the teacher's AddressController: cache-then-search-then-cache
// around GeocodeService, the same shape as the teacher's ParseAddress
// handler around AddressService.
type GeocodeController struct {
	geocodeService *services.GeocodeService
	cacheService   services.ICacheService
	reviewService  *services.AdminReviewService
	logger         *zap.Logger
}

func NewGeocodeController(geocodeService *services.GeocodeService, cacheService services.ICacheService, reviewService *services.AdminReviewService, logger *zap.Logger) *GeocodeController {
	return &GeocodeController{
		geocodeService: geocodeService,
		cacheService:   cacheService,
		reviewService:  reviewService,
		logger:         logger,
	}
}

// Geocode handles POST /v1/geocode.
func (gc *GeocodeController) Geocode(c *gin.Context) {
	var req requests.GeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: err.Error(),
		})
		return
	}
	gc.geocode(c, req.Query)
}

// GeocodeByQuery handles GET /v1/geocode/:query.
func (gc *GeocodeController) GeocodeByQuery(c *gin.Context) {
	gc.geocode(c, c.Param("query"))
}

func (gc *GeocodeController) geocode(c *gin.Context, query string) {
	if query == "" {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "MISSING_QUERY",
			Message: "query must not be empty",
		})
		return
	}

	cacheKey := services.CacheKey(query, gc.geocodeService.DictionarySignature())
	if cached, found, err := gc.cacheService.Get(c.Request.Context(), cacheKey); err == nil && found {
		cached.RequestID = c.GetString("request_id")
		c.JSON(http.StatusOK, cached)
		return
	} else if err != nil {
		gc.logger.Warn("result cache get failed", zap.Error(err))
	}

	result, err := gc.geocodeService.Geocode(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "GEOCODE_ERROR",
			Message: err.Error(),
		})
		return
	}
	result.RequestID = c.GetString("request_id")

	if err := gc.cacheService.Set(c.Request.Context(), cacheKey, result); err != nil {
		gc.logger.Warn("result cache set failed", zap.Error(err))
	}

	if result.Status != models.StatusMatched {
		if err := gc.reviewService.QueueForReview(c.Request.Context(), query, result.Candidates); err != nil {
			gc.logger.Warn("queue for review failed", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, result)
}

// Reverse handles POST /v1/reverse. Reverse geocoding is a documented
// unimplemented collaborator boundary (SPEC_FULL §6): the endpoint
// exists so the external contract is complete, but always reports
// ErrReverseUnavailable.
func (gc *GeocodeController) Reverse(c *gin.Context) {
	var req requests.ReverseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: err.Error(),
		})
		return
	}

	result, err := gc.geocodeService.Reverse(c.Request.Context(), req.X, req.Y)
	switch {
	case err == nil:
		result.RequestID = c.GetString("request_id")
		c.JSON(http.StatusOK, result)
	case err == geocoder.ErrReverseUnavailable:
		c.JSON(http.StatusNotImplemented, responses.ErrorResponse{
			Error:   "REVERSE_UNAVAILABLE",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "REVERSE_ERROR",
			Message: err.Error(),
		})
	}
}

// AzaLookup handles GET /v1/aza/:code.
func (gc *GeocodeController) AzaLookup(c *gin.Context) {
	code := c.Param("code")
	result, ok := gc.geocodeService.AzaByCode(code)
	if !ok {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "AZA_NOT_FOUND",
			Message: "no machi-aza record for code " + code,
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// HealthCheck handles GET /v1/health.
func (gc *GeocodeController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:              "healthy",
		Uptime:              gc.geocodeService.Uptime().Round(time.Second).String(),
		DictionarySignature: gc.geocodeService.DictionarySignature(),
	})
}

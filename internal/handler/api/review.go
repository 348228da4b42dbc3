package api

import (
	"errors"
	"net/http"
	"strconv"

	domreview "carwash-booking/internal/domain/review"
	reqdto "carwash-booking/internal/handler/dto/request"
	resdto "carwash-booking/internal/handler/dto/response"
	"carwash-booking/internal/handler/middleware"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/pkg/errs"
	"carwash-booking/internal/usecase/commands"
	"carwash-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

// @Summary Create review
// @Description Post a review for a car wash after a completed visit
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.reviewCommands.CreateReview(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domreview.ErrNotEligible):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "A completed booking at this car wash is required",
			})
		case errors.Is(err, errs.ErrDuplicateReview), infra.IsKind(err, infra.KindDuplicateKey):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Review already posted for this car wash",
			})
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car wash not found",
			})
		case errors.Is(err, commands.ErrReviewBookingInvalid):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking must be a completed visit of yours at this car wash",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review_id": result.ReviewID})
}

// @Summary Get review
// @Description Get review by ID
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.reviewQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Review not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Update review
// @Description Update own review; absent fields stay unchanged
// @Tags reviews
// @Accept json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [patch]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	existing, err := h.reviewQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Review not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	if err := h.reviewCommands.UpdateReview(c.Request.Context(), id, req.ToCommand(existing), userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrReviewNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete review
// @Description Delete own review; admins can delete any review
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	if err := h.reviewCommands.DeleteReview(c.Request.Context(), id, userID, role); err != nil {
		switch {
		case errors.Is(err, errs.ErrReviewNotFound), infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Review not found",
			})
		case errors.Is(err, commands.ErrReviewNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List reviews for a car wash
// @Description List reviews newest first, optionally filtered by rating
// @Tags reviews
// @Produce json
// @Param id path string true "Car wash ID"
// @Param min_rating query int false "Minimum rating"
// @Param max_rating query int false "Maximum rating"
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 400 {object} map[string]string
// @Router /car-washes/{id}/reviews [get]
func (h *ReviewHandler) ListByCarWash(c *gin.Context) {
	carWashID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	filters, ok := reviewFilters(c)
	if !ok {
		return
	}

	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.reviewQueries.ListByCarWash(c.Request.Context(), carWashID, filters, cursor, queryLimit(c))
	if err != nil {
		abortReviewListError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewList(items, next))
}

// @Summary List own reviews
// @Description List the current user's reviews, newest first
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ReviewListResponse
// @Router /reviews/me [get]
func (h *ReviewHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.reviewQueries.ListByUser(c.Request.Context(), userID, cursor, queryLimit(c))
	if err != nil {
		abortReviewListError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewList(items, next))
}

// @Summary Rating breakdown for a car wash
// @Description Per-star counts and the average rating
// @Tags reviews
// @Produce json
// @Param id path string true "Car wash ID"
// @Success 200 {object} resdto.RatingStatsResponse
// @Failure 404 {object} map[string]string
// @Router /car-washes/{id}/rating-stats [get]
func (h *ReviewHandler) RatingStats(c *gin.Context) {
	carWashID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	stats, err := h.reviewQueries.GetCarWashRatingStats(c.Request.Context(), carWashID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCarWashNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car wash not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRatingStats(stats))
}

// @Summary Check review eligibility
// @Description Report whether the current user may review a car wash
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param car_wash_id query string true "Car wash ID"
// @Success 200 {object} queries.ReviewEligibility
// @Failure 400 {object} map[string]string
// @Router /reviews/eligibility [get]
func (h *ReviewHandler) Eligibility(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	carWashID, err := uuid.Parse(c.Query("car_wash_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car_wash_id parameter",
		})
		return
	}

	eligibility, err := h.reviewQueries.CheckEligibility(c.Request.Context(), userID, carWashID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, eligibility)
}

func reviewFilters(c *gin.Context) (queries.ReviewFilters, bool) {
	var filters queries.ReviewFilters

	for _, name := range []string{"min_rating", "max_rating"} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		v, err := parseRating(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid " + name + " parameter",
			})
			return queries.ReviewFilters{}, false
		}
		if name == "min_rating" {
			filters.MinRating = &v
		} else {
			filters.MaxRating = &v
		}
	}

	return filters, true
}

func parseRating(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v < 1 || v > 5 {
		return 0, errors.New("rating out of range")
	}
	return v, nil
}

func abortReviewListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrInvalidCursor):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cursor",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "carwash-booking/internal/handler/dto/request"
	resdto "carwash-booking/internal/handler/dto/response"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/pkg/errs"
	"carwash-booking/internal/usecase/commands"
	"carwash-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarWashHandler struct {
	carWashCommands     commands.CarWashCommands
	carWashQueries      queries.CarWashQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewCarWashHandler(carWashCommands commands.CarWashCommands, carWashQueries queries.CarWashQueries, availabilityQueries queries.AvailabilityQueries) *CarWashHandler {
	return &CarWashHandler{
		carWashCommands:     carWashCommands,
		carWashQueries:      carWashQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List car washes
// @Description List active car washes, optionally filtered by name and minimum rating
// @Tags car-washes
// @Produce json
// @Param search query string false "Name substring filter"
// @Param min_rating query number false "Minimum average rating"
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.CarWashResponse
// @Router /car-washes [get]
func (h *CarWashHandler) List(c *gin.Context) {
	var filters queries.CarWashFilters
	if search := c.Query("search"); search != "" {
		filters.Search = &search
	}
	if raw := c.Query("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil || minRating < 0 || minRating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid min_rating parameter",
			})
			return
		}
		filters.MinRating = &minRating
	}

	views, err := h.carWashQueries.List(c.Request.Context(), filters, queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarWashList(views))
}

// @Summary Find nearby car washes
// @Description List active car washes within a radius, closest first
// @Tags car-washes
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius_km query number false "Search radius in km (default 10, max 100)"
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.NearbyCarWashResponse
// @Failure 400 {object} map[string]string
// @Router /car-washes/nearby [get]
func (h *CarWashHandler) Nearby(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "lat and lon query parameters are required",
		})
		return
	}

	var radiusKm float64
	if raw := c.Query("radius_km"); raw != "" {
		var err error
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid radius_km parameter",
			})
			return
		}
	}

	views, err := h.carWashQueries.FindNearby(c.Request.Context(), lat, lon, radiusKm, queryLimit(c))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidLocation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid location parameters",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromNearbyCarWashList(views))
}

// @Summary Get car wash
// @Description Get car wash by ID
// @Tags car-washes
// @Produce json
// @Param id path string true "Car wash ID"
// @Success 200 {object} resdto.CarWashResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /car-washes/{id} [get]
func (h *CarWashHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.carWashQueries.GetByID(c.Request.Context(), id)
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

	c.JSON(http.StatusOK, resdto.FromCarWashView(view))
}

// @Summary Create car wash
// @Description Register a new car wash location
// @Tags car-washes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCarWashRequest true "Car wash"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /car-washes [post]
func (h *CarWashHandler) Create(c *gin.Context) {
	var req reqdto.CreateCarWashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.carWashCommands.CreateCarWash(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
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

	c.JSON(http.StatusCreated, gin.H{"car_wash_id": result.CarWashID})
}

// @Summary Update car wash
// @Description Partially update a car wash; absent fields stay unchanged
// @Tags car-washes
// @Accept json
// @Security BearerAuth
// @Param id path string true "Car wash ID"
// @Param request body reqdto.UpdateCarWashRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /car-washes/{id} [patch]
func (h *CarWashHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateCarWashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.carWashCommands.UpdateCarWash(c.Request.Context(), id, req.ToCommand()); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car wash not found",
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

// @Summary Deactivate car wash
// @Description Soft-delete a car wash; existing bookings are untouched
// @Tags car-washes
// @Security BearerAuth
// @Param id path string true "Car wash ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /car-washes/{id} [delete]
func (h *CarWashHandler) Deactivate(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.carWashCommands.DeactivateCarWash(c.Request.Context(), id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
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

	c.Status(http.StatusNoContent)
}

// @Summary Check slot availability
// @Description Report whether a service can start at the given time
// @Tags availability
// @Produce json
// @Param id path string true "Car wash ID"
// @Param service_id query string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start_time query string true "Start time (HH:MM)"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /car-washes/{id}/availability [get]
func (h *CarWashHandler) CheckAvailability(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	serviceID, date, ok := availabilityParams(c)
	if !ok {
		return
	}

	startMin, ok := parseStartTime(c)
	if !ok {
		return
	}

	available, err := h.availabilityQueries.CheckAvailability(c.Request.Context(), id, serviceID, date, startMin)
	if err != nil {
		abortAvailabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}

// @Summary List available start times
// @Description List every bookable start time for a service on a date
// @Tags availability
// @Produce json
// @Param id path string true "Car wash ID"
// @Param service_id query string true "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} queries.AvailableTimesView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /car-washes/{id}/available-times [get]
func (h *CarWashHandler) AvailableTimes(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	serviceID, date, ok := availabilityParams(c)
	if !ok {
		return
	}

	view, err := h.availabilityQueries.GetAvailableTimes(c.Request.Context(), id, serviceID, date)
	if err != nil {
		abortAvailabilityError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func availabilityParams(c *gin.Context) (uuid.UUID, time.Time, bool) {
	serviceID, err := uuid.Parse(c.Query("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service_id parameter",
		})
		return uuid.Nil, time.Time{}, false
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date parameter, expected YYYY-MM-DD",
		})
		return uuid.Nil, time.Time{}, false
	}

	return serviceID, date, true
}

func parseStartTime(c *gin.Context) (int, bool) {
	raw := c.Query("start_time")
	t, err := time.Parse("15:04", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start_time parameter, expected HH:MM",
		})
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

func abortAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCarWashNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Car wash not found",
		})
	case errors.Is(err, errs.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service not found",
		})
	case errors.Is(err, queries.ErrServiceCarWashMismatch):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Service does not belong to this car wash",
		})
	case errors.Is(err, queries.ErrInactiveCatalogEntry):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Car wash or service is inactive",
		})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + " format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func queryLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}

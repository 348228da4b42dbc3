package api

import (
	"errors"
	"net/http"

	reqdto "carwash-booking/internal/handler/dto/request"
	resdto "carwash-booking/internal/handler/dto/response"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/pkg/errs"
	"carwash-booking/internal/usecase/commands"
	"carwash-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	serviceCommands commands.ServiceCommands
	serviceQueries  queries.ServiceQueries
}

func NewServiceHandler(serviceCommands commands.ServiceCommands, serviceQueries queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{
		serviceCommands: serviceCommands,
		serviceQueries:  serviceQueries,
	}
}

// @Summary List services of a car wash
// @Description List the services offered by a car wash
// @Tags services
// @Produce json
// @Param id path string true "Car wash ID"
// @Param include_inactive query bool false "Include deactivated services"
// @Success 200 {array} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Router /car-washes/{id}/services [get]
func (h *ServiceHandler) ListByCarWash(c *gin.Context) {
	carWashID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	activeOnly := c.Query("include_inactive") != "true"

	views, err := h.serviceQueries.ListByCarWash(c.Request.Context(), carWashID, activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceList(views))
}

// @Summary Get service
// @Description Get service by ID
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.serviceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Create service
// @Description Add a service to a car wash
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car wash ID"
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /car-washes/{id}/services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	carWashID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.serviceCommands.CreateService(c.Request.Context(), req.ToCommand(carWashID))
	if err != nil {
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

	c.JSON(http.StatusCreated, gin.H{"service_id": result.ServiceID})
}

// @Summary Update service
// @Description Partially update a service; existing bookings keep their booked duration
// @Tags services
// @Accept json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /services/{id} [patch]
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.serviceCommands.UpdateService(c.Request.Context(), id, req.ToCommand()); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
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

// @Summary Deactivate service
// @Description Soft-delete a service; existing bookings are untouched
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /services/{id} [delete]
func (h *ServiceHandler) Deactivate(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.serviceCommands.DeactivateService(c.Request.Context(), id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
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

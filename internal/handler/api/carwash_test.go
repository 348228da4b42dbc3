//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"carwash-booking/internal/domain/user"
	"carwash-booking/internal/handler/api"
	resdto "carwash-booking/internal/handler/dto/response"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/pkg/errs"
	"carwash-booking/internal/usecase/commands"
	"carwash-booking/internal/usecase/queries"
	"carwash-booking/tests/common/builder"
	"carwash-booking/tests/common/httptest"
	"carwash-booking/tests/common/testutil"
	commandsmock "carwash-booking/tests/mock/commands"
	queriesmock "carwash-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CarWashHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockCarWashCommands
	mockQueries      *queriesmock.MockCarWashQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.CarWashHandler
}

func (s *CarWashHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCarWashCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCarWashQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewCarWashHandler(s.mockCommands, s.mockQueries, s.mockAvailability)

	// Mock authentication middleware for testing
	staffMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleOperator)
		c.Next()
	}

	s.router.GET("/car-washes", s.handler.List)
	s.router.GET("/car-washes/nearby", s.handler.Nearby)
	s.router.GET("/car-washes/:id", s.handler.Get)
	s.router.POST("/car-washes", staffMiddleware, s.handler.Create)
	s.router.PATCH("/car-washes/:id", staffMiddleware, s.handler.Update)
	s.router.DELETE("/car-washes/:id", staffMiddleware, s.handler.Deactivate)
	s.router.GET("/car-washes/:id/availability", s.handler.CheckAvailability)
	s.router.GET("/car-washes/:id/available-times", s.handler.AvailableTimes)
}

func (s *CarWashHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCarWashHandlerSuite(t *testing.T) {
	suite.Run(t, new(CarWashHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *CarWashHandlerTestSuite) TestList() {
	baseURL := "/car-washes"

	views := []*queries.CarWashView{
		builder.NewCarWashBuilder().WithName("Sparkle Wash").BuildView(),
		builder.NewCarWashBuilder().WithName("Turbo Shine").BuildView(),
	}

	s.Run("success: returns car wash list", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.CarWashFilters{}, 0).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")

		var response []*resdto.CarWashResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Sparkle Wash", response[0].Name)
	})

	s.Run("success: search and rating filters are forwarded", func() {
		search := "sparkle"
		minRating := 4.0
		expectedFilters := queries.CarWashFilters{Search: &search, MinRating: &minRating}

		s.mockQueries.EXPECT().List(gomock.Any(), expectedFilters, 10).
			Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?search=sparkle&min_rating=4&limit=10", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for out-of-range min_rating", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?min_rating=5.5", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid min_rating")
	})
}

// ================================================================================
// TestNearby
// ================================================================================

func (s *CarWashHandlerTestSuite) TestNearby() {
	baseURL := "/car-washes/nearby"

	nearby := []*queries.NearbyCarWashView{
		{
			CarWashView: *builder.NewCarWashBuilder().WithName("Sparkle Wash").BuildView(),
			DistanceKm:  1.2,
			Direction:   "NE",
		},
		{
			CarWashView: *builder.NewCarWashBuilder().WithName("Turbo Shine").BuildView(),
			DistanceKm:  3.8,
			Direction:   "S",
		},
	}

	s.Run("success: returns nearby car washes closest first", func() {
		s.mockQueries.EXPECT().FindNearby(gomock.Any(), -23.5505, -46.6333, 0.0, 0).
			Return(nearby, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?lat=-23.5505&lon=-46.6333", nil, "")

		var response []*resdto.NearbyCarWashResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(1.2, response[0].DistanceKm)
		s.Equal("NE", response[0].Direction)
	})

	s.Run("success: radius is forwarded", func() {
		s.mockQueries.EXPECT().FindNearby(gomock.Any(), -23.5505, -46.6333, 5.0, 0).
			Return(nearby[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?lat=-23.5505&lon=-46.6333&radius_km=5", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on missing coordinates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?lat=-23.5505", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "lat and lon")
	})

	s.Run("error: 400 Bad Request on out-of-range coordinates", func() {
		s.mockQueries.EXPECT().FindNearby(gomock.Any(), 123.0, -46.6333, 0.0, 0).
			Return(nil, queries.ErrInvalidLocation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?lat=123&lon=-46.6333", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid location")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CarWashHandlerTestSuite) TestGet() {
	carWashID := uuid.New()
	url := "/car-washes/" + carWashID.String()

	s.Run("success: returns 200 OK with CarWashResponse", func() {
		view := builder.NewCarWashBuilder().BuildView()
		view.ID = carWashID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), carWashID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.CarWashResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(carWashID, response.ID)
		s.Equal(view.Name, response.Name)
		s.Equal(view.OpenTime, response.OpenTime)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/car-washes/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing car wash", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), carWashID).
			Return(nil, errs.ErrCarWashNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car wash not found")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CarWashHandlerTestSuite) TestCreate() {
	url := "/car-washes"

	reqBody := builder.NewCarWashBuilder().BuildCreateRequestDTO()
	expectedResult := &commands.CreateCarWashResult{CarWashID: uuid.New()}

	s.Run("success: returns 201 Created with car wash id", func() {
		s.mockCommands.EXPECT().CreateCarWash(gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expectedResult.CarWashID.String(), body["car_wash_id"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name", mutate: testutil.Field("name", nil)},
			{name: "missing field: address", mutate: testutil.Field("address", nil)},
			{name: "missing field: open_time", mutate: testutil.Field("open_time", nil)},
			{name: "missing field: close_time", mutate: testutil.Field("close_time", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 422 Unprocessable Entity on domain validation failure", func() {
		s.mockCommands.EXPECT().CreateCarWash(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *CarWashHandlerTestSuite) TestUpdate() {
	carWashID := uuid.New()
	url := "/car-washes/" + carWashID.String()

	s.Run("success: returns 204 No Content", func() {
		name := "Renamed Wash"
		s.mockCommands.EXPECT().UpdateCarWash(gomock.Any(), carWashID, commands.UpdateCarWashRequest{Name: &name}).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"name": name}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for missing car wash", func() {
		s.mockCommands.EXPECT().UpdateCarWash(gomock.Any(), carWashID, gomock.Any()).
			Return(infra.WrapRepoErr("update car wash", errors.New("no rows"), infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"name": "x"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car wash not found")
	})

	s.Run("error: 422 Unprocessable Entity on domain validation failure", func() {
		s.mockCommands.EXPECT().UpdateCarWash(gomock.Any(), carWashID, gomock.Any()).
			Return(errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"open_time": "25:00"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

// ================================================================================
// TestDeactivate
// ================================================================================

func (s *CarWashHandlerTestSuite) TestDeactivate() {
	carWashID := uuid.New()
	url := "/car-washes/" + carWashID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeactivateCarWash(gomock.Any(), carWashID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for missing car wash", func() {
		s.mockCommands.EXPECT().DeactivateCarWash(gomock.Any(), carWashID).
			Return(infra.WrapRepoErr("deactivate car wash", errors.New("no rows"), infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car wash not found")
	})
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *CarWashHandlerTestSuite) TestCheckAvailability() {
	carWashID := uuid.New()
	serviceID := uuid.New()
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	url := "/car-washes/" + carWashID.String() + "/availability" +
		"?service_id=" + serviceID.String() + "&date=2026-09-01&start_time=10:00"

	s.Run("success: reports a free slot", func() {
		s.mockAvailability.EXPECT().CheckAvailability(gomock.Any(), carWashID, serviceID, date, 600).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body["available"])
	})

	s.Run("success: reports an occupied slot", func() {
		s.mockAvailability.EXPECT().CheckAvailability(gomock.Any(), carWashID, serviceID, date, 600).
			Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body["available"])
	})

	s.Run("error: 400 Bad Request on missing start_time", func() {
		badURL := "/car-washes/" + carWashID.String() + "/availability" +
			"?service_id=" + serviceID.String() + "&date=2026-09-01"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, badURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid start_time")
	})

	s.Run("error: maps catalog errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "car wash not found",
				queriesError:   errs.ErrCarWashNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Car wash not found",
			},
			{
				name:           "service not found",
				queriesError:   errs.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "service belongs to another car wash",
				queriesError:   queries.ErrServiceCarWashMismatch,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "does not belong",
			},
			{
				name:           "inactive catalog entry",
				queriesError:   queries.ErrInactiveCatalogEntry,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "inactive",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAvailability.EXPECT().CheckAvailability(gomock.Any(), carWashID, serviceID, date, 600).
					Return(false, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestAvailableTimes
// ================================================================================

func (s *CarWashHandlerTestSuite) TestAvailableTimes() {
	carWashID := uuid.New()
	serviceID := uuid.New()
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	url := "/car-washes/" + carWashID.String() + "/available-times" +
		"?service_id=" + serviceID.String() + "&date=2026-09-01"

	s.Run("success: returns the slot list", func() {
		view := &queries.AvailableTimesView{
			CarWashID: carWashID,
			ServiceID: serviceID,
			Date:      "2026-09-01",
			Times:     []string{"08:00", "08:30", "09:00"},
		}
		s.mockAvailability.EXPECT().GetAvailableTimes(gomock.Any(), carWashID, serviceID, date).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response queries.AvailableTimesView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{"08:00", "08:30", "09:00"}, response.Times)
	})

	s.Run("error: 400 Bad Request on malformed date", func() {
		badURL := "/car-washes/" + carWashID.String() + "/available-times" +
			"?service_id=" + serviceID.String() + "&date=tomorrow"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, badURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: 404 Not Found for missing service", func() {
		s.mockAvailability.EXPECT().GetAvailableTimes(gomock.Any(), carWashID, serviceID, date).
			Return(nil, errs.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})
}

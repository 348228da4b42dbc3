//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"carwash-booking/internal/domain/booking"
	"carwash-booking/internal/domain/user"
	"carwash-booking/internal/handler/api"
	resdto "carwash-booking/internal/handler/dto/response"
	"carwash-booking/internal/infra"
	"carwash-booking/internal/pkg/clock"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	clock        *clock.MockClock
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, s.clock)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleViewer)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings", authMiddleware, s.handler.List)
	s.router.GET("/bookings/upcoming", authMiddleware, s.handler.ListUpcoming)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.Cancel)
	s.router.PATCH("/bookings/:id/status", authMiddleware, s.handler.UpdateStatus)
	s.router.GET("/car-washes/:id/bookings", authMiddleware, s.handler.DaySchedule)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	expectedResult := &commands.CreateBookingResult{BookingID: uuid.New()}

	s.Run("success: returns 201 Created with booking id", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(expectedResult.BookingID, response.BookingID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseBooking{
			{name: "missing field: car_wash_id", mutate: testutil.Field("car_wash_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: service_id", mutate: testutil.Field("service_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start_time", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
			{name: "malformed date", mutate: testutil.Field("date", "2026/01/01"), expectCode: http.StatusBadRequest},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "9 o'clock"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "catalog entry not found",
				commandsError:  infra.WrapRepoErr("service not found", errors.New("no rows"), infra.KindNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "not found",
			},
			{
				name:           "slot already booked",
				commandsError:  errs.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "slot conflict from exclusion constraint",
				commandsError:  infra.WrapRepoErr("insert booking", errors.New("conflict"), infra.KindSlotConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "service belongs to another car wash",
				commandsError:  commands.ErrServiceMismatch,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "does not belong",
			},
			{
				name:           "outside opening hours",
				commandsError:  commands.ErrOutsideOpeningHours,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "opening hours",
			},
			{
				name:           "booking in the past",
				commandsError:  commands.ErrBookingInPast,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "in the past",
			},
			{
				name:           "inactive car wash",
				commandsError:  commands.ErrCarWashInactive,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "inactive",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	baseURL := "/bookings"

	views := []*queries.BookingView{
		builder.NewBookingBuilder().WithStatus("pending").BuildView(),
		builder.NewBookingBuilder().WithStatus("completed").BuildView(),
	}

	s.Run("success: returns booking list", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, queries.BookingFilters{}, (*queries.Cursor)(nil), 0).
			Return(views, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Nil(response.NextCursor)
	})

	s.Run("success: pagination and filters work", func() {
		url := baseURL + "?status=pending&limit=10&after=cursor123"
		status := "pending"
		expectedFilters := queries.BookingFilters{Status: &status}
		expectedCursor := &queries.Cursor{After: "cursor123"}
		nextCursor := &queries.Cursor{After: "cursor456"}

		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, expectedFilters, expectedCursor, 10).
			Return(views[:1], nextCursor, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.NotNil(response.NextCursor)
		s.Equal("cursor456", *response.NextCursor)
	})

	s.Run("success: date range filter is forwarded", func() {
		url := baseURL + "?from=2026-09-01&to=2026-09-30"
		from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
		expectedFilters := queries.BookingFilters{From: &from, To: &to}

		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, expectedFilters, (*queries.Cursor)(nil), 0).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on invalid status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?status=parked", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})

	s.Run("error: 400 Bad Request on malformed date filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?from=yesterday", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid from parameter")
	})

	s.Run("error: 400 Bad Request on undecodable cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, queries.BookingFilters{}, &queries.Cursor{After: "garbage"}, 0).
			Return(nil, nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

// ================================================================================
// TestListUpcoming
// ================================================================================

func (s *BookingHandlerTestSuite) TestListUpcoming() {
	url := "/bookings/upcoming"

	views := []*queries.BookingView{
		builder.NewBookingBuilder().WithStatus("confirmed").BuildView(),
	}

	s.Run("success: passes the current time to the query", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), s.userID, s.clock.Now(), 0).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("confirmed", response[0].Status)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), s.userID, s.clock.Now(), 0).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		view := builder.NewBookingBuilder().WithUserID(s.userID).BuildView()
		view.ID = bookingID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, s.userID, string(user.RoleViewer)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(view.Date.Format("2006-01-02"), response.Date)
		s.Equal(view.StartTime, response.StartTime)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, s.userID, string(user.RoleViewer)).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 Forbidden for another user's booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID, s.userID, string(user.RoleViewer)).
			Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID, string(user.RoleViewer)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  errs.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "booking not owned",
				commandsError:  commands.ErrBookingNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "already completed",
				commandsError:  errs.ErrInvalidTransition,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not allowed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID, string(user.RoleViewer)).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/status"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID, booking.StatusConfirmed, string(user.RoleViewer)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "confirmed"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "parked"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 Bad Request on missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 403 Forbidden when role may not change status", func() {
		s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID, booking.StatusCompleted, string(user.RoleViewer)).
			Return(commands.ErrStatusChangeDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "completed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 409 Conflict on invalid transition", func() {
		s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), bookingID, booking.StatusConfirmed, string(user.RoleViewer)).
			Return(errs.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "confirmed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not allowed")
	})
}

// ================================================================================
// TestDaySchedule
// ================================================================================

func (s *BookingHandlerTestSuite) TestDaySchedule() {
	carWashID := uuid.New()
	baseURL := "/car-washes/" + carWashID.String() + "/bookings"

	views := []*queries.BookingView{
		builder.NewBookingBuilder().BuildView(),
		builder.NewBookingBuilder().BuildView(),
	}

	s.Run("success: returns the schedule for the date", func() {
		date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().ListByCarWashAndDate(gomock.Any(), carWashID, date, string(user.RoleViewer)).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?date=2026-09-01", nil, "bearer-token")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 400 Bad Request on missing date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date parameter")
	})

	s.Run("error: 403 Forbidden for non-staff roles", func() {
		date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().ListByCarWashAndDate(gomock.Any(), carWashID, date, string(user.RoleViewer)).
			Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?date=2026-09-01", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

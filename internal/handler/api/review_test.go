//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	domreview "carwash-booking/internal/domain/review"
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

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	userID       uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
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

	s.router.POST("/reviews", authMiddleware, s.handler.Create)
	s.router.GET("/reviews/me", authMiddleware, s.handler.ListMine)
	s.router.GET("/reviews/eligibility", authMiddleware, s.handler.Eligibility)
	s.router.GET("/reviews/:id", s.handler.Get)
	s.router.PATCH("/reviews/:id", authMiddleware, s.handler.Update)
	s.router.DELETE("/reviews/:id", authMiddleware, s.handler.Delete)
	s.router.GET("/car-washes/:id/reviews", s.handler.ListByCarWash)
	s.router.GET("/car-washes/:id/rating-stats", s.handler.RatingStats)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"

	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()
	expectedResult := &commands.CreateReviewResult{ReviewID: uuid.New()}

	s.Run("success: returns 201 Created with review id", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.userID).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expectedResult.ReviewID.String(), body["review_id"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseReview{
			{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
			{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
			{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
			{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
			{name: "comment length OK (1000 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
			{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
			{name: "missing field: car_wash_id", mutate: testutil.Field("car_wash_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: rating", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.userID).
						Return(expectedResult, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
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
				name:           "no completed visit",
				commandsError:  domreview.ErrNotEligible,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "completed booking",
			},
			{
				name:           "duplicate review",
				commandsError:  errs.ErrDuplicateReview,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already posted",
			},
			{
				name:           "duplicate key from unique index",
				commandsError:  infra.WrapRepoErr("insert review", errors.New("duplicate"), infra.KindDuplicateKey),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already posted",
			},
			{
				name:           "car wash missing",
				commandsError:  infra.WrapRepoErr("insert review", errors.New("fk violation"), infra.KindForeignKeyViolated),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "not found",
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
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReviewHandlerTestSuite) TestGet() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	returnView := builder.NewReviewBuilder().BuildView()
	returnView.ID = reviewID

	s.Run("success: returns 200 OK with ReviewResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reviewID, response.ID)
		s.Equal(returnView.Rating, response.Rating)
		s.Equal(returnView.Comment, response.Comment)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing review", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(nil, errs.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestUpdate() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	reqBody := builder.NewReviewBuilder().BuildUpdateRequestDTO()
	existing := builder.NewReviewBuilder().WithUserID(s.userID).BuildView()
	existing.ID = reviewID

	s.Run("success: returns 204 No Content", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(existing, nil).Times(1)
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID, gomock.Any(), s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("success: absent fields fall back to stored values", func() {
		rating := 2
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(existing, nil).Times(1)
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID,
			commands.UpdateReviewRequest{Rating: rating, Comment: existing.Comment}, s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"rating": rating}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseReview{
			{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
			{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
			{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 404 Not Found for missing review", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(nil, errs.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})

	s.Run("error: 403 Forbidden for another user's review", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(existing, nil).Times(1)
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID, gomock.Any(), s.userID).
			Return(commands.ErrReviewNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ReviewHandlerTestSuite) TestDelete() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, s.userID, string(user.RoleViewer)).
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
				name:           "review not found",
				commandsError:  errs.ErrReviewNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Review not found",
			},
			{
				name:           "review not owned",
				commandsError:  commands.ErrReviewNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
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
				s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, s.userID, string(user.RoleViewer)).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("success: delete any review as admin", func() {
		adminRouter := gin.New()
		adminAuthMiddleware := func(c *gin.Context) {
			c.Set("user_id", s.userID)
			c.Set("user_role", user.RoleAdmin)
			c.Next()
		}
		adminRouter.DELETE("/reviews/:id", adminAuthMiddleware, s.handler.Delete)

		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, s.userID, string(user.RoleAdmin)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), adminRouter, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

// ================================================================================
// TestListByCarWash
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListByCarWash() {
	carWashID := uuid.New()
	baseURL := "/car-washes/" + carWashID.String() + "/reviews"

	items := []*queries.ReviewListItem{
		builder.NewReviewBuilder().WithRating(5).BuildListItem(),
		builder.NewReviewBuilder().WithRating(4).BuildListItem(),
		builder.NewReviewBuilder().WithRating(3).BuildListItem(),
	}

	s.Run("success: returns review list for the car wash", func() {
		s.mockQueries.EXPECT().ListByCarWash(gomock.Any(), carWashID, queries.ReviewFilters{}, (*queries.Cursor)(nil), 0).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")

		var response resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, len(items))
		s.Nil(response.NextCursor)
	})

	s.Run("success: pagination and filters work", func() {
		url := baseURL + "?min_rating=4&max_rating=5&limit=10&after=cursor123"
		minRating := 4
		maxRating := 5
		expectedFilters := queries.ReviewFilters{MinRating: &minRating, MaxRating: &maxRating}
		expectedCursor := &queries.Cursor{After: "cursor123"}
		nextCursor := &queries.Cursor{After: "cursor456"}

		s.mockQueries.EXPECT().ListByCarWash(gomock.Any(), carWashID, expectedFilters, expectedCursor, 10).
			Return(items[:2], nextCursor, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.NotNil(response.NextCursor)
		s.Equal("cursor456", *response.NextCursor)
	})

	s.Run("error: 400 Bad Request for out-of-range rating filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?min_rating=6", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid min_rating")
	})

	s.Run("error: 400 Bad Request on undecodable cursor", func() {
		s.mockQueries.EXPECT().ListByCarWash(gomock.Any(), carWashID, queries.ReviewFilters{}, &queries.Cursor{After: "garbage"}, 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListByCarWash(gomock.Any(), carWashID, queries.ReviewFilters{}, (*queries.Cursor)(nil), 0).
			Return(nil, nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListMine() {
	url := "/reviews/me"

	items := []*queries.ReviewListItem{
		builder.NewReviewBuilder().BuildListItem(),
		builder.NewReviewBuilder().BuildListItem(),
	}

	s.Run("success: returns the current user's reviews", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, (*queries.Cursor)(nil), 0).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestRatingStats
// ================================================================================

func (s *ReviewHandlerTestSuite) TestRatingStats() {
	carWashID := uuid.New()
	url := "/car-washes/" + carWashID.String() + "/rating-stats"

	stats := &queries.CarWashRatingStats{
		CarWashID:     carWashID,
		TotalReviews:  10,
		AverageRating: 4.3,
		Rating4Count:  7,
		Rating5Count:  3,
	}

	s.Run("success: returns 200 OK with RatingStatsResponse", func() {
		s.mockQueries.EXPECT().GetCarWashRatingStats(gomock.Any(), carWashID).
			Return(stats, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RatingStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(carWashID, response.CarWashID)
		s.Equal(stats.TotalReviews, response.TotalReviews)
		s.Equal(stats.AverageRating, response.AverageRating)
		s.Equal(stats.Rating5Count, response.Rating5Count)
	})

	s.Run("error: 404 Not Found for missing car wash", func() {
		s.mockQueries.EXPECT().GetCarWashRatingStats(gomock.Any(), carWashID).
			Return(nil, errs.ErrCarWashNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car wash not found")
	})
}

// ================================================================================
// TestEligibility
// ================================================================================

func (s *ReviewHandlerTestSuite) TestEligibility() {
	carWashID := uuid.New()
	url := "/reviews/eligibility?car_wash_id=" + carWashID.String()

	s.Run("success: returns eligibility verdict", func() {
		eligibility := &queries.ReviewEligibility{
			CanReview:         true,
			HasCompletedVisit: true,
		}
		s.mockQueries.EXPECT().CheckEligibility(gomock.Any(), s.userID, carWashID).
			Return(eligibility, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.ReviewEligibility
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.CanReview)
		s.True(response.HasCompletedVisit)
	})

	s.Run("success: explains a rejection", func() {
		eligibility := &queries.ReviewEligibility{
			CanReview:       false,
			Reason:          "already reviewed",
			AlreadyReviewed: true,
		}
		s.mockQueries.EXPECT().CheckEligibility(gomock.Any(), s.userID, carWashID).
			Return(eligibility, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.ReviewEligibility
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.CanReview)
		s.True(response.AlreadyReviewed)
	})

	s.Run("error: 400 Bad Request on missing car_wash_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/eligibility", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid car_wash_id")
	})
}

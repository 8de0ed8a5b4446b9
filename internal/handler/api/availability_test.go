//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"campsite-reservation/internal/handler/api"
	"campsite-reservation/tests/common/httptest"
	usecasemock "campsite-reservation/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockAvailabilityUseCase
	handler  *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockAvailabilityUseCase(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockUC)

	s.router.GET("/api/availability", s.handler.GetAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	s.Run("returns free dates for the default window", func() {
		dates := []time.Time{
			time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC),
		}
		s.mockUC.EXPECT().GetAvailability(gomock.Any(), "pacific-island", nil, nil).Return(dates, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability?location_id=pacific-island", nil)

		var body struct {
			LocationID     string   `json:"locationId"`
			AvailableDates []string `json:"availableDates"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("pacific-island", body.LocationID)
		s.Equal([]string{"2025-10-02", "2025-10-03"}, body.AvailableDates)
	})

	s.Run("passes explicit bounds through", func() {
		start := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
		s.mockUC.EXPECT().GetAvailability(gomock.Any(), "pacific-island", &start, &end).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability?location_id=pacific-island&start_date=2025-10-10&end_date=2025-10-20", nil)

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("returns 400 without a location id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "location_id is required")
	})

	s.Run("returns 400 for a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability?location_id=pacific-island&start_date=10/15/2025", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid start_date format")
	})
}

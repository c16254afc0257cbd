//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"promo-api/internal/domain/analytics"
	"promo-api/internal/domain/user"
	"promo-api/internal/handler/api"
	resdto "promo-api/internal/handler/dto/response"
	"promo-api/internal/pkg/errs"
	"promo-api/internal/usecase/queries"
	"promo-api/tests/common/httptest"
	commandsmock "promo-api/tests/mock/commands"
	queriesmock "promo-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AnalyticsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAnalyticsCommands
	mockQueries  *queriesmock.MockAnalyticsQueries
	handler      *api.AnalyticsHandler
}

func (s *AnalyticsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAnalyticsCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAnalyticsQueries(s.mockCtrl)
	s.handler = api.NewAnalyticsHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("identity", user.Identity{
			Subject: "marketer@example.com",
			Email:   "marketer@example.com",
			Role:    user.RoleMarketer,
		})
		c.Next()
	}

	s.router.GET("/analytics", authMiddleware, s.handler.List)
	s.router.GET("/analytics/offer/:id", authMiddleware, s.handler.GetByOffer)
	s.router.POST("/analytics/offer/:id", authMiddleware, s.handler.Upsert)
}

func (s *AnalyticsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAnalyticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func (s *AnalyticsHandlerTestSuite) TestList() {
	s.Run("forwards parsed date range to the query", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, tr queries.TimeRange) ([]analytics.Analytics, error) {
				s.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), tr.From)
				s.Equal(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), tr.To)
				return []analytics.Analytics{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/analytics?startDate=2025-06-01&endDate=2025-06-30", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("missing params yield a zero range", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.TimeRange{}).
			Return([]analytics.Analytics{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/analytics", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("unparseable date returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/analytics?startDate=June+1st", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "INVALID_ARGUMENT")
	})
}

func (s *AnalyticsHandlerTestSuite) TestGetByOffer() {
	s.Run("success: returns analytics envelope", func() {
		offerID := uuid.New()
		doc := analytics.Analytics{
			ID:      uuid.New(),
			OfferID: offerID,
			Views:   500,
			TimeFrames: []analytics.TimeFrame{
				{Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Views: 500},
			},
		}
		s.mockQueries.EXPECT().GetByOffer(gomock.Any(), offerID, gomock.Any()).
			Return(&doc, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/analytics/offer/"+offerID.String(), nil, "bearer-token")

		var body struct {
			Analytics resdto.AnalyticsResponse `json:"analytics"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(500), body.Analytics.Views)
	})

	s.Run("offer without document yields zeroed counters", func() {
		offerID := uuid.New()
		empty := analytics.Empty(offerID)
		s.mockQueries.EXPECT().GetByOffer(gomock.Any(), offerID, gomock.Any()).
			Return(&empty, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/analytics/offer/"+offerID.String(), nil, "bearer-token")

		var body struct {
			Analytics resdto.AnalyticsResponse `json:"analytics"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Zero(body.Analytics.Views)
		s.NotNil(body.Analytics.TimeFrames)
	})

	s.Run("malformed id returns 404", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/analytics/offer/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}

func (s *AnalyticsHandlerTestSuite) TestUpsert() {
	offerID := uuid.New()
	reqBody := map[string]any{
		"views":       150,
		"conversions": 12,
		"timeFrame": map[string]any{
			"date":  "2025-06-15T00:00:00Z",
			"views": 150,
		},
	}

	s.Run("success: forwards counters and time frame", func() {
		doc := analytics.Analytics{ID: uuid.New(), OfferID: offerID, Views: 150, Conversions: 12}
		s.mockCommands.EXPECT().Upsert(gomock.Any(), offerID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, p analytics.Patch, tf *analytics.TimeFrame) (*analytics.Analytics, error) {
				views, ok := p.Views.Get()
				s.True(ok)
				s.Equal(int64(150), views)
				s.False(p.Activations.IsSet())
				s.Require().NotNil(tf)
				s.Equal(int64(150), tf.Views)
				return &doc, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/analytics/offer/"+offerID.String(), reqBody, "bearer-token")

		var body struct {
			Analytics resdto.AnalyticsResponse `json:"analytics"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(150), body.Analytics.Views)
	})

	s.Run("unknown offer returns 404", func() {
		s.mockCommands.EXPECT().Upsert(gomock.Any(), offerID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/analytics/offer/"+offerID.String(), reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}

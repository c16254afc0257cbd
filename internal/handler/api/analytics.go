package api

import (
	"net/http"
	"time"

	reqdto "promo-api/internal/handler/dto/request"
	resdto "promo-api/internal/handler/dto/response"
	"promo-api/internal/pkg/errs"
	"promo-api/internal/usecase/commands"
	"promo-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AnalyticsHandler struct {
	commands commands.AnalyticsCommands
	queries  queries.AnalyticsQueries
}

func NewAnalyticsHandler(cmd commands.AnalyticsCommands, q queries.AnalyticsQueries) *AnalyticsHandler {
	return &AnalyticsHandler{commands: cmd, queries: q}
}

// @Summary List analytics for all offers
// @Description startDate and endDate trim each document's timeFrames; both must be supplied for the filter to apply. Counters are never filtered.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Range end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} map[string][]resdto.AnalyticsResponse
// @Router /analytics [get]
func (h *AnalyticsHandler) List(c *gin.Context) {
	tr, err := parseTimeRange(c)
	if err != nil {
		badRequest(c, err, "Invalid date format")
		return
	}

	docs, err := h.queries.List(c.Request.Context(), tr)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analytics": resdto.FromAnalyticsList(docs)})
}

// @Summary Get analytics for an offer
// @Description Returns a zeroed document when the offer has no stored analytics.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param startDate query string false "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Range end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} map[string]resdto.AnalyticsResponse
// @Router /analytics/offer/{id} [get]
func (h *AnalyticsHandler) GetByOffer(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errs.ErrOfferNotFound)
		return
	}

	tr, err := parseTimeRange(c)
	if err != nil {
		badRequest(c, err, "Invalid date format")
		return
	}

	doc, err := h.queries.GetByOffer(c.Request.Context(), offerID, tr)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analytics": resdto.FromAnalytics(doc)})
}

// @Summary Record analytics for an offer
// @Description Creates the offer's analytics document if none exists, otherwise updates the supplied counters. An included timeFrame is appended.
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.UpsertAnalyticsRequest true "Counter updates"
// @Success 200 {object} map[string]resdto.AnalyticsResponse
// @Failure 404 {object} httperr.Response
// @Router /analytics/offer/{id} [post]
func (h *AnalyticsHandler) Upsert(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errs.ErrOfferNotFound)
		return
	}

	var req reqdto.UpsertAnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errInvalidBody, "Invalid request format")
		return
	}

	doc, err := h.commands.Upsert(c.Request.Context(), offerID, req.ToPatch(), req.ToTimeFrame())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analytics": resdto.FromAnalytics(doc)})
}

func parseTimeRange(c *gin.Context) (queries.TimeRange, error) {
	var tr queries.TimeRange
	var err error
	if tr.From, err = parseQueryDate(c.Query("startDate")); err != nil {
		return queries.TimeRange{}, err
	}
	if tr.To, err = parseQueryDate(c.Query("endDate")); err != nil {
		return queries.TimeRange{}, err
	}
	return tr, nil
}

func parseQueryDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

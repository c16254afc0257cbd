package api

import (
	"net/http"

	reqdto "promo-api/internal/handler/dto/request"
	resdto "promo-api/internal/handler/dto/response"
	"promo-api/internal/handler/middleware"
	"promo-api/internal/pkg/errs"
	"promo-api/internal/usecase/commands"
	"promo-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	commands commands.OfferCommands
	queries  queries.OfferQueries
}

func NewOfferHandler(cmd commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{commands: cmd, queries: q}
}

// @Summary List offers
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]resdto.OfferResponse
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	offers, err := h.queries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": resdto.FromOffers(offers)})
}

// @Summary Get offer
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} map[string]resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errs.ErrOfferNotFound)
		return
	}

	o, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offer": resdto.FromOffer(o)})
}

// @Summary Create offer
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Offer"
// @Success 201 {object} map[string]resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, errs.New("identity missing from context"))
		return
	}

	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errInvalidBody, "Invalid request format")
		return
	}

	o, err := h.commands.Create(c.Request.Context(), req.ToDraft(identity.Subject))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"offer": resdto.FromOffer(o)})
}

// @Summary Update offer
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.UpdateOfferRequest true "Fields to update"
// @Success 200 {object} map[string]resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [put]
func (h *OfferHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errs.ErrOfferNotFound)
		return
	}

	var req reqdto.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errInvalidBody, "Invalid request format")
		return
	}

	o, err := h.commands.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offer": resdto.FromOffer(o)})
}

// @Summary Delete offer
// @Description Deletes the offer and every analytics document tied to it.
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [delete]
func (h *OfferHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errs.ErrOfferNotFound)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Offer deleted successfully"})
}

// @Summary Check offer conflicts
// @Description Returns stored offers that compete with the candidate for the same date range and products or segments. Advisory only.
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckConflictsRequest true "Candidate offer"
// @Success 200 {object} map[string][]resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Router /offers/check-conflicts [post]
func (h *OfferHandler) CheckConflicts(c *gin.Context) {
	var req reqdto.CheckConflictsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errInvalidBody, "Invalid request format")
		return
	}

	conflicts, err := h.queries.CheckConflicts(c.Request.Context(), req.ToCandidate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conflicts": resdto.FromOffers(conflicts)})
}

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

type SegmentHandler struct {
	commands commands.SegmentCommands
	queries  queries.SegmentQueries
}

func NewSegmentHandler(cmd commands.SegmentCommands, q queries.SegmentQueries) *SegmentHandler {
	return &SegmentHandler{commands: cmd, queries: q}
}

// @Summary List segments
// @Tags segments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]resdto.SegmentResponse
// @Router /segments [get]
func (h *SegmentHandler) List(c *gin.Context) {
	segments, err := h.queries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"segments": resdto.FromSegments(segments)})
}

// @Summary Get segment
// @Tags segments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Segment ID"
// @Success 200 {object} map[string]resdto.SegmentResponse
// @Failure 404 {object} httperr.Response
// @Router /segments/{id} [get]
func (h *SegmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errs.ErrSegmentNotFound)
		return
	}

	s, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"segment": resdto.FromSegment(s)})
}

// @Summary Create segment
// @Tags segments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSegmentRequest true "Segment"
// @Success 201 {object} map[string]resdto.SegmentResponse
// @Failure 400 {object} httperr.Response
// @Router /segments [post]
func (h *SegmentHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, errs.New("identity missing from context"))
		return
	}

	var req reqdto.CreateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errInvalidBody, "Invalid request format")
		return
	}

	s, err := h.commands.Create(c.Request.Context(), req.ToDraft(identity.Subject))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"segment": resdto.FromSegment(s)})
}

// @Summary Update segment
// @Tags segments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Segment ID"
// @Param request body reqdto.UpdateSegmentRequest true "Fields to update"
// @Success 200 {object} map[string]resdto.SegmentResponse
// @Failure 404 {object} httperr.Response
// @Router /segments/{id} [put]
func (h *SegmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errs.ErrSegmentNotFound)
		return
	}

	var req reqdto.UpdateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errInvalidBody, "Invalid request format")
		return
	}

	s, err := h.commands.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"segment": resdto.FromSegment(s)})
}

// @Summary Delete segment
// @Description Refused while any offer still references the segment.
// @Tags segments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Segment ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /segments/{id} [delete]
func (h *SegmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errs.ErrSegmentNotFound)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Segment deleted successfully"})
}

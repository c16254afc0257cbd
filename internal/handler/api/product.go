package api

import (
	"net/http"

	reqdto "promo-api/internal/handler/dto/request"
	resdto "promo-api/internal/handler/dto/response"
	"promo-api/internal/pkg/errs"
	"promo-api/internal/usecase/commands"
	"promo-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	commands commands.ProductCommands
	queries  queries.ProductQueries
}

func NewProductHandler(cmd commands.ProductCommands, q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{commands: cmd, queries: q}
}

// @Summary List products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]resdto.ProductResponse
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.queries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resdto.FromProducts(products)})
}

// @Summary Get product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errs.ErrProductNotFound)
		return
	}

	p, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": resdto.FromProduct(p)})
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Product"
// @Success 201 {object} map[string]resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errInvalidBody, "Invalid request format")
		return
	}

	p, err := h.commands.Create(c.Request.Context(), req.ToDraft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": resdto.FromProduct(p)})
}

// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} map[string]resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errs.ErrProductNotFound)
		return
	}

	var req reqdto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errInvalidBody, "Invalid request format")
		return
	}

	p, err := h.commands.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": resdto.FromProduct(p)})
}

// @Summary Delete product
// @Description Refused while any offer still references the product.
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errs.ErrProductNotFound)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}

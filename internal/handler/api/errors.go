package api

import (
	"errors"
	"net/http"

	"promo-api/internal/handler/httperr"
	"promo-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errInvalidBody = errs.New("invalid request body")

type errorMapping struct {
	status  int
	code    string
	message string
}

// Shared taxonomy: invalid input is 400, unknown targets are 404, reference
// guards are 409. Anything unmapped is a 500 with no internals leaked.
var errorMappings = map[error]errorMapping{
	errs.ErrOfferFieldsMissing:   {http.StatusBadRequest, "INVALID_ARGUMENT", "Missing required fields"},
	errs.ErrProductFieldsMissing: {http.StatusBadRequest, "INVALID_ARGUMENT", "Missing required fields: name, category, or price"},
	errs.ErrSegmentFieldsMissing: {http.StatusBadRequest, "INVALID_ARGUMENT", "Missing required fields"},
	errs.ErrConflictCheckFields:  {http.StatusBadRequest, "INVALID_ARGUMENT", "Missing required fields for conflict check"},
	errs.ErrUnknownProductRef:    {http.StatusBadRequest, "INVALID_ARGUMENT", "Offer references unknown products"},
	errs.ErrUnknownSegmentRef:    {http.StatusBadRequest, "INVALID_ARGUMENT", "Offer references unknown segments"},
	errs.ErrOfferNotFound:        {http.StatusNotFound, "NOT_FOUND", "Offer not found"},
	errs.ErrProductNotFound:      {http.StatusNotFound, "NOT_FOUND", "Product not found"},
	errs.ErrSegmentNotFound:      {http.StatusNotFound, "NOT_FOUND", "Segment not found"},
	errs.ErrAnalyticsNotFound:    {http.StatusNotFound, "NOT_FOUND", "Analytics not found"},
	errs.ErrProductInUse:         {http.StatusConflict, "FAILED_PRECONDITION", "Cannot delete product as it is used in active offers"},
	errs.ErrSegmentInUse:         {http.StatusConflict, "FAILED_PRECONDITION", "Cannot delete segment as it is used in active offers"},
}

func respondError(c *gin.Context, err error) {
	for sentinel, m := range errorMappings {
		if errors.Is(err, sentinel) {
			httperr.AbortWithError(c, m.status, err, m.code, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error", nil)
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_ARGUMENT", msg, nil)
}

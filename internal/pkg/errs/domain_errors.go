package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Offer errors
	ErrOfferNotFound      = errors.New("offer not found")
	ErrOfferFieldsMissing = errors.New("missing required offer fields")
	ErrUnknownProductRef  = errors.New("offer references unknown product")
	ErrUnknownSegmentRef  = errors.New("offer references unknown segment")

	// Conflict check errors
	ErrConflictCheckFields = errors.New("missing required fields for conflict check")

	// Product errors
	ErrProductNotFound      = errors.New("product not found")
	ErrProductFieldsMissing = errors.New("missing required product fields")
	ErrProductInUse         = errors.New("product is referenced by existing offers")

	// Segment errors
	ErrSegmentNotFound      = errors.New("segment not found")
	ErrSegmentFieldsMissing = errors.New("missing required segment fields")
	ErrSegmentInUse         = errors.New("segment is referenced by existing offers")

	// Analytics errors
	ErrAnalyticsNotFound = errors.New("analytics not found")

	// Auth errors
	ErrInvalidRole = errors.New("invalid role")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

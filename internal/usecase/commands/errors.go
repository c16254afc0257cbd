package commands

import (
	"promo-api/internal/infra"
	"promo-api/internal/pkg/errs"
)

func mapOfferNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrOfferNotFound
	}
	return err
}

func mapProductNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrProductNotFound
	}
	return err
}

func mapSegmentNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrSegmentNotFound
	}
	return err
}

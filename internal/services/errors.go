package services

import (
	"errors"

	"storehub/internal/errs"
)

// notFoundAs classifies a repository miss with msg and passes other errors
// through untouched.
func notFoundAs(err error, msg string) error {
	if errors.Is(err, errs.ErrNotFound) {
		return errs.Wrap(errs.KindNotFound, msg, err)
	}
	return err
}

package services

import (
	"errors"
	"fmt"

	"tourwise/internal/repositories"
	"tourwise/pkg/utils"
)

// dbError keeps the driver cause in the message while classifying it as a persistence failure.
func dbError(err error) error {
	return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
}

// replaceError maps a replace that matched nothing to the entity's not-found error.
func replaceError(err, notFound error) error {
	if errors.Is(err, repositories.ErrNoMatch) {
		return notFound
	}
	return dbError(err)
}

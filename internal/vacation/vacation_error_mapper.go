package vacation

import (
	"errors"

	vacationerrors "sicservitium/internal/vacation/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return vacationerrors.ErrVacationNotFound
	}
	return err
}

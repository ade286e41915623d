package employee

import (
	"errors"
	"net/http"
	"strings"

	employeeerrors "sicservitium/internal/employee/errors"
	"sicservitium/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employees_matricula" {
			return employeeerrors.ErrMatriculaAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employees_matricula") {
		return employeeerrors.ErrMatriculaAlreadyExists
	}

	return err
}

// validationError flattens the validator's field map into one INVALID_INPUT
// error, with messages in spreadsheet column order.
func validationError(errs map[string]string) error {
	return apperror.New(
		apperror.CodeInvalidInput,
		strings.Join(ValidationMessages(errs), " | "),
		http.StatusBadRequest,
	)
}

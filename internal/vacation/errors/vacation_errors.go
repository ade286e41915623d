package vacationerrors

import (
	"net/http"

	"sicservitium/internal/shared/apperror"
)

var (
	ErrVacationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Registro de férias não encontrado",
		http.StatusNotFound,
	)

	ErrInvalidVacationID = apperror.New(
		apperror.CodeInvalidInput,
		"Identificador de férias inválido",
		http.StatusBadRequest,
	)

	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Formato não suportado. Use .xlsx ou .ods",
		http.StatusBadRequest,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Funcionário não encontrado para o registro de férias",
		http.StatusBadRequest,
	)
)

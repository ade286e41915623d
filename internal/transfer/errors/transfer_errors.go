package transfererrors

import (
	"net/http"

	"sicservitium/internal/shared/apperror"
)

var (
	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Formato não suportado. Use .xlsx ou .ods",
		http.StatusBadRequest,
	)

	ErrMissingFile = apperror.New(
		apperror.CodeInvalidInput,
		"Nenhum arquivo enviado",
		http.StatusBadRequest,
	)

	ErrUnreadableFile = apperror.New(
		apperror.CodeInvalidInput,
		"Erro ao ler arquivo",
		http.StatusUnprocessableEntity,
	)
)

package puncherrors

import (
	"net/http"

	"sicservitium/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Funcionário não encontrado para o ajuste de ponto",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Data inválida para o ajuste de ponto",
		http.StatusBadRequest,
	)
)

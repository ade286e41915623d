package employeeerrors

import (
	"net/http"

	"sicservitium/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Funcionário não encontrado",
		http.StatusNotFound,
	)
	ErrMatriculaAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Já existe um funcionário com esta matrícula",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de funcionário inválido",
		http.StatusBadRequest,
	)
)

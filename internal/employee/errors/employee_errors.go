package employeeerrors

import (
	"net/http"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email is already registered",
		http.StatusBadRequest,
	)
	ErrEmployeeNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee number already exists",
		http.StatusBadRequest,
	)
	ErrCategoryNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Category not found",
		http.StatusBadRequest,
	)
)

package taskerrors

import (
	"net/http"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/shared/apperror"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Task not found",
		http.StatusNotFound,
	)
	ErrInvalidTaskID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid task id",
		http.StatusBadRequest,
	)
	ErrInvalidDueDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid dueDate format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAssigneeNotOnProject = apperror.New(
		apperror.CodeInvalidInput,
		"Assignee is not on this project",
		http.StatusBadRequest,
	)
	ErrNotTaskAssignee = apperror.New(
		apperror.CodeForbidden,
		"Only the assignee or the project manager can update this task",
		http.StatusForbidden,
	)
)

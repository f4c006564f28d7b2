package taskerrors

import (
	"net/http"

	"orgdir/internal/shared/apperror"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Task not found or removed",
		http.StatusNotFound,
	)
	ErrNoTasksForEmployee = apperror.New(
		apperror.CodeEmptyResult,
		"No tasks assigned to this employee",
		http.StatusBadRequest,
	)
	ErrInvalidTaskID = apperror.New(
		apperror.CodeValidation,
		"Task id is not a valid UUID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeValidation,
		"Employee id is not a valid UUID",
		http.StatusBadRequest,
	)
)

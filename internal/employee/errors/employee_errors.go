package employeeerrors

import (
	"net/http"

	"orgdir/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found or removed",
		http.StatusNotFound,
	)
	ErrEmployeeEmailTaken = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrNoEmployeesForRole = apperror.New(
		apperror.CodeEmptyResult,
		"No employees found for this role",
		http.StatusBadRequest,
	)
	ErrNoEmployeesInDepartment = apperror.New(
		apperror.CodeEmptyResult,
		"No employees found for this department",
		http.StatusBadRequest,
	)
	ErrNoEmployeesInSection = apperror.New(
		apperror.CodeEmptyResult,
		"No employees found for this section",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeValidation,
		"Employee id is not a valid UUID",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeValidation,
		"Department id is not a valid UUID",
		http.StatusBadRequest,
	)
	ErrInvalidSectionID = apperror.New(
		apperror.CodeValidation,
		"Section id is not a valid UUID",
		http.StatusBadRequest,
	)
)

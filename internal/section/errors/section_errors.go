package sectionerrors

import (
	"net/http"

	"orgdir/internal/shared/apperror"
)

var (
	ErrSectionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Section not found or removed",
		http.StatusNotFound,
	)
	ErrSectionNameTaken = apperror.New(
		apperror.CodeConflict,
		"Section with the same name already exists",
		http.StatusConflict,
	)
	ErrNoSectionsInDepartment = apperror.New(
		apperror.CodeEmptyResult,
		"No sections found for this department",
		http.StatusBadRequest,
	)
	ErrInvalidSectionID = apperror.New(
		apperror.CodeValidation,
		"Section id is not a valid UUID",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeValidation,
		"Department id is not a valid UUID",
		http.StatusBadRequest,
	)
)

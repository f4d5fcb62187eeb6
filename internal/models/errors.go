package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrCategoryNameNotUnique = errors.New("you already have a category with this name")
	ErrCategoryTypeInvalid   = errors.New("the category type must be income or expense")
	ErrCategoryMismatch      = errors.New("the category referenced by the transaction does not belong to you")
	ErrEmailNotUnique        = errors.New("a user with this email address already exists")
)

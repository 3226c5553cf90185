package services

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category with this name already exists")
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrInvalidID             = errors.New("invalid id")
)

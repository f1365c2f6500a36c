package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("name, email and a password of at least 6 characters are required")
	ErrDuplicateUser      = errors.New("an account with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongCredential    = errors.New("wrong email or password")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrInvalidFormat      = errors.New("the file is not a valid store document")
	ErrStorageUnavailable = errors.New("storage is unavailable")
)

package user

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// sign-in failures never reveal which one was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailNotConfirmed is returned when the account exists but the email
	// address was never confirmed.
	ErrEmailNotConfirmed = errors.New("email not confirmed")

	ErrUserNotFound = errors.New("user not found")
)

package services

import "errors"

var ErrWeakPassword = errors.New("weak password")

const minPasswordLength = 8

func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

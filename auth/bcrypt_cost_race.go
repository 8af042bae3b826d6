//go:build race

package auth

import "golang.org/x/crypto/bcrypt"

func passwordHashCost() int {
	// Race-enabled builds hash at the default cost, otherwise the login
	// tests blow past their deadlines.
	return bcrypt.DefaultCost
}

package service

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher decides how a password is stored and checked.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(stored, given string) bool
}

// PlainPasswords stores passwords as sent and compares them verbatim.
type PlainPasswords struct{}

func (PlainPasswords) Hash(password string) (string, error) { return password, nil }
func (PlainPasswords) Matches(stored, given string) bool    { return stored == given }

type BcryptPasswords struct {
	Cost int
}

func (b BcryptPasswords) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(hashed), err
}

func (BcryptPasswords) Matches(stored, given string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
}

// NewPasswordHasher maps the PASSWORD_HASHING setting to a hasher.
func NewPasswordHasher(mode string) PasswordHasher {
	if mode == "bcrypt" {
		return BcryptPasswords{}
	}
	return PlainPasswords{}
}

// Package validate implements signup field validation.
package validate

import (
	"fmt"
	"strings"

	"github.com/mkraev/teamtodo/internal/errs"
)

// Name length bounds (inclusive).
const (
	NameMin = 3
	NameMax = 50
)

// Email length bounds (inclusive).
const (
	EmailMin = 5
	EmailMax = 120
)

// Password length bounds (inclusive).
const (
	PasswordMin = 8
	PasswordMax = 128
)

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", errs.ErrValidation, msg)
}

// Name checks a profile name: 3-50 ASCII characters, alphanumeric or space,
// starting with a letter.
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("Invalid name")
	}
	if len(name) < NameMin || len(name) > NameMax {
		return invalid("Name must be between 3 and 50 characters")
	}
	for _, r := range name {
		if r > 127 {
			return invalid("Name must contain only ASCII characters")
		}
		if !isAlnum(byte(r)) && r != ' ' {
			return invalid("Name must be alphanumeric or contain spaces")
		}
	}
	if !isLetter(name[0]) {
		return invalid("Name must start with a letter")
	}
	return nil
}

// Email checks length and minimal shape: an '@' with a dotted domain after
// the last one. No RFC 5322 parsing.
func Email(email string) error {
	if strings.TrimSpace(email) == "" {
		return invalid("Invalid email")
	}
	if len(email) < EmailMin || len(email) > EmailMax {
		return invalid("Email must be between 5 and 120 characters")
	}
	at := strings.LastIndex(email, "@")
	if at < 0 || !strings.Contains(email[at+1:], ".") {
		return invalid("Email must contain '@' and a domain")
	}
	return nil
}

// Password checks length only; no composition policy.
func Password(password string) error {
	if strings.TrimSpace(password) == "" {
		return invalid("Invalid password")
	}
	if len(password) < PasswordMin || len(password) > PasswordMax {
		return invalid("Password must be between 8 and 128 characters")
	}
	return nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9')
}

package services

import (
	"context"
	"errors"
	"strings"
)

// EmailValidator is satisfied by the abstractapi reputation client and the
// local fallback below.
type EmailValidator interface {
	Validate(ctx context.Context, email string) error
}

type LocalValidator struct{}

func NewLocalValidator() *LocalValidator {
	return &LocalValidator{}
}

func (v *LocalValidator) Validate(_ context.Context, email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return errors.New("invalid email address")
	}
	return nil
}

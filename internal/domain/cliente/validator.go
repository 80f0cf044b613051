package cliente

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLen  = 100
	MaxPhoneLen = 20
)

type Validator interface {
	Validate(c Cliente) error
}

type FieldValidator struct{}

func NewValidator() *FieldValidator {
	return &FieldValidator{}
}

func (v *FieldValidator) Validate(c Cliente) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("nombre is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return fmt.Errorf("nombre must be at most %d characters", MaxNameLen)
	}

	if utf8.RuneCountInString(c.Phone) > MaxPhoneLen {
		return fmt.Errorf("telefono must be at most %d characters", MaxPhoneLen)
	}
	for _, r := range c.Phone {
		if !strings.ContainsRune("0123456789+-() ", r) {
			return fmt.Errorf("telefono contains invalid character %q", r)
		}
	}

	return nil
}

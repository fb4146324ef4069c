package models

import "strings"

// Participant represents a person taking part in shared expenses.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string

	// Name is the display name used in settlement output.
	Name string

	// Email is optional contact information.
	Email string

	// Active participants are included in settlement. Inactive ones keep their
	// history but drop out of balance computation.
	Active bool

	// CreatedAt is the Unix timestamp when the participant was created.
	CreatedAt int64
}

// Validate checks the participant's required fields.
func (p *Participant) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	if p.Name == "" {
		return ErrNameRequired
	}
	if len(p.Name) > 100 {
		return ErrNameTooLong
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

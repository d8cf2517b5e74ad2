package transport

import (
	"time"

	"github.com/google/uuid"
)

type CreateContactRequest struct {
	AccountID  uuid.UUID  `json:"accountId" validate:"required"`
	PropertyID *uuid.UUID `json:"propertyId,omitempty"`
	FirstName  string     `json:"firstName" validate:"required,min=1,max=100"`
	LastName   string     `json:"lastName" validate:"required,min=1,max=100"`
	Title      string     `json:"title,omitempty" validate:"omitempty,max=100"`
	Email      string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string     `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	IsPrimary  bool       `json:"isPrimary,omitempty"`
}

type ContactResponse struct {
	ID         uuid.UUID  `json:"id"`
	AccountID  uuid.UUID  `json:"accountId"`
	PropertyID *uuid.UUID `json:"propertyId,omitempty"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Title      *string    `json:"title,omitempty"`
	Email      *string    `json:"email,omitempty"`
	Phone      *string    `json:"phone,omitempty"`
	IsPrimary  bool       `json:"isPrimary"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

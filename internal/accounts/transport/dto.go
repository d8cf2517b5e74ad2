package transport

import (
	"time"

	"github.com/google/uuid"
)

// Enum values
type CompanyType string

const (
	CompanyTypeRetail      CompanyType = "Retail"
	CompanyTypeRestaurant  CompanyType = "Restaurant"
	CompanyTypeHospitality CompanyType = "Hospitality"
	CompanyTypeHealthcare  CompanyType = "Healthcare"
	CompanyTypeOffice      CompanyType = "Office"
	CompanyTypeIndustrial  CompanyType = "Industrial"
	CompanyTypeOther       CompanyType = "Other"
)

// Request DTOs
type CreateAccountRequest struct {
	Name         string      `json:"name" validate:"required,min=1,max=200"`
	CompanyType  CompanyType `json:"companyType" validate:"required,oneof=Retail Restaurant Hospitality Healthcare Office Industrial Other"`
	Phone        string      `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Email        string      `json:"email,omitempty" validate:"omitempty,email"`
	Website      string      `json:"website,omitempty" validate:"omitempty,max=200"`
	Street       string      `json:"street,omitempty" validate:"omitempty,max=200"`
	City         string      `json:"city,omitempty" validate:"omitempty,max=100"`
	State        string      `json:"state,omitempty" validate:"omitempty,max=50"`
	ZipCode      string      `json:"zipCode,omitempty" validate:"omitempty,max=20"`
	Notes        string      `json:"notes,omitempty" validate:"omitempty,max=2000"`
	SourceLeadID *uuid.UUID  `json:"sourceLeadId,omitempty"`
}

type UpdateAccountRequest struct {
	Name        *string      `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	CompanyType *CompanyType `json:"companyType,omitempty" validate:"omitempty,oneof=Retail Restaurant Hospitality Healthcare Office Industrial Other"`
	Phone       *string      `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Email       *string      `json:"email,omitempty" validate:"omitempty,email"`
	Website     *string      `json:"website,omitempty" validate:"omitempty,max=200"`
	Street      *string      `json:"street,omitempty" validate:"omitempty,max=200"`
	City        *string      `json:"city,omitempty" validate:"omitempty,max=100"`
	State       *string      `json:"state,omitempty" validate:"omitempty,max=50"`
	ZipCode     *string      `json:"zipCode,omitempty" validate:"omitempty,max=20"`
	Notes       *string      `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type ListAccountsRequest struct {
	Search   string `form:"search" validate:"max=100"`
	Page     int    `form:"page" validate:"min=1"`
	PageSize int    `form:"pageSize" validate:"min=1,max=100"`
}

// Response DTOs
type AccountResponse struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	CompanyType  CompanyType `json:"companyType"`
	Phone        *string     `json:"phone,omitempty"`
	Email        *string     `json:"email,omitempty"`
	Website      *string     `json:"website,omitempty"`
	Street       *string     `json:"street,omitempty"`
	City         *string     `json:"city,omitempty"`
	State        *string     `json:"state,omitempty"`
	ZipCode      *string     `json:"zipCode,omitempty"`
	Notes        *string     `json:"notes,omitempty"`
	SourceLeadID *uuid.UUID  `json:"sourceLeadId,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type AccountListResponse struct {
	Items      []AccountResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

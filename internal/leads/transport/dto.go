package transport

import (
	"time"

	"github.com/google/uuid"
)

// Enum values
type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "New"
	LeadStatusWorking      LeadStatus = "Working"
	LeadStatusConverted    LeadStatus = "Converted"
	LeadStatusDisqualified LeadStatus = "Disqualified"
)

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
type CreateLeadRequest struct {
	Name        string      `json:"name" validate:"required,min=1,max=200"`
	CompanyType CompanyType `json:"companyType" validate:"required,oneof=Retail Restaurant Hospitality Healthcare Office Industrial Other"`
	Phone       string      `json:"phone,omitempty" validate:"omitempty,max=32"`
	Email       string      `json:"email,omitempty" validate:"omitempty,email"`
	Website     string      `json:"website,omitempty" validate:"omitempty,max=255"`
	Street      string      `json:"street,omitempty" validate:"omitempty,max=255"`
	City        string      `json:"city,omitempty" validate:"omitempty,max=100"`
	State       string      `json:"state,omitempty" validate:"omitempty,max=50"`
	ZipCode     string      `json:"zipCode,omitempty" validate:"omitempty,max=20"`
	Notes       string      `json:"notes,omitempty" validate:"omitempty,max=5000"`
	Tags        []string    `json:"tags,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
}

type UpdateLeadRequest struct {
	Name        *string      `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	CompanyType *CompanyType `json:"companyType,omitempty" validate:"omitempty,oneof=Retail Restaurant Hospitality Healthcare Office Industrial Other"`
	Phone       *string      `json:"phone,omitempty" validate:"omitempty,max=32"`
	Email       *string      `json:"email,omitempty" validate:"omitempty,email"`
	Website     *string      `json:"website,omitempty" validate:"omitempty,max=255"`
	Street      *string      `json:"street,omitempty" validate:"omitempty,max=255"`
	City        *string      `json:"city,omitempty" validate:"omitempty,max=100"`
	State       *string      `json:"state,omitempty" validate:"omitempty,max=50"`
	ZipCode     *string      `json:"zipCode,omitempty" validate:"omitempty,max=20"`
	Notes       *string      `json:"notes,omitempty" validate:"omitempty,max=5000"`
	Tags        []string     `json:"tags,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
	Status      *LeadStatus  `json:"status,omitempty" validate:"omitempty,oneof=New Working Converted Disqualified"`
}

type ListLeadsRequest struct {
	Search   string      `form:"search" validate:"omitempty,max=200"`
	Status   *LeadStatus `form:"status" validate:"omitempty,oneof=New Working Converted Disqualified"`
	Page     int         `form:"page" validate:"min=1"`
	PageSize int         `form:"pageSize" validate:"min=1,max=100"`
}

type ConvertLeadRequest struct {
	LinkedAccountID *uuid.UUID `json:"linkedAccountId,omitempty"`
}

// Response DTOs
type LeadResponse struct {
	ID                 uuid.UUID   `json:"id"`
	Name               string      `json:"name"`
	CompanyType        CompanyType `json:"companyType"`
	Phone              *string     `json:"phone,omitempty"`
	Email              *string     `json:"email,omitempty"`
	Website            *string     `json:"website,omitempty"`
	Street             *string     `json:"street,omitempty"`
	City               *string     `json:"city,omitempty"`
	State              *string     `json:"state,omitempty"`
	ZipCode            *string     `json:"zipCode,omitempty"`
	Notes              *string     `json:"notes,omitempty"`
	Tags               []string    `json:"tags"`
	Status             LeadStatus  `json:"status"`
	ConvertedAccountID *uuid.UUID  `json:"convertedAccountId,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

type LeadListResponse struct {
	Items      []LeadResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

type ConvertLeadResponse struct {
	Message   string    `json:"message"`
	AccountID uuid.UUID `json:"accountId"`
}

// DuplicateCandidateResponse is one ranked duplicate-account suggestion. Score
// is absent when only a coarse signal matched; confidence is the display tier.
type DuplicateCandidateResponse struct {
	AccountID   uuid.UUID `json:"accountId"`
	Name        string    `json:"name"`
	CompanyType string    `json:"companyType"`
	City        *string   `json:"city,omitempty"`
	State       *string   `json:"state,omitempty"`
	Score       *float64  `json:"score,omitempty"`
	Confidence  string    `json:"confidence"`
}

type DuplicateCandidateListResponse struct {
	Items []DuplicateCandidateResponse `json:"items"`
}

package transport

import (
	"time"

	"github.com/google/uuid"
)

type BuildingType string

const (
	BuildingTypeOffice     BuildingType = "Office"
	BuildingTypeWarehouse  BuildingType = "Warehouse"
	BuildingTypeRetail     BuildingType = "Retail"
	BuildingTypeRestaurant BuildingType = "Restaurant"
	BuildingTypeMixedUse   BuildingType = "Mixed_Use"
	BuildingTypeOther      BuildingType = "Other"
)

type CreatePropertyRequest struct {
	AccountID    uuid.UUID    `json:"accountId" validate:"required"`
	Name         string       `json:"name" validate:"required,min=1,max=200"`
	BuildingType BuildingType `json:"buildingType" validate:"required,oneof=Office Warehouse Retail Restaurant Mixed_Use Other"`
	Street       string       `json:"street,omitempty" validate:"omitempty,max=200"`
	City         string       `json:"city,omitempty" validate:"omitempty,max=100"`
	State        string       `json:"state,omitempty" validate:"omitempty,max=50"`
	ZipCode      string       `json:"zipCode,omitempty" validate:"omitempty,max=20"`
	Notes        string       `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type PropertyResponse struct {
	ID           uuid.UUID    `json:"id"`
	AccountID    uuid.UUID    `json:"accountId"`
	Name         string       `json:"name"`
	BuildingType BuildingType `json:"buildingType"`
	Street       *string      `json:"street,omitempty"`
	City         *string      `json:"city,omitempty"`
	State        *string      `json:"state,omitempty"`
	ZipCode      *string      `json:"zipCode,omitempty"`
	Notes        *string      `json:"notes,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

package request

import (
	"time"

	"seva-console/internal/dto/response"
	"seva-console/internal/pkg/patch"
)

type CreateCallingSevaRequest struct {
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address" binding:"required"`
	MobileNo       string `json:"mobile_no" binding:"required,numeric,min=10,max=15"`
	Status         string `json:"status" binding:"required"`
	AssignedBhagat string `json:"assigned_bhagat"`
	Remarks        string `json:"remarks"`
}

type UpdateCallingSevaRequest struct {
	Name           *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Address        *string `json:"address,omitempty" binding:"omitempty,min=1"`
	MobileNo       *string `json:"mobile_no,omitempty" binding:"omitempty,numeric,min=10,max=15"`
	Status         *string `json:"status,omitempty" binding:"omitempty,min=1"`
	AssignedBhagat *string `json:"assigned_bhagat,omitempty"`
	Remarks        *string `json:"remarks,omitempty"`
}

func (r CreateCallingSevaRequest) ToRecord(id string, now time.Time) response.CallingSeva {
	return response.CallingSeva{
		ID:             id,
		Name:           r.Name,
		Address:        r.Address,
		MobileNo:       r.MobileNo,
		Status:         r.Status,
		AssignedBhagat: r.AssignedBhagat,
		Remarks:        r.Remarks,
		CreatedAt:      now.UTC().Format(time.RFC3339),
	}
}

func (r UpdateCallingSevaRequest) ApplyTo(rec *response.CallingSeva) {
	patch.Apply(&rec.Name, r.Name)
	patch.Apply(&rec.Address, r.Address)
	patch.Apply(&rec.MobileNo, r.MobileNo)
	patch.Apply(&rec.Status, r.Status)
	patch.Apply(&rec.AssignedBhagat, r.AssignedBhagat)
	patch.Apply(&rec.Remarks, r.Remarks)
}

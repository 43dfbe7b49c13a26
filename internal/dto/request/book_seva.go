package request

import (
	"time"

	"seva-console/internal/dto/response"
	"seva-console/internal/pkg/patch"
)

type CreateBookSevaRequest struct {
	Place           string `json:"place" binding:"required"`
	VolunteerName   string `json:"volunteer_name" binding:"required"`
	BookName        string `json:"book_name" binding:"required"`
	BookType        string `json:"book_type" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
	CoordinatorName string `json:"coordinator_name" binding:"required"`
	DriverName      string `json:"driver_name"`
	Date            string `json:"date" binding:"required,datetime=2006-01-02"`
}

type UpdateBookSevaRequest struct {
	Place           *string `json:"place,omitempty" binding:"omitempty,min=1"`
	VolunteerName   *string `json:"volunteer_name,omitempty" binding:"omitempty,min=1"`
	BookName        *string `json:"book_name,omitempty" binding:"omitempty,min=1"`
	BookType        *string `json:"book_type,omitempty" binding:"omitempty,min=1"`
	Quantity        *int    `json:"quantity,omitempty" binding:"omitempty,min=1"`
	CoordinatorName *string `json:"coordinator_name,omitempty" binding:"omitempty,min=1"`
	DriverName      *string `json:"driver_name,omitempty"`
	Date            *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (r CreateBookSevaRequest) ToRecord(id string, now time.Time) response.BookSeva {
	return response.BookSeva{
		ID:              id,
		Place:           r.Place,
		VolunteerName:   r.VolunteerName,
		BookName:        r.BookName,
		BookType:        r.BookType,
		Quantity:        r.Quantity,
		CoordinatorName: r.CoordinatorName,
		DriverName:      r.DriverName,
		Date:            r.Date,
		CreatedAt:       now.UTC().Format(time.RFC3339),
	}
}

func (r UpdateBookSevaRequest) ApplyTo(rec *response.BookSeva) {
	patch.Apply(&rec.Place, r.Place)
	patch.Apply(&rec.VolunteerName, r.VolunteerName)
	patch.Apply(&rec.BookName, r.BookName)
	patch.Apply(&rec.BookType, r.BookType)
	patch.Apply(&rec.Quantity, r.Quantity)
	patch.Apply(&rec.CoordinatorName, r.CoordinatorName)
	patch.Apply(&rec.DriverName, r.DriverName)
	patch.Apply(&rec.Date, r.Date)
}

package request

import (
	"time"

	"seva-console/internal/dto/response"
	"seva-console/internal/pkg/patch"
)

type CreateExpenseRequest struct {
	ItemName string                   `json:"item_name" binding:"required"`
	Price    float64                  `json:"price" binding:"required,gt=0"`
	Quantity int                      `json:"quantity" binding:"required,min=1"`
	Category response.ExpenseCategory `json:"category" binding:"required,oneof=seva naamdaan"`
	Date     string                   `json:"date" binding:"required,datetime=2006-01-02"`
}

type UpdateExpenseRequest struct {
	ItemName *string                   `json:"item_name,omitempty" binding:"omitempty,min=1"`
	Price    *float64                  `json:"price,omitempty" binding:"omitempty,gt=0"`
	Quantity *int                      `json:"quantity,omitempty" binding:"omitempty,min=1"`
	Category *response.ExpenseCategory `json:"category,omitempty" binding:"omitempty,oneof=seva naamdaan"`
	Date     *string                   `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (r CreateExpenseRequest) ToRecord(id string, now time.Time) response.Expense {
	return response.Expense{
		ID:        id,
		ItemName:  r.ItemName,
		Price:     r.Price,
		Quantity:  r.Quantity,
		Total:     r.Price * float64(r.Quantity),
		Category:  r.Category,
		Date:      r.Date,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
}

// ApplyTo recomputes Total from the patched price and quantity.
func (r UpdateExpenseRequest) ApplyTo(rec *response.Expense) {
	patch.Apply(&rec.ItemName, r.ItemName)
	patch.Apply(&rec.Price, r.Price)
	patch.Apply(&rec.Quantity, r.Quantity)
	patch.Apply(&rec.Category, r.Category)
	patch.Apply(&rec.Date, r.Date)
	rec.Total = rec.Price * float64(rec.Quantity)
}

//go:build unit || e2e

package builder

import (
	reqdto "seva-console/internal/dto/request"
	resdto "seva-console/internal/dto/response"
)

type BookSevaBuilder struct {
	req reqdto.CreateBookSevaRequest
}

func NewBookSevaBuilder() *BookSevaBuilder {
	return &BookSevaBuilder{req: reqdto.CreateBookSevaRequest{
		Place:           "Community Hall",
		VolunteerName:   "Ravi",
		BookName:        "Gyan Ganga",
		BookType:        "paperback",
		Quantity:        10,
		CoordinatorName: "Anil Sharma",
		DriverName:      "Suresh Kumar",
		Date:            "2024-01-15",
	}}
}

func (b *BookSevaBuilder) With(mutate func(*reqdto.CreateBookSevaRequest)) *BookSevaBuilder {
	mutate(&b.req)
	return b
}

func (b *BookSevaBuilder) BuildDTO() reqdto.CreateBookSevaRequest {
	return b.req
}

type CallingSevaBuilder struct {
	req reqdto.CreateCallingSevaRequest
}

func NewCallingSevaBuilder() *CallingSevaBuilder {
	return &CallingSevaBuilder{req: reqdto.CreateCallingSevaRequest{
		Name:           "Asha Devi",
		Address:        "12 Temple Road",
		MobileNo:       "9876543210",
		Status:         "pending",
		AssignedBhagat: "Priya",
		Remarks:        "Call after 6pm",
	}}
}

func (b *CallingSevaBuilder) With(mutate func(*reqdto.CreateCallingSevaRequest)) *CallingSevaBuilder {
	mutate(&b.req)
	return b
}

func (b *CallingSevaBuilder) BuildDTO() reqdto.CreateCallingSevaRequest {
	return b.req
}

type ExpenseBuilder struct {
	req reqdto.CreateExpenseRequest
}

func NewExpenseBuilder() *ExpenseBuilder {
	return &ExpenseBuilder{req: reqdto.CreateExpenseRequest{
		ItemName: "Printing",
		Price:    12.5,
		Quantity: 4,
		Category: resdto.ExpenseCategorySeva,
		Date:     "2024-01-15",
	}}
}

func (b *ExpenseBuilder) With(mutate func(*reqdto.CreateExpenseRequest)) *ExpenseBuilder {
	mutate(&b.req)
	return b
}

func (b *ExpenseBuilder) BuildDTO() reqdto.CreateExpenseRequest {
	return b.req
}

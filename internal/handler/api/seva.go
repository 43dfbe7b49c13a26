package api

import (
	"net/http"

	reqdto "seva-console/internal/dto/request"
	resdto "seva-console/internal/dto/response"
	"seva-console/internal/infra/memstore"

	"github.com/gin-gonic/gin"
)

type (
	BookSevaHandler = RecordHandler[
		resdto.BookSeva, reqdto.CreateBookSevaRequest, reqdto.UpdateBookSevaRequest, reqdto.BookSevaListParams]
	CallingSevaHandler = RecordHandler[
		resdto.CallingSeva, reqdto.CreateCallingSevaRequest, reqdto.UpdateCallingSevaRequest, reqdto.CallingSevaListParams]
	ExpenseHandler = RecordHandler[
		resdto.Expense, reqdto.CreateExpenseRequest, reqdto.UpdateExpenseRequest, reqdto.ExpenseListParams]
)

func NewBookSevaHandler(store *memstore.Store) *BookSevaHandler {
	return &BookSevaHandler{
		entity: "Book seva",
		table:  store.BookSeva,
		create: store.CreateBookSeva,
		list:   store.ListBookSeva,
		apply:  reqdto.UpdateBookSevaRequest.ApplyTo,
	}
}

func NewCallingSevaHandler(store *memstore.Store) *CallingSevaHandler {
	return &CallingSevaHandler{
		entity: "Calling seva",
		table:  store.CallingSeva,
		create: store.CreateCallingSeva,
		list:   store.ListCallingSeva,
		apply:  reqdto.UpdateCallingSevaRequest.ApplyTo,
	}
}

func NewExpenseHandler(store *memstore.Store) *ExpenseHandler {
	return &ExpenseHandler{
		entity: "Expense",
		table:  store.Expenses,
		create: store.CreateExpense,
		list:   store.ListExpenses,
		apply:  reqdto.UpdateExpenseRequest.ApplyTo,
	}
}

type GeneralHandler struct {
	store *memstore.Store
}

func NewGeneralHandler(store *memstore.Store) *GeneralHandler {
	return &GeneralHandler{store: store}
}

func (h *GeneralHandler) Constants(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Constants())
}

// Package service holds the domain API modules. Each call goes through the
// transport, which already classifies and reports failures; services only add
// routes, shapes and success notifications.
package service

import (
	"context"
	"net/url"

	"seva-console/internal/client/notify"
	"seva-console/internal/client/transport"
	"seva-console/internal/dto/request"
	"seva-console/internal/dto/response"
)

const (
	PathBookSeva    = "/book-seva"
	PathCallingSeva = "/calling-seva"
	PathExpenses    = "/expenses"
	PathConstants   = "/general/constants"
)

// ListParams encodes a list filter bag; unset fields must be left out.
type ListParams interface {
	Values() url.Values
}

// Resource is the CRUD surface shared by the record modules.
type Resource[T, C, U any, P ListParams] interface {
	Create(ctx context.Context, req C) (*T, error)
	GetAll(ctx context.Context, params P) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, id string, req U) (*T, error)
	Delete(ctx context.Context, id string) error
}

type (
	BookSevaService = Resource[
		response.BookSeva, request.CreateBookSevaRequest, request.UpdateBookSevaRequest, request.BookSevaListParams]
	CallingSevaService = Resource[
		response.CallingSeva, request.CreateCallingSevaRequest, request.UpdateCallingSevaRequest, request.CallingSevaListParams]
	ExpenseService = Resource[
		response.Expense, request.CreateExpenseRequest, request.UpdateExpenseRequest, request.ExpenseListParams]
)

type resourceService[T, C, U any, P ListParams] struct {
	client   transport.Requester
	notifier notify.Notifier
	basePath string
	entity   string
}

func NewBookSevaService(client transport.Requester, notifier notify.Notifier) BookSevaService {
	return &resourceService[response.BookSeva, request.CreateBookSevaRequest, request.UpdateBookSevaRequest, request.BookSevaListParams]{
		client:   client,
		notifier: notifier,
		basePath: PathBookSeva,
		entity:   "Book Seva",
	}
}

func NewCallingSevaService(client transport.Requester, notifier notify.Notifier) CallingSevaService {
	return &resourceService[response.CallingSeva, request.CreateCallingSevaRequest, request.UpdateCallingSevaRequest, request.CallingSevaListParams]{
		client:   client,
		notifier: notifier,
		basePath: PathCallingSeva,
		entity:   "Calling Seva",
	}
}

func NewExpenseService(client transport.Requester, notifier notify.Notifier) ExpenseService {
	return &resourceService[response.Expense, request.CreateExpenseRequest, request.UpdateExpenseRequest, request.ExpenseListParams]{
		client:   client,
		notifier: notifier,
		basePath: PathExpenses,
		entity:   "Expense",
	}
}

func (s *resourceService[T, C, U, P]) Create(ctx context.Context, req C) (*T, error) {
	var out T
	if err := s.client.Post(ctx, s.basePath, req, &out); err != nil {
		return nil, err
	}
	s.notifier.Success(s.entity + " created successfully")
	return &out, nil
}

func (s *resourceService[T, C, U, P]) GetAll(ctx context.Context, params P) ([]T, error) {
	var out []T
	if err := s.client.Get(ctx, s.basePath, params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *resourceService[T, C, U, P]) GetByID(ctx context.Context, id string) (*T, error) {
	var out T
	if err := s.client.Get(ctx, s.itemPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *resourceService[T, C, U, P]) Update(ctx context.Context, id string, req U) (*T, error) {
	var out T
	if err := s.client.Put(ctx, s.itemPath(id), req, &out); err != nil {
		return nil, err
	}
	s.notifier.Success(s.entity + " updated successfully")
	return &out, nil
}

func (s *resourceService[T, C, U, P]) Delete(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, s.itemPath(id), nil); err != nil {
		return err
	}
	s.notifier.Success(s.entity + " deleted successfully")
	return nil
}

func (s *resourceService[T, C, U, P]) itemPath(id string) string {
	return s.basePath + "/" + url.PathEscape(id)
}

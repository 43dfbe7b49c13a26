package service

import (
	"context"

	"seva-console/internal/client/transport"
	"seva-console/internal/dto/response"
)

type GeneralService interface {
	Constants(ctx context.Context) (*response.Constants, error)
}

type generalServiceImpl struct {
	client transport.Requester
}

func NewGeneralService(client transport.Requester) GeneralService {
	return &generalServiceImpl{client: client}
}

func (g *generalServiceImpl) Constants(ctx context.Context) (*response.Constants, error) {
	var out response.Constants
	if err := g.client.Get(ctx, PathConstants, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

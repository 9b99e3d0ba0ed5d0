package service

import (
	"context"

	"lodge/infras/otel"
	"lodge/internal/domains/room/model"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

type Room interface {
	GetAll(ctx context.Context) []model.Room
	Get(ctx context.Context, id int) (model.Room, error)
}

type serviceImpl struct {
	otel otel.Otel
}

func New(otel otel.Otel) Room {
	return &serviceImpl{
		otel: otel,
	}
}

// GetAll returns the fixed catalog. The result is identical on every call,
// regardless of reservation state.
func (s *serviceImpl) GetAll(ctx context.Context) []model.Room {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	return model.Catalog()
}

func (s *serviceImpl) Get(ctx context.Context, id int) (model.Room, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()

	room, ok := model.ByID(id)
	if !ok {
		return model.Room{}, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

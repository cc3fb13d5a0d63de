// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/food-order-service/internal/repository"
)

type MockMenuItemsRepositoryInterface struct {
	mock.Mock
}

func (m *MockMenuItemsRepositoryInterface) List(ctx context.Context) ([]*repository.MenuItemDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.MenuItemDocument), args.Error(1)
}

func (m *MockMenuItemsRepositoryInterface) FindByItemID(ctx context.Context, itemID string) (*repository.MenuItemDocument, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.MenuItemDocument), args.Error(1)
}

func (m *MockMenuItemsRepositoryInterface) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMenuItemsRepositoryInterface) Seed(ctx context.Context, docs []*repository.MenuItemDocument) (int64, error) {
	args := m.Called(ctx, docs)
	return args.Get(0).(int64), args.Error(1)
}

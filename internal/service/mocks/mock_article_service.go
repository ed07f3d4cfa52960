package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adevaproject/webapppro/internal/model"
	"github.com/adevaproject/webapppro/internal/service"
)

type MockArticleService struct {
	mock.Mock
}

func (m *MockArticleService) Create(ctx context.Context, in service.CreateArticleInput) (*model.Article, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleService) Update(ctx context.Context, slug string, in service.UpdateArticleInput) (*model.Article, error) {
	args := m.Called(ctx, slug, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleService) Delete(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *MockArticleService) Get(ctx context.Context, slug string) (*model.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleService) List(ctx context.Context, q service.ListArticlesQuery) (*service.ArticleListResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ArticleListResult), args.Error(1)
}

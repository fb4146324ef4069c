package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/expensetracker/internal/models"
	"github.com/mmynk/expensetracker/internal/storage"
	"github.com/mmynk/expensetracker/pkg/api"
	"github.com/mmynk/expensetracker/pkg/api/apiconnect"
)

// CategoryService implements the Connect CategoryService
type CategoryService struct {
	apiconnect.UnimplementedCategoryServiceHandler
	store storage.Store
}

// NewCategoryService creates a new CategoryService with the given storage backend.
func NewCategoryService(store storage.Store) *CategoryService {
	return &CategoryService{store: store}
}

// CreateCategory adds a category, filling the default icon and color.
func (s *CategoryService) CreateCategory(ctx context.Context, req *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error) {
	slog.Info("CreateCategory request received", "name", req.Msg.Name)

	c := &models.Category{
		Name:      req.Msg.Name,
		Icon:      req.Msg.Icon,
		Color:     req.Msg.Color,
		IsDefault: req.Msg.IsDefault,
	}
	if err := c.Validate(); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateCategory(ctx, c); err != nil {
		slog.Error("CreateCategory failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Category created", "category_id", c.ID)

	return connect.NewResponse(&api.CreateCategoryResponse{Category: categoryToAPI(c)}), nil
}

// ListCategories returns all categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context, _ *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		slog.Error("ListCategories failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Category, len(categories))
	for i, c := range categories {
		out[i] = categoryToAPI(c)
	}

	return connect.NewResponse(&api.ListCategoriesResponse{Categories: out}), nil
}

// DeleteCategory removes a category. Its expenses become unclassified.
func (s *CategoryService) DeleteCategory(ctx context.Context, req *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error) {
	slog.Info("DeleteCategory request received", "category_id", req.Msg.ID)

	c, err := s.store.GetCategory(ctx, req.Msg.ID)
	if err != nil {
		slog.Warn("DeleteCategory failed", "category_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	if err := s.store.DeleteCategory(ctx, c.ID); err != nil {
		slog.Error("DeleteCategory failed", "category_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Category deleted", "category_id", c.ID, "name", c.Name)

	return connect.NewResponse(&api.DeleteCategoryResponse{}), nil
}

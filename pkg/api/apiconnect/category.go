package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/expensetracker/pkg/api"
)

// CategoryServiceName is the fully-qualified name of the CategoryService service.
const CategoryServiceName = "expensetracker.v1.CategoryService"

// These constants are the fully-qualified names of the RPCs defined in this service.
const (
	// CategoryServiceCreateCategoryProcedure is the fully-qualified name of the CategoryService's CreateCategory RPC.
	CategoryServiceCreateCategoryProcedure = "/expensetracker.v1.CategoryService/CreateCategory"
	// CategoryServiceListCategoriesProcedure is the fully-qualified name of the CategoryService's ListCategories RPC.
	CategoryServiceListCategoriesProcedure = "/expensetracker.v1.CategoryService/ListCategories"
	// CategoryServiceDeleteCategoryProcedure is the fully-qualified name of the CategoryService's DeleteCategory RPC.
	CategoryServiceDeleteCategoryProcedure = "/expensetracker.v1.CategoryService/DeleteCategory"
)

// CategoryServiceClient is a client for the expensetracker.v1.CategoryService service.
type CategoryServiceClient interface {
	CreateCategory(context.Context, *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error)
	ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error)
	DeleteCategory(context.Context, *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error)
}

// NewCategoryServiceClient constructs a client for the expensetracker.v1.CategoryService service. The
// JSON codec is always installed; opts may add interceptors or headers.
func NewCategoryServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CategoryServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &categoryServiceClient{
		createCategory: connect.NewClient[api.CreateCategoryRequest, api.CreateCategoryResponse](
			httpClient,
			baseURL+CategoryServiceCreateCategoryProcedure,
			opts...,
		),
		listCategories: connect.NewClient[api.ListCategoriesRequest, api.ListCategoriesResponse](
			httpClient,
			baseURL+CategoryServiceListCategoriesProcedure,
			opts...,
		),
		deleteCategory: connect.NewClient[api.DeleteCategoryRequest, api.DeleteCategoryResponse](
			httpClient,
			baseURL+CategoryServiceDeleteCategoryProcedure,
			opts...,
		),
	}
}

// categoryServiceClient implements CategoryServiceClient.
type categoryServiceClient struct {
	createCategory *connect.Client[api.CreateCategoryRequest, api.CreateCategoryResponse]
	listCategories *connect.Client[api.ListCategoriesRequest, api.ListCategoriesResponse]
	deleteCategory *connect.Client[api.DeleteCategoryRequest, api.DeleteCategoryResponse]
}

// CreateCategory calls expensetracker.v1.CategoryService.CreateCategory.
func (c *categoryServiceClient) CreateCategory(ctx context.Context, req *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error) {
	return c.createCategory.CallUnary(ctx, req)
}

// ListCategories calls expensetracker.v1.CategoryService.ListCategories.
func (c *categoryServiceClient) ListCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

// DeleteCategory calls expensetracker.v1.CategoryService.DeleteCategory.
func (c *categoryServiceClient) DeleteCategory(ctx context.Context, req *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error) {
	return c.deleteCategory.CallUnary(ctx, req)
}

// CategoryServiceHandler is an implementation of the expensetracker.v1.CategoryService service.
type CategoryServiceHandler interface {
	CreateCategory(context.Context, *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error)
	ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error)
	DeleteCategory(context.Context, *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error)
}

// NewCategoryServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewCategoryServiceHandler(svc CategoryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
	categoryServiceCreateCategoryHandler := connect.NewUnaryHandler(
		CategoryServiceCreateCategoryProcedure,
		svc.CreateCategory,
		opts...,
	)
	categoryServiceListCategoriesHandler := connect.NewUnaryHandler(
		CategoryServiceListCategoriesProcedure,
		svc.ListCategories,
		opts...,
	)
	categoryServiceDeleteCategoryHandler := connect.NewUnaryHandler(
		CategoryServiceDeleteCategoryProcedure,
		svc.DeleteCategory,
		opts...,
	)
	return "/expensetracker.v1.CategoryService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CategoryServiceCreateCategoryProcedure:
			categoryServiceCreateCategoryHandler.ServeHTTP(w, r)
		case CategoryServiceListCategoriesProcedure:
			categoryServiceListCategoriesHandler.ServeHTTP(w, r)
		case CategoryServiceDeleteCategoryProcedure:
			categoryServiceDeleteCategoryHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedCategoryServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCategoryServiceHandler struct{}

func (UnimplementedCategoryServiceHandler) CreateCategory(context.Context, *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("expensetracker.v1.CategoryService.CreateCategory is not implemented"))
}

func (UnimplementedCategoryServiceHandler) ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("expensetracker.v1.CategoryService.ListCategories is not implemented"))
}

func (UnimplementedCategoryServiceHandler) DeleteCategory(context.Context, *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("expensetracker.v1.CategoryService.DeleteCategory is not implemented"))
}

package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/expensetracker/internal/models"
	"github.com/mmynk/expensetracker/internal/storage"
)

// toConnectError maps domain and storage errors onto Connect codes.
func toConnectError(err error) *connect.Error {
	switch {
	case models.IsValidation(err):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrInvalidReference), errors.Is(err, storage.ErrInvalidSort):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// Package store holds helpers shared by the store handle implementations.
package store

import (
	"context"
	"errors"

	"github.com/amirasaad/yander/pkg/result"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Codes produced by Classify.
const (
	CodeConflict = "Store.Conflict"
	CodeNotFound = "Store.NotFound"
	CodeCanceled = "Store.Canceled"
	CodeFault    = "Store.Fault"
)

// Classify converts a store fault into a classified error for callers that
// decide to surface it as a failure. Neither the repositories nor the unit
// of work call it; faults reach the caller unchanged and converting them is
// the caller's choice.
//
// Messages are fixed so that driver details never reach a client.
func Classify(err error) *result.Error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), mongo.IsDuplicateKeyError(err):
		return result.Conflict(CodeConflict, "The resource conflicts with an existing one.")
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, mongo.ErrNoDocuments):
		return result.NotFound(CodeNotFound, "The resource was not found.")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return result.MustError(CodeCanceled, "The operation was canceled.", 0)
	default:
		return result.MustError(CodeFault, "The store could not complete the operation.", 0)
	}
}

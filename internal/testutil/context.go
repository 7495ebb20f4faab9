package testutil

import (
	"context"

	"github.com/coopportal/coopportal/internal/types"
)

func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxRequestID, types.GenerateUUID())
	return ctx
}

// ContextWithCaller returns a context carrying an explicit caller identity,
// the way the identity middleware populates it.
func ContextWithCaller(userID string, role types.UserRole) context.Context {
	ctx := SetupContext()
	ctx = context.WithValue(ctx, types.CtxUserID, userID)
	ctx = context.WithValue(ctx, types.CtxUserRole, role)
	return ctx
}

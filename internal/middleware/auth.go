package middleware

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/expensetracker/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// SubjectKey is the context key for the authenticated token subject.
const SubjectKey contextKey = "subject"

// subjectSlotKey holds a *subjectSlot that outer interceptors read after the
// call returns.
const subjectSlotKey contextKey = "subject_slot"

type subjectSlot struct {
	subject string
}

// withSubjectSlot returns a copy of ctx carrying an empty slot that
// WithSubject fills in further down the chain.
func withSubjectSlot(ctx context.Context) (context.Context, *subjectSlot) {
	slot := &subjectSlot{}
	return context.WithValue(ctx, subjectSlotKey, slot), slot
}

// GetSubject extracts the token subject from the context.
// Returns empty string if the request was not authenticated.
func GetSubject(ctx context.Context) string {
	subject, _ := ctx.Value(SubjectKey).(string)
	return subject
}

// WithSubject returns a copy of ctx carrying subject. It also records the
// subject for an enclosing LoggingInterceptor.
func WithSubject(ctx context.Context, subject string) context.Context {
	if slot, ok := ctx.Value(subjectSlotKey).(*subjectSlot); ok {
		slot.subject = subject
	}
	return context.WithValue(ctx, SubjectKey, subject)
}

// RequireAuth returns an interceptor that validates the bearer token of every
// request and stores its subject in the request context. Install it after
// the logging and metrics interceptors so that rejections are logged and
// counted.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			tokenString, err := auth.BearerToken(req.Header().Get("Authorization"))
			if err == nil {
				var claims *auth.Claims
				if claims, err = jwtManager.Validate(tokenString); err == nil {
					return next(WithSubject(ctx, claims.Subject), req)
				}
			}

			return nil, connect.NewError(connect.CodeUnauthenticated, err)
		}
	}
}

// BearerCredentials returns a client interceptor that attaches token to every
// outgoing request.
func BearerCredentials(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient && token != "" {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}

package mapper

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/internal/errors"
)

// ContextToSessionUUID extracts the IDE session UUID from a context.
func ContextToSessionUUID(ctx context.Context) (uuid.UUID, error) {
	s, ok := ctx.Value(entity.SessionContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, &errors.NoSessionFoundError{}
	}
	return s, nil
}

// SessionUUIDToContext returns a copy of ctx that carries the IDE session UUID.
func SessionUUIDToContext(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, entity.SessionContextKey, id)
}

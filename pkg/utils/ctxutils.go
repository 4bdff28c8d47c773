package utils

import (
	"context"

	"github.com/dapittriandi/simdor-service/pkg/contextkeys"
	apperrors "github.com/dapittriandi/simdor-service/pkg/errors"
	"github.com/dapittriandi/simdor-service/pkg/types"
)

// GetActorFromCtx returns the authenticated actor placed into the request
// context by the auth middleware. Services never read it themselves; the
// handler extracts it once and passes it on explicitly.
func GetActorFromCtx(ctx context.Context) (types.Actor, error) {
	actor, ok := ctx.Value(contextkeys.ActorKey).(types.Actor)
	if !ok || actor.ID == "" {
		return types.Actor{}, apperrors.ErrActorNotFoundInContext
	}
	return actor, nil
}

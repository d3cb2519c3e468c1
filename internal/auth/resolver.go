package auth

import (
	"strings"

	"go.uber.org/zap"

	"github.com/bloghub/bloghub-be/internal/apperr"
	"github.com/bloghub/bloghub-be/internal/models"
)

const bearerPrefix = "Bearer "

// PrincipalResolver recovers the acting principal from an Authorization
// header. The principal is rebuilt entirely from token claims, with no store
// round-trip: a role change mid-token-lifetime is not observed until the
// token expires. That staleness window is a deliberate trade for not hitting
// the database on every authorized call.
type PrincipalResolver struct {
	codec *TokenCodec
	log   *zap.Logger
}

func NewPrincipalResolver(codec *TokenCodec, log *zap.Logger) *PrincipalResolver {
	return &PrincipalResolver{codec: codec, log: log}
}

// Resolve validates the bearer token and maps its claims to a Principal.
// Callers receive the same opaque authentication failure for every cause;
// the distinct cause is logged here.
func (r *PrincipalResolver) Resolve(authorization string) (Principal, error) {
	token, ok := strings.CutPrefix(authorization, bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return Principal{}, apperr.Authentication("missing or malformed authorization header")
	}

	claims, err := r.codec.Verify(token)
	if err != nil {
		r.log.Debug("token rejected", zap.Error(err))
		return Principal{}, apperr.Wrap(apperr.KindAuthentication, "invalid or expired token", err)
	}

	role, _ := models.ParseRole(claims.Role)
	return Principal{
		ID:    claims.UID,
		Email: claims.Subject,
		Role:  role,
	}, nil
}

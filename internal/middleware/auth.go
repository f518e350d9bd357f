package middleware

import (
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/todo/domain"
)

const claimsKey = "auth.claims"

// TokenVerifier turns a raw bearer token into claims.
type TokenVerifier interface {
	Verify(raw string) (domain.Claims, error)
}

// JWTAuth rejects requests without a valid bearer token before any handler runs.
// Verified claims are available to handlers through ClaimsFrom.
func JWTAuth(verifier TokenVerifier, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			tokenString := extractToken(ctx)
			if tokenString == "" {
				unauthorized(ctx, "not authenticated")
				return
			}

			claims, err := verifier.Verify(tokenString)
			if err != nil {
				logger.Warn("invalid bearer token",
					zap.ByteString("path", ctx.Path()),
					zap.Error(err))
				unauthorized(ctx, domain.ErrInvalidToken.Message)
				return
			}

			ctx.SetUserValue(claimsKey, claims)
			next(ctx)
		}
	}
}

// ClaimsFrom returns the claims stored by JWTAuth.
func ClaimsFrom(ctx *fasthttp.RequestCtx) (domain.Claims, bool) {
	claims, ok := ctx.UserValue(claimsKey).(domain.Claims)
	return claims, ok
}

func unauthorized(ctx *fasthttp.RequestCtx, message string) {
	ctx.Response.Header.Set("WWW-Authenticate", "Bearer")
	reject(ctx, fasthttp.StatusUnauthorized, string(domain.ErrCodeUnauthorized), message)
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := strings.TrimSpace(string(ctx.Request.Header.Peek("Authorization")))
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/pkg/logger"
)

// TokenIssuer signs claims into a bearer token.
type TokenIssuer interface {
	Issue(claims domain.Claims) (string, error)
}

// Result is returned by Login and Signup.
type Result struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

// UseCase is a mock identity provider. Credentials are never checked; any
// syntactically complete request yields a token for the email it names.
type UseCase struct {
	issuer TokenIssuer
	logger *zap.Logger
}

func New(issuer TokenIssuer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		issuer: issuer,
		logger: logger,
	}
}

func (uc *UseCase) Login(ctx context.Context, email, password string) (*Result, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrCredentialsMissing
	}
	return uc.issue(ctx, email, localPart(email))
}

func (uc *UseCase) Signup(ctx context.Context, email, password, name string) (*Result, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return nil, domain.ErrSignupIncomplete
	}
	return uc.issue(ctx, email, name)
}

func (uc *UseCase) issue(ctx context.Context, email, name string) (*Result, error) {
	claims := domain.Claims{
		UserID: UserIDFor(email),
		Email:  email,
		Name:   name,
	}

	token, err := uc.issuer.Issue(claims)
	if err != nil {
		logger.WithRequestID(ctx, uc.logger).Error("failed to issue token", zap.Error(err))
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to issue token", err)
	}

	logger.WithRequestID(ctx, uc.logger).Info("token issued", zap.String("user_id", claims.UserID))
	return &Result{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Token:  token,
	}, nil
}

// UserIDFor derives a stable owner id from an email address.
func UserIDFor(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return "user_" + uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+normalized)).String()
}

func localPart(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}

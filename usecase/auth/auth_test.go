package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/pkg/token"
)

func newUseCase(t *testing.T) (*UseCase, *token.Issuer) {
	t.Helper()
	issuer, err := token.NewIssuer("test-secret")
	if err != nil {
		t.Fatalf("issuer: %v", err)
	}
	return New(issuer, nil), issuer
}

func TestLogin(t *testing.T) {
	uc, issuer := newUseCase(t)

	res, err := uc.Login(context.Background(), "Ada@Example.com", "anything")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Name != "Ada" || res.Email != "Ada@Example.com" {
		t.Fatalf("unexpected result %#v", res)
	}
	if !strings.HasPrefix(res.UserID, "user_") {
		t.Fatalf("unexpected user id %q", res.UserID)
	}

	claims, err := issuer.Verify(res.Token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != res.UserID || claims.Email != res.Email || claims.Name != res.Name {
		t.Fatalf("claims do not match result: %#v vs %#v", claims, res)
	}
}

func TestUserIDIsStablePerEmail(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	a, _ := uc.Login(ctx, "ada@example.com", "x")
	b, _ := uc.Signup(ctx, " ADA@example.com ", "y", "Ada Lovelace")
	c, _ := uc.Login(ctx, "grace@example.com", "x")

	if a.UserID != b.UserID {
		t.Fatalf("same email must map to the same user: %s vs %s", a.UserID, b.UserID)
	}
	if a.UserID == c.UserID {
		t.Fatalf("different emails must not collide")
	}
	if b.Name != "Ada Lovelace" {
		t.Fatalf("signup should keep the supplied name, got %q", b.Name)
	}
}

func TestMissingFields(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"login no email", func() error { _, err := uc.Login(ctx, " ", "pw"); return err }, domain.ErrCredentialsMissing},
		{"login no password", func() error { _, err := uc.Login(ctx, "a@b.c", ""); return err }, domain.ErrCredentialsMissing},
		{"signup no name", func() error { _, err := uc.Signup(ctx, "a@b.c", "pw", ""); return err }, domain.ErrSignupIncomplete},
		{"signup no password", func() error { _, err := uc.Signup(ctx, "a@b.c", "", "A"); return err }, domain.ErrSignupIncomplete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

type failingIssuer struct{}

func (failingIssuer) Issue(domain.Claims) (string, error) { return "", errors.New("boom") }

func TestIssuerFailureIsInternal(t *testing.T) {
	uc := New(failingIssuer{}, nil)
	if _, err := uc.Login(context.Background(), "a@b.c", "pw"); !domain.IsDomainError(err, domain.ErrCodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

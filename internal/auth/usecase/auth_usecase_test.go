package usecase

import (
	"context"
	"testing"
	"time"

	authdto "taskboard-backend/internal/auth/dto"
	"taskboard-backend/internal/domain"
	"taskboard-backend/pkg/apperror"
	"taskboard-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type memoryUsers struct {
	byEmail map[string]*domain.User
	// hideOnLookup makes FindByEmail miss so Create sees the duplicate.
	hideOnLookup bool
}

func (m *memoryUsers) Create(_ context.Context, user *domain.User) error {
	if _, ok := m.byEmail[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	user.ID = "user-" + user.Email
	m.byEmail[user.Email] = user
	return nil
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if m.hideOnLookup {
		return nil, nil
	}
	return m.byEmail[email], nil
}

func (m *memoryUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func newTestUsecase() (*authUsecase, *memoryUsers) {
	users := &memoryUsers{byEmail: map[string]*domain.User{}}
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	uc := NewAuthUsecase(users, nil, cfg).(*authUsecase)
	return uc, users
}

func TestSignUpThenSignIn(t *testing.T) {
	uc, users := newTestUsecase()
	ctx := context.Background()

	resp, err := uc.SignUp(ctx, &authdto.SignUpRequest{Email: "Ann@Example.com ", Password: "secret1", Name: "Ann"})
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if resp.User.Email != "ann@example.com" || resp.User.Role != domain.RoleStaff {
		t.Errorf("unexpected user %+v", resp.User)
	}
	if users.byEmail["ann@example.com"].Password == "secret1" {
		t.Error("password stored in clear text")
	}

	claims, err := uc.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != resp.User.ID {
		t.Errorf("claims.UserID = %q, want %q", claims.UserID, resp.User.ID)
	}

	if _, err := uc.SignUp(ctx, &authdto.SignUpRequest{Email: "ann@example.com", Password: "secret1"}); apperror.KindOf(err) != apperror.KindConflict {
		t.Errorf("duplicate SignUp error = %v, want conflict", err)
	}

	if _, err := uc.SignIn(ctx, &authdto.SignInRequest{Email: "ann@example.com", Password: "secret1"}); err != nil {
		t.Errorf("SignIn: %v", err)
	}
	if _, err := uc.SignIn(ctx, &authdto.SignInRequest{Email: "ann@example.com", Password: "wrong"}); apperror.KindOf(err) != apperror.KindUnauthorized {
		t.Errorf("bad password error = %v, want unauthorized", err)
	}
	if _, err := uc.SignIn(ctx, &authdto.SignInRequest{Email: "nobody@example.com", Password: "x"}); apperror.KindOf(err) != apperror.KindUnauthorized {
		t.Errorf("unknown user error = %v, want unauthorized", err)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	uc, _ := newTestUsecase()
	user := &domain.User{ID: "u1", Role: domain.RoleStaff}

	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return issued }
	token, err := uc.generateAccessToken(user)
	if err != nil {
		t.Fatal(err)
	}

	uc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := uc.ValidateToken(token); err == nil {
		t.Error("expected expired token to be rejected")
	}

	uc.now = func() time.Time { return issued }
	other := &authUsecase{config: &config.Config{JWTSecret: "other", JWTExpiry: time.Hour}, now: uc.now}
	forged, _ := other.generateAccessToken(user)
	if _, err := uc.ValidateToken(forged); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "u1"})
	unsigned, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := uc.ValidateToken(unsigned); err == nil {
		t.Error("expected alg=none token to be rejected")
	}

	if _, err := uc.ValidateToken("garbage"); err == nil {
		t.Error("expected malformed token to be rejected")
	}
}

func TestSignUpRaceReportsConflict(t *testing.T) {
	uc, users := newTestUsecase()
	ctx := context.Background()

	if _, err := uc.SignUp(ctx, &authdto.SignUpRequest{Email: "race@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	users.hideOnLookup = true

	_, err := uc.SignUp(ctx, &authdto.SignUpRequest{Email: "race@example.com", Password: "secret1"})
	if apperror.KindOf(err) != apperror.KindConflict {
		t.Fatalf("error = %v, want conflict", err)
	}
	if apperror.PublicMessage(err) != "User already exists" {
		t.Errorf("message = %q", apperror.PublicMessage(err))
	}
}

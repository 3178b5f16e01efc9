package usecase

import (
	"context"

	authdto "taskboard-backend/internal/auth/dto"
	"taskboard-backend/internal/domain"
)

// AuthUsecase covers sign-up/sign-in, token verification and device tokens
type AuthUsecase interface {
	SignUp(ctx context.Context, req *authdto.SignUpRequest) (*authdto.AuthResponse, error)
	SignIn(ctx context.Context, req *authdto.SignInRequest) (*authdto.AuthResponse, error)

	// ValidateToken verifies signature and expiry only; it does not touch the store
	ValidateToken(tokenString string) (*Claims, error)

	Me(ctx context.Context, userID string) (*domain.User, error)

	RegisterFCMToken(ctx context.Context, userID string, req *authdto.RegisterFCMTokenRequest) error
	UnregisterFCMToken(ctx context.Context, userID, token string) error
}

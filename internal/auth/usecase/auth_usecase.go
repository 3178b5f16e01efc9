package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	authdto "taskboard-backend/internal/auth/dto"
	"taskboard-backend/internal/auth/repository"
	"taskboard-backend/internal/domain"
	"taskboard-backend/pkg/apperror"
	"taskboard-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const tokenIssuer = "taskboard"

// Claims carried by access tokens
type Claims struct {
	UserID string      `json:"userId"`
	Role   domain.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo     repository.UserRepository
	fcmTokenRepo repository.FCMTokenRepository
	config       *config.Config
	now          func() time.Time
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, fcmTokenRepo repository.FCMTokenRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo:     userRepo,
		fcmTokenRepo: fcmTokenRepo,
		config:       cfg,
		now:          time.Now,
	}
}

func (u *authUsecase) SignUp(ctx context.Context, req *authdto.SignUpRequest) (*authdto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal("find user", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("User already exists")
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal("hash password", err)
	}

	user := &domain.User{
		Email:    email,
		Password: hashedPassword,
		Name:     strings.TrimSpace(req.Name),
		Role:     domain.RoleStaff,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// A concurrent signup can win the race past FindByEmail.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("User already exists")
		}
		return nil, apperror.Internal("create user", err)
	}

	return u.authResponse(user)
}

func (u *authUsecase) SignIn(ctx context.Context, req *authdto.SignInRequest) (*authdto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, apperror.Internal("find user", err)
	}
	if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	return u.authResponse(user)
}

func (u *authUsecase) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("find user", err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *authUsecase) RegisterFCMToken(ctx context.Context, userID string, req *authdto.RegisterFCMTokenRequest) error {
	if err := u.fcmTokenRepo.SaveToken(ctx, userID, req.Token, req.DeviceInfo); err != nil {
		return apperror.Internal("save fcm token", err)
	}
	return nil
}

func (u *authUsecase) UnregisterFCMToken(ctx context.Context, userID, token string) error {
	n, err := u.fcmTokenRepo.DeleteUserToken(ctx, userID, token)
	if err != nil {
		return apperror.Internal("delete fcm token", err)
	}
	if n == 0 {
		return apperror.NotFound("Token not found")
	}
	return nil
}

func (u *authUsecase) authResponse(user *domain.User) (*authdto.AuthResponse, error) {
	token, err := u.generateAccessToken(user)
	if err != nil {
		return nil, apperror.Internal("sign token", err)
	}
	return &authdto.AuthResponse{
		User:  authdto.NewUserResponse(user),
		Token: token,
	}, nil
}

func (u *authUsecase) generateAccessToken(user *domain.User) (string, error) {
	now := u.now()
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.config.JWTExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(u.config.JWTSecret), nil
	}, jwt.WithTimeFunc(u.now), jwt.WithIssuer(tokenIssuer))

	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

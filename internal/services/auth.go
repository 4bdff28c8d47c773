package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dapittriandi/simdor-service/internal/dto"
	"github.com/dapittriandi/simdor-service/internal/repositories"
	apperrors "github.com/dapittriandi/simdor-service/pkg/errors"
	"github.com/dapittriandi/simdor-service/pkg/service"
	"github.com/dapittriandi/simdor-service/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, data dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
	Logout(ctx context.Context, userID string) error
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	jwtSvc    service.JWTService
	logger    *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		jwtSvc:    jwtSvc,
		logger:    logger,
	}
}

func refreshTokenKey(userID string) string {
	return fmt.Sprintf("refresh_token:%s", userID)
}

func (s *AuthService) Login(ctx context.Context, data dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, data.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.Password, data.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	access, refresh, err := s.jwtSvc.GenerateTokens(user.ID, user.Name, user.Role, user.Portfolio)
	if err != nil {
		s.logger.Error("failed to generate tokens", zap.Error(err))
		return nil, err
	}

	if err := s.cacheRepo.Set(ctx, refreshTokenKey(user.ID), refresh, s.jwtSvc.GetRefreshTokenTTL()); err != nil {
		s.logger.Error("failed to store refresh token", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponseDTO{
		UserID:    user.ID,
		Name:      user.Name,
		Role:      user.Role,
		Portfolio: user.Portfolio,
		TokenPairDTO: dto.TokenPairDTO{
			AccessToken:  access,
			RefreshToken: refresh,
		},
	}, nil
}

// Refresh rotates the token pair. The presented refresh token must match the
// one stored at login; logout clears it, which invalidates the pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtSvc.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	stored, err := s.cacheRepo.Get(ctx, refreshTokenKey(claims.UserID))
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if stored != refreshToken {
		return nil, apperrors.ErrInvalidToken
	}

	access, refresh, err := s.jwtSvc.GenerateTokens(claims.UserID, claims.Name, claims.Role, claims.Portfolio)
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepo.Set(ctx, refreshTokenKey(claims.UserID), refresh, s.jwtSvc.GetRefreshTokenTTL()); err != nil {
		return nil, err
	}

	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.cacheRepo.Delete(ctx, refreshTokenKey(userID))
}

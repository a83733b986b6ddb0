package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
)

const sessionKeyPrefix = "session:"

type AuthServiceInterface interface {
	Register(ctx context.Context, payload dto.RegisterDTO) (*dto.AuthResponseDTO, string, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, string, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, string, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, profileID uuid.UUID) (*dto.ProfileDTO, error)
}

type AuthService struct {
	profileRepo repositories.ProfileRepositoryInterface
	cacheRepo   repositories.CacheRepositoryInterface
	jwtService  service.JWTService
	logger      *zap.Logger
}

func NewAuthService(
	profileRepo repositories.ProfileRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		profileRepo: profileRepo,
		cacheRepo:   cacheRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*dto.AuthResponseDTO, string, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	profile := &entities.Profile{
		Email:        email,
		FullName:     strings.TrimSpace(payload.FullName),
		Department:   payload.Department,
		PasswordHash: string(hash),
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, "", err
	}

	s.logger.Info("profile registered", zap.String("profileID", profile.ID.String()))

	return s.issueTokens(ctx, profile)
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, string, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))

	profile, err := s.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(payload.Password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, profile)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponseDTO, string, error) {
	claims, err := s.validateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, "", err
	}

	profileID, err := claims.ProfileID()
	if err != nil {
		return nil, "", err
	}

	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, "", apperrors.ErrSessionRevoked
		}
		return nil, "", err
	}

	// Rotate the session: the old refresh token becomes unusable.
	if err := s.cacheRepo.Del(ctx, sessionKeyPrefix+claims.SessionID); err != nil {
		s.logger.Warn("failed to drop old session", zap.Error(err))
	}

	return s.issueTokens(ctx, profile)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.validateRefreshToken(ctx, refreshToken)
	if err != nil {
		// Already invalid or revoked; logout is idempotent.
		if errors.Is(err, apperrors.ErrSessionRevoked) || errors.Is(err, apperrors.ErrTokenExpired) {
			return nil
		}
		return err
	}
	return s.cacheRepo.Del(ctx, sessionKeyPrefix+claims.SessionID)
}

func (s *AuthService) Me(ctx context.Context, profileID uuid.UUID) (*dto.ProfileDTO, error) {
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	res := mapProfile(*profile)
	return &res, nil
}

func (s *AuthService) issueTokens(ctx context.Context, profile *entities.Profile) (*dto.AuthResponseDTO, string, error) {
	sessionID := uuid.NewString()

	access, refresh, err := s.jwtService.GenerateTokens(profile.ID, sessionID)
	if err != nil {
		return nil, "", err
	}

	err = s.cacheRepo.Set(ctx, sessionKeyPrefix+sessionID, profile.ID.String(), s.jwtService.GetRefreshTokenTTL())
	if err != nil {
		return nil, "", err
	}

	return &dto.AuthResponseDTO{
		AccessToken: access,
		Profile:     mapProfile(*profile),
	}, refresh, nil
}

func (s *AuthService) validateRefreshToken(ctx context.Context, refreshToken string) (*service.JwtCustomClaim, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrUnauthorized
	}

	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	if _, err := s.cacheRepo.Get(ctx, sessionKeyPrefix+claims.SessionID); err != nil {
		return nil, apperrors.ErrSessionRevoked
	}

	return claims, nil
}

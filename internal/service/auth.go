package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"inkdesk/config"
	"inkdesk/internal/domain"
	"inkdesk/internal/repository"
	"inkdesk/internal/upstream"
	"inkdesk/pkg/validator"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"user_id"`
	SessionID string `json:"sid"`
	TokenType string `json:"typ"`
}

type AuthServiceImpl struct {
	sessions  repository.SessionRepository
	upstream  Upstream
	keybox    KeySealer
	jwtConfig config.JWTConfig
	logger    *zap.Logger
	now       func() time.Time
}

func NewAuthService(sessions repository.SessionRepository, up Upstream, keybox KeySealer, jwtConfig config.JWTConfig, logger *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		sessions:  sessions,
		upstream:  up,
		keybox:    keybox,
		jwtConfig: jwtConfig,
		logger:    logger,
		now:       time.Now,
	}
}

// Login signs in against the studio API and keeps the returned api key sealed
// in a new session.
func (s *AuthServiceImpl) Login(ctx context.Context, req domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error) {
	if !validator.ValidateEmail(req.Email) {
		return nil, ErrInvalidEmail
	}
	if !validator.ValidatePassword(req.Password) {
		return nil, ErrInvalidPassword
	}
	if req.LoginAs == "" {
		req.LoginAs = domain.LoginAsStaff
	}

	apiKey, err := s.upstream.Login(ctx, req)
	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
			s.logger.Info("login rejected", zap.String("email", req.Email), zap.Int("status", apiErr.Status))
			return nil, ErrInvalidCredentials
		}
		return nil, upstreamError(s.logger, "login", err)
	}

	profile, err := s.upstream.GetProfile(ctx, apiKey)
	if err != nil {
		return nil, upstreamError(s.logger, "login.me", err)
	}

	sealed, err := s.keybox.Seal(apiKey)
	if err != nil {
		s.logger.Error("failed to seal api key", zap.Error(err))
		return nil, fmt.Errorf("seal api key: %w", err)
	}

	return s.openSession(ctx, profile.ID, profile.FullName, sealed, userAgent, ip)
}

func (s *AuthServiceImpl) RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error) {
	session, err := s.sessions.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if session.ExpiresAt.Before(s.now()) {
		if err := s.sessions.Delete(ctx, session.ID); err != nil {
			s.logger.Warn("failed to delete expired session", zap.Error(err))
		}
		return nil, ErrSessionExpired
	}

	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		s.logger.Warn("failed to delete old session", zap.Error(err))
	}

	return s.openSession(ctx, session.UserID, session.StaffName, session.SealedKey, userAgent, ip)
}

// Logout drops the session and with it the stored api key.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.sessions.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}
		return err
	}

	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		s.logger.Error("failed to delete session", zap.Error(err))
		return err
	}

	return nil
}

// LogoutAll drops every session of the user, signing out all devices.
func (s *AuthServiceImpl) LogoutAll(ctx context.Context, userID int64) error {
	if err := s.sessions.DeleteByUserID(ctx, userID); err != nil {
		s.logger.Error("failed to delete sessions", zap.Int64("user", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *AuthServiceImpl) ParseToken(ctx context.Context, tokenString string) (domain.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.SigningKey), nil
	})
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	// Only access tokens authenticate requests; refresh tokens are redeemed
	// through RefreshTokens.
	if !ok || !token.Valid || claims.SessionID == "" || claims.TokenType != tokenTypeAccess {
		return domain.Principal{}, ErrInvalidToken
	}

	return domain.Principal{UserID: claims.UserID, SessionID: claims.SessionID}, nil
}

// APIKey opens the api key of a live session.
func (s *AuthServiceImpl) APIKey(ctx context.Context, sessionID string) (string, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return "", ErrNoAPIKey
		}
		return "", err
	}
	if session.ExpiresAt.Before(s.now()) {
		return "", ErrNoAPIKey
	}

	key, err := s.keybox.Open(session.SealedKey)
	if err != nil {
		s.logger.Warn("stored api key could not be opened", zap.String("session", sessionID), zap.Error(err))
		return "", ErrNoAPIKey
	}
	return key, nil
}

func (s *AuthServiceImpl) PurgeExpired(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, s.now())
}

func (s *AuthServiceImpl) openSession(ctx context.Context, userID int64, staffName, sealedKey, userAgent, ip string) (*domain.Tokens, error) {
	now := s.now()
	sessionID := uuid.New().String()

	tokens, err := s.generateTokens(userID, sessionID)
	if err != nil {
		s.logger.Error("failed to generate tokens", zap.Error(err))
		return nil, err
	}

	session := domain.Session{
		ID:           sessionID,
		UserID:       userID,
		StaffName:    staffName,
		SealedKey:    sealedKey,
		RefreshToken: tokens.RefreshToken,
		UserAgent:    userAgent,
		IP:           ip,
		ExpiresAt:    now.Add(s.jwtConfig.RefreshTokenTTL),
		CreatedAt:    now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.Error("failed to save session", zap.Error(err))
		return nil, err
	}

	return tokens, nil
}

func (s *AuthServiceImpl) generateTokens(userID int64, sessionID string) (*domain.Tokens, error) {
	now := s.now()

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtConfig.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:    userID,
		SessionID: sessionID,
		TokenType: tokenTypeAccess,
	})
	accessTokenString, err := accessToken.SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtConfig.RefreshTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:    userID,
		SessionID: sessionID,
		TokenType: tokenTypeRefresh,
	})
	refreshTokenString, err := refreshToken.SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &domain.Tokens{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
	}, nil
}

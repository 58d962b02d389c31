package debt

import (
	"context"
	"crypto/subtle"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/domain/shared"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/auth"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/config"
	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed login
var ErrInvalidCredentials = shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")

// placeholderHash is compared against when the username is wrong, so both
// failure paths cost one bcrypt comparison
var placeholderHash, _ = bcrypt.GenerateFromPassword([]byte("placeholder"), bcrypt.MinCost)

// AuthService authenticates the single back-office administrator
type AuthService struct {
	admin      config.AdminConfig
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(admin config.AdminConfig, jwtService *auth.JWTService, l *zap.Logger) *AuthService {
	if l == nil {
		l = zap.NewNop()
	}
	return &AuthService{admin: admin, jwtService: jwtService, logger: l}
}

// Login checks the credential and issues an access token
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	log := logger.With(ctx, s.logger).With(zap.String("username", req.Username))

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.admin.Username)) == 1
	hash := []byte(s.admin.PasswordHash)
	if !userOK || len(hash) == 0 {
		hash = placeholderHash
	}
	passwordErr := bcrypt.CompareHashAndPassword(hash, []byte(req.Password))
	if !userOK || passwordErr != nil || s.admin.PasswordHash == "" {
		log.Warn("Login failed")
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate(s.admin.Username)
	if err != nil {
		log.Error("Failed to sign access token", zap.Error(err))
		return nil, err
	}

	log.Info("Administrator logged in")
	return &LoginResponse{
		AccessToken: token.Token,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		Username:    s.admin.Username,
	}, nil
}

package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	credentialsRepo "github.com/m04kA/SMC-WeddingBooking/internal/infra/storage/credentials"
)

const issuer = "wedding-booking"

// Claims JWT claims сессии администратора
type Claims struct {
	RememberMe bool `json:"rememberMe,omitempty"`
	jwt.RegisteredClaims
}

// Service аутентификация единственного администратора
type Service struct {
	repo         CredentialsRepository
	cfg          Config
	limiter      *loginLimiter
	attempts     AttemptRecorder
	timeProvider TimeProvider
	validate     *validator.Validate
	bcryptCost   int
	logger       Logger
}

// NewService создает сервис аутентификации
func NewService(repo CredentialsRepository, cfg Config, attempts AttemptRecorder, logger Logger) *Service {
	return &Service{
		repo:         repo,
		cfg:          cfg,
		limiter:      newLoginLimiter(cfg.LoginRate, cfg.LoginBurst),
		attempts:     attempts,
		timeProvider: &RealTimeProvider{},
		validate:     validator.New(),
		bcryptCost:   bcrypt.DefaultCost,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// WithBcryptCost задает стоимость bcrypt (в тестах bcrypt.MinCost)
func (s *Service) WithBcryptCost(cost int) *Service {
	s.bcryptCost = cost
	return s
}

// Login проверяет учетные данные и выдает подписанный токен
// Срок жизни токена зависит от флага RememberMe, попытки ограничиваются по ClientIP
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResult, error) {
	now := s.timeProvider.Now()
	if !s.limiter.allow(req.ClientIP, now) {
		s.attempts.IncLoginAttempt(AttemptThrottle)
		s.logger.Warn("Login: too many attempts for username=%q, client=%s", req.Username, req.ClientIP)
		return nil, ErrTooManyAttempts
	}

	if err := s.validate.Struct(req); err != nil {
		s.attempts.IncLoginAttempt(AttemptFailure)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Username != s.cfg.Username {
		s.attempts.IncLoginAttempt(AttemptFailure)
		s.logger.Warn("Login: unknown username=%q", req.Username)
		return nil, ErrInvalidCredentials
	}

	ok, err := s.checkPassword(ctx, req.Password)
	if err != nil {
		s.logger.Error("Login: failed to check password: %v", err)
		return nil, err
	}
	if !ok {
		s.attempts.IncLoginAttempt(AttemptFailure)
		s.logger.Warn("Login: wrong password for username=%q", req.Username)
		return nil, ErrInvalidCredentials
	}

	ttl := s.cfg.TokenTTL
	if req.RememberMe {
		ttl = s.cfg.RememberTTL
	}
	expiresAt := now.Add(ttl)

	claims := Claims{
		RememberMe: req.RememberMe,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   s.cfg.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.Secret)
	if err != nil {
		s.logger.Error("Login: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: sign token: %v", ErrInternal, err)
	}

	s.attempts.IncLoginAttempt(AttemptSuccess)
	s.logger.Info("Login: username=%q logged in, rememberMe=%t, expires=%s",
		req.Username, req.RememberMe, expiresAt.Format(time.RFC3339))

	return &LoginResult{
		Token:     token,
		Username:  s.cfg.Username,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateToken проверяет подпись и срок действия токена, возвращает имя пользователя
func (s *Service) ValidateToken(tokenString string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.cfg.Secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithSubject(s.cfg.Username),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return claims.Subject, nil
}

// ChangePassword меняет пароль администратора
func (s *Service) ChangePassword(ctx context.Context, req *ChangePasswordRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ok, err := s.checkPassword(ctx, req.CurrentPassword)
	if err != nil {
		s.logger.Error("ChangePassword: failed to check password: %v", err)
		return err
	}
	if !ok {
		s.logger.Warn("ChangePassword: current password is wrong")
		return ErrWrongPassword
	}

	if len([]rune(req.NewPassword)) < s.cfg.MinPasswordLength {
		return fmt.Errorf("%w: at least %d characters", ErrPasswordTooShort, s.cfg.MinPasswordLength)
	}
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	if err := s.repo.UpsertPasswordHash(ctx, s.cfg.Username, string(hash)); err != nil {
		s.logger.Error("ChangePassword: failed to store password: %v", err)
		return fmt.Errorf("%w: store password: %v", ErrInternal, err)
	}

	s.logger.Info("ChangePassword: password changed for username=%q", s.cfg.Username)
	return nil
}

// checkPassword сравнивает пароль с сохраненным хэшем или с паролем по умолчанию
func (s *Service) checkPassword(ctx context.Context, password string) (bool, error) {
	hash, err := s.repo.GetPasswordHash(ctx, s.cfg.Username)
	if errors.Is(err, credentialsRepo.ErrCredentialsNotFound) {
		return subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.DefaultPassword)) == 1, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: load password hash: %v", ErrInternal, err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: compare password: %v", ErrInternal, err)
	}
	return true, nil
}

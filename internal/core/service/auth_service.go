package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storerating/platform/internal/core/domain"
	"github.com/storerating/platform/internal/core/ports"
	"github.com/storerating/platform/internal/pkg/token"
)

// LoginLimiter abstracts the failed-login throttle (Redis). A limiter error
// never blocks a login; the throttle fails open.
type LoginLimiter interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration, login, and password changes.
type AuthService struct {
	users      ports.UserRepository
	tokens     *token.Manager
	limiter    LoginLimiter
	bcryptCost int
	// padHash is compared against the supplied password when the email is
	// unknown, so the unknown-email and wrong-password paths cost the same.
	padHash []byte
	log     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *token.Manager, limiter LoginLimiter, bcryptCost int, log zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	padHash, err := bcrypt.GenerateFromPassword([]byte("credential-timing-pad"), bcryptCost)
	if err != nil {
		// Only reachable with a cost outside bcrypt's range, excluded above.
		panic(fmt.Sprintf("auth: generating pad hash: %v", err))
	}
	return &AuthService{
		users:      users,
		tokens:     tokens,
		limiter:    limiter,
		bcryptCost: bcryptCost,
		padHash:    padHash,
		log:        log,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Address:      in.Address,
		Role:         in.Role,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	t, err := s.tokens.Issue(domain.Identity{UserID: created.ID, Role: created.Role})
	if err != nil {
		return nil, fmt.Errorf("register: issue token: %w", err)
	}

	s.log.Info().Int64("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return &ports.AuthResult{Token: t, User: created}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password both surface as ErrInvalidCredentials, and the unknown-email path
// still performs a bcrypt compare, so the two are indistinguishable to a
// caller measuring responses.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if s.limiter != nil {
		throttled, err := s.limiter.TooManyFailures(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login limiter unavailable, continuing")
		} else if throttled {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.padHash, []byte(password))
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	t, err := s.tokens.Issue(domain.Identity{UserID: user.ID, Role: user.Role})
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	return &ports.AuthResult{Token: t, User: user}, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("change password: hash: %w", err)
	}

	if err := s.users.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return err
	}

	// Tokens issued before the change remain valid until expiry.
	s.log.Info().Int64("user_id", userID).Msg("password changed")
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("recording login failure")
	}
}

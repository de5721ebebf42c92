package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/roadready/rental-api/internal/api/metrics"
	"github.com/roadready/rental-api/internal/core/domain"
	"github.com/roadready/rental-api/internal/core/ports"
)

var validate = validator.New()

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

// AuthService implements registration, login and logout.
type AuthService struct {
	identities ports.IdentityRepository
	roles      ports.RoleRepository
	users      ports.UserRepository
	tokens     ports.TokenIssuer
	denylist   ports.TokenDenylist
	logger     zerolog.Logger
	now        func() time.Time
}

func NewAuthService(
	identities ports.IdentityRepository,
	roles ports.RoleRepository,
	users ports.UserRepository,
	tokens ports.TokenIssuer,
	denylist ports.TokenDenylist,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		identities: identities,
		roles:      roles,
		users:      users,
		tokens:     tokens,
		denylist:   denylist,
		logger:     logger,
		now:        time.Now,
	}
}

// Register creates the identity, assigns its role and mirrors it into the
// application user table. An existing email fails before anything is written;
// a failure after the identity insert deletes the identity again.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) error {
	role := domain.ResolveRole(in.Role)
	if err := validateRegistration(in); err != nil {
		metrics.RegistrationsTotal.WithLabelValues(role, "invalid").Inc()
		return err
	}

	if _, err := s.identities.FindByEmail(ctx, in.Email); err == nil {
		metrics.RegistrationsTotal.WithLabelValues(role, "exists").Inc()
		return domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrIdentityNotFound) {
		return fmt.Errorf("register: lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("register: hash password: %w", err)
	}

	now := s.now().UTC()
	identity := &domain.Identity{
		Username:      in.Username,
		Email:         in.Email,
		PasswordHash:  string(hash),
		PhoneNumber:   in.PhoneNumber,
		SecurityStamp: uuid.NewString(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.identities.Create(ctx, identity); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues(role, "exists").Inc()
			return err
		}
		return fmt.Errorf("register: create identity: %w", err)
	}

	if err := s.ensureRole(ctx, role); err != nil {
		s.rollback(ctx, identity.Username)
		return fmt.Errorf("register: %w", err)
	}
	if err := s.identities.AddToRole(ctx, identity.Username, role); err != nil {
		s.rollback(ctx, identity.Username)
		return fmt.Errorf("register: assign role: %w", err)
	}

	mirror := &domain.User{
		Name:         identity.Username,
		Email:        identity.Email,
		PhoneNumber:  identity.PhoneNumber,
		PasswordHash: identity.PasswordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.users.Create(ctx, mirror); err != nil {
		s.rollback(ctx, identity.Username)
		return fmt.Errorf("register: mirror user: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues(role, "created").Inc()
	s.logger.Info().Str("username", identity.Username).Str("role", role).Msg("user registered")
	return nil
}

// rollback removes a half-registered identity so the email can be used again.
// It runs detached from ctx, which may already be cancelled.
func (s *AuthService) rollback(ctx context.Context, username string) {
	if err := s.identities.Delete(context.WithoutCancel(ctx), username); err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to roll back identity after registration error")
	}
}

// ensureRole creates role in the registry on first use.
func (s *AuthService) ensureRole(ctx context.Context, role string) error {
	exists, err := s.roles.Exists(ctx, role)
	if err != nil {
		return fmt.Errorf("check role %q: %w", role, err)
	}
	if exists {
		return nil
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return fmt.Errorf("create role %q: %w", role, err)
	}
	s.logger.Info().Str("role", role).Msg("role created")
	return nil
}

// Login verifies the credentials and issues a token. Unknown usernames and
// wrong passwords both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	identity, err := s.identities.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(identity.Username, identity.Roles)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Debug().Str("username", identity.Username).Strs("roles", identity.Roles).Msg("token issued")
	return &ports.LoginResult{Token: token, Expiration: expiresAt}, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *ports.TokenClaims) error {
	if claims == nil || claims.TokenID == "" {
		return domain.ErrInvalidCredentials
	}
	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.denylist.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	metrics.TokensRevokedTotal.Inc()
	s.logger.Info().Str("username", claims.Username).Str("jti", claims.TokenID).Msg("token revoked")
	return nil
}

func validateRegistration(in ports.RegisterInput) error {
	var missing []string
	if strings.TrimSpace(in.Username) == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		missing = append(missing, "phone number")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", domain.ErrValidation, strings.Join(missing, ", "))
	}
	if err := validate.Var(in.Email, "email"); err != nil {
		return fmt.Errorf("%w: email must be a valid email", domain.ErrValidation)
	}
	return validatePassword(in.Password)
}

func validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password required", domain.ErrValidation)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", domain.ErrValidation, maxPasswordBytes)
	}
	return nil
}

package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"wellness_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 6

	// resetCodeTTL is how long a password-reset code stays valid.
	resetCodeTTL = 15 * time.Minute
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// email is already registered.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// SetResetCode stores a password-reset code and its expiry on the user,
	// replacing any previous code.
	SetResetCode(ctx context.Context, userID uint, code string, expiry time.Time) error

	// UpdatePassword replaces the stored password hash and clears any
	// pending reset code.
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
}

// JWTGenerator defines the interface for access token generation.
type JWTGenerator interface {
	// GenerateToken creates a signed JWT for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// Mailer delivers password-reset verification codes to users.
type Mailer interface {
	SendResetCode(ctx context.Context, to, code string) error
}

// SignupInput carries the registration fields. Age, Weight and Height are
// optional; nil means not supplied.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Age      *int
	Weight   *float64
	Height   *float64
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users       UserRepository
	sessions    SessionRepository
	jwtGen      JWTGenerator
	mailer      Mailer
	sessionTTL  time.Duration
	maxSessions int
}

// NewAuthUsecase creates a new authUsecase. sessionTTL is the refresh-token
// lifetime; maxSessions caps concurrent sessions per user (0 disables the cap).
func NewAuthUsecase(users UserRepository, sessions SessionRepository, jwtGen JWTGenerator,
	mailer Mailer, sessionTTL time.Duration, maxSessions int) *authUsecase {
	return &authUsecase{
		users:       users,
		sessions:    sessions,
		jwtGen:      jwtGen,
		mailer:      mailer,
		sessionTTL:  sessionTTL,
		maxSessions: maxSessions,
	}
}

// validatePassword checks that the password meets the minimum requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup registers a new user with a hashed password. The email is lowercased
// so that uniqueness is case-insensitive.
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) error {
	if err := validatePassword(in.Password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     in.Name,
		Email:    strings.ToLower(in.Email),
		Password: string(hashed),
		Age:      in.Age,
		Weight:   in.Weight,
		Height:   in.Height,
		// Defaults match the goal column defaults; set explicitly so the
		// entity is usable before a round-trip through the database.
		WaterGoalML:    2000,
		FoodGoalCal:    2000,
		SleepGoalHours: 8,
	}
	return u.users.Create(ctx, user)
}

// Login authenticates a user and, on success, returns a signed access token
// and a new refresh token. A bcrypt comparison runs even when the user does
// not exist, to keep the response time independent of user existence.
func (u *authUsecase) Login(ctx context.Context, email, password, userAgent, ip string) (access, refresh string, err error) {
	user, findErr := u.users.FindByEmail(ctx, strings.ToLower(email))

	// Dummy hash so bcrypt.CompareHashAndPassword always runs.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if findErr == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if findErr != nil || compareErr != nil {
		return "", "", ErrInvalidCredentials
	}

	access, err = u.jwtGen.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}

	refresh, err = u.openSession(ctx, user.ID, userAgent, ip)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Refresh rotates a refresh token: the presented session is revoked and a new
// one is issued along with a fresh access token.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken, userAgent, ip string) (access, refresh string, err error) {
	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", err
	}
	if session.IsRevoked() {
		return "", "", ErrSessionRevoked
	}
	if session.IsExpired() {
		return "", "", ErrSessionExpired
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return "", "", err
	}

	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		return "", "", err
	}

	access, err = u.jwtGen.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}

	refresh, err = u.openSession(ctx, user.ID, userAgent, ip)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Logout revokes the session for the given refresh token. An unknown token is
// not an error; logout is idempotent.
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	err := u.sessions.Revoke(ctx, refreshToken)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	return err
}

// RequestPasswordReset stores a fresh 6-digit verification code on the user
// and emails it. A new request supersedes any previous code.
func (u *authUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return err
	}

	code, err := newResetCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	if err := u.users.SetResetCode(ctx, user.ID, code, time.Now().Add(resetCodeTTL)); err != nil {
		return err
	}
	return u.mailer.SendResetCode(ctx, user.Email, code)
}

// VerifyResetCode checks a reset code against the one stored for the user.
func (u *authUsecase) VerifyResetCode(ctx context.Context, email, code string) error {
	user, err := u.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return err
	}
	return checkResetCode(user, code)
}

// ResetPassword sets a new password after verifying the reset code, clears the
// code and revokes all of the user's sessions.
func (u *authUsecase) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	user, err := u.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return err
	}
	if err := checkResetCode(user, code); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := u.users.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		return err
	}

	// A password change invalidates every outstanding refresh token.
	return u.sessions.RevokeAllByUserID(ctx, user.ID)
}

// openSession creates a refresh-token session, evicting the oldest one when
// the per-user cap is reached.
func (u *authUsecase) openSession(ctx context.Context, userID uint, userAgent, ip string) (string, error) {
	if u.maxSessions > 0 {
		count, err := u.sessions.CountByUserID(ctx, userID)
		if err != nil {
			return "", err
		}
		if count >= int64(u.maxSessions) {
			if err := u.sessions.DeleteOldestByUserID(ctx, userID); err != nil {
				return "", err
			}
		}
	}

	token, err := newRefreshToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	session := &entity.Session{
		ID:        token,
		UserID:    userID,
		UserAgent: userAgent,
		IPAddress: ip,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", err
	}
	return token, nil
}

// checkResetCode validates a presented code against the user's stored one.
func checkResetCode(user *entity.User, code string) error {
	if user.ResetCode == nil || user.ResetCodeExpiry == nil {
		return ErrInvalidResetCode
	}
	if subtle.ConstantTimeCompare([]byte(*user.ResetCode), []byte(code)) != 1 {
		return ErrInvalidResetCode
	}
	if time.Now().After(*user.ResetCodeExpiry) {
		return ErrResetCodeExpired
	}
	return nil
}

// newRefreshToken returns a 64-character hex token from 32 random bytes.
func newRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// newResetCode returns a random 6-digit verification code.
func newResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

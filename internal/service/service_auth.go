package service

import (
	"context"
	"fmt"

	"github.com/backmeup/credstore/internal/logger"
	"github.com/backmeup/credstore/internal/store"
	"github.com/backmeup/credstore/internal/utils"
	"github.com/backmeup/credstore/models"
)

// minPasswordLength is the minimum accepted plaintext password length at
// registration time.
const minPasswordLength = 6

// authService is the concrete implementation of AuthService.
// It handles account registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that Username, Email and the password are non-empty and that
// the password meets the minimum length, hashes the password with bcrypt, and
// delegates persistence to the UserRepository. A missing role is left to the
// schema's DEFAULT 'user'; the account is always created active.
//
// Returns the persisted user (with server-assigned ID and CreatedAt) or:
//   - ErrInvalidDataProvided if Username, Email or the password is empty.
//   - ErrPasswordTooShort if the password is shorter than six characters.
//   - A wrapped storage error if the repository call fails (e.g. username or
//     email already taken — see store.ErrUsernameAlreadyExists and
//     store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Email == "" || password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if len(password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = hash
	user.IsActive = true

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by username, rejects deactivated accounts, and
// compares the supplied password against the stored bcrypt hash. On success
// the account's last_login is stamped; a failure to stamp it is logged but
// does not fail the login.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the repository lookup fails (e.g. user not
//     found — see store.ErrUserNotFound).
//   - ErrUserInactive if the account has been deactivated.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !foundUser.IsActive {
		log.Error().Str("username", username).Msg("login attempt on deactivated account")
		return models.User{}, ErrUserInactive
	}

	if !utils.CheckPassword(foundUser.Password, password) {
		log.Error().Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	if err := a.userRepository.UpdateLastLogin(ctx, foundUser.ID); err != nil {
		log.Warn().Err(err).Int64("id", foundUser.ID).Msg("failed to stamp last login")
	}

	return foundUser, nil
}

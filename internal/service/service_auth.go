package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/internal/store"
	"github.com/kmdeakers/go-notes/models"
)

// authService is the concrete implementation of AuthService.
// It handles account construction, persistence, and credential verification
// using a UserRepository for storage and bcrypt for password hashing.
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

// Register builds a user record from a validated registration form.
//
// The plaintext password is hashed with bcrypt at the default cost; the
// plaintext itself is never stored on the returned record. Register performs
// no I/O — persistence is a separate [authService.CreateUser] call, so the
// caller controls when the mutation happens.
//
// Returns:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - A wrapped bcrypt error if hashing fails (password longer than 72 bytes).
func (a *authService) Register(ctx context.Context, form models.RegisterForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if form.Username == "" || form.Password == "" {
		log.Error().Str("username", form.Username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		return models.User{}, fmt.Errorf("password hashing ended with error: %w", err)
	}

	return models.User{
		Username:  form.Username,
		Password:  string(hash),
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	}, nil
}

// CreateUser persists a user record built by [authService.Register].
//
// Returns the persisted user (with server-assigned CreatedAt) or a wrapped
// storage error if the repository call fails (e.g. username or email already
// taken — see store.ErrUserAlreadyExists).
func (a *authService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	createdUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// Authenticate verifies a username/password pair.
//
// The ok result is false both when the username is unknown and when the
// password does not match, and the two cases are deliberately not
// distinguishable to the caller. The error result reports infrastructure
// failures only (e.g. the database being unreachable), never bad credentials.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, false, nil
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, false, nil
		}

		log.Err(err).Str("username", username).Msg("user lookup ended with error")
		return models.User{}, false, fmt.Errorf("user lookup ended with error: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, false, nil
	}

	return user, true, nil
}

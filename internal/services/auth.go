// Package services contains the authentication core: account creation with
// salted password hashing, credential verification with role resolution, and
// seeding of the administrator account.
package services

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hotelres/internal/common"
	"github.com/dmitrijs2005/hotelres/internal/dbx"
	"github.com/dmitrijs2005/hotelres/internal/logging"
	"github.com/dmitrijs2005/hotelres/internal/models"
	"github.com/dmitrijs2005/hotelres/internal/repositories/repomanager"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PasswordHasher is satisfied by *cryptox.PasswordHasher.
type PasswordHasher interface {
	GenerateSalt() string
	Hash(password, salt string) (string, error)
	Verify(password, salt, expectedHash string) bool
}

// SignupRequest carries the fields of the signup form.
type SignupRequest struct {
	FirstName       string `validate:"required,max=100"`
	LastName        string `validate:"required,max=100"`
	Email           string `validate:"required,email,max=254"`
	Password        string
	ConfirmPassword string
}

// LoginOutcome is the result of a successful login. IsAdmin always equals
// Identity.IsAdmin and decides the post-login screen.
type LoginOutcome struct {
	Identity models.Identity
	IsAdmin  bool
}

// AuthService defines the authentication operations used by the CLI.
//
// Contract:
//   - Signup: validate, hash and persist a new non-admin account.
//   - Login: verify credentials and resolve the role. It does not touch the
//     session; committing the identity is the caller's job.
//   - SeedAdmin: create the administrator account once.
type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) error
	Login(ctx context.Context, email, password string) (*LoginOutcome, error)
	SeedAdmin(ctx context.Context, email string) (string, error)
}

type authService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	validate    *validator.Validate
	logger      logging.Logger

	// used on the unknown-email path so it costs one Verify like a wrong password
	dummySalt string
	dummyHash string
}

// NewAuthService constructs an AuthService over the given database and
// repository manager. It derives one throwaway hash up front.
func NewAuthService(db *sql.DB, rm repomanager.RepositoryManager, hasher PasswordHasher, logger logging.Logger) AuthService {
	s := &authService{
		db:          db,
		repomanager: rm,
		hasher:      hasher,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger.With("component", "auth"),
	}
	s.dummySalt, s.dummyHash = dummyCredentials(hasher)
	return s
}

// Signup creates a non-admin account. The password check runs first, then
// field validation; neither touches the hasher or the store on failure.
func (s *authService) Signup(ctx context.Context, req SignupRequest) error {
	if req.Password != req.ConfirmPassword {
		return common.ErrorPasswordMismatch
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", common.ErrorValidation, describeValidation(err))
	}

	user, err := s.newUser(req.FirstName, req.LastName, req.Email, req.Password, false)
	if err != nil {
		return err
	}

	if err := s.create(ctx, user); err != nil {
		s.logger.Warn(ctx, "signup failed", "email", req.Email, "error", err)
		return err
	}

	s.logger.Info(ctx, "user signed up", "email", user.Email, "id", user.ID)
	return nil
}

// Login looks the account up by email and verifies the password. Unknown
// email and wrong password both yield common.ErrorInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginOutcome, error) {
	email = strings.TrimSpace(email)

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = s.hasher.Verify(password, s.dummySalt, s.dummyHash)
			s.logger.Info(ctx, "login failed", "email", email)
			return nil, common.ErrorInvalidCredentials
		}
		s.logger.Error(ctx, "login lookup failed", "email", email, "error", err)
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.Salt, user.PasswordHash) {
		s.logger.Info(ctx, "login failed", "email", email)
		return nil, common.ErrorInvalidCredentials
	}

	s.logger.Info(ctx, "login succeeded", "email", email, "admin", user.IsAdmin)
	return &LoginOutcome{Identity: user.Identity(), IsAdmin: user.IsAdmin}, nil
}

// --- helpers below ---

func (s *authService) newUser(firstName, lastName, email, password string, isAdmin bool) (*models.User, error) {
	salt := s.hasher.GenerateSalt()
	hash, err := s.hasher.Hash(password, salt)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", common.ErrorInternal, err)
	}
	return &models.User{
		ID:           uuid.NewString(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Salt:         salt,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}, nil
}

func (s *authService) create(ctx context.Context, user *models.User) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := s.repomanager.Users(tx).Create(ctx, user)
		return err
	})
	if err != nil {
		return errors.Join(common.ErrorPersistenceFailed, err)
	}
	return nil
}

// dummyCredentials returns a salt and hash that match no real password.
// A failed Hash leaves the hash empty, which Verify still pays for.
func dummyCredentials(hasher PasswordHasher) (string, string) {
	salt := hasher.GenerateSalt()
	hash, err := hasher.Hash(hex.EncodeToString(common.GenerateRandByteArray(16)), salt)
	if err != nil {
		return salt, ""
	}
	return salt, hash
}

func describeValidation(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}

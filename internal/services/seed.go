package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hotelres/internal/common"
)

const (
	adminFirstName = "Hotel"
	adminLastName  = "Administrator"

	// adminPasswordBytes random bytes, hex encoded.
	adminPasswordBytes = 12
)

// SeedAdmin creates the administrator account for email if none exists and
// returns its generated password so it can be shown once. When the account
// already exists it returns "" and nil.
func (s *authService) SeedAdmin(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("%w: admin email %q is not valid", common.ErrorValidation, email)
	}

	_, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		s.logger.Debug(ctx, "admin already present", "email", email)
		return "", nil
	case !errors.Is(err, common.ErrorNotFound):
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	password, err := common.MakeRandHexString(adminPasswordBytes)
	if err != nil {
		return "", fmt.Errorf("%w: generate password: %v", common.ErrorInternal, err)
	}

	user, err := s.newUser(adminFirstName, adminLastName, email, password, true)
	if err != nil {
		return "", err
	}

	if err := s.create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", nil
		}
		return "", err
	}

	s.logger.Info(ctx, "admin account created", "email", email, "id", user.ID)
	return password, nil
}

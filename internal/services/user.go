package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userrepo "github.com/shoplist-app/shoplist-backend/internal/data/repos/user"
	types "github.com/shoplist-app/shoplist-backend/internal/domain"
	"github.com/shoplist-app/shoplist-backend/internal/pkg/logger"
)

type ProvisionUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Staff     bool
}

// UserService exposes identity records. Provisioning writes identity rows
// only; credentials are the identity provider's problem.
type UserService interface {
	Provision(ctx context.Context, principal *types.User, input ProvisionUserInput) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo userrepo.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo userrepo.UserRepo) UserService {
	return &userService{
		db:       db,
		log:      baseLog.With("service", "UserService"),
		userRepo: userRepo,
	}
}

// Provision is restricted to staff: regular members cannot mint principals.
func (s *userService) Provision(ctx context.Context, principal *types.User, input ProvisionUserInput) (*types.User, error) {
	if principal == nil || !principal.Staff {
		return nil, MapError("provision_user_failed", ForbiddenError("staff access required"))
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" {
		return nil, MapError("invalid_email", ValidationError("email is required"))
	}

	exists, err := s.userRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, MapError("provision_user_failed", err)
	}
	if exists {
		return nil, MapError("invalid_email", ValidationError("email is already in use"))
	}

	user := &types.User{
		ID:        uuid.New(),
		Email:     email,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Staff:     input.Staff,
	}
	created, err := s.userRepo.Create(ctx, nil, []*types.User{user})
	if err != nil {
		return nil, MapError("provision_user_failed", err)
	}
	return created[0], nil
}

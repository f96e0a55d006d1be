package services

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	stderrors "errors"

	userrepo "github.com/shoplist-app/shoplist-backend/internal/data/repos/user"
	types "github.com/shoplist-app/shoplist-backend/internal/domain"
	"github.com/shoplist-app/shoplist-backend/internal/pkg/errors"
	"github.com/shoplist-app/shoplist-backend/internal/pkg/logger"
)

// IdentityService is the boundary to the identity provider: it turns a
// bearer token into a principal. Issuing tokens, logins and credentials live
// outside this service entirely; only verification happens here. The staff
// flag is read from the user row, never trusted from token claims.
type IdentityService interface {
	PrincipalFromToken(ctx context.Context, tokenString string) (*types.User, error)
}

type identityService struct {
	log       *logger.Logger
	userRepo  userrepo.UserRepo
	jwtSecret []byte
}

func NewIdentityService(baseLog *logger.Logger, userRepo userrepo.UserRepo, jwtSecret string) IdentityService {
	return &identityService{
		log:       baseLog.With("service", "IdentityService"),
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
	}
}

func (s *identityService) PrincipalFromToken(ctx context.Context, tokenString string) (*types.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, stderrors.Join(errors.ErrUnauthorized, fmt.Errorf("invalid token: %w", err))
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return nil, stderrors.Join(errors.ErrUnauthorized, fmt.Errorf("token has no subject"))
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, stderrors.Join(errors.ErrUnauthorized, fmt.Errorf("token subject is not a user id"))
	}

	principal, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, stderrors.Join(errors.ErrUnauthorized, fmt.Errorf("unknown principal"))
		}
		return nil, err
	}
	return principal, nil
}

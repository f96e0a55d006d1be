package services

import (
	"net/http"
	"strings"

	stderrors "errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/shoplist-app/shoplist-backend/internal/pkg/apierr"
	"github.com/shoplist-app/shoplist-backend/internal/pkg/errors"
)

// uniqueUnpurchasedIndex is the storage-level backstop for the duplicate
// guard. A violation here means a concurrent request won the check-then-insert
// race; it must surface as the same validation failure the guard reports.
const uniqueUnpurchasedIndex = "idx_shopping_item_unpurchased_name"

func ValidationError(msg string) error {
	return stderrors.Join(errors.ErrValidation, stderrors.New(strings.TrimSpace(msg)))
}

func ForbiddenError(msg string) error {
	return stderrors.Join(errors.ErrForbidden, stderrors.New(strings.TrimSpace(msg)))
}

func NotFoundError(msg string) error {
	return stderrors.Join(errors.ErrNotFound, stderrors.New(strings.TrimSpace(msg)))
}

// MapError translates service and storage failures into apierr values the
// HTTP layer can map to status codes without inspecting error text.
func MapError(code string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*apierr.Error); ok {
		return err
	}

	switch {
	case stderrors.Is(err, errors.ErrValidation):
		return apierr.New(http.StatusBadRequest, code, err)
	case stderrors.Is(err, errors.ErrForbidden):
		return apierr.New(http.StatusForbidden, code, err)
	case stderrors.Is(err, errors.ErrNotFound), stderrors.Is(err, gorm.ErrRecordNotFound):
		return apierr.New(http.StatusNotFound, code, err)
	case stderrors.Is(err, errors.ErrUnauthorized):
		return apierr.New(http.StatusUnauthorized, code, err)
	}

	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, uniqueUnpurchasedIndex) {
			return apierr.New(http.StatusBadRequest, "duplicate_item",
				stderrors.Join(errors.ErrValidation, err))
		}
		return apierr.New(http.StatusConflict, code, err)
	}

	return apierr.New(http.StatusInternalServerError, code, err)
}

package requestdata

import (
	"context"

	types "github.com/shoplist-app/shoplist-backend/internal/domain"
)

type requestDataKey struct{}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	val := ctx.Value(requestDataKey{})
	if rd, ok := val.(*RequestData); ok {
		return rd
	}
	return nil
}

// RequestData carries the authenticated principal resolved by the auth
// middleware. Handlers pull it off the context once and pass the principal
// explicitly into services; nothing below the HTTP boundary reads it.
type RequestData struct {
	TokenString string
	Principal   *types.User
}

package domain

import (
	"github.com/shoplist-app/shoplist-backend/internal/domain/shopping"
	"github.com/shoplist-app/shoplist-backend/internal/domain/user"
)

type User = user.User

type ShoppingList = shopping.ShoppingList
type ShoppingItem = shopping.ShoppingItem
type ItemPreview = shopping.ItemPreview

const (
	MaxNameLength           = shopping.MaxNameLength
	UnpurchasedPreviewLimit = shopping.UnpurchasedPreviewLimit
)

package domain

import "errors"

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrAliasNotFound = errors.New("alias did not exist")
	ErrInvalidAlias  = errors.New("invalid alias name")
	ErrNotAuthorized = errors.New("not authorized")
	ErrNotFolder     = errors.New("item is not a folder")
)

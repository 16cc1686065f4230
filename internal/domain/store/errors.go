package store

import "errors"

var (
	ErrStoreNotFound   = errors.New("store not found")
	ErrStoreNameExists = errors.New("store name already exists for this owner")
)

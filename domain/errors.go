package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exists")
	// ErrForbidden will throw if the acting user does not own the item
	ErrForbidden = errors.New("you do not own this item")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrCacheMiss will throw if the requested key is not in cache.
	// This is the expected outcome of a cold read, not an infrastructure failure.
	ErrCacheMiss = errors.New("requested key is not cached")
	// ErrCacheUnavailable will throw if the cache layer cannot be reached.
	// Distinct from ErrCacheMiss so callers can fall back to the store.
	ErrCacheUnavailable = errors.New("cache is unreachable")
)

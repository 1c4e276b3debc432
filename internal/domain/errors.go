package domain

import "errors"

// Engine failures are returned to the presentation layer as values, never
// panics, so the UI can render a message and keep the kiosk alive.
var (
	// ErrOutOfStock: adding a game whose stock is zero.
	ErrOutOfStock = errors.New("game is out of stock")
	// ErrStockExceeded: a cart mutation would push quantity above stock.
	ErrStockExceeded = errors.New("requested quantity exceeds available stock")
	// ErrBelowMinimum: checkout with fewer units than the configured minimum.
	ErrBelowMinimum = errors.New("cart is below the minimum item count")
	// ErrInvalidBackupFormat: restore document missing games, sales or settings.
	ErrInvalidBackupFormat = errors.New("invalid backup format")
	// ErrMalformedPersistedData: a persisted document failed to parse. The
	// loader recovers with defaults and surfaces this once.
	ErrMalformedPersistedData = errors.New("malformed persisted data")
	// ErrGameNotFound: a cart or admin operation referenced an unknown game id.
	ErrGameNotFound = errors.New("game not found")
	// ErrDuplicateGameID: inserting a game whose id already exists.
	ErrDuplicateGameID = errors.New("duplicate game id")
	// ErrOrderNotFound: a ticket or detail lookup referenced an unknown order.
	ErrOrderNotFound = errors.New("order not found")
)

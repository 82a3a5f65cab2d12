package protocol

import (
	"errors"
	"fmt"

	"github.com/danmuck/rowctl/internal/protocol/enum"
	"github.com/danmuck/rowctl/internal/protocol/ident"
	"github.com/danmuck/rowctl/internal/protocol/rowing"
	"github.com/danmuck/rowctl/internal/protocol/wire"
	"github.com/google/uuid"
)

// Field-level failures are raised by the subpackages and re-exported here so
// callers match the whole taxonomy against one package.
var (
	ErrInsufficientData    = wire.ErrInsufficientData
	ErrInvalidVariant      = enum.ErrInvalidVariant
	ErrUnexpectedByteCount = rowing.ErrUnexpectedByteCount
)

var (
	ErrUnknownService        = errors.New("protocol: unknown service")
	ErrUnknownCharacteristic = errors.New("protocol: unknown characteristic")
	ErrNotImplemented        = errors.New("protocol: characteristic not implemented")
	ErrDuplicateIdentifier   = errors.New("protocol: duplicate identifier")
)

// DecodeError carries the identifier a decode failed for. Characteristic is
// zero when the identifier is not in the catalog.
type DecodeError struct {
	ID             uuid.UUID
	Characteristic ident.Characteristic
	Err            error
}

func (e *DecodeError) Error() string {
	if e.Characteristic.IsZero() {
		return fmt.Sprintf("protocol: decode %s: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("protocol: decode %s: %v", e.Characteristic, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Kind labels err by the sentinel it wraps. It is stable enough for metric
// labels and API responses.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInsufficientData):
		return "insufficient_data"
	case errors.Is(err, ErrInvalidVariant):
		return "invalid_variant"
	case errors.Is(err, ErrUnexpectedByteCount):
		return "unexpected_byte_count"
	case errors.Is(err, ErrUnknownService):
		return "unknown_service"
	case errors.Is(err, ErrUnknownCharacteristic):
		return "unknown_characteristic"
	case errors.Is(err, ErrNotImplemented):
		return "not_implemented"
	default:
		return "other"
	}
}

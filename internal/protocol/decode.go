package protocol

import (
	"fmt"

	"github.com/danmuck/rowctl/internal/protocol/ident"
	"github.com/danmuck/rowctl/internal/protocol/rowing"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Binding attaches a decoder to one characteristic.
type Binding struct {
	Characteristic ident.Characteristic
	Decode         rowing.Decoder
}

// Registry dispatches identifiers to decoders. It is immutable once built and
// safe for concurrent use.
type Registry struct {
	bindings map[uuid.UUID]Binding
}

// NewRegistry indexes bindings by identifier. Two bindings that resolve to
// the same identifier are rejected.
func NewRegistry(bindings ...Binding) (*Registry, error) {
	r := &Registry{bindings: make(map[uuid.UUID]Binding, len(bindings))}
	for _, b := range bindings {
		if b.Decode == nil {
			return nil, fmt.Errorf("protocol: %s has no decoder", b.Characteristic)
		}
		id := b.Characteristic.UUID()
		if prev, dup := r.bindings[id]; dup {
			return nil, fmt.Errorf("%w: %s and %s both map to %s", ErrDuplicateIdentifier, prev.Characteristic, b.Characteristic, id)
		}
		r.bindings[id] = b
	}
	return r, nil
}

// RowingBindings lists every decoder the rowing package provides.
func RowingBindings() []Binding {
	decoders := rowing.Decoders()
	out := make([]Binding, 0, len(decoders))
	for _, c := range ident.Characteristics(ident.Rowing) {
		if d, ok := decoders[c]; ok {
			out = append(out, Binding{Characteristic: c, Decode: d})
		}
	}
	return out
}

var defaultRegistry = mustRegistry(RowingBindings()...)

func mustRegistry(bindings ...Binding) *Registry {
	r, err := NewRegistry(bindings...)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the registry Decode uses.
func Default() *Registry { return defaultRegistry }

// Decode decodes payload as the characteristic addressed by id using the
// default registry.
func Decode(id uuid.UUID, payload []byte) (rowing.Record, error) {
	return defaultRegistry.Decode(id, payload)
}

// Implemented reports whether r can decode c.
func (r *Registry) Implemented(c ident.Characteristic) bool {
	_, ok := r.bindings[c.UUID()]
	return ok
}

// Decode resolves the owning service, then the characteristic, then decodes
// fields in order. Every failure is a *DecodeError.
func (r *Registry) Decode(id uuid.UUID, payload []byte) (rowing.Record, error) {
	rec, c, err := r.decode(id, payload)
	if err != nil {
		log.Debug().
			Str("id", id.String()).
			Str("characteristic", c.String()).
			Int("bytes", len(payload)).
			Err(err).
			Msg("protocol: decode failed")
		return nil, &DecodeError{ID: id, Characteristic: c, Err: err}
	}
	return rec, nil
}

func (r *Registry) decode(id uuid.UUID, payload []byte) (rowing.Record, ident.Characteristic, error) {
	service, ok := ident.Recognize(id)
	if !ok {
		return nil, ident.Characteristic{}, ErrUnknownService
	}
	c, catalogued := ident.Lookup(id)
	if service != ident.Rowing {
		if !catalogued {
			return nil, c, ErrUnknownCharacteristic
		}
		return nil, c, fmt.Errorf("%w: %s service is not decoded", ErrNotImplemented, service)
	}
	b, ok := r.bindings[id]
	if !ok {
		if catalogued {
			return nil, c, ErrNotImplemented
		}
		return nil, c, ErrUnknownCharacteristic
	}
	rec, err := b.Decode(payload)
	if err != nil {
		return nil, b.Characteristic, err
	}
	return rec, b.Characteristic, nil
}

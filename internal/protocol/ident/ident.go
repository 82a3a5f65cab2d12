// Package ident derives and recognizes the 128-bit identifiers a PM5 uses to
// address its GATT services and characteristics.
//
// Every identifier is a per-service namespace prefix with a 4-bit selector
// stored in the low nibble of byte 3 (bits 96..99 of the big-endian value).
package ident

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	// SelectorMask covers the selector nibble inside byte 3.
	SelectorMask uint8 = 0x0F

	selectorByte = 3
	MaxSelector  = 15
)

var ErrUnknownName = errors.New("ident: unknown characteristic name")

type Service uint8

const (
	Information Service = iota + 1
	Control
	Rowing
	HeartRate
)

var prefixes = map[Service]uuid.UUID{
	Information: uuid.MustParse("ce060010-43e5-11e4-916c-0800200c9a66"),
	Control:     uuid.MustParse("ce060020-43e5-11e4-916c-0800200c9a66"),
	Rowing:      uuid.MustParse("ce060030-43e5-11e4-916c-0800200c9a66"),
	HeartRate:   uuid.MustParse("ce060040-43e5-11e4-916c-0800200c9a66"),
}

var serviceNames = map[Service]string{
	Information: "information",
	Control:     "control",
	Rowing:      "rowing",
	HeartRate:   "heart_rate",
}

// Services lists every known service in namespace order.
func Services() []Service {
	return []Service{Information, Control, Rowing, HeartRate}
}

// Prefix returns the namespace prefix with a zero selector. Unknown services
// return uuid.Nil.
func (s Service) Prefix() uuid.UUID {
	return prefixes[s]
}

func (s Service) String() string {
	if name, ok := serviceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("service(%d)", uint8(s))
}

// Pack stores selector in the selector nibble of prefix. Bits of selector
// above the nibble are discarded.
func Pack(prefix uuid.UUID, selector uint8) uuid.UUID {
	id := prefix
	id[selectorByte] = id[selectorByte]&^SelectorMask | selector&SelectorMask
	return id
}

// Unpack splits id into its namespace prefix and selector.
func Unpack(id uuid.UUID) (uuid.UUID, uint8) {
	selector := id[selectorByte] & SelectorMask
	id[selectorByte] &^= SelectorMask
	return id, selector
}

// IdentifierOf returns the identifier of the characteristic at the 1-based
// index within service.
func IdentifierOf(service Service, index uint8) uuid.UUID {
	return Pack(service.Prefix(), index)
}

// BelongsTo reports whether clearing the selector of id reproduces the
// namespace prefix of service.
func BelongsTo(service Service, id uuid.UUID) bool {
	prefix, ok := prefixes[service]
	if !ok {
		return false
	}
	masked, _ := Unpack(id)
	return masked == prefix
}

// Recognize returns the service whose namespace id lives in.
func Recognize(id uuid.UUID) (Service, bool) {
	for _, s := range Services() {
		if BelongsTo(s, id) {
			return s, true
		}
	}
	return 0, false
}

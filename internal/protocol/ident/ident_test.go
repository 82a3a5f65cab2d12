package ident

import (
	"errors"
	"testing"

	"github.com/danmuck/rowctl/internal/testutil/testlog"
	"github.com/google/uuid"
)

func TestIdentifierOfBelongsToOwningServiceOnly(t *testing.T) {
	testlog.Start(t)

	for _, s := range Services() {
		for i := uint8(1); i <= MaxSelector; i++ {
			id := IdentifierOf(s, i)
			if !BelongsTo(s, id) {
				t.Fatalf("%s index %d: %s not recognized by its own service", s, i, id)
			}
			for _, other := range Services() {
				if other == s {
					continue
				}
				if BelongsTo(other, id) {
					t.Fatalf("%s index %d: %s also claimed by %s", s, i, id, other)
				}
			}
			got, ok := Recognize(id)
			if !ok || got != s {
				t.Fatalf("recognize %s: got %s ok=%v", id, got, ok)
			}
		}
	}
}

func TestPackUnpackRoundTripAndInjective(t *testing.T) {
	testlog.Start(t)

	for _, s := range Services() {
		seen := make(map[uuid.UUID]uint8)
		for sel := uint8(0); sel <= MaxSelector; sel++ {
			id := Pack(s.Prefix(), sel)
			prefix, got := Unpack(id)
			if prefix != s.Prefix() || got != sel {
				t.Fatalf("%s selector %d: unpack gave (%s, %d)", s, sel, prefix, got)
			}
			if prev, dup := seen[id]; dup {
				t.Fatalf("%s selectors %d and %d both pack to %s", s, prev, sel, id)
			}
			seen[id] = sel
		}
	}
}

func TestMultiplexedInformationIdentifier(t *testing.T) {
	testlog.Start(t)

	want := uuid.MustParse("CE06003F-43E5-11E4-916C-0800200C9A66")
	if got := MultiplexedInformation.UUID(); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if got := IdentifierOf(Rowing, 15); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestPublishedServicePrefixes(t *testing.T) {
	testlog.Start(t)

	cases := map[Service]string{
		Information: "ce060010-43e5-11e4-916c-0800200c9a66",
		Control:     "ce060020-43e5-11e4-916c-0800200c9a66",
		Rowing:      "ce060030-43e5-11e4-916c-0800200c9a66",
		HeartRate:   "ce060040-43e5-11e4-916c-0800200c9a66",
	}
	for s, want := range cases {
		if got := s.Prefix().String(); got != want {
			t.Fatalf("%s prefix: expected %s, got %s", s, want, got)
		}
	}
	if got := GeneralStatus.UUID().String(); got != "ce060031-43e5-11e4-916c-0800200c9a66" {
		t.Fatalf("unexpected general status id: %s", got)
	}
}

func TestRecognizeRejectsForeignNamespace(t *testing.T) {
	testlog.Start(t)

	foreign := uuid.MustParse("0000180d-0000-1000-8000-00805f9b34fb")
	if s, ok := Recognize(foreign); ok {
		t.Fatalf("expected no service, got %s", s)
	}
	// Selector bits are ignored, but a change anywhere else is not.
	almost := Rowing.Prefix()
	almost[15] ^= 0x01
	if BelongsTo(Rowing, almost) {
		t.Fatalf("expected %s to fall outside rowing", almost)
	}
}

func TestCatalogOrderAndLookup(t *testing.T) {
	testlog.Start(t)

	sizes := map[Service]int{Information: 6, Control: 2, Rowing: 15, HeartRate: 1}
	for s, n := range sizes {
		entries := Characteristics(s)
		if len(entries) != n {
			t.Fatalf("%s: expected %d entries, got %d", s, n, len(entries))
		}
		for i, c := range entries {
			if int(c.Index) != i+1 {
				t.Fatalf("%s entry %d has index %d", s, i, c.Index)
			}
			got, ok := Lookup(c.UUID())
			if !ok || got != c {
				t.Fatalf("lookup %s: got %v ok=%v", c, got, ok)
			}
		}
	}
	if len(All()) != 24 {
		t.Fatalf("expected 24 characteristics, got %d", len(All()))
	}
	if _, ok := Lookup(Pack(Rowing.Prefix(), 0)); ok {
		t.Fatalf("selector 0 must not resolve")
	}
}

func TestParseCharacteristic(t *testing.T) {
	testlog.Start(t)

	c, err := ParseCharacteristic("rowing.stroke_data")
	if err != nil {
		t.Fatalf("parse name: %v", err)
	}
	if c != StrokeData {
		t.Fatalf("expected stroke data, got %s", c)
	}

	c, err = ParseCharacteristic("CE060035-43E5-11E4-916C-0800200C9A66")
	if err != nil {
		t.Fatalf("parse uuid: %v", err)
	}
	if c != StrokeData {
		t.Fatalf("expected stroke data, got %s", c)
	}

	if _, err := ParseCharacteristic("rowing.nope"); !errors.Is(err, ErrUnknownName) {
		t.Fatalf("expected ErrUnknownName, got %v", err)
	}

	id, err := ParseIdentifier("ce060030-43e5-11e4-916c-0800200c9a66")
	if err != nil {
		t.Fatalf("parse identifier: %v", err)
	}
	if id != Rowing.Prefix() {
		t.Fatalf("unexpected identifier %s", id)
	}
}

func TestCharacteristicText(t *testing.T) {
	testlog.Start(t)

	text, err := ForceCurveData.MarshalText()
	if err != nil || string(text) != "rowing.force_curve_data" {
		t.Fatalf("unexpected text %q err=%v", text, err)
	}
	var c Characteristic
	if err := c.UnmarshalText(text); err != nil || c != ForceCurveData {
		t.Fatalf("unmarshal: got %s err=%v", c, err)
	}
	if err := c.UnmarshalText([]byte("unknown")); !errors.Is(err, ErrUnknownName) {
		t.Fatalf("expected ErrUnknownName, got %v", err)
	}
}

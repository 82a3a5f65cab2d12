// Package capture reads and writes notification capture files: YAML
// documents listing the characteristic, hex payload and arrival offset of
// each notification received from a monitor.
package capture

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/danmuck/rowctl/internal/protocol/ident"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var ErrInvalidPayload = errors.New("capture: invalid payload")

type File struct {
	Name          string  `yaml:"name,omitempty"`
	Notifications []Entry `yaml:"notifications"`
}

// Entry is one notification as written on disk. Characteristic accepts a
// catalog name or a UUID; Offset is measured from the start of the capture.
type Entry struct {
	Characteristic string        `yaml:"characteristic"`
	Payload        string        `yaml:"payload"`
	Offset         time.Duration `yaml:"offset,omitempty"`
}

// Notification is a resolved entry.
type Notification struct {
	ID      uuid.UUID
	Payload []byte
	Offset  time.Duration
}

func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("capture: open %s: %w", path, err)
	}
	defer f.Close()
	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("capture: %s: %w", path, err)
	}
	return file, nil
}

func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}
		return nil, err
	}
	return &file, nil
}

// Resolve converts every entry. The first malformed entry fails the whole
// file with its index.
func (f *File) Resolve() ([]Notification, error) {
	out := make([]Notification, 0, len(f.Notifications))
	for i, e := range f.Notifications {
		id, err := ident.ParseIdentifier(e.Characteristic)
		if err != nil {
			return nil, fmt.Errorf("notification %d: %w", i, err)
		}
		payload, err := ParsePayload(e.Payload)
		if err != nil {
			return nil, fmt.Errorf("notification %d: %w", i, err)
		}
		if e.Offset < 0 {
			return nil, fmt.Errorf("notification %d: negative offset %s", i, e.Offset)
		}
		out = append(out, Notification{ID: id, Payload: payload, Offset: e.Offset})
	}
	return out, nil
}

// Add appends a notification, naming the characteristic when it is
// catalogued.
func (f *File) Add(id uuid.UUID, payload []byte, offset time.Duration) {
	name := id.String()
	if c, ok := ident.Lookup(id); ok {
		name = c.String()
	}
	f.Notifications = append(f.Notifications, Entry{
		Characteristic: name,
		Payload:        hex.EncodeToString(payload),
		Offset:         offset,
	})
}

func (f *File) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (f *File) Save(path string) error {
	data, err := f.Marshal()
	if err != nil {
		return fmt.Errorf("capture: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("capture: write %s: %w", path, err)
	}
	return nil
}

// ParsePayload decodes a hex payload. Whitespace, ':' and '-' separators and
// a leading 0x are tolerated.
func ParsePayload(raw string) ([]byte, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', ':', '-':
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return b, nil
}

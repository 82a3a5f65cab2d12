package wire

// MaxUint24 is the largest value a three-byte field can carry.
const MaxUint24 = 1<<24 - 1

// Uint24 is held in 32 bits but always occupies three bytes on the wire.
type Uint24 uint32

func (Uint24) Width() Width { return W24 }

// Scalar is a newtype over one fixed-width unsigned field.
type Scalar interface {
	~uint8 | ~uint16 | ~uint32
	Width() Width
}

// Read decodes one T using the reader matching T's declared width.
func Read[T Scalar](c *Cursor) (T, error) {
	var zero T
	v, err := c.ReadUint(zero.Width())
	if err != nil {
		return zero, err
	}
	return T(v), nil
}

// ReadAll consumes the rest of the cursor as consecutive T values. A trailing
// partial value is reported as a *ShortReadError and nothing is returned.
func ReadAll[T Scalar](c *Cursor) ([]T, error) {
	var zero T
	w := int(zero.Width())
	if rem := c.Remaining() % w; rem != 0 {
		return nil, &ShortReadError{Offset: c.Len() - rem, Need: w, Have: rem}
	}
	out := make([]T, 0, c.Remaining()/w)
	for c.Remaining() > 0 {
		v, err := Read[T](c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

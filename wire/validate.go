package wire

// Validate reports whether buf is a well-formed sequence of units, i.e.
// whether it could be an embedded message. Length-delimited payloads are
// size-checked but not descended into. Group markers must be balanced.
//
// A nil error does not mean buf is a message: any bytes that happen to read
// as well-formed units pass.
func Validate(buf []byte) error {
	d := NewDecoder(buf)
	var groups []FieldNumber
	for !d.Done() {
		unit, err := d.ReadUnit()
		if err != nil {
			return err
		}

		switch unit.Type {
		case WireStartGroup:
			groups = append(groups, unit.Field)
		case WireEndGroup:
			if len(groups) == 0 || groups[len(groups)-1] != unit.Field {
				return unitError(unit.Offset, unit.Field, ErrMismatchedEndGroup)
			}
			groups = groups[:len(groups)-1]
		}
	}

	if len(groups) > 0 {
		return unitError(d.Offset(), groups[len(groups)-1], ErrUnterminatedGroup)
	}
	return nil
}

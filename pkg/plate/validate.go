package plate

// ValidateWindow checks that [begin, begin+length) lies inside a sequence of
// size values.
func ValidateWindow(size, begin, length int) error {
	if begin < 0 || length < 0 || begin+length > size {
		return ErrInvalidIndices.Here().Appendf("begin=%d length=%d size=%d", begin, length, size)
	}
	return nil
}

// ValidateDimensions checks that a plate of rows x columns can exist.
func ValidateDimensions(rows, columns int) error {
	if rows <= 0 || columns <= 0 {
		return ErrInvalidDimensions.Here().Appendf("%dx%d", rows, columns)
	}
	return nil
}

// ValidatePosition checks that p lies on a rows x columns plate.
func ValidatePosition(rows, columns int, p Position) error {
	if !p.Valid() {
		return ErrInvalidPosition.Here().Appendf("row=%d column=%d", p.Row, p.Column)
	}
	if p.Row >= rows || p.Column >= columns {
		return ErrOutOfBounds.Here().Appendf("well %s on a %dx%d plate", p, rows, columns)
	}
	return nil
}

// ValidateSameDimensions checks that two plate-like containers share their
// dimensions.
func ValidateSameDimensions(rows1, columns1, rows2, columns2 int) error {
	if rows1 != rows2 || columns1 != columns2 {
		return ErrDimensionMismatch.Here().Appendf("%dx%d vs %dx%d", rows1, columns1, rows2, columns2)
	}
	return nil
}

package bmfont

import (
	"errors"
	"fmt"
)

// Errors reported when decoding a font descriptor. Decoders wrap them into
// application errors (see package core); use errors.Is and errors.As to
// test for them.
var (
	ErrUnderflow            = errors.New("unexpected end of data")
	ErrOverflow             = errors.New("unexpected trailing data")
	ErrInvalidMagic         = errors.New("invalid file signature")
	ErrDuplicateInfoBlock   = errors.New("duplicate info block")
	ErrDuplicateCommonBlock = errors.New("duplicate common block")
	ErrNoInfoBlock          = errors.New("missing info block")
	ErrNoCommonBlock        = errors.New("missing common block")
)

// UnsupportedVersionError is returned for a binary format version this
// package cannot decode.
type UnsupportedVersionError struct {
	Version uint8
}

func (e UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported binary version %d", e.Version)
}

// InvalidBlockError is returned for a block with an unknown tag id.
type InvalidBlockError struct {
	ID uint8
}

func (e InvalidBlockError) Error() string {
	return fmt.Sprintf("invalid binary block id %d", e.ID)
}

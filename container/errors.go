package container

import "errors"

var (
	// ErrNotA3wFile is returned when decoding data whose magic bytes don't
	// match the ".3w" signature.
	ErrNotA3wFile = errors.New("container: not a .3w file")
	// ErrFileTooLarge is returned when an input body would overflow the
	// 32-bit size fields the header encodes.
	ErrFileTooLarge = errors.New("container: input too large to encode")
	// ErrCryptoUnavailable is returned if a cipher block can't be
	// constructed or the input isn't block-aligned.
	ErrCryptoUnavailable = errors.New("container: cipher backend unavailable")
)

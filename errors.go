package pdftext

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the extraction entry points. Everything
// less severe than these accumulates as warnings on the output instead
// of failing the call.
var (
	// ErrInvalidPDF marks documents whose structure cannot be read:
	// missing header, irrecoverably corrupt cross-reference data, or
	// a damaged trailer.
	ErrInvalidPDF = errors.New("invalid PDF")

	// ErrEncryptedNoPassword is returned for encrypted documents when
	// no password was supplied and the default empty user password
	// does not authenticate.
	ErrEncryptedNoPassword = errors.New("PDF is encrypted and no password was given")

	// ErrWrongPassword is returned when the supplied password
	// authenticates as neither the user nor the owner password.
	ErrWrongPassword = errors.New("wrong password")
)

// UnsupportedError reports a document feature this implementation
// cannot process.
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported feature: %s", e.Feature)
}

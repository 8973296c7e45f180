// Package uasset provides parsing of Unreal Engine .uasset container
// files: header metadata for any asset, and the key/value entries of
// StringTable assets.
package uasset

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNotUAsset indicates the buffer does not start with the .uasset
	// magic signature.
	ErrNotUAsset = errors.New("uasset: not a valid .uasset file")

	// ErrUnsupportedAssetType indicates a payload decode was requested
	// for an asset that is not a StringTable.
	ErrUnsupportedAssetType = errors.New("uasset: not a string table asset")

	// ErrGUIDMismatch indicates the GUID stored in the payload does not
	// match the GUID recorded in the header.
	ErrGUIDMismatch = errors.New("uasset: header and payload asset GUIDs differ")

	// ErrAnchorNotFound indicates the header anchor value is absent or
	// ambiguous, so field offsets cannot be resolved.
	ErrAnchorNotFound = errors.New("uasset: header anchor not found")
)

// ParseError provides detailed information about parsing failures. It
// is the only error type returned by the package-level parse
// functions; the originating condition is available through Unwrap.
type ParseError struct {
	Offset  int    // Byte offset at which parsing failed
	Message string // Description of the failing step
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("uasset: parse error at offset 0x%x: %s: %v",
			e.Offset, e.Message, e.Err)
	}
	return fmt.Sprintf("uasset: parse error at offset 0x%x: %s",
		e.Offset, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

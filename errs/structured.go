package errs

import "fmt"

// HashMismatchError reports a content-hash check failure.
type HashMismatchError struct {
	Expected string
	Computed string
}

func (e *HashMismatchError) Error() string {
	return fmt.Sprintf("dspbp: content hash mismatch: expected %s, computed %s", e.Expected, e.Computed)
}

func (e *HashMismatchError) Unwrap() error { return ErrHashMismatch }

// TruncatedError reports a binary stream that ran out of bytes mid-record.
type TruncatedError struct {
	At   int // byte offset at which the read was attempted
	Want int // bytes requested
	Have int // bytes remaining
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("dspbp: truncated stream at offset %d: wanted %d bytes, have %d", e.At, e.Want, e.Have)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncated }

// UnknownItemCategoryError reports an item_id that doesn't resolve to a
// known building category when strict mode is enabled.
type UnknownItemCategoryError struct {
	ItemID uint16
}

func (e *UnknownItemCategoryError) Error() string {
	return fmt.Sprintf("dspbp: unknown item category for item_id %d", e.ItemID)
}

func (e *UnknownItemCategoryError) Unwrap() error { return ErrUnknownItemCategory }

// IncompatibleReplacementError reports a replaceBuilding call that would
// move a building across categories.
type IncompatibleReplacementError struct {
	From uint16
	To   uint16
}

func (e *IncompatibleReplacementError) Error() string {
	return fmt.Sprintf("dspbp: cannot replace item %d with %d: incompatible building categories", e.From, e.To)
}

func (e *IncompatibleReplacementError) Unwrap() error { return ErrIncompatibleReplacement }

// UnknownUserIdentifierError reports a string identifier that failed to
// resolve to an enum value.
type UnknownUserIdentifierError struct {
	Text string
}

func (e *UnknownUserIdentifierError) Error() string {
	return fmt.Sprintf("dspbp: unknown identifier %q", e.Text)
}

func (e *UnknownUserIdentifierError) Unwrap() error { return ErrUnknownUserIdentifier }

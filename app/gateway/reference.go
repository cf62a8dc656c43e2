package gateway

import (
	"fmt"
	"strconv"
	"strings"
)

const referenceSeparator = "-"

// BuildReference composes the transaction reference sent to the gateway.
func BuildReference(paymentID uint64, suffix string) string {
	reference := strconv.FormatUint(paymentID, 10)
	suffix = strings.TrimSpace(suffix)
	if suffix == "" {
		return reference
	}
	return reference + referenceSeparator + suffix
}

// ResolveReference extracts the payment id from "<id>" or "<id>-<suffix>".
func ResolveReference(reference string) (uint64, error) {
	reference = strings.TrimSpace(reference)
	idPart, _, _ := strings.Cut(reference, referenceSeparator)
	if idPart == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidReference, reference)
	}

	id, err := strconv.ParseUint(idPart, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidReference, reference)
	}
	return id, nil
}

// Package common provides shared error definitions used throughout the
// pseudonym system.
//
// This is an internal package not intended for direct use by applications.
// It supports the implementation of the public packages.
package common

import (
	"errors"
)

// The two cryptographic error kinds the system surfaces to callers. They are
// deliberately coarse: BadProof conflates every verification-equation
// failure and challenge-recomputation mismatch so that a caller can never
// distinguish *why* a proof was rejected. Malformed received values are
// reported by package channel as a *channel.TransportError instead.
var (
	// ErrBadProof indicates a zero-knowledge proof (interactive or
	// non-interactive) failed verification, or a CA-mode precondition on a
	// claimed user key did not hold.
	ErrBadProof = errors.New("nym: proof verification failed")

	// ErrBadSignature indicates a nym-keyed signature failed verification.
	ErrBadSignature = errors.New("nym: signature verification failed")
)

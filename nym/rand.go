package nym

import "crypto/rand"

// randReader is the process-wide RNG used for blinding factors (γ) and
// fresh nym bases sampled directly in this package. crypto/rand.Reader is
// already safe for concurrent use.
var randReader = rand.Reader

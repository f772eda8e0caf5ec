package proof

import "crypto/rand"

// randReader is the process-wide RNG every prover in this package samples
// from. crypto/rand.Reader is already safe for concurrent use, so no
// wrapper or locking is needed, per spec §5.
var randReader = rand.Reader

package blind

import "crypto/rand"

// randReader is the process-wide RNG the verifier samples its blinding
// factors from. crypto/rand.Reader is already safe for concurrent use.
var randReader = rand.Reader

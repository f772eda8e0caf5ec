package common

// Wire labels, bit-exact per the protocol's wire format. Every send/receive
// across the channel package uses one of these as its label argument.
const (
	LabelATilde = "a~"
	LabelBTilde = "b~"
	LabelA      = "a"
	LabelB      = "b"
	LabelC      = "c"
	LabelY      = "y"
	LabelCapA   = "A"
	LabelCapB   = "B"
)

// NonInteractiveChallengeLabel domain-separates the Fiat-Shamir transcript
// used to derive the non-interactive challenge for the equality-of-discrete-
// logs proof (Π_NI). Bit-exact: changing this string changes every
// non-interactive proof's challenge.
const NonInteractiveChallengeLabel = "nym/0.1/dlog-eq-proof/non-interactive-challenge"

// Field commit labels, in the fixed order they are committed to the
// transcript when deriving a non-interactive challenge.
const (
	FieldLabelG1 = "g1"
	FieldLabelH1 = "h1"
	FieldLabelG2 = "g2"
	FieldLabelH2 = "h2"
	FieldLabelA  = "a"
	FieldLabelB  = "b"
)

// ChallengeExtractionLabel is the label under which the challenge scalar
// itself is extracted from the transcript.
const ChallengeExtractionLabel = "c"

// NymSignatureChallengeLabel domain-separates the Schnorr-variable-base
// signature scheme used to sign with a nym (spec §4.9).
const NymSignatureChallengeLabel = "nym/0.1/nym-signature/schnorr-challenge"

package ps

// Fiat-Shamir domain tags, one per statement kind the nizk engine proves
// or verifies. Distinct domains stop a proof produced for one statement
// from ever being mistaken for a valid proof of another, even if their
// transcripts happened to collide in shape.
const (
	DomainRequestID     = "el-passo/v1/nizk/request-id"
	DomainProveID       = "el-passo/v1/nizk/prove-id"
	DomainProveIDEscrow = "el-passo/v1/nizk/prove-id-escrow"
)

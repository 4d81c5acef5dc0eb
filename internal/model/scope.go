package model

// Scope carries per-request identity.
type Scope struct {
	RequestID string
	Token     string // bearer credential, attached verbatim to upstream mutations
}

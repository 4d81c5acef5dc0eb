package repository

// MutateEventOptions holds the parameters for a mutation on a single event.
type MutateEventOptions struct {
	ID     string
	Method string // forwarded verbatim as the upstream request method
	Token  string // bearer credential, not validated here
}

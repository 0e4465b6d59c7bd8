/*
Package registryconst contains constants shared by Registry contract and its
off-chain users.
*/
package registryconst

// Exception messages thrown by the Registry contract.
const (
	ErrUnauthorized   = "unauthorized"
	ErrInvalidAddress = "invalid address"
)

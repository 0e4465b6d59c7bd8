package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

// Contract versions are encoded as major*1_000_000 + minor*1_000 + patch.
const (
	major = 0
	minor = 1
	patch = 0

	// Oldest version the contracts can be updated from.
	minMajor = 0
	minMinor = 1
	minPatch = 0

	// Version is the current version of Registry and Ledger contracts.
	Version = major*1_000_000 + minor*1_000 + patch

	// PrevVersion is the oldest version which can be updated to Version.
	PrevVersion = minMajor*1_000_000 + minMinor*1_000 + minPatch

	// ErrVersionMismatch is thrown by CheckVersion if the deployed contract is
	// too old to be updated directly.
	ErrVersionMismatch = "previous version mismatch"

	// ErrAlreadyUpdated is thrown by CheckVersion if the deployed contract is
	// already of the current version.
	ErrAlreadyUpdated = "contract is already of the latest version"
)

// CheckVersion panics unless the contract can be updated from the given
// version to Version.
func CheckVersion(from int) {
	if from < PrevVersion {
		panic(ErrVersionMismatch + ": expected >=" + std.Itoa(PrevVersion, 10))
	}
	if from == Version {
		panic(ErrAlreadyUpdated + ": " + std.Itoa(Version, 10))
	}
}

// AppendVersion adds Version to the update arguments, see UpdateContract.
func AppendVersion(data any) []any {
	if data == nil {
		return []any{Version}
	}
	return append(data.([]any), Version)
}

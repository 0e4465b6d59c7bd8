package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
)

// UpdateContract replaces executing contract code with the given NEF and
// manifest. Current Version is appended to data, so the new code can check it
// in `_deploy`. Access must be checked by the caller.
func UpdateContract(nefFile, manifest []byte, data any) {
	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, AppendVersion(data))
}

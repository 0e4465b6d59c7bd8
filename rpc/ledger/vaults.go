package ledger

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Vault is a vault recorded in the Ledger contract.
type Vault struct {
	Hash     util.Uint160
	Approved bool
}

// Vaults returns recorded vaults including delisted ones. Iterator is
// expanded in the VM, so at most maxItems vaults are returned.
func (c *ContractReader) Vaults(maxItems int) ([]Vault, error) {
	items, err := c.ListVaultsExpanded(maxItems)
	if err != nil {
		return nil, err
	}

	res := make([]Vault, 0, len(items))
	for i := range items {
		v, err := vaultFromStackItem(items[i])
		if err != nil {
			return nil, fmt.Errorf("vault #%d: %w", i, err)
		}
		res = append(res, v)
	}

	return res, nil
}

func vaultFromStackItem(item stackitem.Item) (Vault, error) {
	kv, ok := item.Value().([]stackitem.Item)
	if !ok || len(kv) != 2 {
		return Vault{}, fmt.Errorf("not a key-value pair: %s", item.Type())
	}

	key, err := kv[0].TryBytes()
	if err != nil {
		return Vault{}, fmt.Errorf("key: %w", err)
	}

	h, err := util.Uint160DecodeBytesBE(key)
	if err != nil {
		return Vault{}, fmt.Errorf("key: %w", err)
	}

	approved, err := kv[1].TryBool()
	if err != nil {
		return Vault{}, fmt.Errorf("value: %w", err)
	}

	return Vault{Hash: h, Approved: approved}, nil
}

package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// GetBool returns flag stored by the key. Missing flags are false.
func GetBool(ctx storage.Context, key any) bool {
	data := storage.Get(ctx, key)
	if data == nil {
		return false
	}

	return data.(bool)
}

// GetInt returns integer stored by the key. Missing values are zero.
func GetInt(ctx storage.Context, key any) int {
	data := storage.Get(ctx, key)
	if data == nil {
		return 0
	}

	return data.(int)
}

// GetHash160 returns script hash stored by the key or nil.
func GetHash160(ctx storage.Context, key any) interop.Hash160 {
	data := storage.Get(ctx, key)
	if data == nil {
		return nil
	}

	return data.(interop.Hash160)
}

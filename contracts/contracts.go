/*
Package contracts reads compiled Pre-deposit contracts. Each contract is
expected in its own directory holding NEF and manifest files produced by the
NeoGo compiler:

	registry/contract.nef
	registry/manifest.json
	ledger/contract.nef
	ledger/manifest.json
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	registryDir = "registry"
	ledgerDir   = "ledger"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about compiled Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// Set groups all Pre-deposit contracts.
type Set struct {
	Registry Contract
	Ledger   Contract
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")
)

// Read reads compiled contracts from the given file system, e.g. os.DirFS
// pointing to the build output directory.
func Read(fsys fs.FS) (Set, error) {
	var (
		s   Set
		err error
	)

	s.Registry, err = readContractFromDir(fsys, registryDir)
	if err != nil {
		return s, fmt.Errorf("read contract %s: %w", registryDir, err)
	}

	s.Ledger, err = readContractFromDir(fsys, ledgerDir)
	if err != nil {
		return s, fmt.Errorf("read contract %s: %w", ledgerDir, err)
	}

	return s, nil
}

func readContractFromDir(fsys fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS paths are always slash-separated.
	fNEF, err := fsys.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := fsys.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}

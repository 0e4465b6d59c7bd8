/*
Package deploy brings Pre-deposit contracts to the Neo blockchain: deploys the
Registry and the Ledger and applies initial Ledger settings.
*/
package deploy

import (
	"context"
	"fmt"
	"strings"

	"github.com/Byzantine-Finance/predeposit-contract-ethereum/rpc/ledger"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions.
	actor.RPCActor

	// GetApplicationLog returns execution result of the persisted transaction.
	// Used to await transactions sent during deployment.
	GetApplicationLog(util.Uint256, *trigger.Type) (*result.ApplicationLog, error)

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// Prm groups all parameters of the deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy contracts to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// The account becomes initial owner of the Ledger.
	LocalAccount *wallet.Account

	Registry CommonDeployPrm
	Ledger   CommonDeployPrm

	Settings Settings
}

// Result groups addresses of the deployed contracts.
type Result struct {
	Registry util.Uint160
	Ledger   util.Uint160
}

// Deploy deploys Registry and Ledger contracts from the local account and
// configures the Ledger.
//
// Contract addresses are deterministic, so contracts already present on the
// chain are not deployed again. Initial Ledger settings are applied only
// to the freshly deployed Ledger. Summary of stages:
//  1. Registry deployment
//  2. Ledger deployment
//  3. Ledger allow-list, deposit tokens, vaults and permissionless flag
//  4. ownership transfer to the configured owner (if differs)
func Deploy(ctx context.Context, prm Prm) (Result, error) {
	var res Result

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return res, fmt.Errorf("init transaction sender from single local account: %w", err)
	}

	d := deployer{
		logger:     prm.Logger,
		blockchain: prm.Blockchain,
		actor:      act,
		management: management.New(act),
	}

	prm.Logger.Info("synchronizing Registry contract with the chain...")

	pausers := make([]any, len(prm.Settings.Pausers))
	for i := range prm.Settings.Pausers {
		pausers[i] = prm.Settings.Pausers[i]
	}

	res.Registry, _, err = d.sync(ctx, prm.Registry, []any{
		prm.Settings.Unpauser,
		pausers,
	})
	if err != nil {
		return res, fmt.Errorf("sync Registry contract with the chain: %w", err)
	}

	prm.Logger.Info("Registry contract successfully synchronized", zap.Stringer("address", res.Registry))

	paused := make([]any, len(prm.Settings.Paused))
	for i := range prm.Settings.Paused {
		paused[i] = prm.Settings.Paused[i]
	}

	prm.Logger.Info("synchronizing Ledger contract with the chain...")

	var deployed bool

	res.Ledger, deployed, err = d.sync(ctx, prm.Ledger, []any{
		res.Registry,
		act.Sender(),
		prm.Settings.Rebasing,
		prm.Settings.Wrapped,
		paused,
	})
	if err != nil {
		return res, fmt.Errorf("sync Ledger contract with the chain: %w", err)
	}

	prm.Logger.Info("Ledger contract successfully synchronized", zap.Stringer("address", res.Ledger))

	if !deployed {
		prm.Logger.Info("Ledger contract has already been deployed, skip initial settings")
		return res, nil
	}

	prm.Logger.Info("applying initial Ledger settings...")

	err = d.configureLedger(ctx, res.Ledger, prm.Settings)
	if err != nil {
		return res, fmt.Errorf("configure Ledger contract: %w", err)
	}

	prm.Logger.Info("initial Ledger settings successfully applied")

	return res, nil
}

type deployer struct {
	logger     *zap.Logger
	blockchain Blockchain
	actor      *actor.Actor
	management *management.Contract
}

// sync deploys the contract unless it is already on the chain. Returns the
// contract address and a flag telling whether it was deployed by this call.
func (d deployer) sync(ctx context.Context, prm CommonDeployPrm, data any) (util.Uint160, bool, error) {
	h := state.CreateContractHash(d.actor.Sender(), prm.NEF.Checksum, prm.Manifest.Name)

	_, err := d.blockchain.GetContractStateByHash(h)
	if err == nil {
		d.logger.Info("contract is already deployed", zap.String("name", prm.Manifest.Name),
			zap.Stringer("address", h))
		return h, false, nil
	}

	if !isErrContractNotFound(err) {
		return h, false, fmt.Errorf("get contract state by address: %w", err)
	}

	d.logger.Info("contract is missing on the chain, deploying...", zap.String("name", prm.Manifest.Name),
		zap.Stringer("address", h))

	err = d.await(ctx, "deploy", func() (util.Uint256, uint32, error) {
		return d.management.Deploy(&prm.NEF, &prm.Manifest, data)
	})
	if err != nil {
		return h, false, err
	}

	return h, true, nil
}

func (d deployer) configureLedger(ctx context.Context, h util.Uint160, s Settings) error {
	l := ledger.New(d.actor, h)

	if len(s.Depositors) > 0 {
		err := d.await(ctx, "setCanDeposit", func() (util.Uint256, uint32, error) {
			return l.SetCanDeposit(s.Depositors, true)
		})
		if err != nil {
			return err
		}
	}

	for _, asset := range s.DepositTokens {
		asset := asset
		err := d.await(ctx, "addDepositToken", func() (util.Uint256, uint32, error) {
			return l.AddDepositToken(asset)
		})
		if err != nil {
			return err
		}
	}

	if len(s.Vaults) > 0 {
		err := d.await(ctx, "recordVaults", func() (util.Uint256, uint32, error) {
			return l.RecordVaults(s.Vaults)
		})
		if err != nil {
			return err
		}
	}

	if s.Permissionless {
		err := d.await(ctx, "setPermissionlessDeposit", func() (util.Uint256, uint32, error) {
			return l.SetPermissionlessDeposit(true)
		})
		if err != nil {
			return err
		}
	}

	if !s.Owner.Equals(util.Uint160{}) && !s.Owner.Equals(d.actor.Sender()) {
		d.logger.Info("starting Ledger ownership transfer, new owner must accept it",
			zap.Stringer("owner", s.Owner))

		err := d.await(ctx, "transferOwnership", func() (util.Uint256, uint32, error) {
			return l.TransferOwnership(s.Owner)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// await sends transaction and waits for its successful execution.
func (d deployer) await(ctx context.Context, op string, send func() (util.Uint256, uint32, error)) error {
	err := ctx.Err()
	if err != nil {
		return fmt.Errorf("'%s' transaction: %w", op, err)
	}

	txHash, vub, err := send()
	if err != nil {
		return fmt.Errorf("send '%s' transaction: %w", op, err)
	}

	d.logger.Debug("transaction sent, waiting for execution...", zap.String("op", op),
		zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	res, err := d.actor.Wait(txHash, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for '%s' transaction %s: %w", op, txHash.StringLE(), err)
	}

	if res.VMState != vmstate.Halt {
		return fmt.Errorf("'%s' transaction %s failed: %s", op, txHash.StringLE(), res.FaultException)
	}

	return nil
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}

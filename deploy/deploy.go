package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/flightsurety/flightsurety-contract/common"
	"github.com/flightsurety/flightsurety-contract/rpc/suretyapp"
	"github.com/flightsurety/flightsurety-contract/rpc/suretydata"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// required for FlightSurety deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions.
	actor.RPCActor

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

// DataContractPrm groups deployment parameters of the FlightSurety Data
// contract.
type DataContractPrm struct {
	Common CommonDeployPrm
	// FirstAirline is registered on deployment.
	FirstAirline util.Uint160
}

// AppContractPrm groups deployment parameters of the FlightSurety App
// contract.
type AppContractPrm struct {
	Common CommonDeployPrm
}

// Prm groups all parameters of the FlightSurety deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// Its script hash is the owner of both contracts.
	LocalAccount *wallet.Account

	DataContract DataContractPrm
	AppContract  AppContractPrm
}

// Result contains addresses of the deployed contracts.
type Result struct {
	Data util.Uint160
	App  util.Uint160
}

// Deploy makes FlightSurety contracts ready to use on the given blockchain.
//
// Deploy is idempotent: contracts already present on the chain are updated
// only when their version is older than the local one, the App contract is
// authorized in the Data contract only if it is not yet. Summary of stages:
//  1. Data contract deployment (owner and first airline)
//  2. App contract deployment (owner and Data contract address)
//  3. App contract authorization in the Data contract
func Deploy(ctx context.Context, prm Prm) (Result, error) {
	var res Result

	if prm.LocalAccount == nil {
		return res, errors.New("missing local account")
	}
	if prm.DataContract.FirstAirline.Equals(util.Uint160{}) {
		return res, errors.New("missing first airline")
	}

	log := prm.Logger
	if log == nil {
		log = zap.NewNop()
	}

	localActor, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return res, fmt.Errorf("init transaction sender from single local account: %w", err)
	}

	owner := prm.LocalAccount.ScriptHash()

	log.Info("synchronizing Data contract with the chain...")

	res.Data, err = syncContract(ctx, syncContractPrm{
		logger:     log,
		blockchain: prm.Blockchain,
		actor:      localActor,
		common:     prm.DataContract.Common,
		deployArgs: []any{owner, prm.DataContract.FirstAirline},
		update: func(addr util.Uint160, script, manifest []byte) (*transaction.Transaction, error) {
			return suretydata.New(localActor, addr).UpdateUnsigned(script, manifest, nil)
		},
		version: func(addr util.Uint160) (int64, error) {
			v, err := suretydata.NewReader(localActor, addr).Version()
			if err != nil {
				return 0, err
			}
			return v.Int64(), nil
		},
	})
	if err != nil {
		return res, fmt.Errorf("sync Data contract with the chain: %w", err)
	}

	log.Info("Data contract successfully synchronized", zap.Stringer("address", res.Data))

	res.App, err = syncContract(ctx, syncContractPrm{
		logger:     log,
		blockchain: prm.Blockchain,
		actor:      localActor,
		common:     prm.AppContract.Common,
		deployArgs: []any{owner, res.Data},
		update: func(addr util.Uint160, script, manifest []byte) (*transaction.Transaction, error) {
			return suretyapp.New(localActor, addr).UpdateUnsigned(script, manifest, nil)
		},
		version: func(addr util.Uint160) (int64, error) {
			v, err := suretyapp.NewReader(localActor, addr).Version()
			if err != nil {
				return 0, err
			}
			return v.Int64(), nil
		},
	})
	if err != nil {
		return res, fmt.Errorf("sync App contract with the chain: %w", err)
	}

	log.Info("App contract successfully synchronized", zap.Stringer("address", res.App))

	data := suretydata.New(localActor, res.Data)

	authorized, err := data.IsAuthorizedCaller(res.App)
	if err != nil {
		return res, fmt.Errorf("check App contract authorization: %w", err)
	}
	if authorized {
		log.Info("App contract is already authorized in Data contract")
		return res, nil
	}

	tx, err := data.AuthorizeCallerUnsigned(res.App)
	if err != nil {
		return res, fmt.Errorf("make App contract authorization transaction: %w", err)
	}

	err = signSendAndWait(ctx, localActor, tx)
	if err != nil {
		return res, fmt.Errorf("authorize App contract in Data contract: %w", err)
	}

	log.Info("App contract successfully authorized in Data contract")

	return res, nil
}

type syncContractPrm struct {
	logger     *zap.Logger
	blockchain Blockchain
	actor      *actor.Actor
	common     CommonDeployPrm
	deployArgs []any

	// update makes unsigned 'update' transaction of the deployed contract.
	update func(addr util.Uint160, script, manifest []byte) (*transaction.Transaction, error)
	// version reads version of the deployed contract.
	version func(util.Uint160) (int64, error)
}

// syncContract deploys the contract if it is missing on the chain or updates
// it if the deployed version is older than the local one.
func syncContract(ctx context.Context, prm syncContractPrm) (util.Uint160, error) {
	addr := state.CreateContractHash(prm.actor.Sender(), prm.common.NEF.Checksum, prm.common.Manifest.Name)
	l := prm.logger.With(zap.String("contract", prm.common.Manifest.Name), zap.Stringer("address", addr))

	_, err := prm.blockchain.GetContractStateByHash(addr)
	if err != nil {
		if !isErrContractNotFound(err) {
			return addr, fmt.Errorf("get contract state: %w", err)
		}

		l.Info("contract is missing on the chain, deploying...")

		tx, err := management.New(prm.actor).DeployUnsigned(&prm.common.NEF, &prm.common.Manifest, prm.deployArgs)
		if err != nil {
			return addr, fmt.Errorf("make deployment transaction: %w", err)
		}

		err = signSendAndWait(ctx, prm.actor, tx)
		if err != nil {
			return addr, fmt.Errorf("deploy contract: %w", err)
		}

		return addr, nil
	}

	onChainVersion, err := prm.version(addr)
	if err != nil {
		return addr, fmt.Errorf("get version of the deployed contract: %w", err)
	}

	if onChainVersion >= common.Version {
		l.Info("contract is already deployed and up-to-date", zap.Int64("version", onChainVersion))
		return addr, nil
	}

	l.Info("contract is outdated, updating...",
		zap.Int64("from", onChainVersion), zap.Int("to", common.Version))

	script, err := prm.common.NEF.Bytes()
	if err != nil {
		return addr, fmt.Errorf("encode NEF: %w", err)
	}

	rawManifest, err := json.Marshal(prm.common.Manifest)
	if err != nil {
		return addr, fmt.Errorf("encode manifest: %w", err)
	}

	tx, err := prm.update(addr, script, rawManifest)
	if err != nil {
		return addr, fmt.Errorf("make update transaction: %w", err)
	}

	err = signSendAndWait(ctx, prm.actor, tx)
	if err != nil {
		return addr, fmt.Errorf("update contract: %w", err)
	}

	return addr, nil
}

func signSendAndWait(ctx context.Context, a *actor.Actor, tx *transaction.Transaction) error {
	err := a.Sign(tx)
	if err != nil {
		return fmt.Errorf("sign transaction: %w", err)
	}

	h, vub, err := a.Send(tx)
	if err != nil {
		return fmt.Errorf("send transaction: %w", err)
	}

	res, err := a.WaitAny(ctx, vub, h)
	if err != nil {
		return fmt.Errorf("wait for transaction %s: %w", h.StringLE(), err)
	}

	return checkExecution(res)
}

func checkExecution(res *state.AppExecResult) error {
	if res.VMState != vmstate.Halt {
		return fmt.Errorf("transaction %s failed: %s", res.Container.StringLE(), res.FaultException)
	}
	return nil
}

func isErrContractNotFound(err error) bool {
	return errors.Is(err, neorpc.ErrUnknownContract) || strings.Contains(err.Error(), "Unknown contract")
}

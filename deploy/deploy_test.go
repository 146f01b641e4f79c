package deploy

import (
	"context"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/flightsurety/flightsurety-contract/contracts"
	"github.com/flightsurety/flightsurety-contract/rpc/suretyapp"
	"github.com/flightsurety/flightsurety-contract/rpc/suretydata"
	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/config/netmode"
	"github.com/nspcc-dev/neo-go/pkg/consensus"
	"github.com/nspcc-dev/neo-go/pkg/core"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/network"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/services/rpcsrv"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestCheckExecution(t *testing.T) {
	var res state.AppExecResult

	res.VMState = vmstate.Fault
	res.FaultException = "some exception"
	err := checkExecution(&res)
	require.ErrorContains(t, err, "some exception")

	res.VMState = vmstate.Halt
	require.NoError(t, checkExecution(&res))
}

func TestIsErrContractNotFound(t *testing.T) {
	require.True(t, isErrContractNotFound(fmt.Errorf("RPC error: Unknown contract")))
	require.False(t, isErrContractNotFound(fmt.Errorf("connection refused")))
}

func TestDeployValidation(t *testing.T) {
	_, err := Deploy(context.Background(), Prm{})
	require.Error(t, err)

	acc, err := wallet.NewAccount()
	require.NoError(t, err)

	_, err = Deploy(context.Background(), Prm{LocalAccount: acc})
	require.ErrorContains(t, err, "first airline")
}

func TestContractAutodeploy(t *testing.T) {
	validatorAcc, err := wallet.NewAccount()
	require.NoError(t, err)

	// genesis funds belong to the validators multi-signature account
	var validatorMulti = new(wallet.Account)
	*validatorMulti = *validatorAcc
	err = validatorMulti.ConvertMultisig(1, []*keys.PublicKey{validatorAcc.PublicKey()})
	require.NoError(t, err)

	var (
		tmpDir     = t.TempDir()
		walletPath = filepath.Join(tmpDir, "wallet.json")
		wlt        = wallet.NewInMemoryWallet()
	)

	err = validatorAcc.Encrypt("", keys.NEP2ScryptParams())
	require.NoError(t, err)
	wlt.Accounts = append(wlt.Accounts, validatorAcc)
	wlt.SetPath(walletPath)
	require.NoError(t, wlt.Save())

	var (
		cfg = config.Config{
			ApplicationConfiguration: config.ApplicationConfiguration{
				RPC: config.RPC{
					BasicService: config.BasicService{
						Enabled: true,
					},
					MaxGasInvoke: fixedn.Fixed8FromInt64(50),
				},
				Consensus: config.Consensus{
					Enabled: true,
					UnlockWallet: config.Wallet{
						Path:     walletPath,
						Password: "",
					},
				},
			},
			ProtocolConfiguration: config.ProtocolConfiguration{
				Magic:           netmode.UnitTestNet,
				MaxTimePerBlock: 20 * time.Second,
				Genesis: config.Genesis{
					MaxTraceableBlocks:          1000,
					MaxValidUntilBlockIncrement: 1000 / 2,
					TimePerBlock:                50 * time.Millisecond,
				},
				StandbyCommittee:   []string{hex.EncodeToString(validatorAcc.PublicKey().Bytes())},
				ValidatorsCount:    1,
				VerifyTransactions: true,
			},
		}
		logger = zaptest.NewLogger(t)
		store  = storage.NewMemoryStore()
	)

	bc, err := core.NewBlockchain(store, config.Blockchain{ProtocolConfiguration: cfg.ProtocolConfiguration}, logger)
	require.NoError(t, err)
	go bc.Run()
	t.Cleanup(bc.Close)

	serverConfig, err := network.NewServerConfig(config.Config{ProtocolConfiguration: cfg.ProtocolConfiguration})
	require.NoError(t, err)
	serverConfig.UserAgent = fmt.Sprintf(config.UserAgentFormat, "something")
	netSrv, err := network.NewServer(serverConfig, bc, bc.GetStateSyncModule(), logger)
	require.NoError(t, err)
	cons, err := consensus.NewService(consensus.Config{
		Logger:                logger,
		Broadcast:             netSrv.BroadcastExtensible,
		Chain:                 bc,
		BlockQueue:            netSrv.GetBlockQueue(),
		ProtocolConfiguration: cfg.ProtocolConfiguration,
		RequestTx:             netSrv.RequestTx,
		StopTxFlow:            netSrv.StopTxFlow,
		Wallet:                cfg.ApplicationConfiguration.Consensus.UnlockWallet,
	})
	require.NoError(t, err)
	netSrv.AddConsensusService(cons, cons.OnPayload, cons.OnTransaction)
	netSrv.Start()

	errCh := make(chan error, 2)
	rpcServer := rpcsrv.New(bc, cfg.ApplicationConfiguration.RPC, netSrv, nil, logger, errCh)
	rpcServer.Start()
	t.Cleanup(rpcServer.Shutdown)

	rpcClient, err := rpcclient.NewInternal(context.TODO(), rpcServer.RegisterLocal)
	require.NoError(t, err)
	require.NoError(t, rpcClient.Init())

	firstAirline := util.Uint160{1, 2, 3}
	deployPrm := Prm{
		Blockchain:   rpcClient,
		LocalAccount: validatorMulti,
		Logger:       logger,
		DataContract: DataContractPrm{FirstAirline: firstAirline},
	}
	compileContracts(t, validatorMulti.ScriptHash(), &deployPrm)

	ctx, cancel := context.WithTimeout(context.TODO(), 2*time.Minute)
	res, err := Deploy(ctx, deployPrm)
	cancel()
	require.NoError(t, err)

	inv := invoker.New(rpcClient, nil)
	data := suretydata.NewReader(inv, res.Data)
	app := suretyapp.NewReader(inv, res.App)

	authorized, err := data.IsAuthorizedCaller(res.App)
	require.NoError(t, err)
	require.True(t, authorized)

	isAirline, err := data.IsAirline(firstAirline)
	require.NoError(t, err)
	require.True(t, isAirline)

	dataAddr, err := app.DataContract()
	require.NoError(t, err)
	require.Equal(t, res.Data, dataAddr)

	owner, err := app.Owner()
	require.NoError(t, err)
	require.Equal(t, validatorMulti.ScriptHash(), owner)

	t.Run("repeated", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.TODO(), time.Minute)
		again, err := Deploy(ctx, deployPrm)
		cancel()
		require.NoError(t, err)
		require.Equal(t, res, again)
	})
}

func compileContracts(t *testing.T, sender util.Uint160, prm *Prm) {
	for _, c := range []struct {
		dir string
		dst *CommonDeployPrm
	}{
		{contracts.DataDir, &prm.DataContract.Common},
		{contracts.AppDir, &prm.AppContract.Common},
	} {
		path := filepath.Join("..", "contracts", c.dir)
		ctr := neotest.CompileFile(t, sender, path, filepath.Join(path, "config.yml"))
		c.dst.NEF = *ctr.NEF
		c.dst.Manifest = *ctr.Manifest
	}
}

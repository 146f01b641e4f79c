package client_test

import (
	"context"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/flightsurety/flightsurety-contract/client"
	"github.com/flightsurety/flightsurety-contract/common"
	"github.com/flightsurety/flightsurety-contract/contracts"
	"github.com/flightsurety/flightsurety-contract/deploy"
	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/config/netmode"
	"github.com/nspcc-dev/neo-go/pkg/consensus"
	"github.com/nspcc-dev/neo-go/pkg/core"
	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/network"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/services/rpcsrv"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// newTestChain starts a single validator network and returns RPC client
// connected to it and the validators account holding genesis funds.
func newTestChain(t *testing.T) (*rpcclient.Internal, *wallet.Account) {
	validatorAcc, err := wallet.NewAccount()
	require.NoError(t, err)

	var validatorMulti = new(wallet.Account)
	*validatorMulti = *validatorAcc
	err = validatorMulti.ConvertMultisig(1, []*keys.PublicKey{validatorAcc.PublicKey()})
	require.NoError(t, err)

	var (
		walletPath = filepath.Join(t.TempDir(), "wallet.json")
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
	)

	bc, err := core.NewBlockchain(storage.NewMemoryStore(), config.Blockchain{ProtocolConfiguration: cfg.ProtocolConfiguration}, logger)
	require.NoError(t, err)
	go bc.Run()
	t.Cleanup(bc.Close)

	serverConfig, err := network.NewServerConfig(config.Config{ProtocolConfiguration: cfg.ProtocolConfiguration})
	require.NoError(t, err)
	serverConfig.UserAgent = fmt.Sprintf(config.UserAgentFormat, "client-test")
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

	return rpcClient, validatorMulti
}

func deployContracts(t *testing.T, rpcClient *rpcclient.Internal, owner *wallet.Account) deploy.Result {
	prm := deploy.Prm{
		Blockchain:   rpcClient,
		LocalAccount: owner,
		Logger:       zaptest.NewLogger(t),
		DataContract: deploy.DataContractPrm{FirstAirline: owner.ScriptHash()},
	}

	for _, c := range []struct {
		dir string
		dst *deploy.CommonDeployPrm
	}{
		{contracts.DataDir, &prm.DataContract.Common},
		{contracts.AppDir, &prm.AppContract.Common},
	} {
		path := filepath.Join("..", "contracts", c.dir)
		ctr := neotest.CompileFile(t, owner.ScriptHash(), path, filepath.Join(path, "config.yml"))
		c.dst.NEF = *ctr.NEF
		c.dst.Manifest = *ctr.Manifest
	}

	ctx, cancel := context.WithTimeout(context.TODO(), 2*time.Minute)
	defer cancel()

	res, err := deploy.Deploy(ctx, prm)
	require.NoError(t, err)
	return res
}

func TestSigner(t *testing.T) {
	acc, err := wallet.NewAccount()
	require.NoError(t, err)

	s := client.Signer(acc)
	require.Equal(t, acc.ScriptHash(), s.Account)
	require.NotZero(t, s.Scopes&transaction.CalledByEntry)
	require.NotZero(t, s.Scopes&transaction.CustomContracts)
	require.Equal(t, []util.Uint160{gas.Hash}, s.AllowedContracts)
}

func TestClientPayments(t *testing.T) {
	rpcClient, acc := newTestChain(t)
	res := deployContracts(t, rpcClient, acc)

	newClient := func(t *testing.T, act client.Actor) *client.Client {
		cl, err := client.New(client.Prm{
			Logger: zaptest.NewLogger(t),
			Actor:  act,
			App:    res.App,
			Data:   res.Data,
		})
		require.NoError(t, err)
		return cl
	}

	gasReader := gas.NewReader(invoker.New(rpcClient, nil))
	balance := func(t *testing.T, h util.Uint160) int64 {
		b, err := gasReader.BalanceOf(h)
		require.NoError(t, err)
		return b.Int64()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	t.Run("entry scope only", func(t *testing.T) {
		act, err := actor.NewSimple(rpcClient, acc)
		require.NoError(t, err)

		_, err = newClient(t, act).Fund(ctx, "10")
		var fe *client.FaultError
		require.ErrorAs(t, err, &fe)
		require.Contains(t, fe.Exception, "failed to transfer funds")
	})

	act, err := client.NewActor(rpcClient, acc)
	require.NoError(t, err)
	cl := newClient(t, act)

	_, err = cl.Fund(ctx, "10")
	require.NoError(t, err)
	require.EqualValues(t, common.MinAirlineFund, balance(t, res.Data))

	a, err := cl.Airline(acc.ScriptHash())
	require.NoError(t, err)
	require.True(t, a.FeePaid)
	require.EqualValues(t, common.MinAirlineFund, a.Fund.Int64())

	now := time.Now().Unix()
	ref := client.FlightRef{Code: "ND1309", Destination: "LIS", Landing: now + 3600}
	_, _, err = cl.RegisterFlight(ctx, client.FlightPrm{
		Code:        ref.Code,
		Origin:      "OPO",
		Destination: ref.Destination,
		Departure:   now,
		Landing:     ref.Landing,
		TicketCost:  "0.5",
	})
	require.NoError(t, err)

	_, err = cl.Book(ctx, client.BookPrm{Flight: ref, Insurance: "1"})
	require.NoError(t, err)
	require.EqualValues(t, common.MinAirlineFund+common.MaxInsurance+common.MaxInsurance/2, balance(t, res.Data))

	ticket, err := cl.Ticket(ref, acc.ScriptHash())
	require.NoError(t, err)
	require.True(t, ticket.Purchased)
	require.EqualValues(t, common.MaxInsurance, ticket.Insurance.Int64())

	_, err = cl.RegisterOracle(ctx)
	require.NoError(t, err)
	require.EqualValues(t, common.OracleRegistrationFee, balance(t, res.App))

	indexes, err := cl.OracleIndexes(acc.ScriptHash())
	require.NoError(t, err)
	require.Len(t, indexes, common.OracleIndexCount)
}

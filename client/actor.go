package client

import (
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
)

// NewActor returns an actor signing transactions by the account for Client.
//
// Besides the entry scope the witness is valid inside the native GAS
// contract: funds, ticket payments and oracle fees are charged by the
// contracts calling GAS transfer on behalf of the account.
func NewActor(ra actor.RPCActor, acc *wallet.Account) (*actor.Actor, error) {
	return actor.New(ra, []actor.SignerAccount{{
		Signer:  Signer(acc),
		Account: acc,
	}})
}

// Signer returns the transaction signer of the account used by NewActor.
func Signer(acc *wallet.Account) transaction.Signer {
	return transaction.Signer{
		Account:          acc.ScriptHash(),
		Scopes:           transaction.CalledByEntry | transaction.CustomContracts,
		AllowedContracts: []util.Uint160{gas.Hash},
	}
}

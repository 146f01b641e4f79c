package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// ballotPrefix is reserved in the storage of every contract using ballots.
const ballotPrefix = 'v'

// Vote adds a vote of the voter for the decision with specific 'id' and
// returns the amount of unique voters for that decision. It panics with
// ErrAlreadyEndorsed if the voter has already voted.
func Vote(ctx storage.Context, id, voter []byte) int {
	key := ballotKey(id)
	b := getBallot(ctx, id)

	for i := range b.Voters {
		if BytesEqual(b.Voters[i], voter) {
			panic(ErrAlreadyEndorsed)
		}
	}

	b.Voters = append(b.Voters, voter)
	SetSerialized(ctx, key, b)

	return len(b.Voters)
}

// Votes returns the amount of unique voters for the decision with specific 'id'.
func Votes(ctx storage.Context, id []byte) int {
	return len(getBallot(ctx, id).Voters)
}

// RemoveVotes clears ballot of the decision that has been accepted.
func RemoveVotes(ctx storage.Context, id []byte) {
	storage.Delete(ctx, ballotKey(id))
}

// QuorumReached checks whether votes make up at least a half of voters.
func QuorumReached(votes, voters int) bool {
	return votes*2 >= voters
}

// VotesNeeded returns the amount of votes still required for the quorum.
func VotesNeeded(votes, voters int) int {
	need := (voters+1)/2 - votes
	if need < 0 {
		return 0
	}
	return need
}

// BytesEqual compares two slices of bytes by wrapping them into strings,
// which is necessary with new util.Equals interop behaviour, see neo-go#1176.
func BytesEqual(a []byte, b []byte) bool {
	return util.Equals(string(a), string(b))
}

func ballotKey(id []byte) []byte {
	return append([]byte{ballotPrefix}, id...)
}

func getBallot(ctx storage.Context, id []byte) Ballot {
	data := storage.Get(ctx, ballotKey(id))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Ballot)
	}

	return Ballot{ID: id, Voters: [][]byte{}}
}

package common

// Ballot is a pending multi-party decision.
type Ballot struct {
	// ID of the voting decision.
	ID []byte

	// Addresses of airlines that already voted.
	Voters [][]byte
}

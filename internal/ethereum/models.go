package ethereum

// Confirmation is a mined, successful transaction as seen by the node.
type Confirmation struct {
	TransactionHash string
	BlockHash       string
	BlockNumber     uint64
	From            string
	To              *string
	Value           string
}

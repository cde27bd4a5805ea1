package sdk

// Address is an opaque account or contract identifier as handed out by the host
// (hive:alice, contract:xyz, did:key:..., or a chain-native strkey).
type Address string

// String returns the literal representation of the address.
// Example payload: sdk.Address("hive:alice").String()
func (a Address) String() string {
	return string(a)
}

// Sender is the transaction signer block of the env blob.
type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Env mirrors the keys the host exposes through system.get_env.
type Env struct {
	ContractId  string `json:"contract.id"`
	TxId        string `json:"tx.id"`
	Index       int64  `json:"tx.index"`
	OpIndex     int64  `json:"tx.op_index"`
	BlockId     string `json:"block.id"`
	BlockHeight uint64 `json:"block.height"`
	Timestamp   string `json:"block.timestamp"`
	Sender      Sender `json:"-"`
}

package models

// TransactionRecord is one on-chain event in Etherscan list format.
// Numeric fields arrive as strings (decimal or 0x-hex) and are parsed
// leniently downstream; malformed values coerce to zero.
type TransactionRecord struct {
	Hash        string  `json:"hash"`
	From        string  `json:"from"`
	To          string  `json:"to"`
	Value       string  `json:"value"`
	TimeStamp   string  `json:"timeStamp"`
	BlockNumber string  `json:"blockNumber"`
	GasPrice    string  `json:"gasPrice"`
	Input       string  `json:"input"`
	Logs        []TxLog `json:"logs,omitempty"`
	IsError     string  `json:"isError,omitempty"`
}

// TxLog is an optional event log attached to a transaction.
type TxLog struct {
	Address string   `json:"address"`
	Topics  []string `json:"topics"`
	Data    string   `json:"data"`
}

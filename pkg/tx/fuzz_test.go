package tx

import (
	"encoding/json"
	"testing"
)

// FuzzTxUnmarshal checks that arbitrary JSON input does not panic when
// unmarshaled into a Transaction and run through validation.
func FuzzTxUnmarshal(f *testing.F) {
	f.Add([]byte(`{"id":"abcd1234","output":{"alice":50},"input":{"address":"*--official-mining-reward--*"}}`))
	f.Add([]byte(`{}`))
	f.Add([]byte(`null`))
	f.Add([]byte(`{"output":null,"input":{}}`))
	f.Add([]byte(`{"id":"","output":{},"input":{"amount":0,"address":"","public_key":""}}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		var txn Transaction
		if err := json.Unmarshal(data, &txn); err != nil {
			return
		}
		txn.IsReward()
		_ = IsValidTransaction(&txn) // may fail but must not panic
	})
}

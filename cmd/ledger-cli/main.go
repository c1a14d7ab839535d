// ledger-cli is a command-line client for interacting with a ledgerd node's
// HTTP control surface.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: ledger-cli [--node <addr>] <command> [args]

Global flags:
  --node <addr>    Node HTTP address (default: 127.0.0.1:3000)

Commands:
  info                         Show this node's wallet address and balance
  chain                        Show the full chain as JSON
  range <start> <end>          Show a reversed slice of the chain
  mine                         Mine the next block
  transact <recipient> <amt>   Send amt to recipient from this node's wallet
  mempool                      Show pending transactions
  addresses                    Show every address that has ever received funds
`)
}

func main() {
	nodeAddr := "127.0.0.1:3000"

	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--node" && len(args) > 1:
			nodeAddr = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--node="):
			nodeAddr = args[0][len("--node="):]
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	c := &client{base: "http://" + nodeAddr}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "info":
		cmdInfo(c)
	case "chain":
		cmdChain(c)
	case "range":
		cmdRange(c, rest)
	case "mine":
		cmdMine(c)
	case "transact":
		cmdTransact(c, rest)
	case "mempool":
		cmdMempool(c)
	case "addresses":
		cmdAddresses(c)
	default:
		usage()
		os.Exit(1)
	}
}

type client struct {
	base string
	http http.Client
}

func (c *client) get(path string) ([]byte, error) {
	c.http.Timeout = 35 * time.Second // mining can take a few seconds
	resp, err := c.http.Get(c.base + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return body, nil
}

func (c *client) post(path string, payload interface{}) ([]byte, error) {
	c.http.Timeout = 10 * time.Second
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Post(c.base+path, "application/json", bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return body, nil
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func printJSON(raw []byte) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(string(pretty))
}

func cmdInfo(c *client) {
	body, err := c.get("/wallet/info")
	if err != nil {
		fatal("wallet/info: %v", err)
	}
	printJSON(body)
}

func cmdChain(c *client) {
	body, err := c.get("/blockchain")
	if err != nil {
		fatal("blockchain: %v", err)
	}
	printJSON(body)
}

func cmdRange(c *client, args []string) {
	if len(args) != 2 {
		fatal("Usage: ledger-cli range <start> <end>")
	}
	if _, err := strconv.Atoi(args[0]); err != nil {
		fatal("start must be an integer")
	}
	if _, err := strconv.Atoi(args[1]); err != nil {
		fatal("end must be an integer")
	}
	body, err := c.get(fmt.Sprintf("/blockchain/range?start=%s&end=%s", args[0], args[1]))
	if err != nil {
		fatal("blockchain/range: %v", err)
	}
	printJSON(body)
}

func cmdMine(c *client) {
	body, err := c.get("/blockchain/mine")
	if err != nil {
		fatal("blockchain/mine: %v", err)
	}
	printJSON(body)
}

func cmdTransact(c *client, args []string) {
	if len(args) != 2 {
		fatal("Usage: ledger-cli transact <recipient> <amount>")
	}
	amount, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		fatal("amount must be an integer")
	}
	body, err := c.post("/wallet/transact", map[string]interface{}{
		"recipient": args[0],
		"amount":    amount,
	})
	if err != nil {
		fatal("wallet/transact: %v", err)
	}
	printJSON(body)
}

func cmdMempool(c *client) {
	body, err := c.get("/transactions")
	if err != nil {
		fatal("transactions: %v", err)
	}
	printJSON(body)
}

func cmdAddresses(c *client) {
	body, err := c.get("/known-addresses")
	if err != nil {
		fatal("known-addresses: %v", err)
	}
	printJSON(body)
}

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type accountInfo struct {
	Account string `json:"account"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
	Nonce   uint64 `json:"nonce"`
}

type accounts struct {
	LatestBlock string        `json:"latest_block"`
	Uncommitted int           `json:"uncommitted"`
	Accounts    []accountInfo `json:"accounts"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var client = http.Client{Timeout: 10 * time.Second}

func queryAccount(node string, account string) (accountInfo, error) {
	var resp accounts
	if err := do(http.MethodGet, fmt.Sprintf("%s/v1/accounts/list/%s", node, account), nil, &resp); err != nil {
		return accountInfo{}, err
	}

	if len(resp.Accounts) == 0 {
		return accountInfo{}, fmt.Errorf("account %s not returned", account)
	}

	return resp.Accounts[0], nil
}

func submitTx(node string, rawHex string) (string, error) {
	req := struct {
		RawTx string `json:"raw_tx"`
	}{
		RawTx: rawHex,
	}

	var resp struct {
		Hash string `json:"hash"`
	}
	if err := do(http.MethodPost, fmt.Sprintf("%s/v1/tx/submit", node), req, &resp); err != nil {
		return "", err
	}

	return resp.Hash, nil
}

func queryBlock(node string, hash string) (json.RawMessage, error) {
	var blk json.RawMessage
	if err := do(http.MethodGet, fmt.Sprintf("%s/v1/blocks/hash/%s", node, hash), nil, &blk); err != nil {
		return nil, err
	}

	return blk, nil
}

func do(method string, endpoint string, body any, v any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, endpoint, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var er errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err != nil || er.Error == "" {
			return fmt.Errorf("node returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("node returned status %d: %s", resp.StatusCode, er.Error)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

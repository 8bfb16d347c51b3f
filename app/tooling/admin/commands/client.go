// Package commands contains the functionality for the set of admin commands.
package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client calls the private api of a node.
type Client struct {
	host string
	http http.Client
}

// NewClient constructs a client for the node's private host.
func NewClient(host string) *Client {
	return &Client{
		host: host,
		http: http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) post(path string, body any, v any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	resp, err := c.http.Post(c.host+path, "application/json", &buf)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var er struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&er)
		return fmt.Errorf("node returned status %d: %s", resp.StatusCode, er.Error)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

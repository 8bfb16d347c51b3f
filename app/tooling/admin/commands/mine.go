package commands

import "fmt"

// Mine asks the node to run a mining cycle now.
func Mine(c *Client) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.post("/v1/node/mining/signal", nil, &resp); err != nil {
		return err
	}

	fmt.Println(resp.Status)
	return nil
}

package highrise

import "context"

// Me returns the user the API key belongs to.
func (c *Client) Me(ctx context.Context) (*User, error) {
	resp, err := c.getEntity(ctx, "me")
	if err != nil {
		return nil, err
	}
	return userSchema.decode(resp.Record)
}

package highrise

import (
	"context"
	"net/url"
)

const peopleEndpoint = "people"

// GetPeople returns every person visible to the account.
func (c *Client) GetPeople(ctx context.Context) ([]*Person, error) {
	return c.listPeople(ctx, nil)
}

// GetPeopleSince returns people created or updated after since
// (YYYYMMDDHHMMSS, UTC). The value is validated before any request is made.
func (c *Client) GetPeopleSince(ctx context.Context, since string) ([]*Person, error) {
	if err := ValidateSince(since); err != nil {
		return nil, err
	}
	return c.listPeople(ctx, url.Values{"since": {since}})
}

func (c *Client) listPeople(ctx context.Context, params url.Values) ([]*Person, error) {
	nodes, err := c.getPaged(ctx, peopleEndpoint, params)
	if err != nil {
		return nil, err
	}
	return personSchema.decodeAll(nodes)
}

// GetPerson fetches a single person by ID.
func (c *Client) GetPerson(ctx context.Context, id int64) (*Person, error) {
	resp, err := c.getEntity(ctx, entityPath(peopleEndpoint, id))
	if err != nil {
		return nil, err
	}
	return personSchema.decode(resp.Record)
}

// CreatePerson creates p and returns the person as stored by Highrise.
func (c *Client) CreatePerson(ctx context.Context, p *Person) (*Person, error) {
	return create(ctx, c, peopleEndpoint, personSchema, p)
}

// UpdatePerson saves p and returns the reloaded person.
func (c *Client) UpdatePerson(ctx context.Context, p *Person) (*Person, error) {
	return update(ctx, c, peopleEndpoint, personSchema, p, p.ID)
}

// DeletePerson removes the person with the given ID.
func (c *Client) DeletePerson(ctx context.Context, id int64) error {
	return c.remove(ctx, entityPath(peopleEndpoint, id))
}

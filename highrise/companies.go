package highrise

import (
	"context"
	"net/url"
)

const companiesEndpoint = "companies"

// GetCompanies returns every company visible to the account.
func (c *Client) GetCompanies(ctx context.Context) ([]*Company, error) {
	return c.listCompanies(ctx, nil)
}

// GetCompaniesSince returns companies created or updated after since.
func (c *Client) GetCompaniesSince(ctx context.Context, since string) ([]*Company, error) {
	if err := ValidateSince(since); err != nil {
		return nil, err
	}
	return c.listCompanies(ctx, url.Values{"since": {since}})
}

func (c *Client) listCompanies(ctx context.Context, params url.Values) ([]*Company, error) {
	nodes, err := c.getPaged(ctx, companiesEndpoint, params)
	if err != nil {
		return nil, err
	}
	return companySchema.decodeAll(nodes)
}

// GetCompany fetches a single company by ID.
func (c *Client) GetCompany(ctx context.Context, id int64) (*Company, error) {
	resp, err := c.getEntity(ctx, entityPath(companiesEndpoint, id))
	if err != nil {
		return nil, err
	}
	return companySchema.decode(resp.Record)
}

// CreateCompany creates company and returns the company as stored by Highrise.
func (c *Client) CreateCompany(ctx context.Context, company *Company) (*Company, error) {
	return create(ctx, c, companiesEndpoint, companySchema, company)
}

// UpdateCompany saves company and returns the reloaded company.
func (c *Client) UpdateCompany(ctx context.Context, company *Company) (*Company, error) {
	return update(ctx, c, companiesEndpoint, companySchema, company, company.ID)
}

// DeleteCompany removes the company with the given ID.
func (c *Client) DeleteCompany(ctx context.Context, id int64) error {
	return c.remove(ctx, entityPath(companiesEndpoint, id))
}

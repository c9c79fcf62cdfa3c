package highrise

import "context"

// API is the set of Highrise operations exposed by Client.
type API interface {
	TestConnection(ctx context.Context) error
	Me(ctx context.Context) (*User, error)

	GetPeople(ctx context.Context) ([]*Person, error)
	GetPeopleSince(ctx context.Context, since string) ([]*Person, error)
	GetPerson(ctx context.Context, id int64) (*Person, error)
	CreatePerson(ctx context.Context, p *Person) (*Person, error)
	UpdatePerson(ctx context.Context, p *Person) (*Person, error)
	DeletePerson(ctx context.Context, id int64) error

	GetCompanies(ctx context.Context) ([]*Company, error)
	GetCompaniesSince(ctx context.Context, since string) ([]*Company, error)
	GetCompany(ctx context.Context, id int64) (*Company, error)
	CreateCompany(ctx context.Context, c *Company) (*Company, error)
	UpdateCompany(ctx context.Context, c *Company) (*Company, error)
	DeleteCompany(ctx context.Context, id int64) error

	GetCategories(ctx context.Context, kind CategoryKind) ([]CategoryEntity, error)
	GetTaskCategories(ctx context.Context) ([]*TaskCategory, error)
	GetDealCategories(ctx context.Context) ([]*DealCategory, error)
}

var _ API = (*Client)(nil)

package filter

import (
	"time"

	"github.com/s0up4200/highton/highrise"
)

// Subject kinds
const (
	KindPerson  = "person"
	KindCompany = "company"
)

// Subject is the flattened view of a person or company that filter
// expressions are evaluated against.
type Subject struct {
	Kind string
	ID   int64
	Name string
	// Title is empty for companies.
	Title string
	// CompanyName is the employer of a person, or the company's own name.
	CompanyName string
	Background  string
	VisibleTo   string
	Tags        []string
	Emails      []string
	Phones      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Attributes  map[string]string
}

// FromPerson builds a Subject from p.
func FromPerson(p *highrise.Person) Subject {
	return Subject{
		Kind:        KindPerson,
		ID:          p.ID,
		Name:        p.FullName(),
		Title:       p.Title,
		CompanyName: p.CompanyName,
		Background:  p.Background,
		VisibleTo:   p.VisibleTo,
		Tags:        highrise.TagNames(p.Tags),
		Emails:      p.ContactData.Emails(),
		Phones:      p.ContactData.Phones(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Attributes:  p.Attributes(),
	}
}

// FromCompany builds a Subject from c.
func FromCompany(c *highrise.Company) Subject {
	return Subject{
		Kind:        KindCompany,
		ID:          c.ID,
		Name:        c.Name,
		CompanyName: c.Name,
		Background:  c.Background,
		VisibleTo:   c.VisibleTo,
		Tags:        highrise.TagNames(c.Tags),
		Emails:      c.ContactData.Emails(),
		Phones:      c.ContactData.Phones(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Attributes:  c.Attributes(),
	}
}

package highrise

import (
	"time"
)

// Person represents a Highrise person
type Person struct {
	ID          int64     `json:"highrise_id" yaml:"highrise_id"`
	FirstName   string    `json:"first_name" yaml:"first_name"`
	LastName    string    `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Title       string    `json:"title,omitempty" yaml:"title,omitempty"`
	Background  string    `json:"background,omitempty" yaml:"background,omitempty"`
	LinkedinURL string    `json:"linkedin_url,omitempty" yaml:"linkedin_url,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	CompanyID   int64     `json:"company_id,omitempty" yaml:"company_id,omitempty"`
	CompanyName string    `json:"company_name,omitempty" yaml:"company_name,omitempty"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
	VisibleTo   string    `json:"visible_to,omitempty" yaml:"visible_to,omitempty"`
	OwnerID     int64     `json:"owner_id,omitempty" yaml:"owner_id,omitempty"`
	GroupID     int64     `json:"group_id,omitempty" yaml:"group_id,omitempty"`
	AuthorID    int64     `json:"author_id,omitempty" yaml:"author_id,omitempty"`

	ContactData  ContactData   `json:"contact_data" yaml:"contact_data"`
	SubjectDatas []SubjectData `json:"subject_datas,omitempty" yaml:"subject_datas,omitempty"`
	Tags         []Tag         `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// FullName returns first and last name joined by a space
func (p *Person) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	if p.FirstName == "" {
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}

// Attributes returns the flat field view keyed by local field name.
func (p *Person) Attributes() map[string]string {
	return personSchema.attributes(p)
}

// PersonFields lists the attribute names of a person in declaration order.
func PersonFields() []string {
	return personSchema.fields()
}

var personSchema = &schema[Person]{
	entity: "person",
	tag:    "person",
	scalars: []scalar[Person]{
		required(intField("id", func(p *Person) *int64 { return &p.ID })),
		required(stringField("first-name", func(p *Person) *string { return &p.FirstName })),
		stringField("last-name", func(p *Person) *string { return &p.LastName }),
		stringField("title", func(p *Person) *string { return &p.Title }),
		stringField("background", func(p *Person) *string { return &p.Background }),
		stringField("linkedin-url", func(p *Person) *string { return &p.LinkedinURL }),
		stringField("avatar-url", func(p *Person) *string { return &p.AvatarURL }),
		intField("company-id", func(p *Person) *int64 { return &p.CompanyID }),
		stringField("company-name", func(p *Person) *string { return &p.CompanyName }),
		timeField("created-at", func(p *Person) *time.Time { return &p.CreatedAt }),
		timeField("updated-at", func(p *Person) *time.Time { return &p.UpdatedAt }),
		stringField("visible-to", func(p *Person) *string { return &p.VisibleTo }),
		intField("owner-id", func(p *Person) *int64 { return &p.OwnerID }),
		intField("group-id", func(p *Person) *int64 { return &p.GroupID }),
		intField("author-id", func(p *Person) *int64 { return &p.AuthorID }),
	},
	collections: contactCollections(
		func(p *Person) *ContactData { return &p.ContactData },
		func(p *Person) *[]Tag { return &p.Tags },
		func(p *Person) *[]SubjectData { return &p.SubjectDatas },
	),
}

// Company represents a Highrise company
type Company struct {
	ID         int64     `json:"highrise_id" yaml:"highrise_id"`
	Name       string    `json:"name" yaml:"name"`
	Background string    `json:"background,omitempty" yaml:"background,omitempty"`
	AvatarURL  string    `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" yaml:"updated_at"`
	VisibleTo  string    `json:"visible_to,omitempty" yaml:"visible_to,omitempty"`
	OwnerID    int64     `json:"owner_id,omitempty" yaml:"owner_id,omitempty"`
	GroupID    int64     `json:"group_id,omitempty" yaml:"group_id,omitempty"`
	AuthorID   int64     `json:"author_id,omitempty" yaml:"author_id,omitempty"`

	ContactData  ContactData   `json:"contact_data" yaml:"contact_data"`
	SubjectDatas []SubjectData `json:"subject_datas,omitempty" yaml:"subject_datas,omitempty"`
	Tags         []Tag         `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Attributes returns the flat field view keyed by local field name.
func (c *Company) Attributes() map[string]string {
	return companySchema.attributes(c)
}

// CompanyFields lists the attribute names of a company in declaration order.
func CompanyFields() []string {
	return companySchema.fields()
}

var companySchema = &schema[Company]{
	entity: "company",
	tag:    "company",
	scalars: []scalar[Company]{
		required(intField("id", func(c *Company) *int64 { return &c.ID })),
		intField("author-id", func(c *Company) *int64 { return &c.AuthorID }),
		stringField("background", func(c *Company) *string { return &c.Background }),
		timeField("created-at", func(c *Company) *time.Time { return &c.CreatedAt }),
		intField("group-id", func(c *Company) *int64 { return &c.GroupID }),
		intField("owner-id", func(c *Company) *int64 { return &c.OwnerID }),
		timeField("updated-at", func(c *Company) *time.Time { return &c.UpdatedAt }),
		stringField("visible-to", func(c *Company) *string { return &c.VisibleTo }),
		required(stringField("name", func(c *Company) *string { return &c.Name })),
		stringField("avatar-url", func(c *Company) *string { return &c.AvatarURL }),
	},
	collections: contactCollections(
		func(c *Company) *ContactData { return &c.ContactData },
		func(c *Company) *[]Tag { return &c.Tags },
		func(c *Company) *[]SubjectData { return &c.SubjectDatas },
	),
}

// User is the authenticated Highrise account user.
type User struct {
	ID           int64     `json:"highrise_id" yaml:"highrise_id"`
	Name         string    `json:"name" yaml:"name"`
	EmailAddress string    `json:"email_address,omitempty" yaml:"email_address,omitempty"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" yaml:"updated_at"`
}

var userSchema = &schema[User]{
	entity: "user",
	tag:    "user",
	scalars: []scalar[User]{
		required(intField("id", func(u *User) *int64 { return &u.ID })),
		required(stringField("name", func(u *User) *string { return &u.Name })),
		stringField("email-address", func(u *User) *string { return &u.EmailAddress }),
		timeField("created-at", func(u *User) *time.Time { return &u.CreatedAt }),
		timeField("updated-at", func(u *User) *time.Time { return &u.UpdatedAt }),
	},
}

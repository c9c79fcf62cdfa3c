package highrise

// ContactData groups the nested contact collections shared by people and companies.
type ContactData struct {
	PhoneNumbers      []PhoneNumber      `json:"phone_numbers,omitempty" yaml:"phone_numbers,omitempty"`
	EmailAddresses    []EmailAddress     `json:"email_addresses,omitempty" yaml:"email_addresses,omitempty"`
	Addresses         []Address          `json:"addresses,omitempty" yaml:"addresses,omitempty"`
	InstantMessengers []InstantMessenger `json:"instant_messengers,omitempty" yaml:"instant_messengers,omitempty"`
	WebAddresses      []WebAddress       `json:"web_addresses,omitempty" yaml:"web_addresses,omitempty"`
}

// PhoneNumber is one entry of contact-data/phone-numbers.
type PhoneNumber struct {
	ID       int64  `json:"highrise_id,omitempty" yaml:"highrise_id,omitempty"`
	Number   string `json:"number" yaml:"number"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}

// EmailAddress is one entry of contact-data/email-addresses.
type EmailAddress struct {
	ID       int64  `json:"highrise_id,omitempty" yaml:"highrise_id,omitempty"`
	Address  string `json:"address" yaml:"address"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}

// Address is a postal address.
type Address struct {
	ID       int64  `json:"highrise_id,omitempty" yaml:"highrise_id,omitempty"`
	Street   string `json:"street,omitempty" yaml:"street,omitempty"`
	City     string `json:"city,omitempty" yaml:"city,omitempty"`
	State    string `json:"state,omitempty" yaml:"state,omitempty"`
	Zip      string `json:"zip,omitempty" yaml:"zip,omitempty"`
	Country  string `json:"country,omitempty" yaml:"country,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}

// InstantMessenger is an IM handle such as a Skype or Jabber account.
type InstantMessenger struct {
	ID       int64  `json:"highrise_id,omitempty" yaml:"highrise_id,omitempty"`
	Address  string `json:"address" yaml:"address"`
	Protocol string `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}

// WebAddress is a URL attached to a contact.
type WebAddress struct {
	ID       int64  `json:"highrise_id,omitempty" yaml:"highrise_id,omitempty"`
	URL      string `json:"url" yaml:"url"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
}

// Tag is a label attached to a person or company.
type Tag struct {
	ID   int64  `json:"highrise_id,omitempty" yaml:"highrise_id,omitempty"`
	Name string `json:"name" yaml:"name"`
}

// SubjectData is the value of a custom field on a person or company.
type SubjectData struct {
	ID                int64  `json:"highrise_id,omitempty" yaml:"highrise_id,omitempty"`
	SubjectFieldID    int64  `json:"subject_field_id,omitempty" yaml:"subject_field_id,omitempty"`
	SubjectFieldLabel string `json:"subject_field_label,omitempty" yaml:"subject_field_label,omitempty"`
	Value             string `json:"value" yaml:"value"`
}

var phoneNumberSchema = &schema[PhoneNumber]{
	entity: "phone number",
	tag:    "phone-number",
	scalars: []scalar[PhoneNumber]{
		intField("id", func(p *PhoneNumber) *int64 { return &p.ID }),
		stringField("number", func(p *PhoneNumber) *string { return &p.Number }),
		stringField("location", func(p *PhoneNumber) *string { return &p.Location }),
	},
}

var emailAddressSchema = &schema[EmailAddress]{
	entity: "email address",
	tag:    "email-address",
	scalars: []scalar[EmailAddress]{
		intField("id", func(e *EmailAddress) *int64 { return &e.ID }),
		stringField("address", func(e *EmailAddress) *string { return &e.Address }),
		stringField("location", func(e *EmailAddress) *string { return &e.Location }),
	},
}

var addressSchema = &schema[Address]{
	entity: "address",
	tag:    "address",
	scalars: []scalar[Address]{
		intField("id", func(a *Address) *int64 { return &a.ID }),
		stringField("street", func(a *Address) *string { return &a.Street }),
		stringField("city", func(a *Address) *string { return &a.City }),
		stringField("state", func(a *Address) *string { return &a.State }),
		stringField("zip", func(a *Address) *string { return &a.Zip }),
		stringField("country", func(a *Address) *string { return &a.Country }),
		stringField("location", func(a *Address) *string { return &a.Location }),
	},
}

var instantMessengerSchema = &schema[InstantMessenger]{
	entity: "instant messenger",
	tag:    "instant-messenger",
	scalars: []scalar[InstantMessenger]{
		intField("id", func(m *InstantMessenger) *int64 { return &m.ID }),
		stringField("location", func(m *InstantMessenger) *string { return &m.Location }),
		stringField("address", func(m *InstantMessenger) *string { return &m.Address }),
		stringField("protocol", func(m *InstantMessenger) *string { return &m.Protocol }),
	},
}

var webAddressSchema = &schema[WebAddress]{
	entity: "web address",
	tag:    "web-address",
	scalars: []scalar[WebAddress]{
		intField("id", func(w *WebAddress) *int64 { return &w.ID }),
		stringField("url", func(w *WebAddress) *string { return &w.URL }),
		stringField("location", func(w *WebAddress) *string { return &w.Location }),
	},
}

var tagSchema = &schema[Tag]{
	entity: "tag",
	tag:    "tag",
	scalars: []scalar[Tag]{
		intField("id", func(t *Tag) *int64 { return &t.ID }),
		stringField("name", func(t *Tag) *string { return &t.Name }),
	},
}

// Highrise spells this collection with underscores on the wire.
var subjectDataSchema = &schema[SubjectData]{
	entity: "subject data",
	tag:    "subject_data",
	scalars: []scalar[SubjectData]{
		intField("id", func(s *SubjectData) *int64 { return &s.ID }),
		intField("subject_field_id", func(s *SubjectData) *int64 { return &s.SubjectFieldID }),
		stringField("subject_field_label", func(s *SubjectData) *string { return &s.SubjectFieldLabel }),
		stringField("value", func(s *SubjectData) *string { return &s.Value }),
	},
}

// contactCollections builds the collection table shared by people and companies.
func contactCollections[T any](
	contact func(*T) *ContactData,
	tags func(*T) *[]Tag,
	subjects func(*T) *[]SubjectData,
) []collection[T] {
	return []collection[T]{
		nested([]string{"contact-data", "phone-numbers"}, phoneNumberSchema,
			func(v *T) *[]PhoneNumber { return &contact(v).PhoneNumbers }),
		nested([]string{"contact-data", "email-addresses"}, emailAddressSchema,
			func(v *T) *[]EmailAddress { return &contact(v).EmailAddresses }),
		nested([]string{"contact-data", "addresses"}, addressSchema,
			func(v *T) *[]Address { return &contact(v).Addresses }),
		nested([]string{"contact-data", "instant-messengers"}, instantMessengerSchema,
			func(v *T) *[]InstantMessenger { return &contact(v).InstantMessengers }),
		nested([]string{"contact-data", "web-addresses"}, webAddressSchema,
			func(v *T) *[]WebAddress { return &contact(v).WebAddresses }),
		nested([]string{"subject_datas"}, subjectDataSchema, subjects),
		nested([]string{"tags"}, tagSchema, tags),
	}
}

// TagNames returns the tag names in source order.
func TagNames(tags []Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}

// Emails returns the plain email addresses of c.
func (c *ContactData) Emails() []string {
	out := make([]string, 0, len(c.EmailAddresses))
	for _, e := range c.EmailAddresses {
		out = append(out, e.Address)
	}
	return out
}

// Phones returns the plain phone numbers of c.
func (c *ContactData) Phones() []string {
	out := make([]string, 0, len(c.PhoneNumbers))
	for _, p := range c.PhoneNumbers {
		out = append(out, p.Number)
	}
	return out
}

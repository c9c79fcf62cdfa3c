package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/highton/highrise"
)

func testPerson() *highrise.Person {
	return &highrise.Person{
		ID:          42,
		FirstName:   "Jane",
		LastName:    "Doe",
		Title:       "CTO",
		CompanyName: "Acme Inc",
		VisibleTo:   "Everyone",
		CreatedAt:   time.Now().AddDate(-1, 0, 0),
		UpdatedAt:   time.Now().AddDate(0, 0, -2),
		Tags:        []highrise.Tag{{ID: 1, Name: "VIP"}, {ID: 2, Name: "lead"}},
		ContactData: highrise.ContactData{
			EmailAddresses: []highrise.EmailAddress{{Address: "jane@acme.com", Location: "Work"}},
			PhoneNumbers:   []highrise.PhoneNumber{{Number: "555-0100", Location: "Mobile"}},
		},
	}
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `hasTag("vip")`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `hasTag("unclosed`,
			wantErr:    true,
		},
		{
			name:       "unknown identifier",
			expression: `Movie.Year > 2020`,
			wantErr:    true,
		},
		{
			name:       "non boolean result",
			expression: `Name`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `isPerson() and hasTag("lead") and daysSince(CreatedAt) > 30 and len(Emails) > 0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := NewExprCompiler().Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				require.ErrorAs(t, err, &compErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, filter)
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	person := FromPerson(testPerson())
	company := FromCompany(&highrise.Company{
		ID:        7,
		Name:      "Acme Inc",
		CreatedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Tags:      []highrise.Tag{{Name: "customer"}},
	})

	tests := []struct {
		name       string
		expression string
		subject    Subject
		expected   bool
	}{
		{name: "has tag ignores case", expression: `hasTag("vip")`, subject: person, expected: true},
		{name: "does not have tag", expression: `hasTag("churned")`, subject: person},
		{name: "email fragment", expression: `hasEmail("@ACME.com")`, subject: person, expected: true},
		{name: "name", expression: `Name == "Jane Doe"`, subject: person, expected: true},
		{name: "title contains", expression: `containsText(Title, "ct")`, subject: person, expected: true},
		{name: "contains operator", expression: `Title contains "CT"`, subject: person, expected: true},
		{name: "attribute lookup", expression: `attr("first_name") == "Jane"`, subject: person, expected: true},
		{name: "highrise id attribute", expression: `attr("highrise_id") == "42"`, subject: person, expected: true},
		{name: "id comparison", expression: `ID > 40`, subject: person, expected: true},
		{name: "kind helpers", expression: `isPerson() and not isCompany()`, subject: person, expected: true},
		{name: "company kind", expression: `isCompany()`, subject: company, expected: true},
		{name: "company name on company", expression: `CompanyName == "Acme Inc"`, subject: company, expected: true},
		{name: "updated recently", expression: `UpdatedAt > daysAgo(7)`, subject: person, expected: true},
		{name: "created before", expression: `CreatedAt < parseDate("2021-01-01")`, subject: company, expected: true},
		{name: "subject struct", expression: `Subject.Kind == "person"`, subject: person, expected: true},
		{name: "phones", expression: `"555-0100" in Phones`, subject: person, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, filter.Evaluate(tt.subject))
		})
	}
}

func TestShorthandConversion(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		want      string
		wantErr   bool
	}{
		{name: "empty", shorthand: "", want: ""},
		{name: "tag", shorthand: `tag:"vip"`, want: `hasTag("vip")`},
		{name: "negated tag", shorthand: `tag!:"vip"`, want: `not hasTag("vip")`},
		{name: "company", shorthand: `company:"Acme"`, want: `containsText(CompanyName, "Acme")`},
		{name: "email", shorthand: `email:"@acme.com"`, want: `hasEmail("@acme.com")`},
		{
			name:      "dates with operators",
			shorthand: `created_after:"2024-01-01" AND updated_before:"2024-06-01"`,
			want:      `CreatedAt > parseDate("2024-01-01") and UpdatedAt < parseDate("2024-06-01")`,
		},
		{
			name:      "or and not",
			shorthand: `tag:"a" OR NOT tag:"b"`,
			want:      `hasTag("a") or not hasTag("b")`,
		},
		{name: "unsupported term", shorthand: `owner:"bob" AND tag:"a"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertShorthand(tt.shorthand)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsShorthand(t *testing.T) {
	assert.True(t, IsShorthand(`tag:"vip"`))
	assert.True(t, IsShorthand(`created_before:"2024-01-01"`))
	assert.False(t, IsShorthand(`hasTag("vip")`))
}

func TestParseAndCreateFilter(t *testing.T) {
	person := FromPerson(testPerson())

	all, err := ParseAndCreateFilter("  ")
	require.NoError(t, err)
	assert.True(t, all.Evaluate(person))

	f, err := ParseAndCreateFilter(`tag:"lead" AND company:"acme" AND tag!:"churned"`)
	require.NoError(t, err)
	assert.True(t, f.Evaluate(person))

	f, err = ParseAndCreateFilter(`created_after:"2999-01-01"`)
	require.NoError(t, err)
	assert.False(t, f.Evaluate(person))

	_, err = ParseAndCreateFilter(`hasTag(`)
	assert.Error(t, err)
}

func TestCompanyShorthand(t *testing.T) {
	tests := []struct {
		name     string
		filter   string
		expected bool
	}{
		{name: "matches ignoring case", filter: `company:"acme"`, expected: true},
		{name: "matches fragment", filter: `company:"Inc"`, expected: true},
		{name: "no match", filter: `company:"Globex"`},
		{name: "negated", filter: `NOT company:"Globex"`, expected: true},
	}

	person := FromPerson(testPerson())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseAndCreateFilter(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f.Evaluate(person))
		})
	}
}

func TestSelect(t *testing.T) {
	people := []*highrise.Person{
		{ID: 1, FirstName: "A", Tags: []highrise.Tag{{Name: "vip"}}},
		{ID: 2, FirstName: "B"},
		{ID: 3, FirstName: "C", Tags: []highrise.Tag{{Name: "VIP"}}},
	}

	f, err := CompileFilter(`hasTag("vip")`)
	require.NoError(t, err)

	got := Select(people, FromPerson, f)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestCompilerCache(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, err := compiler.Compile(`hasTag("a")`)
	require.NoError(t, err)
	again, err := compiler.Compile(`  hasTag("a")  `)
	require.NoError(t, err)
	assert.Same(t, first, again)

	_, err = compiler.Compile(`hasTag("b")`)
	require.NoError(t, err)
	_, err = compiler.Compile(`hasTag("c")`)
	require.NoError(t, err)
	assert.Equal(t, 2, compiler.Size())

	compiler.Clear()
	assert.Zero(t, compiler.Size())

	assert.Zero(t, NewExprCompiler().Size())
}

func TestLRUCacheEviction(t *testing.T) {
	cache := newLRUCache[int](2)
	cache.Put("a", 1)
	cache.Put("b", 2)

	_, ok := cache.Get("a")
	require.True(t, ok)

	cache.Put("c", 3)

	_, ok = cache.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	v, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	cache.Put("a", 10)
	v, _ = cache.Get("a")
	assert.Equal(t, 10, v)
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"isVIP": func() bool { return true },
	}))

	_, err := compiler.Compile(`isVIP()`)
	require.NoError(t, err)
}

func TestMatchReportsEvaluationError(t *testing.T) {
	f, err := CompileFilter(`Tags[5] == "x"`)
	require.NoError(t, err)

	ok, err := f.Match(FromPerson(testPerson()))
	assert.False(t, ok)
	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "person 42", evalErr.Subject)
	assert.False(t, f.Evaluate(FromPerson(testPerson())))
}

func TestManager(t *testing.T) {
	m := NewManager()

	require.NoError(t, m.RegisterFilters(map[string]string{
		"vip":   `tag:"vip"`,
		"staff": `hasEmail("@acme.com")`,
	}))
	assert.Equal(t, []string{"staff", "vip"}, m.ListFilters())

	err := m.RegisterFilters(map[string]string{"broken": `hasTag(`})
	require.Error(t, err)
	_, exists := m.GetFilter("broken")
	assert.False(t, exists)

	subjects := []Subject{FromPerson(testPerson()), {Kind: KindCompany, ID: 9}}
	matches, err := m.EvaluateFilter("vip", subjects)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, int64(42), matches[0].ID)

	m.UnregisterFilter("vip")
	_, err = m.EvaluateFilter("vip", subjects)
	assert.Error(t, err)
}

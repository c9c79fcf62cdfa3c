package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/highton/config"
	"github.com/s0up4200/highton/highrise"
)

// resetFlags restores every flag of c and its children to its default.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

// executeCommand runs the CLI against a fake Highrise server.
func executeCommand(t *testing.T, handler http.HandlerFunc, stdin string, args ...string) (string, error) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("HIGHTON_HIGHRISE_USER", "acme")
	t.Setenv("HIGHTON_HIGHRISE_API_KEY", "test-key")
	t.Setenv("HIGHTON_HIGHRISE_BASE_URL", server.URL)
	t.Setenv("HIGHTON_LOGGING_LEVEL", "error")

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

const peopleFixture = `<people type="array">
  <person>
    <id type="integer">1</id>
    <first-name>Jane</first-name>
    <last-name>Doe</last-name>
    <company-name>Acme</company-name>
    <contact-data>
      <email-addresses type="array">
        <email-address><address>jane@acme.com</address><location>Work</location></email-address>
      </email-addresses>
    </contact-data>
    <tags type="array"><tag><id type="integer">5</id><name>vip</name></tag></tags>
  </person>
  <person>
    <id type="integer">2</id>
    <first-name>John</first-name>
    <last-name>Roe</last-name>
  </person>
</people>`

func peopleHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/people.xml", r.URL.Path)
		if r.URL.Query().Get("n") == "0" {
			_, _ = io.WriteString(w, peopleFixture)
			return
		}
		_, _ = io.WriteString(w, `<people type="array"/>`)
	}
}

func TestPeopleListJSONWithFilter(t *testing.T) {
	out, err := executeCommand(t, peopleHandler(t), "", "people", "list", "-o", "json", "--filter", `tag:"vip"`)
	require.NoError(t, err)

	var people []highrise.Person
	require.NoError(t, json.Unmarshal([]byte(out), &people))
	require.Len(t, people, 1)
	assert.Equal(t, "Jane", people[0].FirstName)
	assert.Equal(t, "vip", people[0].Tags[0].Name)
}

func TestPeopleListTable(t *testing.T) {
	out, err := executeCommand(t, peopleHandler(t), "", "people", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "John Roe")
	assert.Contains(t, out, "jane@acme.com")
}

func TestPeopleListNoMatches(t *testing.T) {
	out, err := executeCommand(t, peopleHandler(t), "", "people", "list", "--filter", `hasTag("nobody")`)
	require.NoError(t, err)
	assert.Contains(t, out, "No people found")
}

func TestPeopleListInvalidSince(t *testing.T) {
	var calls int
	_, err := executeCommand(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	}, "", "people", "list", "--since", "yesterday")
	require.Error(t, err)
	assert.ErrorIs(t, err, highrise.ErrInvalidTimestamp)
	assert.Zero(t, calls)
}

func TestPeopleDeleteConfirmation(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		args       []string
		wantDelete bool
		wantOut    string
	}{
		{name: "confirmed", stdin: "y\n", args: []string{"people", "delete", "1"}, wantDelete: true, wantOut: "Deleted person 1"},
		{name: "declined", stdin: "n\n", args: []string{"people", "delete", "1"}},
		{name: "no confirm flag", args: []string{"people", "delete", "1", "--no-confirm"}, wantDelete: true},
		{name: "dry run", args: []string{"people", "delete", "1", "-d"}, wantOut: "[dry-run] would delete person 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var deleted bool
			out, err := executeCommand(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/people/1.xml", r.URL.Path)
				switch r.Method {
				case http.MethodGet:
					_, _ = io.WriteString(w, `<person><id type="integer">1</id><first-name>Jane</first-name></person>`)
				case http.MethodDelete:
					deleted = true
				}
			}, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDelete, deleted)
			if tt.wantOut != "" {
				assert.Contains(t, out, tt.wantOut)
			}
		})
	}
}

func TestPeopleCreate(t *testing.T) {
	out, err := executeCommand(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "<first-name>Ada</first-name>")
		assert.Contains(t, string(body), "<address>ada@example.com</address>")
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `<person><id type="integer">77</id><first-name>Ada</first-name></person>`)
	}, "", "people", "create", "--first-name", "Ada", "--email", "ada@example.com", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "highrise_id: 77")
}

func TestCompaniesUpdateAppliesChangedFlags(t *testing.T) {
	out, err := executeCommand(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/companies/3.xml", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			_, _ = io.WriteString(w, `<company><id type="integer">3</id><name>Acme</name><background>old</background></company>`)
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), "<name>Acme</name>")
			assert.Contains(t, string(body), "<background>new</background>")
			w.WriteHeader(http.StatusOK)
		}
	}, "", "companies", "update", "3", "--background", "new")
	require.NoError(t, err)
	assert.Contains(t, out, "new")
}

func TestCategoriesCommand(t *testing.T) {
	out, err := executeCommand(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deal_categories.xml", r.URL.Path)
		_, _ = io.WriteString(w, `<deal-categories type="array">
  <deal-category><id type="integer">9</id><name>Consulting</name><elements-count type="integer">3</elements-count></deal-category>
</deal-categories>`)
	}, "", "categories", "deal")
	require.NoError(t, err)
	assert.Contains(t, out, "Consulting")

	_, err = executeCommand(t, func(w http.ResponseWriter, r *http.Request) {}, "", "categories", "note")
	assert.ErrorIs(t, err, highrise.ErrUnknownCategoryKind)
}

func TestTestCommand(t *testing.T) {
	out, err := executeCommand(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me.xml", r.URL.Path)
		_, _ = io.WriteString(w, `<user><id type="integer">4</id><name>Jo</name></user>`)
	}, "", "test")
	require.NoError(t, err)
	assert.Contains(t, out, "Connection successful")
	assert.Contains(t, out, "User: Jo (ID: 4)")
}

func TestGetFilterExpression(t *testing.T) {
	t.Cleanup(func() {
		filterExpr, preset = "", ""
	})
	cfg = &config.Config{Filter: config.FilterConfig{
		Default: `tag:"default"`,
		Presets: map[string]config.FilterPreset{"vip": {Expression: `hasTag("vip")`}},
	}}

	tests := []struct {
		name    string
		filter  string
		preset  string
		want    string
		wantErr bool
	}{
		{name: "flag wins", filter: `hasTag("x")`, preset: "vip", want: `hasTag("x")`},
		{name: "preset", preset: "vip", want: `hasTag("vip")`},
		{name: "default", want: `tag:"default"`},
		{name: "unknown preset", preset: "nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filterExpr, preset = tt.filter, tt.preset
			got, err := getFilterExpression()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderFormats(t *testing.T) {
	people := []*highrise.Person{{
		ID:        1,
		FirstName: "Jane",
		LastName:  "Doe",
		CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Tags:      []highrise.Tag{{Name: "vip"}, {Name: "lead"}},
	}}

	var buf bytes.Buffer
	require.NoError(t, renderPeople(&buf, "table", people, true))
	assert.Contains(t, buf.String(), "Jane Doe")
	assert.Contains(t, buf.String(), "vip, lead")
	assert.Contains(t, buf.String(), "2024-01-02")

	buf.Reset()
	require.NoError(t, renderPeople(&buf, "yaml", people, false))
	assert.Contains(t, buf.String(), "first_name: Jane")

	buf.Reset()
	require.NoError(t, renderPeople(&buf, "json", people, false))
	assert.Contains(t, buf.String(), `"first_name": "Jane"`)
}

func TestRenderRecordSkipsEmpty(t *testing.T) {
	p := &highrise.Person{ID: 5, FirstName: "Jane"}

	var buf bytes.Buffer
	require.NoError(t, renderRecord(&buf, "table", p, p.Attributes(), highrise.PersonFields()))
	out := buf.String()
	assert.Contains(t, out, "highrise_id")
	assert.Contains(t, out, "first_name")
	assert.NotContains(t, out, "last_name")
}

func TestReadYes(t *testing.T) {
	for input, want := range map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"n\n":   false,
		"":      false,
	} {
		assert.Equal(t, want, readYes(strings.NewReader(input)), fmt.Sprintf("input %q", input))
	}
}

func TestCurrentVersion(t *testing.T) {
	t.Cleanup(func() { version = "dev" })

	version = "dev"
	_, err := currentVersion()
	assert.Error(t, err)

	version = "v1.2.3"
	v, err := currentVersion()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v.String())
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, func(w http.ResponseWriter, r *http.Request) {}, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "highton dev")
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/highton/highrise"
)

func isValidOutput(format string) bool {
	switch format {
	case "table", "json", "yaml":
		return true
	}
	return false
}

// render writes v as JSON or YAML, or calls table for the table format.
func render(w io.Writer, format string, v any, table func(t *tablewriter.Table)) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		t := tablewriter.NewWriter(w)
		table(t)
		return t.Render()
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

func renderPeople(w io.Writer, format string, people []*highrise.Person, details bool) error {
	return render(w, format, people, func(table *tablewriter.Table) {
		if details {
			table.Header("ID", "Name", "Title", "Company", "Emails", "Phones", "Tags", "Created", "Updated")
		} else {
			table.Header("ID", "Name", "Title", "Company", "Emails", "Tags")
		}
		for _, p := range people {
			row := []string{
				formatID(p.ID),
				p.FullName(),
				p.Title,
				p.CompanyName,
				strings.Join(p.ContactData.Emails(), ", "),
			}
			if details {
				row = append(row, strings.Join(p.ContactData.Phones(), ", "))
			}
			row = append(row, strings.Join(highrise.TagNames(p.Tags), ", "))
			if details {
				row = append(row, formatDate(p.CreatedAt), formatDate(p.UpdatedAt))
			}
			_ = table.Append(row)
		}
	})
}

func renderCompanies(w io.Writer, format string, companies []*highrise.Company, details bool) error {
	return render(w, format, companies, func(table *tablewriter.Table) {
		if details {
			table.Header("ID", "Name", "Emails", "Phones", "Tags", "Created", "Updated")
		} else {
			table.Header("ID", "Name", "Emails", "Tags")
		}
		for _, c := range companies {
			row := []string{
				formatID(c.ID),
				c.Name,
				strings.Join(c.ContactData.Emails(), ", "),
			}
			if details {
				row = append(row, strings.Join(c.ContactData.Phones(), ", "))
			}
			row = append(row, strings.Join(highrise.TagNames(c.Tags), ", "))
			if details {
				row = append(row, formatDate(c.CreatedAt), formatDate(c.UpdatedAt))
			}
			_ = table.Append(row)
		}
	})
}

// renderRecord prints a single entity as a property/value table.
func renderRecord(w io.Writer, format string, v any, attrs map[string]string, fields []string) error {
	return render(w, format, v, func(table *tablewriter.Table) {
		table.Header("Property", "Value")
		for _, name := range fields {
			if value := attrs[name]; value != "" {
				_ = table.Append(name, value)
			}
		}
	})
}

func renderCategories(w io.Writer, format string, categories []highrise.CategoryEntity) error {
	return render(w, format, categories, func(table *tablewriter.Table) {
		table.Header("ID", "Name", "Color", "Elements", "Updated")
		for _, c := range categories {
			base := c.Base()
			_ = table.Append([]string{
				formatID(base.ID),
				base.Name,
				base.Color,
				strconv.FormatInt(base.ElementsCount, 10),
				formatDate(base.UpdatedAt),
			})
		}
	})
}

func printDryRun(w io.Writer, action string, v any) error {
	fmt.Fprintf(w, "[dry-run] would %s:\n", action)
	return render(w, "yaml", v, nil)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/highton/filter"
	"github.com/s0up4200/highton/highrise"
)

var companyFlags struct {
	name       string
	background string
	email      string
	phone      string
}

// companiesCmd groups the company commands
var companiesCmd = &cobra.Command{
	Use:               "companies",
	Aliases:           []string{"company"},
	Short:             "Manage Highrise companies",
	PersistentPreRunE: initializeApp,
}

var companiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List companies matching the filter criteria",
	Args:  cobra.NoArgs,
	RunE:  runCompaniesList,
}

var companiesGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show a single company",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompaniesGet,
}

var companiesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a company",
	Args:  cobra.NoArgs,
	RunE:  runCompaniesCreate,
}

var companiesUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a company, applying only the given flags",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompaniesUpdate,
}

var companiesDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a company",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompaniesDelete,
}

func init() {
	rootCmd.AddCommand(companiesCmd)
	companiesCmd.AddCommand(companiesListCmd, companiesGetCmd, companiesCreateCmd, companiesUpdateCmd, companiesDeleteCmd)

	companiesListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	companiesListCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	companiesListCmd.Flags().StringVar(&sinceFlag, "since", "", "only companies changed after YYYYMMDDHHMMSS (UTC)")

	for _, c := range []*cobra.Command{companiesCreateCmd, companiesUpdateCmd} {
		c.Flags().StringVar(&companyFlags.name, "name", "", "company name")
		c.Flags().StringVar(&companyFlags.background, "background", "", "background notes")
		c.Flags().StringVar(&companyFlags.email, "email", "", "work email address")
		c.Flags().StringVar(&companyFlags.phone, "phone", "", "work phone number")
	}
	_ = companiesCreateCmd.MarkFlagRequired("name")

	companiesDeleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
}

func runCompaniesList(cmd *cobra.Command, args []string) error {
	f, err := resolveFilter()
	if err != nil {
		return err
	}

	var companies []*highrise.Company
	if sinceFlag != "" {
		logger.Info().Str("since", sinceFlag).Msg("Fetching companies")
		companies, err = client.GetCompaniesSince(cmd.Context(), sinceFlag)
	} else {
		logger.Info().Msg("Fetching companies")
		companies, err = client.GetCompanies(cmd.Context())
	}
	if err != nil {
		return err
	}

	matched := filter.Select(companies, filter.FromCompany, f)

	if len(matched) == 0 && cfg.Output.Format == "table" {
		fmt.Fprintln(cmd.OutOrStdout(), "No companies found matching the filter criteria.")
		return nil
	}

	return renderCompanies(cmd.OutOrStdout(), cfg.Output.Format, matched, cfg.Output.ShowDetails)
}

func runCompaniesGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	c, err := client.GetCompany(cmd.Context(), id)
	if err != nil {
		return err
	}

	return renderRecord(cmd.OutOrStdout(), cfg.Output.Format, c, c.Attributes(), highrise.CompanyFields())
}

func applyCompanyFlags(cmd *cobra.Command, c *highrise.Company) {
	flags := cmd.Flags()
	if flags.Changed("name") {
		c.Name = companyFlags.name
	}
	if flags.Changed("background") {
		c.Background = companyFlags.background
	}
	if flags.Changed("email") {
		c.ContactData.EmailAddresses = append(c.ContactData.EmailAddresses,
			highrise.EmailAddress{Address: companyFlags.email, Location: "Work"})
	}
	if flags.Changed("phone") {
		c.ContactData.PhoneNumbers = append(c.ContactData.PhoneNumbers,
			highrise.PhoneNumber{Number: companyFlags.phone, Location: "Work"})
	}
}

func runCompaniesCreate(cmd *cobra.Command, args []string) error {
	c := &highrise.Company{}
	applyCompanyFlags(cmd, c)

	if cfg.Safety.DryRun {
		return printDryRun(cmd.OutOrStdout(), "create company", c)
	}

	created, err := client.CreateCompany(cmd.Context(), c)
	if err != nil {
		return err
	}
	logger.Info().Int64("id", created.ID).Str("name", created.Name).Msg("Created company")

	return renderRecord(cmd.OutOrStdout(), cfg.Output.Format, created, created.Attributes(), highrise.CompanyFields())
}

func runCompaniesUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	c, err := client.GetCompany(cmd.Context(), id)
	if err != nil {
		return err
	}
	applyCompanyFlags(cmd, c)

	if cfg.Safety.DryRun {
		return printDryRun(cmd.OutOrStdout(), fmt.Sprintf("update company %d", id), c)
	}

	updated, err := client.UpdateCompany(cmd.Context(), c)
	if err != nil {
		return err
	}
	logger.Info().Int64("id", updated.ID).Msg("Updated company")

	return renderRecord(cmd.OutOrStdout(), cfg.Output.Format, updated, updated.Attributes(), highrise.CompanyFields())
}

func runCompaniesDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	c, err := client.GetCompany(cmd.Context(), id)
	if err != nil {
		return err
	}

	if cfg.Safety.DryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "[dry-run] would delete company %d (%s)\n", c.ID, c.Name)
		return nil
	}

	if !confirm(cmd, fmt.Sprintf("Delete company %d (%s)?", c.ID, c.Name)) {
		logger.Info().Int64("id", id).Msg("Deletion cancelled")
		return nil
	}

	if err := client.DeleteCompany(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted company %d (%s)\n", c.ID, c.Name)
	return nil
}

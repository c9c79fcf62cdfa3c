package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/highton/filter"
	"github.com/s0up4200/highton/highrise"
)

var personFlags struct {
	firstName   string
	lastName    string
	title       string
	companyName string
	background  string
	email       string
	phone       string
}

// peopleCmd groups the person commands
var peopleCmd = &cobra.Command{
	Use:               "people",
	Aliases:           []string{"person"},
	Short:             "Manage Highrise people",
	PersistentPreRunE: initializeApp,
}

var peopleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List people matching the filter criteria",
	Long: `List people in your Highrise account. Use --since to fetch only people
changed after a timestamp (YYYYMMDDHHMMSS, UTC) and --filter or --preset
to narrow the result locally.`,
	Args: cobra.NoArgs,
	RunE: runPeopleList,
}

var peopleGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show a single person",
	Args:  cobra.ExactArgs(1),
	RunE:  runPeopleGet,
}

var peopleCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a person",
	Args:  cobra.NoArgs,
	RunE:  runPeopleCreate,
}

var peopleUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a person, applying only the given flags",
	Args:  cobra.ExactArgs(1),
	RunE:  runPeopleUpdate,
}

var peopleDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a person",
	Args:  cobra.ExactArgs(1),
	RunE:  runPeopleDelete,
}

func init() {
	rootCmd.AddCommand(peopleCmd)
	peopleCmd.AddCommand(peopleListCmd, peopleGetCmd, peopleCreateCmd, peopleUpdateCmd, peopleDeleteCmd)

	peopleListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	peopleListCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	peopleListCmd.Flags().StringVar(&sinceFlag, "since", "", "only people changed after YYYYMMDDHHMMSS (UTC)")

	for _, c := range []*cobra.Command{peopleCreateCmd, peopleUpdateCmd} {
		c.Flags().StringVar(&personFlags.firstName, "first-name", "", "first name")
		c.Flags().StringVar(&personFlags.lastName, "last-name", "", "last name")
		c.Flags().StringVar(&personFlags.title, "title", "", "job title")
		c.Flags().StringVar(&personFlags.companyName, "company-name", "", "company name")
		c.Flags().StringVar(&personFlags.background, "background", "", "background notes")
		c.Flags().StringVar(&personFlags.email, "email", "", "work email address")
		c.Flags().StringVar(&personFlags.phone, "phone", "", "work phone number")
	}
	_ = peopleCreateCmd.MarkFlagRequired("first-name")

	peopleDeleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", arg)
	}
	return id, nil
}

func runPeopleList(cmd *cobra.Command, args []string) error {
	f, err := resolveFilter()
	if err != nil {
		return err
	}

	var people []*highrise.Person
	if sinceFlag != "" {
		logger.Info().Str("since", sinceFlag).Msg("Fetching people")
		people, err = client.GetPeopleSince(cmd.Context(), sinceFlag)
	} else {
		logger.Info().Msg("Fetching people")
		people, err = client.GetPeople(cmd.Context())
	}
	if err != nil {
		return err
	}

	matched := filter.Select(people, filter.FromPerson, f)
	logger.Debug().Int("fetched", len(people)).Int("matched", len(matched)).Msg("Filtered people")

	if len(matched) == 0 && cfg.Output.Format == "table" {
		fmt.Fprintln(cmd.OutOrStdout(), "No people found matching the filter criteria.")
		return nil
	}

	return renderPeople(cmd.OutOrStdout(), cfg.Output.Format, matched, cfg.Output.ShowDetails)
}

func runPeopleGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	p, err := client.GetPerson(cmd.Context(), id)
	if err != nil {
		return err
	}

	return renderRecord(cmd.OutOrStdout(), cfg.Output.Format, p, p.Attributes(), highrise.PersonFields())
}

// applyPersonFlags copies the flags the user set onto p.
func applyPersonFlags(cmd *cobra.Command, p *highrise.Person) {
	flags := cmd.Flags()
	if flags.Changed("first-name") {
		p.FirstName = personFlags.firstName
	}
	if flags.Changed("last-name") {
		p.LastName = personFlags.lastName
	}
	if flags.Changed("title") {
		p.Title = personFlags.title
	}
	if flags.Changed("company-name") {
		p.CompanyName = personFlags.companyName
	}
	if flags.Changed("background") {
		p.Background = personFlags.background
	}
	if flags.Changed("email") {
		p.ContactData.EmailAddresses = append(p.ContactData.EmailAddresses,
			highrise.EmailAddress{Address: personFlags.email, Location: "Work"})
	}
	if flags.Changed("phone") {
		p.ContactData.PhoneNumbers = append(p.ContactData.PhoneNumbers,
			highrise.PhoneNumber{Number: personFlags.phone, Location: "Work"})
	}
}

func runPeopleCreate(cmd *cobra.Command, args []string) error {
	p := &highrise.Person{}
	applyPersonFlags(cmd, p)

	if cfg.Safety.DryRun {
		return printDryRun(cmd.OutOrStdout(), "create person", p)
	}

	created, err := client.CreatePerson(cmd.Context(), p)
	if err != nil {
		return err
	}
	logger.Info().Int64("id", created.ID).Str("name", created.FullName()).Msg("Created person")

	return renderRecord(cmd.OutOrStdout(), cfg.Output.Format, created, created.Attributes(), highrise.PersonFields())
}

func runPeopleUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	p, err := client.GetPerson(cmd.Context(), id)
	if err != nil {
		return err
	}
	applyPersonFlags(cmd, p)

	if cfg.Safety.DryRun {
		return printDryRun(cmd.OutOrStdout(), fmt.Sprintf("update person %d", id), p)
	}

	updated, err := client.UpdatePerson(cmd.Context(), p)
	if err != nil {
		return err
	}
	logger.Info().Int64("id", updated.ID).Msg("Updated person")

	return renderRecord(cmd.OutOrStdout(), cfg.Output.Format, updated, updated.Attributes(), highrise.PersonFields())
}

func runPeopleDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	p, err := client.GetPerson(cmd.Context(), id)
	if err != nil {
		return err
	}

	if cfg.Safety.DryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "[dry-run] would delete person %d (%s)\n", p.ID, p.FullName())
		return nil
	}

	if !confirm(cmd, fmt.Sprintf("Delete person %d (%s)?", p.ID, p.FullName())) {
		logger.Info().Int64("id", id).Msg("Deletion cancelled")
		return nil
	}

	if err := client.DeletePerson(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted person %d (%s)\n", p.ID, p.FullName())
	return nil
}

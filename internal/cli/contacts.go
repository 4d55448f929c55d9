package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hubspot-cli/internal/format"
)

// contactProps carries the property flags shared by create and update.
type contactProps struct {
	email     string
	firstname string
	lastname  string
	phone     string
	company   string
	jobtitle  string
}

func (p *contactProps) properties() map[string]string {
	props := map[string]string{}
	if p.email != "" {
		props["email"] = p.email
	}
	if p.firstname != "" {
		props["firstname"] = p.firstname
	}
	if p.lastname != "" {
		props["lastname"] = p.lastname
	}
	if p.phone != "" {
		props["phone"] = p.phone
	}
	if p.company != "" {
		props["company"] = p.company
	}
	if p.jobtitle != "" {
		props["jobtitle"] = p.jobtitle
	}
	return props
}

func addContactPropFlags(cmd *cobra.Command, p *contactProps) {
	cmd.Flags().StringVar(&p.email, "email", "", "Email address")
	cmd.Flags().StringVar(&p.firstname, "firstname", "", "First name")
	cmd.Flags().StringVar(&p.lastname, "lastname", "", "Last name")
	cmd.Flags().StringVar(&p.phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&p.company, "company", "", "Company name")
	cmd.Flags().StringVar(&p.jobtitle, "jobtitle", "", "Job title")
}

var (
	contactsFlags      listFlags
	contactFlags       outputFlags
	contactProperties  string
	contactSearchFlags listFlags
	createContactProps contactProps
	updateContactProps contactProps

	contactsCmd = &cobra.Command{
		Use:   "contacts",
		Short: "List contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			page, err := client.ListContacts(cmd.Context(), contactsFlags.options())
			if err != nil {
				return err
			}
			printPage(&contactsFlags.outputFlags, page, format.ContactColumns)
			return nil
		},
	}

	contactCmd = &cobra.Command{
		Use:   "contact <id>",
		Short: "Show a contact by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			record, err := client.GetContact(cmd.Context(), args[0], splitProps(contactProperties))
			if err != nil {
				return err
			}
			printRecord(&contactFlags, record)
			return nil
		},
	}

	contactSearchCmd = &cobra.Command{
		Use:   "contact-search <query>",
		Short: "Search contacts by name, email, or phone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			page, err := client.SearchContacts(cmd.Context(), args[0], contactSearchFlags.options())
			if err != nil {
				return err
			}
			printPage(&contactSearchFlags.outputFlags, page, format.ContactColumns)
			return nil
		},
	}

	contactCreateCmd = &cobra.Command{
		Use:   "contact-create",
		Short: "Create a new contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			props := createContactProps.properties()
			if len(props) == 0 {
				return fmt.Errorf("at least one property is required (e.g. --email or --lastname)")
			}
			client, err := apiClient()
			if err != nil {
				return err
			}
			record, err := client.CreateContact(cmd.Context(), props)
			if err != nil {
				return err
			}
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Println(green("Contact created!"))
			fmt.Printf("ID: %s\n", record.ID)
			return nil
		},
	}

	contactUpdateCmd = &cobra.Command{
		Use:   "contact-update <id>",
		Short: "Update an existing contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props := updateContactProps.properties()
			if len(props) == 0 {
				return fmt.Errorf("at least one property is required (e.g. --email or --phone)")
			}
			client, err := apiClient()
			if err != nil {
				return err
			}
			record, err := client.UpdateContact(cmd.Context(), args[0], props)
			if err != nil {
				return err
			}
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Println(green("Contact updated!"))
			fmt.Printf("ID: %s\n", record.ID)
			return nil
		},
	}
)

func initContactCommands() {
	addListFlags(contactsCmd, &contactsFlags)
	addOutputFlags(contactCmd, &contactFlags)
	contactCmd.Flags().StringVar(&contactProperties, "properties", "", "Comma-separated properties to fetch")
	addListFlags(contactSearchCmd, &contactSearchFlags)
	addContactPropFlags(contactCreateCmd, &createContactProps)
	addContactPropFlags(contactUpdateCmd, &updateContactProps)

	RootCmd.AddCommand(contactsCmd)
	RootCmd.AddCommand(contactCmd)
	RootCmd.AddCommand(contactSearchCmd)
	RootCmd.AddCommand(contactCreateCmd)
	RootCmd.AddCommand(contactUpdateCmd)
}

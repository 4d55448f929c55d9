package cli

import (
	"github.com/spf13/cobra"

	"hubspot-cli/internal/format"
)

var (
	companiesFlags     listFlags
	companyFlags       outputFlags
	companyProperties  string
	companySearchFlags listFlags

	companiesCmd = &cobra.Command{
		Use:   "companies",
		Short: "List companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			page, err := client.ListCompanies(cmd.Context(), companiesFlags.options())
			if err != nil {
				return err
			}
			printPage(&companiesFlags.outputFlags, page, format.CompanyColumns)
			return nil
		},
	}

	companyCmd = &cobra.Command{
		Use:   "company <id>",
		Short: "Show a company by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			record, err := client.GetCompany(cmd.Context(), args[0], splitProps(companyProperties))
			if err != nil {
				return err
			}
			printRecord(&companyFlags, record)
			return nil
		},
	}

	companySearchCmd = &cobra.Command{
		Use:   "company-search <query>",
		Short: "Search companies by name or domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			page, err := client.SearchCompanies(cmd.Context(), args[0], companySearchFlags.options())
			if err != nil {
				return err
			}
			printPage(&companySearchFlags.outputFlags, page, format.CompanyColumns)
			return nil
		},
	}
)

func initCompanyCommands() {
	addListFlags(companiesCmd, &companiesFlags)
	addOutputFlags(companyCmd, &companyFlags)
	companyCmd.Flags().StringVar(&companyProperties, "properties", "", "Comma-separated properties to fetch")
	addListFlags(companySearchCmd, &companySearchFlags)

	RootCmd.AddCommand(companiesCmd)
	RootCmd.AddCommand(companyCmd)
	RootCmd.AddCommand(companySearchCmd)
}

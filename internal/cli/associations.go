package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hubspot-cli/internal/format"
)

var (
	associationsFlags listFlags

	associationsCmd = &cobra.Command{
		Use:   "associations <fromType> <id> <toType>",
		Short: "List associations between CRM objects",
		Long: `List objects of one type associated with a given object.

Example:
  hs associations contacts 12345 companies`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			associations, paging, err := client.ListAssociations(cmd.Context(), args[0], args[1], args[2], associationsFlags.options())
			if err != nil {
				return err
			}
			if associationsFlags.json {
				fmt.Println(format.JSONString(associations))
			} else {
				format.Associations(os.Stdout, associations)
			}
			if paging != nil && paging.Next != nil && paging.Next.After != "" {
				fmt.Printf("\nNext page: --after %s\n", paging.Next.After)
			}
			return nil
		},
	}

	associateCmd = &cobra.Command{
		Use:   "associate <fromType> <fromId> <toType> <toId>",
		Short: "Create an association between two CRM objects",
		Long: `Associate two CRM objects using the default association type.

Example:
  hs associate contacts 12345 companies 67890`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			if err := client.CreateAssociation(cmd.Context(), args[0], args[1], args[2], args[3]); err != nil {
				return err
			}
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Println(green("Association created!"))
			fmt.Printf("%s %s -> %s %s\n", args[0], args[1], args[2], args[3])
			return nil
		},
	}
)

func initAssociationCommands() {
	addListFlags(associationsCmd, &associationsFlags)
	RootCmd.AddCommand(associationsCmd)
	RootCmd.AddCommand(associateCmd)
}

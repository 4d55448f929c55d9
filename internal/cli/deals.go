package cli

import (
	"os"

	"github.com/spf13/cobra"

	"hubspot-cli/internal/format"
	"hubspot-cli/internal/hubspot"
)

var (
	dealsFlags      listFlags
	dealsPipeline   string
	dealsStage      string
	dealFlags       outputFlags
	dealProperties  string
	dealSearchFlags listFlags

	dealsCmd = &cobra.Command{
		Use:   "deals",
		Short: "List deals, optionally filtered by pipeline and stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			opts := dealsFlags.options()
			var page *hubspot.Page
			if dealsPipeline != "" || dealsStage != "" {
				page, err = client.FilterDeals(cmd.Context(), dealsPipeline, dealsStage, opts)
			} else {
				page, err = client.ListDeals(cmd.Context(), opts)
			}
			if err != nil {
				return err
			}
			printPage(&dealsFlags.outputFlags, page, format.DealColumns)
			return nil
		},
	}

	dealCmd = &cobra.Command{
		Use:   "deal <id>",
		Short: "Show a deal by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			record, err := client.GetDeal(cmd.Context(), args[0], splitProps(dealProperties))
			if err != nil {
				return err
			}
			printRecord(&dealFlags, record)
			return nil
		},
	}

	dealSearchCmd = &cobra.Command{
		Use:   "deal-search <query>",
		Short: "Search deals by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			page, err := client.SearchDeals(cmd.Context(), args[0], dealSearchFlags.options())
			if err != nil {
				return err
			}
			printPage(&dealSearchFlags.outputFlags, page, format.DealColumns)
			return nil
		},
	}

	pipelinesCmd = &cobra.Command{
		Use:   "pipelines",
		Short: "List deal pipelines and their stages",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			pipelines, err := client.DealPipelines(cmd.Context())
			if err != nil {
				return err
			}
			format.Pipelines(os.Stdout, pipelines)
			return nil
		},
	}
)

func initDealCommands() {
	addListFlags(dealsCmd, &dealsFlags)
	dealsCmd.Flags().StringVar(&dealsPipeline, "pipeline", "", "Filter by pipeline ID")
	dealsCmd.Flags().StringVar(&dealsStage, "stage", "", "Filter by deal stage ID")
	addOutputFlags(dealCmd, &dealFlags)
	dealCmd.Flags().StringVar(&dealProperties, "properties", "", "Comma-separated properties to fetch")
	addListFlags(dealSearchCmd, &dealSearchFlags)

	RootCmd.AddCommand(dealsCmd)
	RootCmd.AddCommand(dealCmd)
	RootCmd.AddCommand(dealSearchCmd)
	RootCmd.AddCommand(pipelinesCmd)
}

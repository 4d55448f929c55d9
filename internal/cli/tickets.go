package cli

import (
	"github.com/spf13/cobra"

	"hubspot-cli/internal/format"
)

var (
	ticketsFlags      listFlags
	ticketFlags       outputFlags
	ticketProperties  string
	ticketSearchFlags listFlags

	ticketsCmd = &cobra.Command{
		Use:   "tickets",
		Short: "List tickets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			page, err := client.ListTickets(cmd.Context(), ticketsFlags.options())
			if err != nil {
				return err
			}
			printPage(&ticketsFlags.outputFlags, page, format.TicketColumns)
			return nil
		},
	}

	ticketCmd = &cobra.Command{
		Use:   "ticket <id>",
		Short: "Show a ticket by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			record, err := client.GetTicket(cmd.Context(), args[0], splitProps(ticketProperties))
			if err != nil {
				return err
			}
			printRecord(&ticketFlags, record)
			return nil
		},
	}

	ticketSearchCmd = &cobra.Command{
		Use:   "ticket-search <query>",
		Short: "Search tickets by subject or content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			page, err := client.SearchTickets(cmd.Context(), args[0], ticketSearchFlags.options())
			if err != nil {
				return err
			}
			printPage(&ticketSearchFlags.outputFlags, page, format.TicketColumns)
			return nil
		},
	}
)

func initTicketCommands() {
	addListFlags(ticketsCmd, &ticketsFlags)
	addOutputFlags(ticketCmd, &ticketFlags)
	ticketCmd.Flags().StringVar(&ticketProperties, "properties", "", "Comma-separated properties to fetch")
	addListFlags(ticketSearchCmd, &ticketSearchFlags)

	RootCmd.AddCommand(ticketsCmd)
	RootCmd.AddCommand(ticketCmd)
	RootCmd.AddCommand(ticketSearchCmd)
}

package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hubspot-cli/internal/format"
)

var (
	whoamiFlags outputFlags

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Verify the HubSpot connection",
		RunE:  runCheck,
	}

	whoamiCmd = &cobra.Command{
		Use:   "whoami",
		Short: "Show the connected HubSpot account",
		RunE:  runWhoami,
	}

	ownersCmd = &cobra.Command{
		Use:   "owners",
		Short: "List owners in the HubSpot account",
		RunE:  runOwners,
	}
)

func runCheck(cmd *cobra.Command, args []string) error {
	client, err := apiClient()
	if err != nil {
		return err
	}

	fmt.Println("Checking HubSpot connection...")
	info, err := client.GetPortalInfo(cmd.Context())
	if err != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Println(red("Connection failed."))
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Println(green("Connected to HubSpot!"))
	fmt.Printf("Portal ID: %d\n", info.PortalID)
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	client, err := apiClient()
	if err != nil {
		return err
	}
	info, err := client.GetPortalInfo(cmd.Context())
	if err != nil {
		return err
	}

	switch whoamiFlags.pick() {
	case format.JSON:
		fmt.Println(format.JSONString(info))
	case format.Markdown:
		fmt.Print(format.MarkdownPortalInfo(info))
	default:
		format.PortalInfo(os.Stdout, info)
	}
	return nil
}

func runOwners(cmd *cobra.Command, args []string) error {
	client, err := apiClient()
	if err != nil {
		return err
	}
	owners, err := client.GetOwners(cmd.Context())
	if err != nil {
		return err
	}
	format.Owners(os.Stdout, owners)
	return nil
}

func initAccountCommands() {
	addOutputFlags(whoamiCmd, &whoamiFlags)
	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(whoamiCmd)
	RootCmd.AddCommand(ownersCmd)
}

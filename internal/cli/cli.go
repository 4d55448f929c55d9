// Package cli provides the hs command-line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hubspot-cli/internal/config"
	"hubspot-cli/internal/format"
	"hubspot-cli/internal/hubspot"
)

// Version information
const Version = "0.1.0"

// RootCmd is the root command for the CLI.
var RootCmd = &cobra.Command{
	Use:           "hs",
	Short:         "HubSpot CRM CLI for managing contacts, companies, deals, and engagements",
	Long:          "Authenticate against HubSpot (Private App Token or OAuth 2.0) and list, search, create, and update CRM objects from the terminal.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// configStore is shared between commands within one invocation.
var configStore *config.Store

func store() (*config.Store, error) {
	if configStore != nil {
		return configStore, nil
	}
	s, err := config.NewStore()
	if err != nil {
		return nil, err
	}
	configStore = s
	return s, nil
}

func apiClient() (*hubspot.Client, error) {
	s, err := store()
	if err != nil {
		return nil, err
	}
	return hubspot.New(s), nil
}

// outputFlags are the common rendering flags carried by most commands.
type outputFlags struct {
	json     bool
	markdown bool
}

func addOutputFlags(cmd *cobra.Command, f *outputFlags) {
	cmd.Flags().BoolVar(&f.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&f.markdown, "markdown", false, "Output as Markdown")
}

func (f *outputFlags) pick() format.Format {
	fallback := config.DefaultFormat
	if s, err := store(); err == nil {
		if cfg, errLoad := s.Load(); errLoad == nil {
			fallback = cfg.DefaultFormat
		}
	}
	return format.Pick(f.json, f.markdown, fallback)
}

// listFlags are the common pagination flags of list commands.
type listFlags struct {
	outputFlags
	limit      int
	after      string
	properties string
}

func addListFlags(cmd *cobra.Command, f *listFlags) {
	cmd.Flags().IntVarP(&f.limit, "limit", "n", 20, "Maximum number of results")
	cmd.Flags().StringVar(&f.after, "after", "", "Pagination cursor")
	cmd.Flags().StringVar(&f.properties, "properties", "", "Comma-separated properties to fetch")
	addOutputFlags(cmd, &f.outputFlags)
}

func (f *listFlags) options() hubspot.ListOptions {
	return hubspot.ListOptions{
		Limit:      f.limit,
		After:      f.after,
		Properties: splitProps(f.properties),
	}
}

func splitProps(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	props := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			props = append(props, p)
		}
	}
	return props
}

// printPage renders one page of records and, when more are available,
// the cursor for the next page.
func printPage(f *outputFlags, page *hubspot.Page, cols []format.Column) {
	switch f.pick() {
	case format.JSON:
		fmt.Println(format.JSONString(page))
	case format.Markdown:
		fmt.Print(format.MarkdownTable(page.Results, cols))
	default:
		format.Table(os.Stdout, page.Results, cols)
	}

	if after := page.NextAfter(); after != "" {
		fmt.Printf("\nNext page: --after %s\n", after)
	}
}

// printRecord renders a single record in the selected format.
func printRecord(f *outputFlags, record *hubspot.Record) {
	switch f.pick() {
	case format.JSON:
		fmt.Println(format.JSONString(record))
	case format.Markdown:
		fmt.Print(format.MarkdownDetails(record))
	default:
		format.Details(os.Stdout, record)
	}
}

// Init initializes logging, commands, and flags.
func Init() {
	environ, err := LoadEnv()
	if err != nil {
		log.Warnf("failed to parse environment: %v", err)
	}
	if environ.Debug {
		log.SetLevel(log.DebugLevel)
	}

	RootCmd.Version = Version
	RootCmd.SetVersionTemplate("hs version {{.Version}}\n")

	initAuthCommands()
	initAccountCommands()
	initContactCommands()
	initCompanyCommands()
	initDealCommands()
	initTicketCommands()
	initEngagementCommands()
	initAssociationCommands()
}

package format

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"hubspot-cli/internal/hubspot"
)

// Table writes records as an aligned table with the given columns.
func Table(w io.Writer, records []hubspot.Record, cols []Column) {
	cyan := color.New(color.FgCyan).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	headers := make([]string, len(cols))
	rules := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = cyan(col.Header)
		rules[i] = strings.Repeat("-", len(col.Header)+4)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	fmt.Fprintln(tw, strings.Join(rules, "\t"))

	for i := range records {
		values := make([]string, len(cols))
		for j, col := range cols {
			values[j] = truncate(columnValue(&records[i], col), 40)
		}
		fmt.Fprintln(tw, strings.Join(values, "\t"))
	}
}

// Details writes every set property of a record as key: value lines.
func Details(w io.Writer, r *hubspot.Record) {
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintf(w, "  %s: %s\n", cyan("ID"), r.ID)

	keys := make([]string, 0, len(r.Properties))
	for key := range r.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if value := r.Properties[key]; value != "" {
			fmt.Fprintf(w, "  %s: %s\n", cyan(key), value)
		}
	}
}

// PortalInfo writes the whoami summary.
func PortalInfo(w io.Writer, info *hubspot.PortalInfo) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(w, "  %s: %d\n", cyan("Portal ID"), info.PortalID)
	fmt.Fprintf(w, "  %s: %s\n", cyan("Timezone"), info.TimeZone)
	fmt.Fprintf(w, "  %s: %s\n", cyan("Currency"), info.Currency)
}

// Owners writes the owner list as a table.
func Owners(w io.Writer, owners []hubspot.Owner) {
	cyan := color.New(color.FgCyan).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "%s\t%s\t%s\n", cyan("ID"), cyan("Name"), cyan("Email"))
	for _, o := range owners {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", o.ID, strings.TrimSpace(o.FirstName+" "+o.LastName), o.Email)
	}
}

// Pipelines writes each pipeline with its ordered stages.
func Pipelines(w io.Writer, pipelines []hubspot.Pipeline) {
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, p := range pipelines {
		fmt.Fprintf(w, "%s (%s)\n", cyan(p.Label), p.ID)
		for _, s := range p.Stages {
			fmt.Fprintf(w, "  %s %s (%s)\n", yellow("•"), s.Label, s.ID)
		}
	}
}

// Associations writes association edges as a table.
func Associations(w io.Writer, associations []hubspot.Association) {
	cyan := color.New(color.FgCyan).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "%s\t%s\t%s\n", cyan("To Type"), cyan("To ID"), cyan("Association"))
	for _, a := range associations {
		label := ""
		if len(a.Types) > 0 {
			label = a.Types[0].Label
			if label == "" {
				label = fmt.Sprintf("type %d", a.Types[0].TypeID)
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.ToObjectType, a.ToObjectID, label)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

package format

import (
	"fmt"
	"sort"
	"strings"

	"hubspot-cli/internal/hubspot"
)

// MarkdownTable renders records as a Markdown table with the given columns.
func MarkdownTable(records []hubspot.Record, cols []Column) string {
	var b strings.Builder

	headers := make([]string, len(cols))
	rules := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.Header
		rules[i] = "---"
	}
	fmt.Fprintf(&b, "| %s |\n", strings.Join(headers, " | "))
	fmt.Fprintf(&b, "| %s |\n", strings.Join(rules, " | "))

	for i := range records {
		values := make([]string, len(cols))
		for j, col := range cols {
			values[j] = escapeCell(columnValue(&records[i], col))
		}
		fmt.Fprintf(&b, "| %s |\n", strings.Join(values, " | "))
	}
	return b.String()
}

// MarkdownDetails renders a single record as a field/value table.
func MarkdownDetails(r *hubspot.Record) string {
	var b strings.Builder
	b.WriteString("| Field | Value |\n| --- | --- |\n")
	fmt.Fprintf(&b, "| id | %s |\n", escapeCell(r.ID))
	for _, key := range sortedKeys(r.Properties) {
		if value := r.Properties[key]; value != "" {
			fmt.Fprintf(&b, "| %s | %s |\n", key, escapeCell(value))
		}
	}
	return b.String()
}

// MarkdownPortalInfo renders the whoami summary.
func MarkdownPortalInfo(info *hubspot.PortalInfo) string {
	var b strings.Builder
	b.WriteString("| Field | Value |\n| --- | --- |\n")
	fmt.Fprintf(&b, "| Portal ID | %d |\n", info.PortalID)
	fmt.Fprintf(&b, "| Timezone | %s |\n", info.TimeZone)
	fmt.Fprintf(&b, "| Currency | %s |\n", info.Currency)
	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Package format renders CRM objects as plain tables, JSON, or Markdown.
package format

import (
	"encoding/json"
	"fmt"

	"hubspot-cli/internal/hubspot"
)

// Format selects an output renderer.
type Format string

const (
	Plain    Format = "plain"
	JSON     Format = "json"
	Markdown Format = "markdown"
)

// Pick resolves the output format from the command flags, falling back to
// the configured default.
func Pick(jsonFlag, markdownFlag bool, fallback string) Format {
	switch {
	case jsonFlag:
		return JSON
	case markdownFlag:
		return Markdown
	case fallback == string(Markdown):
		return Markdown
	case fallback == string(JSON):
		return JSON
	default:
		return Plain
	}
}

// JSONString renders any value as indented JSON.
func JSONString(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(out)
}

// Column maps a table header to a record property. The special property
// "id" reads the record id instead of the property bag.
type Column struct {
	Header string
	Prop   string
}

func columnValue(r *hubspot.Record, col Column) string {
	if col.Prop == "id" {
		return r.ID
	}
	return r.Prop(col.Prop)
}

// Column sets matching the default properties each command fetches.
var (
	ContactColumns = []Column{
		{"ID", "id"}, {"Name", "firstname"}, {"Last", "lastname"},
		{"Email", "email"}, {"Phone", "phone"}, {"Company", "company"},
	}
	CompanyColumns = []Column{
		{"ID", "id"}, {"Name", "name"}, {"Domain", "domain"},
		{"Industry", "industry"}, {"City", "city"}, {"Country", "country"},
	}
	DealColumns = []Column{
		{"ID", "id"}, {"Name", "dealname"}, {"Amount", "amount"},
		{"Stage", "dealstage"}, {"Pipeline", "pipeline"}, {"Close", "closedate"},
	}
	TicketColumns = []Column{
		{"ID", "id"}, {"Subject", "subject"}, {"Stage", "hs_pipeline_stage"},
		{"Priority", "hs_ticket_priority"}, {"Created", "createdate"},
	}
	TaskColumns = []Column{
		{"ID", "id"}, {"Subject", "hs_task_subject"}, {"Status", "hs_task_status"},
		{"Priority", "hs_task_priority"}, {"Due", "hs_timestamp"},
	}
	NoteColumns = []Column{
		{"ID", "id"}, {"Note", "hs_note_body"}, {"Timestamp", "hs_timestamp"},
	}
)

package hubspot

import "context"

var (
	ticketListProps = []string{"subject", "content", "hs_pipeline", "hs_pipeline_stage", "hs_ticket_priority", "createdate"}
	ticketGetProps  = []string{"subject", "content", "hs_pipeline", "hs_pipeline_stage", "hs_ticket_priority", "hs_ticket_category", "createdate", "hs_lastmodifieddate"}
	ticketFindProps = []string{"subject", "content", "hs_pipeline_stage", "hs_ticket_priority"}
)

// ListTickets returns one page of tickets.
func (c *Client) ListTickets(ctx context.Context, opts ListOptions) (*Page, error) {
	return c.listObjects(ctx, "tickets", opts, ticketListProps)
}

// GetTicket returns a single ticket by id.
func (c *Client) GetTicket(ctx context.Context, id string, properties []string) (*Record, error) {
	return c.getObject(ctx, "tickets", id, properties, ticketGetProps)
}

// SearchTickets runs a free-text search across tickets.
func (c *Client) SearchTickets(ctx context.Context, query string, opts ListOptions) (*Page, error) {
	return c.searchObjects(ctx, "tickets", SearchRequest{
		Query:      query,
		Limit:      opts.Limit,
		After:      opts.After,
		Properties: opts.Properties,
	}, ticketFindProps)
}

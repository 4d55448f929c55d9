package hubspot

import "context"

var (
	contactListProps = []string{"email", "firstname", "lastname", "phone", "company", "jobtitle", "lifecyclestage", "createdate"}
	contactGetProps  = []string{"email", "firstname", "lastname", "phone", "company", "jobtitle", "lifecyclestage", "hs_lead_status", "createdate", "hs_lastmodifieddate"}
	contactFindProps = []string{"email", "firstname", "lastname", "phone", "company", "jobtitle"}
)

// ListContacts returns one page of contacts.
func (c *Client) ListContacts(ctx context.Context, opts ListOptions) (*Page, error) {
	return c.listObjects(ctx, "contacts", opts, contactListProps)
}

// GetContact returns a single contact by id.
func (c *Client) GetContact(ctx context.Context, id string, properties []string) (*Record, error) {
	return c.getObject(ctx, "contacts", id, properties, contactGetProps)
}

// SearchContacts runs a free-text search across contacts.
func (c *Client) SearchContacts(ctx context.Context, query string, opts ListOptions) (*Page, error) {
	return c.searchObjects(ctx, "contacts", SearchRequest{
		Query:      query,
		Limit:      opts.Limit,
		After:      opts.After,
		Properties: opts.Properties,
	}, contactFindProps)
}

// CreateContact creates a contact from raw property values.
func (c *Client) CreateContact(ctx context.Context, properties map[string]string) (*Record, error) {
	return c.createObject(ctx, "contacts", properties)
}

// UpdateContact patches the given properties on an existing contact.
func (c *Client) UpdateContact(ctx context.Context, id string, properties map[string]string) (*Record, error) {
	return c.updateObject(ctx, "contacts", id, properties)
}

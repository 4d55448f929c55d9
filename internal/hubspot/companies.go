package hubspot

import "context"

var (
	companyListProps = []string{"name", "domain", "industry", "phone", "city", "state", "country", "numberofemployees", "annualrevenue", "createdate"}
	companyGetProps  = []string{"name", "domain", "industry", "phone", "city", "state", "country", "numberofemployees", "annualrevenue", "description", "createdate", "hs_lastmodifieddate"}
	companyFindProps = []string{"name", "domain", "industry", "city", "state"}
)

// ListCompanies returns one page of companies.
func (c *Client) ListCompanies(ctx context.Context, opts ListOptions) (*Page, error) {
	return c.listObjects(ctx, "companies", opts, companyListProps)
}

// GetCompany returns a single company by id.
func (c *Client) GetCompany(ctx context.Context, id string, properties []string) (*Record, error) {
	return c.getObject(ctx, "companies", id, properties, companyGetProps)
}

// SearchCompanies runs a free-text search across companies.
func (c *Client) SearchCompanies(ctx context.Context, query string, opts ListOptions) (*Page, error) {
	return c.searchObjects(ctx, "companies", SearchRequest{
		Query:      query,
		Limit:      opts.Limit,
		After:      opts.After,
		Properties: opts.Properties,
	}, companyFindProps)
}

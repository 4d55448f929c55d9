package hubspot

import "context"

var (
	dealListProps = []string{"dealname", "amount", "dealstage", "pipeline", "closedate", "createdate"}
	dealGetProps  = []string{"dealname", "amount", "dealstage", "pipeline", "closedate", "hs_deal_stage_probability", "dealtype", "description", "createdate", "hs_lastmodifieddate"}
	dealFindProps = []string{"dealname", "amount", "dealstage", "pipeline", "closedate"}
)

// ListDeals returns one page of deals.
func (c *Client) ListDeals(ctx context.Context, opts ListOptions) (*Page, error) {
	return c.listObjects(ctx, "deals", opts, dealListProps)
}

// GetDeal returns a single deal by id.
func (c *Client) GetDeal(ctx context.Context, id string, properties []string) (*Record, error) {
	return c.getObject(ctx, "deals", id, properties, dealGetProps)
}

// SearchDeals runs a free-text search across deals.
func (c *Client) SearchDeals(ctx context.Context, query string, opts ListOptions) (*Page, error) {
	return c.searchObjects(ctx, "deals", SearchRequest{
		Query:      query,
		Limit:      opts.Limit,
		After:      opts.After,
		Properties: opts.Properties,
	}, dealFindProps)
}

// FilterDeals lists deals restricted to a pipeline and/or stage using the
// search API with equality filters.
func (c *Client) FilterDeals(ctx context.Context, pipeline, stage string, opts ListOptions) (*Page, error) {
	var filters []Filter
	if pipeline != "" {
		filters = append(filters, Filter{PropertyName: "pipeline", Operator: "EQ", Value: pipeline})
	}
	if stage != "" {
		filters = append(filters, Filter{PropertyName: "dealstage", Operator: "EQ", Value: stage})
	}

	req := SearchRequest{
		Limit:      opts.Limit,
		After:      opts.After,
		Properties: opts.Properties,
	}
	if len(filters) > 0 {
		req.FilterGroups = []FilterGroup{{Filters: filters}}
	}
	return c.searchObjects(ctx, "deals", req, dealFindProps)
}

// DealPipelines returns every deal pipeline with its stages.
func (c *Client) DealPipelines(ctx context.Context) ([]Pipeline, error) {
	var resp struct {
		Results []Pipeline `json:"results"`
	}
	if err := c.do(ctx, "GET", "/crm/v3/pipelines/deals", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

package hubspot

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// Generic helpers over the v3 objects API. The per-object files supply
// default property lists matching what the CLI displays.

func (c *Client) listObjects(ctx context.Context, objectType string, opts ListOptions, defaults []string) (*Page, error) {
	query := url.Values{}
	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	query.Set("limit", strconv.Itoa(limit))
	if opts.After != "" {
		query.Set("after", opts.After)
	}
	props := opts.Properties
	if len(props) == 0 {
		props = defaults
	}
	query.Set("properties", strings.Join(props, ","))

	var page Page
	if err := c.do(ctx, "GET", "/crm/v3/objects/"+objectType, query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) getObject(ctx context.Context, objectType, id string, properties, defaults []string) (*Record, error) {
	props := properties
	if len(props) == 0 {
		props = defaults
	}
	query := url.Values{}
	query.Set("properties", strings.Join(props, ","))

	var record Record
	if err := c.do(ctx, "GET", "/crm/v3/objects/"+objectType+"/"+url.PathEscape(id), query, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) searchObjects(ctx context.Context, objectType string, req SearchRequest, defaults []string) (*Page, error) {
	if req.Limit <= 0 {
		req.Limit = 20
	}
	if len(req.Properties) == 0 {
		req.Properties = defaults
	}

	var page Page
	if err := c.do(ctx, "POST", "/crm/v3/objects/"+objectType+"/search", nil, req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

type propertiesBody struct {
	Properties map[string]string `json:"properties"`
}

func (c *Client) createObject(ctx context.Context, objectType string, properties map[string]string) (*Record, error) {
	var record Record
	if err := c.do(ctx, "POST", "/crm/v3/objects/"+objectType, nil, propertiesBody{Properties: properties}, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) updateObject(ctx context.Context, objectType, id string, properties map[string]string) (*Record, error) {
	var record Record
	if err := c.do(ctx, "PATCH", "/crm/v3/objects/"+objectType+"/"+url.PathEscape(id), nil, propertiesBody{Properties: properties}, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

package hubspot

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// associationTypeIDs maps object type pairs to HubSpot-defined
// association type ids.
var associationTypeIDs = map[string]map[string]int{
	"contacts":  {"companies": 1, "deals": 3, "tickets": 15},
	"companies": {"contacts": 2, "deals": 5, "tickets": 25},
	"deals":     {"contacts": 4, "companies": 6, "tickets": 27},
	"tickets":   {"contacts": 16, "companies": 26, "deals": 28},
	"notes":     {"contacts": 202, "companies": 190, "deals": 214, "tickets": 226},
	"tasks":     {"contacts": 204, "companies": 192, "deals": 216, "tickets": 228},
}

func associationTypeID(fromType, toType string) int {
	return associationTypeIDs[fromType][toType]
}

type associationEdge struct {
	ToObjectID       int64             `json:"toObjectId"`
	AssociationTypes []AssociationType `json:"associationTypes"`
}

type associationPage struct {
	Results []associationEdge `json:"results"`
	Paging  *Paging           `json:"paging,omitempty"`
}

// ListAssociations returns the objects of toType associated with one
// object of fromType.
func (c *Client) ListAssociations(ctx context.Context, fromType, fromID, toType string, opts ListOptions) ([]Association, *Paging, error) {
	query := url.Values{}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.After != "" {
		query.Set("after", opts.After)
	}

	path := fmt.Sprintf("/crm/v4/objects/%s/%s/associations/%s", fromType, url.PathEscape(fromID), toType)
	var page associationPage
	if err := c.do(ctx, "GET", path, query, nil, &page); err != nil {
		return nil, nil, err
	}

	associations := make([]Association, 0, len(page.Results))
	for _, edge := range page.Results {
		associations = append(associations, Association{
			FromObjectType: fromType,
			FromObjectID:   fromID,
			ToObjectType:   toType,
			ToObjectID:     strconv.FormatInt(edge.ToObjectID, 10),
			Types:          edge.AssociationTypes,
		})
	}
	return associations, page.Paging, nil
}

type associationSpec struct {
	AssociationCategory string `json:"associationCategory"`
	AssociationTypeID   int    `json:"associationTypeId"`
}

// CreateAssociation links two objects with the HubSpot-defined
// association type for the pair.
func (c *Client) CreateAssociation(ctx context.Context, fromType, fromID, toType, toID string) error {
	typeID := associationTypeID(fromType, toType)
	if typeID == 0 {
		return fmt.Errorf("no known association type between %s and %s", fromType, toType)
	}

	path := fmt.Sprintf("/crm/v4/objects/%s/%s/associations/%s/%s",
		fromType, url.PathEscape(fromID), toType, url.PathEscape(toID))
	body := []associationSpec{{AssociationCategory: "HUBSPOT_DEFINED", AssociationTypeID: typeID}}
	return c.do(ctx, "PUT", path, nil, body, nil)
}

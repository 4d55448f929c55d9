package hubspot

import (
	"context"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// GetPortalInfo fetches details about the authenticated portal and
// remembers the portal id in the config store.
func (c *Client) GetPortalInfo(ctx context.Context) (*PortalInfo, error) {
	var info PortalInfo
	if err := c.do(ctx, "GET", "/account-info/v3/details", nil, nil, &info); err != nil {
		return nil, err
	}

	if err := c.Store.SetPortalID(strconv.FormatInt(info.PortalID, 10)); err != nil {
		log.Warnf("failed to save portal id: %v", err)
	}
	return &info, nil
}

// GetOwners lists the portal's record owners.
func (c *Client) GetOwners(ctx context.Context) ([]Owner, error) {
	var resp struct {
		Results []Owner `json:"results"`
	}
	if err := c.do(ctx, "GET", "/crm/v3/owners", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

package folio

import (
	"context"
	"errors"
)

// Instances resolves an HRID to the IDs of every matching instance record,
// in the order Okapi returns them. Zero, one or many matches are all normal
// outcomes.
func (c *Client) Instances(ctx context.Context, hrid string) ([]string, error) {
	var body instancesResponse
	if err := c.search(ctx, instancesEndpoint, "hrid", hrid, &body); err != nil {
		return c.empty(err, "hrid", hrid)
	}
	return recordIDs(body.Instances), nil
}

// Holdings resolves an instance ID to the IDs of its holdings records.
func (c *Client) Holdings(ctx context.Context, instanceID string) ([]string, error) {
	var body holdingsResponse
	if err := c.search(ctx, holdingsEndpoint, "instanceId", instanceID, &body); err != nil {
		return c.empty(err, "instance_id", instanceID)
	}
	return recordIDs(body.HoldingsRecords), nil
}

// Items resolves a holdings record ID to the IDs of its item records.
func (c *Client) Items(ctx context.Context, holdingID string) ([]string, error) {
	var body itemsResponse
	if err := c.search(ctx, itemsEndpoint, "holdingsRecordId", holdingID, &body); err != nil {
		return c.empty(err, "holding_id", holdingID)
	}
	return recordIDs(body.Items), nil
}

// empty applies the shared soft-failure policy: an unparsable response body
// counts as zero matches and only gets a diagnostic, while transport faults
// propagate to the caller.
func (c *Client) empty(err error, key, value string) ([]string, error) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		c.logger.Warn().
			Err(parseErr.Err).
			Str(key, value).
			Str("endpoint", parseErr.Endpoint).
			Msg("Could not parse Okapi response, treating as no matches")
		return recordIDs(nil), nil
	}
	return nil, err
}

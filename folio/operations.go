package folio

import (
	"context"

	"github.com/rs/zerolog"
)

// Operations drives the HRID resolution pipeline
type Operations struct {
	client *Client
	logger zerolog.Logger
}

// NewOperations creates a new Operations instance
func NewOperations(client *Client, logger zerolog.Logger) *Operations {
	return &Operations{
		client: client,
		logger: logger,
	}
}

// GetRecords resolves an HRID to the item record IDs attached to it, grouped
// by holding. Authentication happens once, then the traversal fans out
// depth-first: instances in the order Okapi returned them, holdings per
// instance, items per holding. One group is appended per holding visited,
// and a holding with zero items still contributes an empty group. When no
// instance matches, holdings and items are never queried.
//
// A lookup whose response cannot be parsed contributes nothing for its
// branch without disturbing siblings; transport faults abort the run.
func (o *Operations) GetRecords(ctx context.Context, username, password, hrid string) ([][]string, error) {
	if _, err := o.client.Login(ctx, username, password); err != nil {
		return nil, err
	}
	o.client.StageBreak()

	instanceIDs, err := o.client.Instances(ctx, hrid)
	if err != nil {
		return nil, err
	}
	o.client.StageBreak()

	groups := make([][]string, 0)
	if len(instanceIDs) == 0 {
		o.logger.Debug().Str("hrid", hrid).Msg("No instances matched, skipping holdings and items")
		return groups, nil
	}

	for _, instanceID := range instanceIDs {
		holdingIDs, err := o.client.Holdings(ctx, instanceID)
		if err != nil {
			return nil, err
		}
		o.client.StageBreak()

		for _, holdingID := range holdingIDs {
			itemIDs, err := o.client.Items(ctx, holdingID)
			if err != nil {
				return nil, err
			}
			o.client.StageBreak()

			groups = append(groups, itemIDs)
		}
	}

	o.logger.Debug().
		Str("hrid", hrid).
		Int("instances", len(instanceIDs)).
		Int("holdings", len(groups)).
		Msg("Resolved HRID")

	return groups, nil
}

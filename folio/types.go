package folio

// record is the slice of a storage-module record the pipeline cares about.
// IDs are treated as opaque keys.
type record struct {
	ID string `json:"id"`
}

// instancesResponse is the body of an instance-storage query
type instancesResponse struct {
	Instances []record `json:"instances"`
}

// holdingsResponse is the body of a holdings-storage query
type holdingsResponse struct {
	HoldingsRecords []record `json:"holdingsRecords"`
}

// itemsResponse is the body of an item-storage query
type itemsResponse struct {
	Items []record `json:"items"`
}

// recordIDs extracts the IDs in response order. Always non-nil so that an
// empty group keeps its position when collected into the pipeline output.
func recordIDs(records []record) []string {
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ID)
	}
	return ids
}

package domain

// Location is the immutable reference data for one store, looked up by its
// opaque POS location token. Multiple locations may share a timezone.
type Location struct {
	Token      string `json:"-"` // POS credential, never serialized
	LocationID string `json:"location_id"`
	Name       string `json:"name"`
	Timezone   string `json:"timezone"` // IANA zone name
	State      string `json:"state"`
	Active     bool   `json:"active"`
}

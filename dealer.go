package dealerscout

import "sort"

// Dealer represents a single used-car dealer discovered through the places
// provider. All fields are provider-sourced; PlaceID is the provider's
// opaque, unique identifier for the business.
type Dealer struct {
	PlaceID string `json:"placeId"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`

	// Display extras fetched in the same detail call.
	Rating  float64  `json:"rating,omitempty"`
	Reviews int      `json:"reviews,omitempty"`
	Hours   []string `json:"hours,omitempty"`
}

// Validate returns an error if the dealer contains invalid fields.
func (d *Dealer) Validate() error {
	if d.PlaceID == "" {
		return Errorf(EINVALID, "dealer place ID required")
	}
	if d.Name == "" {
		return Errorf(EINVALID, "dealer name required")
	}
	return nil
}

// DealerSet accumulates dealers keyed by place ID. Multiple keyword queries
// and result pages may discover the same business; inserting an existing
// place ID overwrites the earlier entry (last write wins).
type DealerSet struct {
	m map[string]*Dealer
}

// NewDealerSet returns an empty DealerSet.
func NewDealerSet() *DealerSet {
	return &DealerSet{m: make(map[string]*Dealer)}
}

// Add inserts or replaces the dealer keyed by its place ID. It reports
// whether an existing entry was overwritten.
func (s *DealerSet) Add(d *Dealer) bool {
	_, seen := s.m[d.PlaceID]
	s.m[d.PlaceID] = d
	return seen
}

// Len returns the number of unique dealers in the set.
func (s *DealerSet) Len() int {
	return len(s.m)
}

// Dealers returns the dealers sorted by name for stable rendering. The
// discovery order is not preserved.
func (s *DealerSet) Dealers() []*Dealer {
	out := make([]*Dealer, 0, len(s.m))
	for _, d := range s.m {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].PlaceID < out[j].PlaceID
	})
	return out
}

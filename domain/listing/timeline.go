package listing

import "time"

// Timeline is the set of partitioned views over one listing snapshot. It is
// derived and non-owning: every partition aliases the input slice and is
// recomputed on each read.
type Timeline struct {
	All        []*Listing              `json:"all"`
	ByCategory map[Category][]*Listing `json:"byCategory"`
	Trending   []*Listing              `json:"trending"`
	Expired    []*Listing              `json:"expired"`
	Unexpired  []*Listing              `json:"unexpired"`
}

// Aggregate partitions one coherent snapshot against one instant. Input order
// is preserved in every partition; trending imposes no ranking beyond the
// views > 0 filter.
func Aggregate(listings []*Listing, now time.Time) *Timeline {
	t := &Timeline{
		All:        listings,
		ByCategory: make(map[Category][]*Listing, len(Categories)),
		Trending:   []*Listing{},
		Expired:    []*Listing{},
		Unexpired:  []*Listing{},
	}
	for _, cat := range Categories {
		t.ByCategory[cat] = []*Listing{}
	}
	for _, l := range listings {
		if IsExpired(l.ExpireAt, now) {
			t.Expired = append(t.Expired, l)
			continue
		}
		t.Unexpired = append(t.Unexpired, l)
		t.ByCategory[l.Category] = append(t.ByCategory[l.Category], l)
		if l.Views > 0 {
			t.Trending = append(t.Trending, l)
		}
	}
	return t
}

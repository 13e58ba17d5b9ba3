package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	listings := []*Listing{
		{Id: "a", Category: CategorySneakers, ExpireAt: future, Views: 3},
		{Id: "b", Category: CategoryTech, ExpireAt: past, Views: 9},
		{Id: "c", Category: CategorySneakers, ExpireAt: future},
		{Id: "d", Category: CategoryTech, ExpireAt: future, Views: 1},
		{Id: "e", Category: CategoryAntiques, ExpireAt: past},
		{Id: "f", Category: CategoryCollectibles, ExpireAt: future},
	}

	tl := Aggregate(listings, now)

	assert.Len(t, tl.All, 6)
	assert.Len(t, tl.Expired, 2)
	assert.Len(t, tl.Unexpired, 4)

	// expired listings never surface in category or trending partitions
	assert.Len(t, tl.ByCategory[CategorySneakers], 2)
	assert.Len(t, tl.ByCategory[CategoryTech], 1)
	assert.Len(t, tl.ByCategory[CategoryCollectibles], 1)

	// every category bucket exists even when empty
	assert.NotNil(t, tl.ByCategory[CategoryAntiques])
	assert.Empty(t, tl.ByCategory[CategoryAntiques])
	assert.NotNil(t, tl.ByCategory[CategoryAccessories])

	// trending keeps input order and requires at least one view
	assert.Len(t, tl.Trending, 2)
	assert.Equal(t, "a", tl.Trending[0].Id)
	assert.Equal(t, "d", tl.Trending[1].Id)
}

func TestAggregateEmpty(t *testing.T) {
	tl := Aggregate([]*Listing{}, time.Now())

	assert.Empty(t, tl.All)
	assert.Empty(t, tl.Expired)
	assert.Empty(t, tl.Trending)
	assert.Len(t, tl.ByCategory, len(Categories))
}

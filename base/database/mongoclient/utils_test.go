package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/gavelapp/goapi/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type PatchableListing struct {
		Title       *string `bson:"title,omitempty"`
		Weight      *int    `bson:"weight,omitempty"`
		Description string  `bson:"desc"`
		Image       string  `bson:"image"`
	}

	patchable := &PatchableListing{}
	patchable.Title = ptr.String("")
	patchable.Weight = ptr.Int(10)
	patchable.Image = "ipfs://cover.png"

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"title":  "",
			"weight": 10,
			// desc is empty, so ignored
			"image": "ipfs://cover.png",
		},
		updater,
	)
}

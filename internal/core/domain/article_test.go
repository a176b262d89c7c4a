package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyBlock_DecodesMediaBlocks(t *testing.T) {
	raw := `[
		{"_type": "block", "_key": "p1", "children": [{"text": "Hello"}]},
		{"_type": "imageReference", "_key": "i1", "customCaption": "On the 18th",
		 "asset": {"_id": "dam-1", "credit": "Getty", "image": {"asset": {"_id": "image-abc-1600x900-jpg"}}}},
		{"_type": "externalVideoReference", "_key": "v1", "displayMode": "modal",
		 "video": {"platform": "youtube", "videoId": "dQw4w9WgXcQ", "slug": {"current": "swing-tips"}}},
		{"_type": "nativeVideoReference", "_key": "n1", "autoplay": true,
		 "asset": {"_id": "vid-1", "videoFile": {"asset": {"_ref": "file-xyz-mp4"}}}}
	]`

	var blocks []BodyBlock
	require.NoError(t, json.Unmarshal([]byte(raw), &blocks))
	require.Len(t, blocks, 4)

	assert.Equal(t, BlockTypeText, blocks[0].Type)
	assert.Nil(t, blocks[0].Image)

	require.NotNil(t, blocks[1].Image)
	assert.Equal(t, "i1", blocks[1].Key)
	assert.Equal(t, "On the 18th", blocks[1].Image.EffectiveCaption())
	assert.Equal(t, "Getty", blocks[1].Image.PhotoCredit())

	require.NotNil(t, blocks[2].ExternalVideo)
	assert.True(t, blocks[2].ExternalVideo.HasAsset())
	assert.Equal(t, DisplayModeModal, blocks[2].ExternalVideo.Mode())

	require.NotNil(t, blocks[3].NativeVideo)
	assert.True(t, blocks[3].NativeVideo.Autoplay)
	assert.Equal(t, "file-xyz-mp4", blocks[3].NativeVideo.Asset.VideoFile.Asset.Identifier())
}

func TestBodyBlock_RoundTripsRaw(t *testing.T) {
	raw := `{"_type":"block","_key":"p1","style":"h2"}`

	var b BodyBlock
	require.NoError(t, json.Unmarshal([]byte(raw), &b))

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestBodyBlock_InvalidJSON(t *testing.T) {
	var b BodyBlock
	assert.Error(t, json.Unmarshal([]byte(`"not an object"`), &b))
}

func TestArticle_Attributions(t *testing.T) {
	legacy := &Article{Author: &AuthorSummary{Name: "Jane Smith"}}
	attrs := legacy.Attributions()
	require.Len(t, attrs, 1)
	assert.Equal(t, RoleAuthor, attrs[0].Role)
	assert.Equal(t, 1, attrs[0].Order)

	multi := &Article{
		Author:  &AuthorSummary{Name: "Ignored"},
		Authors: []ArticleAuthor{author("A", RoleAuthor, 1), author("B", RoleEditor, 2)},
	}
	assert.Equal(t, []string{"A", "B"}, names(multi.Attributions()))

	assert.Nil(t, (&Article{}).Attributions())
}

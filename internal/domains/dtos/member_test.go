package dtos

import (
	"encoding/json"
	"testing"

	"github.com/groupfbmap/groupmap/internal/domains/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 { return &v }

func TestMemberCreateRequestValidate(t *testing.T) {
	valid := MemberCreateRequest{
		FirstName:       "Alice",
		GroupProfileUrl: "https://www.facebook.com/groups/123/user/456",
		Latitude:        float64Ptr(40.0),
		Longitude:       float64Ptr(-70.0),
	}
	assert.NoError(t, valid.Validate())

	for _, mutate := range []func(*MemberCreateRequest){
		func(r *MemberCreateRequest) { r.FirstName = "" },
		func(r *MemberCreateRequest) { r.GroupProfileUrl = "" },
		func(r *MemberCreateRequest) { r.Latitude = nil },
		func(r *MemberCreateRequest) { r.Longitude = nil },
	} {
		req := valid
		mutate(&req)
		assert.ErrorIs(t, req.Validate(), ErrMissingMemberFields)
	}
}

func TestUploadUrlRequestValidate(t *testing.T) {
	assert.NoError(t, UploadUrlRequest{Filename: "x.png", ContentType: "image/png"}.Validate())
	assert.ErrorIs(t, UploadUrlRequest{ContentType: "image/png"}.Validate(), ErrMissingUploadFields)
	assert.ErrorIs(t, UploadUrlRequest{Filename: "x.png"}.Validate(), ErrMissingUploadFields)
}

func TestMemberViewFromEntityHidesToken(t *testing.T) {
	pictureUrl := "https://bucket.s3.us-west-2.amazonaws.com/avatars/abc.png"
	member := entities.Member{
		GroupId:           "123",
		MemberId:          "456",
		FirstName:         "Alice",
		GroupProfileUrl:   "https://www.facebook.com/groups/123/user/456",
		Latitude:          40.007,
		Longitude:         -70.006,
		DeleteToken:       "0123456789abcdef0123456789abcdef",
		ProfilePictureUrl: &pictureUrl,
	}

	viewJson, err := json.Marshal(MemberViewFromEntity(member))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(viewJson, &fields))
	assert.Equal(t, "Alice", fields["first_name"])
	assert.Equal(t, pictureUrl, fields["profile_picture_url"])
	assert.NotContains(t, fields, "delete_token")
	assert.NotContains(t, fields, "member_id")
	assert.NotContains(t, fields, "group_id")
}

func TestMemberViewNullPicture(t *testing.T) {
	viewJson, err := json.Marshal(MemberViewFromEntity(entities.Member{FirstName: "Bob"}))
	require.NoError(t, err)
	assert.Contains(t, string(viewJson), `"profile_picture_url":null`)
}

func TestMemberViewsFromEntitiesEmpty(t *testing.T) {
	views := MemberViewsFromEntities(nil)
	require.NotNil(t, views)

	viewsJson, err := json.Marshal(views)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(viewsJson))
}

package dtos

import (
	"errors"

	"github.com/groupfbmap/groupmap/internal/domains/entities"
)

type MemberCreateRequest struct {
	FirstName           string   `json:"first_name"`
	GroupProfileUrl     string   `json:"group_profile_url"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	ProfilePictureS3Key string   `json:"profile_picture_s3_key,omitempty"`
}

var ErrMissingMemberFields = errors.New(
	"missing required fields: first_name, group_profile_url, latitude, longitude",
)

// Validate checks field presence only. URL format and the avatar key prefix
// are checked by the handler after this passes.
func (r MemberCreateRequest) Validate() error {
	if r.FirstName == "" || r.GroupProfileUrl == "" || r.Latitude == nil || r.Longitude == nil {
		return ErrMissingMemberFields
	}
	return nil
}

type MemberCreateResponse struct {
	DeleteToken string `json:"delete_token"`
}

type MemberDeleteRequest struct {
	DeleteToken string `json:"delete_token"`
}

// MemberView is the public projection of a member. The delete token and
// member id are deliberately absent.
type MemberView struct {
	FirstName         string  `json:"first_name"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	ProfilePictureUrl *string `json:"profile_picture_url"`
	GroupProfileUrl   string  `json:"group_profile_url"`
}

func MemberViewFromEntity(member entities.Member) MemberView {
	return MemberView{
		FirstName:         member.FirstName,
		Latitude:          member.Latitude,
		Longitude:         member.Longitude,
		ProfilePictureUrl: member.ProfilePictureUrl,
		GroupProfileUrl:   member.GroupProfileUrl,
	}
}

func MemberViewsFromEntities(members []entities.Member) []MemberView {
	views := make([]MemberView, 0, len(members))
	for _, member := range members {
		views = append(views, MemberViewFromEntity(member))
	}
	return views
}

type ErrorResponse struct {
	Error string `json:"error"`
}

package entities

import "time"

// Member is one map pin. Attribute names match the existing GroupMembers
// table: group_id is the partition key, member_id the sort key, and
// delete_token is indexed by the DeleteTokenIndex GSI.
type Member struct {
	GroupId           string    `dynamodbav:"group_id"`
	MemberId          string    `dynamodbav:"member_id"`
	FirstName         string    `dynamodbav:"first_name"`
	GroupProfileUrl   string    `dynamodbav:"group_profile_url"`
	Latitude          float64   `dynamodbav:"latitude"`
	Longitude         float64   `dynamodbav:"longitude"`
	DeleteToken       string    `dynamodbav:"delete_token"`
	ProfilePictureUrl *string   `dynamodbav:"profile_picture_url"`
	CreatedAt         time.Time `dynamodbav:"createdAt"`
}

package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/groupfbmap/groupmap/internal/domains/entities"
	"github.com/groupfbmap/groupmap/pkg/logging"
	"go.uber.org/zap"
)

const deleteTokenIndexName = "DeleteTokenIndex"

var ErrMemberNotFound = fmt.Errorf("member not found")

// PutMember writes the member, silently replacing any existing record with
// the same (group_id, member_id). Resubmission is an overwrite, not an error.
func (client *Client) PutMember(ctx context.Context, member entities.Member) error {
	av, err := attributevalue.MarshalMap(member)
	if err != nil {
		return fmt.Errorf("failed to marshal member: %w", err)
	}

	_, err = client.dynamodb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: client.cfg.MembersTableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put member: %w", err)
	}
	return nil
}

// FetchMembers returns every member of a group, projected down to the public
// display attributes. Order is whatever the table returns.
func (client *Client) FetchMembers(ctx context.Context, groupId string) ([]entities.Member, error) {
	output, err := client.dynamodb.Query(ctx, &dynamodb.QueryInput{
		TableName:              client.cfg.MembersTableName,
		KeyConditionExpression: aws.String("group_id = :groupId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":groupId": &types.AttributeValueMemberS{Value: groupId},
		},
		ProjectionExpression: aws.String(
			"first_name, latitude, longitude, profile_picture_url, group_profile_url",
		),
	})
	if err != nil {
		return nil, err
	}
	var members []entities.Member
	if err := attributevalue.UnmarshalListOfMaps(output.Items, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// GetMemberByDeleteToken resolves a delete token to its owning record via the
// GSI, projecting only the keys and avatar URL needed for removal. Tokens are
// unique in practice; if the index ever yields more than one item the first
// is used and a warning logged.
func (client *Client) GetMemberByDeleteToken(ctx context.Context, deleteToken string) (entities.Member, error) {
	output, err := client.dynamodb.Query(ctx, &dynamodb.QueryInput{
		TableName:              client.cfg.MembersTableName,
		IndexName:              aws.String(deleteTokenIndexName),
		KeyConditionExpression: aws.String("delete_token = :deleteToken"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":deleteToken": &types.AttributeValueMemberS{Value: deleteToken},
		},
		ProjectionExpression: aws.String("group_id, member_id, profile_picture_url"),
	})
	if err != nil {
		return entities.Member{}, err
	}
	if len(output.Items) == 0 {
		return entities.Member{}, ErrMemberNotFound
	}
	if len(output.Items) > 1 {
		logging.Warn(
			"multiple members found for one delete token, using the first",
			zap.Int("count", len(output.Items)),
		)
	}
	var member entities.Member
	if err := attributevalue.UnmarshalMap(output.Items[0], &member); err != nil {
		return entities.Member{}, err
	}
	return member, nil
}

// DeleteMember removes the record keyed by (group_id, member_id). Deleting an
// absent key succeeds, so racing removals do not error.
func (client *Client) DeleteMember(ctx context.Context, groupId, memberId string) error {
	_, err := client.dynamodb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: client.cfg.MembersTableName,
		Key: map[string]types.AttributeValue{
			"group_id":  &types.AttributeValueMemberS{Value: groupId},
			"member_id": &types.AttributeValueMemberS{Value: memberId},
		},
	})
	if err != nil {
		return err
	}
	return nil
}

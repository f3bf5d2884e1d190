package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/groupfbmap/groupmap/internal/aws/avatars"
	"github.com/groupfbmap/groupmap/internal/aws/storage"
	"github.com/groupfbmap/groupmap/internal/domains/dtos"
	"github.com/groupfbmap/groupmap/pkg/logging"
	"github.com/groupfbmap/groupmap/pkg/token"
	"go.uber.org/zap"
)

var (
	storageClient *storage.Client
	avatarsClient *avatars.Client
)

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
	avatarsClient = avatars.NewClient(s3.NewFromConfig(cfg))
}

func handler(
	ctx context.Context,
	event events.APIGatewayProxyRequest,
) (
	events.APIGatewayProxyResponse,
	error,
) {
	var req dtos.MemberDeleteRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return errorResponse(http.StatusBadRequest, "Invalid request body format.")
	}
	if !token.ValidDeleteToken(req.DeleteToken) {
		return errorResponse(http.StatusBadRequest, "Missing or invalid delete_token format.")
	}

	member, err := storageClient.GetMemberByDeleteToken(ctx, req.DeleteToken)
	if err != nil {
		if errors.Is(err, storage.ErrMemberNotFound) {
			return errorResponse(http.StatusNotFound, "Delete token not found.")
		}
		logging.Error("failed to look up delete token", zap.Error(err))
		return errorResponse(http.StatusInternalServerError, "Error finding entry to delete.")
	}

	// Best effort: a missing object or bad URL never blocks record deletion.
	if member.ProfilePictureUrl != nil {
		deleteAvatar(ctx, *member.ProfilePictureUrl)
	}

	if err := storageClient.DeleteMember(ctx, member.GroupId, member.MemberId); err != nil {
		logging.Error(
			"failed to delete member",
			zap.String("group_id", member.GroupId),
			zap.String("member_id", member.MemberId),
			zap.Error(err),
		)
		return errorResponse(http.StatusInternalServerError, "Could not delete member entry.")
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusNoContent,
		Headers: map[string]string{
			"Access-Control-Allow-Origin": "*",
		},
	}, nil
}

func deleteAvatar(ctx context.Context, pictureUrl string) {
	key, err := avatars.KeyFromUrl(pictureUrl)
	if err != nil {
		logging.Warn("failed to parse avatar url", zap.String("url", pictureUrl), zap.Error(err))
		return
	}
	if err := avatarsClient.DeleteObject(ctx, key); err != nil {
		logging.Warn("failed to delete avatar object", zap.String("key", key), zap.Error(err))
	}
}

func errorResponse(status int, message string) (events.APIGatewayProxyResponse, error) {
	bodyJson, err := json.Marshal(dtos.ErrorResponse{Error: message})
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(bodyJson),
	}, nil
}

func main() {
	lambda.Start(handler)
}

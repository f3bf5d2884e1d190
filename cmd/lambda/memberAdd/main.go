package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/groupfbmap/groupmap/internal/aws/avatars"
	"github.com/groupfbmap/groupmap/internal/aws/storage"
	"github.com/groupfbmap/groupmap/internal/domains/dtos"
	"github.com/groupfbmap/groupmap/internal/domains/entities"
	"github.com/groupfbmap/groupmap/pkg/dither"
	"github.com/groupfbmap/groupmap/pkg/fburl"
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
	var req dtos.MemberCreateRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return errorResponse(http.StatusBadRequest, "Invalid request body format.")
	}
	if err := req.Validate(); err != nil {
		return errorResponse(http.StatusBadRequest, "Missing required fields: first_name, group_profile_url, latitude, longitude.")
	}

	groupId, memberId, err := fburl.ParseGroupProfile(req.GroupProfileUrl)
	if err != nil {
		return errorResponse(http.StatusBadRequest, "Invalid Facebook Group Profile URL format. Expected format: https://www.facebook.com/groups/{group_id}/user/{member_id}")
	}

	member := entities.Member{
		GroupId:         groupId,
		MemberId:        memberId,
		FirstName:       req.FirstName,
		GroupProfileUrl: req.GroupProfileUrl,
		Latitude:        dither.Coordinate(*req.Latitude),
		Longitude:       dither.Coordinate(*req.Longitude),
		DeleteToken:     token.NewDeleteToken(),
		CreatedAt:       time.Now().UTC(),
	}
	if req.ProfilePictureS3Key != "" {
		if avatars.ValidObjectKey(req.ProfilePictureS3Key) {
			pictureUrl := avatarsClient.PublicUrl(req.ProfilePictureS3Key)
			member.ProfilePictureUrl = &pictureUrl
		} else {
			logging.Warn(
				"dropping avatar key outside the avatar prefix",
				zap.String("key", req.ProfilePictureS3Key),
			)
		}
	}

	if err := storageClient.PutMember(ctx, member); err != nil {
		logging.Error("failed to put member", zap.Error(err))
		return errorResponse(http.StatusInternalServerError, "Could not add member entry.")
	}

	return jsonResponse(http.StatusCreated, dtos.MemberCreateResponse{
		DeleteToken: member.DeleteToken,
	})
}

func jsonResponse(status int, body interface{}) (events.APIGatewayProxyResponse, error) {
	bodyJson, err := json.Marshal(body)
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

func errorResponse(status int, message string) (events.APIGatewayProxyResponse, error) {
	return jsonResponse(status, dtos.ErrorResponse{Error: message})
}

func main() {
	lambda.Start(handler)
}

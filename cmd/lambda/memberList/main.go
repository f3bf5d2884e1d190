package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/groupfbmap/groupmap/internal/aws/storage"
	"github.com/groupfbmap/groupmap/internal/domains/dtos"
	"github.com/groupfbmap/groupmap/pkg/logging"
	"go.uber.org/zap"
)

var storageClient *storage.Client

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	storageClient = storage.NewClient(dynamodb.NewFromConfig(cfg))
}

func handler(
	ctx context.Context,
	event events.APIGatewayProxyRequest,
) (
	events.APIGatewayProxyResponse,
	error,
) {
	groupId := event.PathParameters["group_id"]
	if groupId == "" {
		return errorResponse(http.StatusBadRequest, "Missing group_id path parameter.")
	}

	members, err := storageClient.FetchMembers(ctx, groupId)
	if err != nil {
		logging.Error("failed to fetch members", zap.String("group_id", groupId), zap.Error(err))
		return errorResponse(http.StatusInternalServerError, "Could not retrieve group members.")
	}

	return jsonResponse(http.StatusOK, dtos.MemberViewsFromEntities(members))
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

package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/groupfbmap/groupmap/internal/aws/avatars"
	"github.com/groupfbmap/groupmap/internal/domains/dtos"
	"github.com/groupfbmap/groupmap/pkg/logging"
	"go.uber.org/zap"
)

var avatarsClient *avatars.Client

func init() {
	cfg, _ := config.LoadDefaultConfig(context.TODO())
	avatarsClient = avatars.NewClient(s3.NewFromConfig(cfg))
}

func handler(
	ctx context.Context,
	event events.APIGatewayProxyRequest,
) (
	events.APIGatewayProxyResponse,
	error,
) {
	var req dtos.UploadUrlRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return errorResponse(http.StatusBadRequest, "Invalid request body.")
	}
	if err := req.Validate(); err != nil {
		return errorResponse(http.StatusBadRequest, "Missing required fields: filename and contentType.")
	}
	if !avatars.AllowedContentType(req.ContentType) {
		return errorResponse(http.StatusBadRequest,
			"Invalid content type. Allowed types: "+strings.Join(avatars.AllowedContentTypes(), ", "))
	}

	uploadUrl, key, err := avatarsClient.PresignUpload(ctx, req.Filename, req.ContentType)
	if err != nil {
		logging.Error("failed to presign upload", zap.Error(err))
		return errorResponse(http.StatusInternalServerError, "Could not generate upload URL.")
	}

	return jsonResponse(http.StatusOK, dtos.UploadUrlResponse{
		UploadUrl: uploadUrl,
		Key:       key,
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

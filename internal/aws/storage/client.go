package storage

import (
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Client struct {
	dynamodb *dynamodb.Client
	cfg      config
}

type config struct {
	MembersTableName *string
}

func NewClient(dynamoClient *dynamodb.Client) *Client {
	return &Client{
		dynamodb: dynamoClient,
		cfg:      loadConfig(),
	}
}

func loadConfig() config {
	cfg := config{
		MembersTableName: aws.String("GroupMembers"),
	}
	if v, ok := os.LookupEnv("TABLE_NAME"); ok {
		cfg.MembersTableName = aws.String(v)
	}
	return cfg
}

package avatars

import (
	"os"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Client struct {
	s3        *s3.Client
	presigner *s3.PresignClient
	cfg       config
}

type config struct {
	BucketName string
	Region     string
}

func NewClient(s3Client *s3.Client) *Client {
	return &Client{
		s3:        s3Client,
		presigner: s3.NewPresignClient(s3Client),
		cfg:       loadConfig(),
	}
}

func loadConfig() config {
	cfg := config{
		BucketName: "groupfbmap-avatars",
		Region:     "us-west-2",
	}
	if v, ok := os.LookupEnv("S3_BUCKET_NAME"); ok {
		cfg.BucketName = v
	}
	if v, ok := os.LookupEnv("AWS_REGION"); ok {
		cfg.Region = v
	}
	return cfg
}

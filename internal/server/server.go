// Package server hosts the whole map API as one process, for running outside
// API Gateway. It serves the same contracts as the Lambdas in cmd/lambda.
package server

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/groupfbmap/groupmap/internal/aws/avatars"
	"github.com/groupfbmap/groupmap/internal/aws/storage"
	"github.com/groupfbmap/groupmap/internal/domains/entities"
	"github.com/groupfbmap/groupmap/pkg/logging"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type memberStore interface {
	PutMember(ctx context.Context, member entities.Member) error
	FetchMembers(ctx context.Context, groupId string) ([]entities.Member, error)
	GetMemberByDeleteToken(ctx context.Context, deleteToken string) (entities.Member, error)
	DeleteMember(ctx context.Context, groupId, memberId string) error
}

type avatarClient interface {
	PresignUpload(ctx context.Context, filename, contentType string) (string, string, error)
	DeleteObject(ctx context.Context, key string) error
	PublicUrl(key string) string
}

type server struct {
	address string

	config  Config
	members memberStore
	avatars avatarClient
}

func NewServer() *server {
	cfg := NewConfig()
	awsCfg, _ := config.LoadDefaultConfig(context.TODO())
	return &server{
		address: "0.0.0.0:" + cfg.Port,
		config:  cfg,
		members: storage.NewClient(dynamodb.NewFromConfig(awsCfg)),
		avatars: avatars.NewClient(s3.NewFromConfig(awsCfg)),
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /members/upload-url", s.handleUploadUrl)
	mux.HandleFunc("POST /members", s.handleMemberAdd)
	mux.HandleFunc("GET /members/{group_id}", s.handleMemberList)
	mux.HandleFunc("DELETE /members", s.handleMemberDelete)

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(mux)
}

// Start method    starts the map server
func (s *server) Start() error {
	srv := &http.Server{
		Addr:        s.address,
		Handler:     s.routes(),
		IdleTimeout: s.config.IdleTimeout,
	}
	logging.Info("map server started", zap.String("port", s.config.Port))
	return srv.ListenAndServe()
}

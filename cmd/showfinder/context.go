package main

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/showfinder/showfinder/internal/client"
	"github.com/showfinder/showfinder/internal/config"
	grpcserver "github.com/showfinder/showfinder/internal/grpc"
	"github.com/showfinder/showfinder/internal/models"
)

// queries is what the commands need from either the API or a running server.
type queries interface {
	SearchShows(ctx context.Context, term string) ([]models.Show, error)
	GetEpisodes(ctx context.Context, showID int) ([]models.Episode, error)
	Close() error
}

// commandContext carries the persistent flags shared by all commands.
type commandContext struct {
	baseURL    string
	serverAddr string
	timeout    string
	jsonOutput bool
	verbose    bool
}

// open returns a direct TVmaze client, or a gRPC client when --server is set.
func (c *commandContext) open() (queries, error) {
	if c.serverAddr != "" {
		conn, err := grpc.NewClient(c.serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, fmt.Errorf("connect to %s: %w", c.serverAddr, err)
		}
		return &remoteQueries{conn: conn, client: grpcserver.NewShowServiceClient(conn)}, nil
	}

	cfg := *config.GetConfig()
	if c.baseURL != "" {
		cfg.TVMazeBaseURL = c.baseURL
	}
	if c.timeout != "" {
		cfg.ClientTimeout = c.timeout
	}
	return client.NewClient(&cfg), nil
}

// remoteQueries runs queries against a showfinder gRPC server.
type remoteQueries struct {
	conn   *grpc.ClientConn
	client grpcserver.ShowServiceClient
}

func (r *remoteQueries) SearchShows(ctx context.Context, term string) ([]models.Show, error) {
	list, err := r.client.SearchShows(ctx, wrapperspb.String(term))
	if err != nil {
		return nil, err
	}
	return grpcserver.ConvertShowsFromProto(list)
}

func (r *remoteQueries) GetEpisodes(ctx context.Context, showID int) ([]models.Episode, error) {
	list, err := r.client.GetEpisodes(ctx, wrapperspb.Int64(int64(showID)))
	if err != nil {
		return nil, err
	}
	return grpcserver.ConvertEpisodesFromProto(list)
}

func (r *remoteQueries) Close() error {
	return r.conn.Close()
}

package grpc

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/showfinder/showfinder/internal/client"
	"github.com/showfinder/showfinder/internal/config"
)

// server implements the ShowServiceServer interface
type server struct {
	client client.Client
	logger zerolog.Logger
}

// NewServer creates a new gRPC server instance
func NewServer(c client.Client) ShowServiceServer {
	return &server{
		client: c,
		logger: config.GetLogger(),
	}
}

// SearchShows implements ShowServiceServer.SearchShows. The term is passed on unmodified.
func (s *server) SearchShows(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	term := req.GetValue()
	s.logger.Debug().Str("term", term).Msg("SearchShows called")

	shows, err := s.client.SearchShows(ctx, term)
	if err != nil {
		s.logger.Error().Err(err).Str("term", term).Msg("Failed to search shows")
		return nil, toStatus(err, "failed to search shows")
	}

	s.logger.Debug().Str("term", term).Int("count", len(shows)).Msg("SearchShows completed")
	return convertShowsToProto(shows), nil
}

// GetEpisodes implements ShowServiceServer.GetEpisodes
func (s *server) GetEpisodes(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.ListValue, error) {
	showID := req.GetValue()
	s.logger.Debug().Int64("show_id", showID).Msg("GetEpisodes called")

	if showID <= 0 || int64(int(showID)) != showID {
		return nil, newStatus(codes.InvalidArgument, ReasonInvalidShowID, "show id must be a positive integer")
	}

	episodes, err := s.client.GetEpisodes(ctx, int(showID))
	if err != nil {
		s.logger.Error().Err(err).Int64("show_id", showID).Msg("Failed to get episodes")
		return nil, toStatus(err, "failed to get episodes")
	}

	s.logger.Debug().Int64("show_id", showID).Int("count", len(episodes)).Msg("GetEpisodes completed")
	return convertEpisodesToProto(episodes), nil
}

package grpc

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/showfinder/showfinder/internal/models"
)

func convertShowToProto(show models.Show) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{
		Fields: map[string]*structpb.Value{
			"id":      structpb.NewNumberValue(float64(show.ID)),
			"name":    structpb.NewStringValue(show.Name),
			"summary": structpb.NewStringValue(show.Summary),
			"image":   structpb.NewStringValue(show.Image),
		},
	})
}

func convertEpisodeToProto(episode models.Episode) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{
		Fields: map[string]*structpb.Value{
			"id":     structpb.NewNumberValue(float64(episode.ID)),
			"name":   structpb.NewStringValue(episode.Name),
			"season": structpb.NewNumberValue(float64(episode.Season)),
			"number": structpb.NewNumberValue(float64(episode.Number)),
		},
	})
}

func convertShowsToProto(shows []models.Show) *structpb.ListValue {
	values := make([]*structpb.Value, len(shows))
	for i, show := range shows {
		values[i] = convertShowToProto(show)
	}
	return &structpb.ListValue{Values: values}
}

func convertEpisodesToProto(episodes []models.Episode) *structpb.ListValue {
	values := make([]*structpb.Value, len(episodes))
	for i, episode := range episodes {
		values[i] = convertEpisodeToProto(episode)
	}
	return &structpb.ListValue{Values: values}
}

// ConvertShowsFromProto decodes a SearchShows response.
func ConvertShowsFromProto(list *structpb.ListValue) ([]models.Show, error) {
	shows := make([]models.Show, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		fields := v.GetStructValue().GetFields()
		if fields == nil {
			return nil, fmt.Errorf("show %d is not a struct", i)
		}
		shows = append(shows, models.Show{
			ID:      int(fields["id"].GetNumberValue()),
			Name:    fields["name"].GetStringValue(),
			Summary: fields["summary"].GetStringValue(),
			Image:   fields["image"].GetStringValue(),
		})
	}
	return shows, nil
}

// ConvertEpisodesFromProto decodes a GetEpisodes response.
func ConvertEpisodesFromProto(list *structpb.ListValue) ([]models.Episode, error) {
	episodes := make([]models.Episode, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		fields := v.GetStructValue().GetFields()
		if fields == nil {
			return nil, fmt.Errorf("episode %d is not a struct", i)
		}
		episodes = append(episodes, models.Episode{
			ID:     int(fields["id"].GetNumberValue()),
			Name:   fields["name"].GetStringValue(),
			Season: int(fields["season"].GetNumberValue()),
			Number: int(fields["number"].GetNumberValue()),
		})
	}
	return episodes, nil
}

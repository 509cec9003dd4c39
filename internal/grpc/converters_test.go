package grpc

import (
	"testing"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/showfinder/showfinder/internal/models"
)

func TestConvertShowToProto(t *testing.T) {
	t.Parallel()
	show := models.Show{
		ID:      1767,
		Name:    "The Bletchley Circle",
		Summary: "<p>Four women</p>",
		Image:   "http://static.tvmaze.com/medium/1.jpg",
	}

	fields := convertShowToProto(show).GetStructValue().GetFields()

	if len(fields) != 4 {
		t.Fatalf("Expected exactly 4 fields, got %d", len(fields))
	}
	if fields["id"].GetNumberValue() != 1767 {
		t.Errorf("Expected id 1767, got %v", fields["id"].GetNumberValue())
	}
	if fields["name"].GetStringValue() != show.Name {
		t.Errorf("Expected name %q, got %q", show.Name, fields["name"].GetStringValue())
	}
	if fields["summary"].GetStringValue() != show.Summary {
		t.Errorf("Expected summary to be passed through, got %q", fields["summary"].GetStringValue())
	}
	if fields["image"].GetStringValue() != show.Image {
		t.Errorf("Expected image %q, got %q", show.Image, fields["image"].GetStringValue())
	}
}

func TestConvertEpisodeToProto(t *testing.T) {
	t.Parallel()
	fields := convertEpisodeToProto(models.Episode{ID: 1, Name: "Pilot", Season: 1, Number: 2}).GetStructValue().GetFields()

	if len(fields) != 4 {
		t.Fatalf("Expected exactly 4 fields, got %d", len(fields))
	}
	if fields["season"].GetNumberValue() != 1 || fields["number"].GetNumberValue() != 2 {
		t.Errorf("Unexpected season/number: %v/%v", fields["season"], fields["number"])
	}
}

func TestConvertShowsToProto_PreservesOrder(t *testing.T) {
	t.Parallel()
	shows := []models.Show{{ID: 3}, {ID: 1}, {ID: 2}}

	back, err := ConvertShowsFromProto(convertShowsToProto(shows))
	if err != nil {
		t.Fatalf("ConvertShowsFromProto: %v", err)
	}
	for i := range shows {
		if back[i].ID != shows[i].ID {
			t.Errorf("Position %d: expected id %d, got %d", i, shows[i].ID, back[i].ID)
		}
	}
}

func TestConvertShowsToProto_Empty(t *testing.T) {
	t.Parallel()
	list := convertShowsToProto([]models.Show{})
	if list == nil || len(list.GetValues()) != 0 {
		t.Errorf("Expected empty list, got %v", list)
	}
}

func TestConvertFromProto_RejectsNonStruct(t *testing.T) {
	t.Parallel()
	list := &structpb.ListValue{Values: []*structpb.Value{structpb.NewStringValue("nope")}}

	if _, err := ConvertShowsFromProto(list); err == nil {
		t.Error("Expected error for non-struct show")
	}
	if _, err := ConvertEpisodesFromProto(list); err == nil {
		t.Error("Expected error for non-struct episode")
	}
}

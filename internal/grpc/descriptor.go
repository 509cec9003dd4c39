package grpc

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// showServiceFile is the path the service descriptor is registered under.
// Reflection clients resolve ServiceName to this file.
const showServiceFile = "showfinder/v1/show_service.proto"

func init() {
	fd, err := protodesc.NewFile(showServiceDescriptor(), protoregistry.GlobalFiles)
	if err != nil {
		panic(fmt.Sprintf("build %s: %v", showServiceFile, err))
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(fmt.Sprintf("register %s: %v", showServiceFile, err))
	}
}

// showServiceDescriptor describes showfinder.v1.ShowService in terms of the
// well-known wrapper and struct messages it exchanges.
func showServiceDescriptor() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(showServiceFile),
		Package: proto.String("showfinder.v1"),
		Syntax:  proto.String("proto3"),
		Dependency: []string{
			"google/protobuf/wrappers.proto",
			"google/protobuf/struct.proto",
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("ShowService"),
			Method: []*descriptorpb.MethodDescriptorProto{
				{
					Name:       proto.String("SearchShows"),
					InputType:  proto.String(".google.protobuf.StringValue"),
					OutputType: proto.String(".google.protobuf.ListValue"),
				},
				{
					Name:       proto.String("GetEpisodes"),
					InputType:  proto.String(".google.protobuf.Int64Value"),
					OutputType: proto.String(".google.protobuf.ListValue"),
				},
			},
		}},
	}
}

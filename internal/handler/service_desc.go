package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "medicomeet.v1.BookingService"

// BookingServiceServer is the server side of the booking service. Every
// message is a google.protobuf.Struct holding the JSON shape of the
// request or response.
type BookingServiceServer interface {
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Register(context.Context, *structpb.Struct) (*structpb.Struct, error)

	ListSpecializations(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListDoctors(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDoctor(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListDoctorsBySpecialization(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SearchDoctors(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDoctorAvailability(context.Context, *structpb.Struct) (*structpb.Struct, error)

	BookAppointment(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CancelAppointment(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListMyAppointments(context.Context, *structpb.Struct) (*structpb.Struct, error)

	ListAllAppointments(context.Context, *structpb.Struct) (*structpb.Struct, error)
	FilterAppointments(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetOverview(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type method func(BookingServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, fn method) grpc.MethodDesc {
	full := FullMethod(name)
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(BookingServiceServer)
			if interceptor == nil {
				return fn(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return fn(s, ctx, req.(*structpb.Struct))
			})
		},
	}
}

func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BookingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Login", BookingServiceServer.Login),
		unary("Register", BookingServiceServer.Register),
		unary("ListSpecializations", BookingServiceServer.ListSpecializations),
		unary("ListDoctors", BookingServiceServer.ListDoctors),
		unary("GetDoctor", BookingServiceServer.GetDoctor),
		unary("ListDoctorsBySpecialization", BookingServiceServer.ListDoctorsBySpecialization),
		unary("SearchDoctors", BookingServiceServer.SearchDoctors),
		unary("GetDoctorAvailability", BookingServiceServer.GetDoctorAvailability),
		unary("BookAppointment", BookingServiceServer.BookAppointment),
		unary("CancelAppointment", BookingServiceServer.CancelAppointment),
		unary("ListMyAppointments", BookingServiceServer.ListMyAppointments),
		unary("ListAllAppointments", BookingServiceServer.ListAllAppointments),
		unary("FilterAppointments", BookingServiceServer.FilterAppointments),
		unary("GetOverview", BookingServiceServer.GetOverview),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "medicomeet/v1/booking.proto",
}

func RegisterBookingServiceServer(s grpc.ServiceRegistrar, srv BookingServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// LookupMethod finds a unary method by short name, for callers that
// dispatch without a network hop.
func LookupMethod(name string) (grpc.MethodDesc, bool) {
	for _, m := range ServiceDesc.Methods {
		if m.MethodName == name {
			return m, true
		}
	}
	return grpc.MethodDesc{}, false
}

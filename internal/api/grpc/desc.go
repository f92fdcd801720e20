package grpc

import (
	"context"

	"google.golang.org/grpc"
)

const serviceName = "profileviewer.Viewer"

// ViewerServer is the server API for profileviewer.Viewer service.
type ViewerServer interface {
	Open(context.Context, *OpenRequest) (*ViewReply, error)
	Query(context.Context, *QueryRequest) (*ViewReply, error)
	Retry(context.Context, *ViewerRequest) (*ViewReply, error)
	Watch(*WatchRequest, WatchServerStream) error
	Close(context.Context, *ViewerRequest) (*CloseReply, error)
}

// WatchServerStream is the server side of Watch stream.
type WatchServerStream interface {
	Send(*ViewReply) error
	grpc.ServerStream
}

// RegisterViewerServer registers service implementation in grpc server.
func RegisterViewerServer(s grpc.ServiceRegistrar, srv ViewerServer) {
	s.RegisterService(&viewerServiceDesc, srv)
}

var viewerServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ViewerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Open",
			Handler: unaryHandler("Open", func(srv ViewerServer, ctx context.Context, r *OpenRequest) (interface{}, error) {
				return srv.Open(ctx, r)
			}),
		},
		{
			MethodName: "Query",
			Handler: unaryHandler("Query", func(srv ViewerServer, ctx context.Context, r *QueryRequest) (interface{}, error) {
				return srv.Query(ctx, r)
			}),
		},
		{
			MethodName: "Retry",
			Handler: unaryHandler("Retry", func(srv ViewerServer, ctx context.Context, r *ViewerRequest) (interface{}, error) {
				return srv.Retry(ctx, r)
			}),
		},
		{
			MethodName: "Close",
			Handler: unaryHandler("Close", func(srv ViewerServer, ctx context.Context, r *ViewerRequest) (interface{}, error) {
				return srv.Close(ctx, r)
			}),
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Watch",
			Handler:       watchHandler,
			ServerStreams: true,
		},
	},
	Metadata: "profileviewer",
}

func unaryHandler[Req any](
	method string,
	call func(ViewerServer, context.Context, *Req) (interface{}, error),
) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ViewerServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + serviceName + "/" + method,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ViewerServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func watchHandler(srv interface{}, stream grpc.ServerStream) error {
	in := new(WatchRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(ViewerServer).Watch(in, &watchServerStream{stream})
}

type watchServerStream struct {
	grpc.ServerStream
}

func (s *watchServerStream) Send(r *ViewReply) error {
	return s.ServerStream.SendMsg(r)
}

// Client calls profileviewer.Viewer service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates new Client instance.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Open creates new viewer on the server.
func (c *Client) Open(ctx context.Context) (*ViewReply, error) {
	out := new(ViewReply)
	if err := c.invoke(ctx, "Open", &OpenRequest{}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Query starts loading subject's profile in the viewer.
func (c *Client) Query(ctx context.Context, id string, subject string) (*ViewReply, error) {
	out := new(ViewReply)
	if err := c.invoke(ctx, "Query", &QueryRequest{ID: id, Subject: subject}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Retry repeats viewer's last failed query.
func (c *Client) Retry(ctx context.Context, id string) (*ViewReply, error) {
	out := new(ViewReply)
	if err := c.invoke(ctx, "Retry", &ViewerRequest{ID: id}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Close releases the viewer.
func (c *Client) Close(ctx context.Context, id string) error {
	return c.invoke(ctx, "Close", &ViewerRequest{ID: id}, new(CloseReply))
}

// Watch opens stream of viewer's views newer than `after`.
func (c *Client) Watch(ctx context.Context, id string, after uint64) (*WatchClientStream, error) {
	stream, err := c.cc.NewStream(
		ctx,
		&viewerServiceDesc.Streams[0],
		"/"+serviceName+"/Watch",
		grpc.CallContentSubtype(codecName),
	)
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(&WatchRequest{ID: id, After: after}); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}
	return &WatchClientStream{stream: stream}, nil
}

func (c *Client) invoke(ctx context.Context, method string, in interface{}, out interface{}) error {
	return c.cc.Invoke(ctx, "/"+serviceName+"/"+method, in, out, grpc.CallContentSubtype(codecName))
}

// WatchClientStream is the client side of Watch stream.
type WatchClientStream struct {
	stream grpc.ClientStream
}

// Recv returns next view. Returns io.EOF after the settled view.
func (s *WatchClientStream) Recv() (*ViewReply, error) {
	out := new(ViewReply)
	if err := s.stream.RecvMsg(out); err != nil {
		return nil, err
	}
	return out, nil
}

package grpc

import (
	"context"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/m-zajac/ghprofileviewer/internal/app"
)

// limitedMethods are the calls that start or run github queries.
var limitedMethods = map[string]bool{
	"/" + serviceName + "/Open":  true,
	"/" + serviceName + "/Query": true,
	"/" + serviceName + "/Retry": true,
}

// rateLimitInterceptor rejects limited calls above limiter's rate. Nil limiter allows everything.
func rateLimitInterceptor(limiter *rate.Limiter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if limiter != nil && limitedMethods[info.FullMethod] && !limiter.Allow() {
			return nil, status.Error(
				codes.ResourceExhausted,
				app.TooManyRequestsError("request rate limit exceeded").Error(),
			)
		}
		return handler(ctx, req)
	}
}

package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// GRPCServerAddress - listen address for grpc server
	GRPCServerAddress string `default:"0.0.0.0:9090"`

	// RequestTimeout - maximum duration of http request, bounds long polling
	RequestTimeout time.Duration `default:"30s"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubTimeout - timeout for single github api call
	GithubTimeout time.Duration `default:"15s"`

	// DefaultSubject - account loaded by every new viewer. If empty, viewers start without a query
	DefaultSubject string `envconfig:"GITHUB_USERNAME" default:""`

	// ViewersCacheSize - maximum number of open viewers, least recently used are closed first
	ViewersCacheSize int `default:"1000"`

	// APIRateLimit - max frequency of requests starting new fetches. Zero disables limiting
	APIRateLimit float64 `default:"5"`

	// APIRateBurst - burst size for APIRateLimit
	APIRateBurst int `default:"10"`

	// CORSAllowedOrigins - comma separated list of origins allowed to call http api
	CORSAllowedOrigins []string `default:"*"`

	// LogLevel - logrus level name
	LogLevel string `default:"info"`
}

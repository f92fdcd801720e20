// Package main implements terminal client for profileviewer.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/m-zajac/ghprofileviewer/internal/adapter/github"
	"github.com/m-zajac/ghprofileviewer/internal/api/grpc"
	"github.com/m-zajac/ghprofileviewer/internal/app"
	"github.com/m-zajac/ghprofileviewer/internal/console"
)

var (
	serverAddr    string
	timeout       time.Duration
	githubAddr    string
	githubTimeout time.Duration
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "profileviewerclient",
	Short: "GitHub profile viewer",
	Long: `Displays GitHub account's profile, its most starred repositories
and the latest workflow run of each repository.`,
}

var showCmd = &cobra.Command{
	Use:   "show [subject]",
	Short: "Show profile using profileviewer grpc server",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var localCmd = &cobra.Command{
	Use:   "local [subject]",
	Short: "Show profile fetching data directly from GitHub",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocal,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "maximum time to wait for complete profile")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log fetch failures")
	showCmd.Flags().StringVarP(&serverAddr, "server", "s", "localhost:9090", "grpc server address in the format of host:port")
	localCmd.Flags().StringVar(&githubAddr, "github-api", "https://api.github.com", "github rest api address")
	localCmd.Flags().DurationVar(&githubTimeout, "github-timeout", 15*time.Second, "timeout for single github api call")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(localCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	conn, err := grpc.Dial(ctx, serverAddr)
	if err != nil {
		return err
	}
	defer conn.Close()
	client := grpc.NewClient(conn)

	opened, err := client.Open(ctx)
	if err != nil {
		return fmt.Errorf("opening viewer: %w", err)
	}
	defer func() {
		_ = client.Close(context.Background(), opened.ID)
	}()

	queried, err := client.Query(ctx, opened.ID, args[0])
	if err != nil {
		return fmt.Errorf("querying %s: %w", args[0], err)
	}
	render(cmd.OutOrStdout(), queried.View)

	stream, err := client.Watch(ctx, opened.ID, queried.View.Version)
	if err != nil {
		return fmt.Errorf("watching viewer: %w", err)
	}
	for {
		reply, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("receiving view: %w", err)
		}
		render(cmd.OutOrStdout(), reply.View)
	}
}

func runLocal(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	l := logrus.New()
	l.Out = cmd.ErrOrStderr()
	l.Level = logrus.ErrorLevel
	if verbose {
		l.Level = logrus.DebugLevel
	}

	githubClient := github.NewClient(&http.Client{Timeout: 30 * time.Second}, githubAddr)
	orchestrator := app.NewOrchestrator(githubClient, githubTimeout, l.WithField("component", "orchestrator"))
	controller := app.NewController(orchestrator, "", l.WithField("component", "controller"))
	defer controller.Close()

	v, err := controller.Submit(args[0])
	if err != nil {
		return err
	}
	render(cmd.OutOrStdout(), v)
	for !v.Settled {
		v, err = controller.Wait(ctx, v.Version)
		if err != nil {
			return fmt.Errorf("waiting for profile: %w", err)
		}
		render(cmd.OutOrStdout(), v)
	}

	return nil
}

func render(w io.Writer, v app.View) {
	fmt.Fprintf(w, "\n[%d] ", v.Version)
	console.Render(w, v)
}

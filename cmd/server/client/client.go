// Package client provides test commands for the Vagabond API gRPC services
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	vagabondv1alpha1 "github.com/KirkDiggler/vagabond-api/internal/api/vagabond/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the Vagabond API",
	Long:  `Client commands allow you to exercise the Vagabond API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Actor commands
	ClientCmd.AddCommand(createActorCmd)
	ClientCmd.AddCommand(getActorCmd)
	ClientCmd.AddCommand(listActorsCmd)
	ClientCmd.AddCommand(deleteActorCmd)
	ClientCmd.AddCommand(restCmd)
	ClientCmd.AddCommand(breatherCmd)
	ClientCmd.AddCommand(spendLuckCmd)
	ClientCmd.AddCommand(checkPerkCmd)
	ClientCmd.AddCommand(activityCmd)

	// Play commands
	ClientCmd.AddCommand(rollCheckCmd)
	ClientCmd.AddCommand(rollDamageCmd)
	ClientCmd.AddCommand(quoteCastCmd)
	ClientCmd.AddCommand(castSpellCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createActorClient creates an actor service client
func createActorClient() (vagabondv1alpha1.ActorServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return vagabondv1alpha1.NewActorServiceClient(conn), cleanup, nil
}

// createPlayClient creates a play service client
func createPlayClient() (vagabondv1alpha1.PlayServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return vagabondv1alpha1.NewPlayServiceClient(conn), cleanup, nil
}

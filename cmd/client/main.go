// Package main is the command line client for the inventory server.
//
// Usage:
//
//	client add --sku SKU-1 --price 1.99 --quantity 20
//	client get --sku SKU-1
//	client update-quantity --sku SKU-1 --change -5
//	client update-price --sku SKU-1 --price 2.19
//	client watch --sku SKU-1
//	client remove --sku SKU-1
package main

import (
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/skustore/skustore/internal/adapter/handler/pb"
)

var addr string

var rootCmd = &cobra.Command{
	Use:   "client",
	Short: "Inventory service client",
	Long:  `Command line client for the inventory gRPC service.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "localhost:9001", "server address (host:port)")
}

// dial connects to the inventory server. The returned cleanup closes
// the connection.
func dial() (pb.InventoryClient, func(), error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	return pb.NewInventoryClient(conn), func() { conn.Close() }, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

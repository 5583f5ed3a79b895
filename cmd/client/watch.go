package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skustore/skustore/internal/adapter/handler/pb"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream item changes until interrupted or the item is removed",
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().String("sku", "", "item SKU (required)")
	_ = watchCmd.MarkFlagRequired("sku")
}

func runWatch(cmd *cobra.Command, args []string) error {
	client, cleanup, err := dial()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sku, _ := cmd.Flags().GetString("sku")
	stream, err := client.Watch(ctx, &pb.ItemIdentifier{Sku: sku})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "watching %s\n", sku)

	for {
		item, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		printItem(item)
		fmt.Println("---")
	}
}

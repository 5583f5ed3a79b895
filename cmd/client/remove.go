package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skustore/skustore/internal/adapter/handler/pb"
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove an item from the inventory",
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().String("sku", "", "item SKU (required)")
	_ = removeCmd.MarkFlagRequired("sku")
}

func runRemove(cmd *cobra.Command, args []string) error {
	client, cleanup, err := dial()
	if err != nil {
		return err
	}
	defer cleanup()

	sku, _ := cmd.Flags().GetString("sku")
	resp, err := client.Remove(context.Background(), &pb.ItemIdentifier{Sku: sku})
	if err != nil {
		return err
	}

	fmt.Println(resp.GetStatus())
	return nil
}

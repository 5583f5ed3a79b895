package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skustore/skustore/internal/adapter/handler/pb"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch an item from the inventory",
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().String("sku", "", "item SKU (required)")
	_ = getCmd.MarkFlagRequired("sku")
}

func runGet(cmd *cobra.Command, args []string) error {
	client, cleanup, err := dial()
	if err != nil {
		return err
	}
	defer cleanup()

	sku, _ := cmd.Flags().GetString("sku")
	item, err := client.Get(context.Background(), &pb.ItemIdentifier{Sku: sku})
	if err != nil {
		return err
	}

	printItem(item)
	return nil
}

func printItem(item *pb.Item) {
	fmt.Printf("sku: %s\n", item.GetIdentifier().GetSku())
	if st := item.GetStock(); st != nil {
		fmt.Printf("price: %.2f\n", st.GetPrice())
		fmt.Printf("quantity: %d\n", st.GetQuantity())
	}
	if info := item.GetInformation(); info != nil {
		if info.Name != nil {
			fmt.Printf("name: %s\n", info.GetName())
		}
		if info.Description != nil {
			fmt.Printf("description: %s\n", info.GetDescription())
		}
	}
}

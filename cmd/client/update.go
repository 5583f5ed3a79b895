package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skustore/skustore/internal/adapter/handler/pb"
)

var updateQuantityCmd = &cobra.Command{
	Use:   "update-quantity",
	Short: "Adjust the stock quantity of an item",
	RunE:  runUpdateQuantity,
}

var updatePriceCmd = &cobra.Command{
	Use:   "update-price",
	Short: "Set a new unit price for an item",
	RunE:  runUpdatePrice,
}

func init() {
	rootCmd.AddCommand(updateQuantityCmd)
	rootCmd.AddCommand(updatePriceCmd)

	updateQuantityCmd.Flags().String("sku", "", "item SKU (required)")
	updateQuantityCmd.Flags().Int32("change", 0, "signed quantity change (required)")
	_ = updateQuantityCmd.MarkFlagRequired("sku")
	_ = updateQuantityCmd.MarkFlagRequired("change")

	updatePriceCmd.Flags().String("sku", "", "item SKU (required)")
	updatePriceCmd.Flags().Float32("price", 0, "new unit price (required)")
	_ = updatePriceCmd.MarkFlagRequired("sku")
	_ = updatePriceCmd.MarkFlagRequired("price")
}

func runUpdateQuantity(cmd *cobra.Command, args []string) error {
	client, cleanup, err := dial()
	if err != nil {
		return err
	}
	defer cleanup()

	sku, _ := cmd.Flags().GetString("sku")
	change, _ := cmd.Flags().GetInt32("change")

	resp, err := client.UpdateQuantity(context.Background(), &pb.QuantityChangeRequest{
		Sku:    sku,
		Change: change,
	})
	if err != nil {
		return err
	}

	printUpdate(resp)
	return nil
}

func runUpdatePrice(cmd *cobra.Command, args []string) error {
	client, cleanup, err := dial()
	if err != nil {
		return err
	}
	defer cleanup()

	sku, _ := cmd.Flags().GetString("sku")
	price, _ := cmd.Flags().GetFloat32("price")

	resp, err := client.UpdatePrice(context.Background(), &pb.PriceChangeRequest{
		Sku:   sku,
		Price: price,
	})
	if err != nil {
		return err
	}

	printUpdate(resp)
	return nil
}

func printUpdate(resp *pb.InventoryUpdateResponse) {
	fmt.Println(resp.GetStatus())
	fmt.Printf("price: %.2f\n", resp.GetPrice())
	fmt.Printf("quantity: %d\n", resp.GetQuantity())
}

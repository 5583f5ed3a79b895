package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skustore/skustore/internal/adapter/handler/pb"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new item to the inventory",
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().String("sku", "", "item SKU (required)")
	addCmd.Flags().Float32("price", 0, "unit price (required)")
	addCmd.Flags().Uint32("quantity", 0, "initial stock quantity")
	addCmd.Flags().String("name", "", "item name")
	addCmd.Flags().String("description", "", "item description")
	_ = addCmd.MarkFlagRequired("sku")
	_ = addCmd.MarkFlagRequired("price")
}

func runAdd(cmd *cobra.Command, args []string) error {
	client, cleanup, err := dial()
	if err != nil {
		return err
	}
	defer cleanup()

	sku, _ := cmd.Flags().GetString("sku")
	price, _ := cmd.Flags().GetFloat32("price")
	quantity, _ := cmd.Flags().GetUint32("quantity")

	item := &pb.Item{
		Identifier: &pb.ItemIdentifier{Sku: sku},
		Stock:      &pb.ItemStock{Price: price, Quantity: quantity},
	}

	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	if name != "" || description != "" {
		info := &pb.ItemInformation{}
		if name != "" {
			info.Name = &name
		}
		if description != "" {
			info.Description = &description
		}
		item.Information = info
	}

	resp, err := client.Add(context.Background(), item)
	if err != nil {
		return err
	}

	fmt.Println(resp.GetStatus())
	return nil
}

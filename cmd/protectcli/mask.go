package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dataprotect "github.com/amil3955/RWA-exchange1.0.8-sub001"
)

var maskVisible int

var maskCmd = &cobra.Command{
	Use:   "mask <value>",
	Short: "Mask a value for display or logging",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(dataprotect.MaskData(args[0], maskVisible))
		return nil
	},
}

func init() {
	maskCmd.Flags().IntVar(&maskVisible, "visible", 4, "characters to keep visible at each end")
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag   string
	tokenFlag string
	rootCmd   = &cobra.Command{
		Use:   "iouctl",
		Short: "CLI client for the IOU tracker REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Tracker service base URL")
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", "", "Session token (required when the PIN lock is on)")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the balance summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(apiFlag, tokenFlag, os.Stdout)
		},
	}
	rootCmd.AddCommand(summaryCmd)

	upcomingCmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List reminders due in the next seven days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpcoming(apiFlag, tokenFlag, os.Stdout)
		},
	}
	rootCmd.AddCommand(upcomingCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Download the records as a CSV or HTML document",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")
			return runExport(apiFlag, tokenFlag, format, out)
		},
	}
	exportCmd.Flags().StringP("format", "f", "csv", "Export format: csv or html")
	exportCmd.Flags().StringP("out", "o", "", "Output file (default: the server-suggested name)")
	rootCmd.AddCommand(exportCmd)

	unlockCmd := &cobra.Command{
		Use:   "unlock",
		Short: "Verify the PIN and print a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			pin, _ := cmd.Flags().GetString("pin")
			return runUnlock(apiFlag, pin, os.Stdout)
		},
	}
	unlockCmd.Flags().StringP("pin", "p", "", "PIN code (required)")
	_ = unlockCmd.MarkFlagRequired("pin")
	rootCmd.AddCommand(unlockCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

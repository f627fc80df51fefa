package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// NewTransactionsCommand creates the transactions command group
func NewTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"transaction", "txns"},
		Short:   "Manage transactions",
		Long:    "List, inspect, and bulk-export point-of-sale transactions",
	}

	cmd.AddCommand(newTransactionsListCommand())
	cmd.AddCommand(newTransactionsGetCommand())
	cmd.AddCommand(newTransactionsExportCommand())

	return cmd
}

func transactionListQuery(startDate, endDate string) *sonnys.QueryParams {
	params := sonnys.NewQueryParams()
	if startDate != "" && endDate != "" {
		params = params.WithDateRange(startDate, endDate)
	}

	return params
}

func renderTransactionList(transactions []sonnys.TransactionListItem) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Number", "ID", "Total", "Date")

	for _, txn := range transactions {
		_ = table.Append(strconv.Itoa(txn.TransNumber), txn.TransID,
			formatMoney(txn.Total), txn.Date)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("\nTotal: %d transactions\n", len(transactions))

	return nil
}

//nolint:funlen
func newTransactionsListCommand() *cobra.Command {
	var (
		startDate string
		endDate   string
		itemType  string
		enriched  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `List transaction summaries, fetching every page of results.

Use --type to restrict to one transaction type (wash, recurring, giftcard,
etc.), or --enriched for version-2 summaries carrying recurring plan flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if startDate == "" || endDate == "" {
				return ErrDateRangeRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			params := transactionListQuery(startDate, endDate)
			output := viper.GetString("output")

			if enriched {
				transactions, err := client.Transactions().ListV2(cmd.Context(), params)
				if err != nil {
					return fmt.Errorf("failed to list transactions: %w", err)
				}

				switch output {
				case OutputFormatJSON:
					return renderJSON(transactions)
				case OutputFormatYAML:
					return renderYAML(transactions)
				default:
					table := tablewriter.NewWriter(os.Stdout)
					table.Header("Number", "ID", "Total", "Date", "Plan Sale", "Redemption", "Status")

					for _, txn := range transactions {
						_ = table.Append(strconv.Itoa(txn.TransNumber), txn.TransID,
							formatMoney(txn.Total), txn.Date,
							fmt.Sprintf("%t", txn.IsRecurringPlanSale),
							fmt.Sprintf("%t", txn.IsRecurringPlanRedemption),
							orNotAvailable(txn.TransactionStatus))
					}

					if err := table.Render(); err != nil {
						return fmt.Errorf("failed to render table: %w", err)
					}

					fmt.Printf("\nTotal: %d transactions\n", len(transactions))
				}

				return nil
			}

			var transactions []sonnys.TransactionListItem
			if itemType != "" {
				transactions, err = client.Transactions().ListByType(cmd.Context(), itemType, params)
			} else {
				transactions, err = client.Transactions().List(cmd.Context(), params)
			}

			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			switch output {
			case OutputFormatJSON:
				return renderJSON(transactions)
			case OutputFormatYAML:
				return renderYAML(transactions)
			default:
				return renderTransactionList(transactions)
			}
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "range end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&itemType, "type", "", "restrict to one transaction type")
	cmd.Flags().BoolVar(&enriched, "enriched", false, "use the version-2 enriched summaries")

	return cmd
}

func newTransactionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TRANSACTION_ID",
		Short: "Get transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrTransactionRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			txn, err := client.Transactions().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get transaction: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatYAML:
				return renderYAML(txn)
			case OutputFormatJSON:
				return renderJSON(txn)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", txn.ID)
				_ = table.Append("Number", strconv.Itoa(txn.Number))
				_ = table.Append("Type", txn.Type)
				_ = table.Append("Completed", txn.CompleteDate)
				_ = table.Append("Site", txn.LocationCode)
				_ = table.Append("Device", txn.SalesDeviceName)
				_ = table.Append("Total", formatMoney(txn.Total))
				_ = table.Append("Customer", orNotAvailable(txn.CustomerName))
				_ = table.Append("Items", formatCount(len(txn.Items)))
				_ = table.Append("Tenders", formatCount(len(txn.Tenders)))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newTransactionsExportCommand() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Bulk-export transactions",
		Long: `Export full transaction details for a date range via the batch job API.

Wide ranges are split into multiple jobs automatically. Table output shows a
per-export summary; use --output json to capture the full records.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if startDate == "" || endDate == "" {
				return ErrDateRangeRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			records, err := client.Transactions().LoadJobRange(cmd.Context(), startDate, endDate)
			if err != nil {
				return fmt.Errorf("failed to export transactions: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(records)
			case OutputFormatYAML:
				return renderYAML(records)
			default:
				var total float64
				for _, record := range records {
					total += record.Total
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Metric", "Value")
				_ = table.Append("Records", formatCount(len(records)))
				_ = table.Append("Range", startDate+" to "+endDate)
				_ = table.Append("Gross Total", formatMoney(total))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "range end (YYYY-MM-DD)")

	return cmd
}

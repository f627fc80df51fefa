package commands

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewStatsCommand creates the stats command group
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compute business KPIs",
		Long: `Compute business KPIs for a date range.

All stats are derived locally from bulk transaction fetches: wash volume,
revenue breakdown, membership conversion rate, and membership changes.`,
	}

	cmd.AddCommand(newStatsReportCommand())
	cmd.AddCommand(newStatsWashesCommand())
	cmd.AddCommand(newStatsSalesCommand())
	cmd.AddCommand(newStatsConversionCommand())
	cmd.AddCommand(newStatsMembershipCommand())

	return cmd
}

func addStatsRangeFlags(cmd *cobra.Command, startDate, endDate *string) {
	cmd.Flags().StringVar(startDate, "start", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(endDate, "end", "", "range end (YYYY-MM-DD)")
}

func newStatsReportCommand() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Full KPI report",
		Long:  "Compute every KPI for a date range from one shared set of fetches",
		RunE: func(cmd *cobra.Command, args []string) error {
			if startDate == "" || endDate == "" {
				return ErrDateRangeRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			report, err := client.Stats().Report(cmd.Context(), startDate, endDate)
			if err != nil {
				return fmt.Errorf("failed to compute report: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(report)
			case OutputFormatYAML:
				return renderYAML(report)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Metric", "Value")
				_ = table.Append("Period", report.Start.Format("2006-01-02")+" to "+report.End.Format("2006-01-02"))
				_ = table.Append("Total Washes", formatCount(report.Washes.Total))
				_ = table.Append("Member Washes", formatCount(report.Washes.Member))
				_ = table.Append("Retail Washes", formatCount(report.Washes.Retail))
				_ = table.Append("Free Washes", formatCount(report.Washes.Free))
				_ = table.Append("Total Revenue", formatMoney(report.Sales.Total))
				_ = table.Append("Plan Sale Revenue", formatMoney(report.Sales.RecurringPlanSales))
				_ = table.Append("Retail Revenue", formatMoney(report.Sales.Retail))
				_ = table.Append("New Memberships", formatCount(report.Conversion.NewMemberships))
				_ = table.Append("Conversion Rate", formatRate(report.Conversion.Rate))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	addStatsRangeFlags(cmd, &startDate, &endDate)

	return cmd
}

func newStatsWashesCommand() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "washes",
		Short: "Wash volume breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			if startDate == "" || endDate == "" {
				return ErrDateRangeRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			washes, err := client.Stats().TotalWashes(cmd.Context(), startDate, endDate)
			if err != nil {
				return fmt.Errorf("failed to compute wash counts: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(washes)
			case OutputFormatYAML:
				return renderYAML(washes)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Metric", "Value")
				_ = table.Append("Total", formatCount(washes.Total))
				_ = table.Append("Member", formatCount(washes.Member))
				_ = table.Append("Retail", formatCount(washes.Retail))
				_ = table.Append("Free", formatCount(washes.Free))
				_ = table.Append("Eligible", formatCount(washes.Eligible))
				_ = table.Append("Recharges", formatCount(washes.Recharges))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	addStatsRangeFlags(cmd, &startDate, &endDate)

	return cmd
}

func newStatsSalesCommand() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Revenue breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			if startDate == "" || endDate == "" {
				return ErrDateRangeRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			sales, err := client.Stats().TotalSales(cmd.Context(), startDate, endDate)
			if err != nil {
				return fmt.Errorf("failed to compute sales totals: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(sales)
			case OutputFormatYAML:
				return renderYAML(sales)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Bucket", "Revenue", "Count")
				_ = table.Append("Plan Sales", formatMoney(sales.RecurringPlanSales),
					formatCount(sales.RecurringPlanSalesCount))
				_ = table.Append("Redemptions", formatMoney(sales.RecurringRedemptions),
					formatCount(sales.RecurringRedemptionsCount))
				_ = table.Append("Retail", formatMoney(sales.Retail), formatCount(sales.RetailCount))
				_ = table.Append("Total", formatMoney(sales.Total), formatCount(sales.Count))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	addStatsRangeFlags(cmd, &startDate, &endDate)

	return cmd
}

func newStatsConversionCommand() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "conversion",
		Short: "Membership conversion rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			if startDate == "" || endDate == "" {
				return ErrDateRangeRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			conversion, err := client.Stats().ConversionRate(cmd.Context(), startDate, endDate)
			if err != nil {
				return fmt.Errorf("failed to compute conversion rate: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(conversion)
			case OutputFormatYAML:
				return renderYAML(conversion)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Metric", "Value")
				_ = table.Append("Conversion Rate", formatRate(conversion.Rate))
				_ = table.Append("New Memberships", formatCount(conversion.NewMemberships))
				_ = table.Append("Eligible Washes", formatCount(conversion.EligibleWashes))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	addStatsRangeFlags(cmd, &startDate, &endDate)

	return cmd
}

func newStatsMembershipCommand() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "membership",
		Short: "Membership status changes",
		Long:  "Count recurring account activations and cancellations for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			if startDate == "" || endDate == "" {
				return ErrDateRangeRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			changes, err := client.Stats().MembershipChanges(cmd.Context(), startDate, endDate)
			if err != nil {
				return fmt.Errorf("failed to compute membership changes: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(changes)
			case OutputFormatYAML:
				return renderYAML(changes)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Metric", "Value")
				_ = table.Append("Total Changes", formatCount(changes.Total))
				_ = table.Append("Activations", formatCount(changes.Activations))
				_ = table.Append("Cancellations", formatCount(changes.Cancellations))

				statuses := make([]string, 0, len(changes.ByNewStatus))
				for status := range changes.ByNewStatus {
					statuses = append(statuses, status)
				}

				sort.Strings(statuses)

				for _, status := range statuses {
					_ = table.Append("Status: "+status, formatCount(changes.ByNewStatus[status]))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	addStatsRangeFlags(cmd, &startDate, &endDate)

	return cmd
}

// formatRate renders a ratio as a percentage with one decimal place.
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate*100, 'f', 1, 64) + "%"
}

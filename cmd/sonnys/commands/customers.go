package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/washmetrics/sonnys-go/pkg/sonnys"
)

// NewCustomersCommand creates the customers command group
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customers",
		Long:    "List and inspect customer records",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List customer records, fetching every page of results",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := sonnys.NewQueryParams()
			if startDate != "" && endDate != "" {
				params = params.WithDateRange(startDate, endDate)
			}

			customers, err := client.Customers().List(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(customers)
			case OutputFormatYAML:
				return renderYAML(customers)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Phone", "Active", "Created")

				for _, customer := range customers {
					active := "no"
					if customer.IsActive {
						active = "yes"
					}

					_ = table.Append(customer.CustomerID,
						customer.FirstName+" "+customer.LastName,
						orNotAvailable(customer.PhoneNumber), active, customer.CreatedDate)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				fmt.Printf("\nTotal: %d customers\n", len(customers))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "filter by modification date range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "filter by modification date range end (YYYY-MM-DD)")

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get customer details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrCustomerRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(customer)
			case OutputFormatYAML:
				return renderYAML(customer)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", customer.ID)
				_ = table.Append("Number", customer.Number)
				_ = table.Append("Name", customer.FirstName+" "+customer.LastName)
				_ = table.Append("Company", orNotAvailable(customer.CompanyName))
				_ = table.Append("Phone", orNotAvailable(customer.Phone))
				_ = table.Append("Email", orNotAvailable(customer.Email))
				_ = table.Append("Loyalty Number", orNotAvailable(customer.LoyaltyNumber))
				_ = table.Append("Active", fmt.Sprintf("%t", customer.IsActive))
				_ = table.Append("Modified", customer.ModifyDate)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

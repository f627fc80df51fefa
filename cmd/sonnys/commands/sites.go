package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewSitesCommand creates the sites command group
func NewSitesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sites",
		Aliases: []string{"site"},
		Short:   "Manage sites",
		Long:    "List the car wash sites visible to the configured credentials",
	}

	cmd.AddCommand(newSitesListCommand())

	return cmd
}

func newSitesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sites",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			sites, err := client.Sites().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list sites: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(sites)
			case OutputFormatYAML:
				return renderYAML(sites)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Code", "Name", "Timezone")

				for _, site := range sites {
					_ = table.Append(strconv.Itoa(site.SiteID), orNotAvailable(site.Code),
						site.Name, orNotAvailable(site.Timezone))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

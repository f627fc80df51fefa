package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewAuthCommand creates the auth command
func NewAuthCommand() *cobra.Command {
	var (
		apiID    string
		apiKey   string
		siteCode string
	)

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Store API credentials",
		Long: `Store Sonny's API credentials in the config file.

Credentials are prompted for interactively when not passed as flags; the
API key prompt does not echo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if apiID == "" {
				fmt.Print("API ID: ")
				apiID, _ = reader.ReadString('\n')
				apiID = strings.TrimSpace(apiID)
			}

			if apiID == "" {
				return ErrAPIIDRequired
			}

			if apiKey == "" {
				fmt.Print("API key: ")

				keyBytes, err := term.ReadPassword(int(syscall.Stdin))

				fmt.Println()

				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = string(keyBytes)
			}

			if apiKey == "" {
				return ErrAPIKeyRequired
			}

			viper.Set("api-id", apiID)
			viper.Set("api-key", apiKey)

			if siteCode != "" {
				viper.Set("site-code", siteCode)
			}

			configFile := viper.ConfigFileUsed()
			if configFile == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("failed to find home directory: %w", err)
				}

				configFile = filepath.Join(home, ".sonnys", "config.yml")
			}

			if err := viper.WriteConfigAs(configFile); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			fmt.Printf("Credentials saved to %s\n", configFile)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiID, "id", "", "API ID credential")
	cmd.Flags().StringVar(&apiKey, "key", "", "API key credential")
	cmd.Flags().StringVar(&siteCode, "site", "", "default site code")

	return cmd
}

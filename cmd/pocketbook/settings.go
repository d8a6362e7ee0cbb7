package main

import (
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/spf13/cobra"

	"github.com/pocketbook/pocketbook/internal/cli"
	"github.com/pocketbook/pocketbook/internal/common"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change application settings",
	}

	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(setSettingsCmd())

	return cmd
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			settings, err := l.Store().Settings(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("Currency:    %s\n", settings.Currency)
			fmt.Printf("Timezone:    %s\n", settings.Timezone)
			fmt.Printf("Theme:       %s\n", settings.Theme)
			fmt.Printf("Date format: %s\n", settings.DateFormat)
			return nil
		},
	}
}

func setSettingsCmd() *cobra.Command {
	var (
		currency   string
		timezone   string
		theme      string
		dateFormat string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			settings, err := l.Store().Settings(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("currency") {
				if money.GetCurrency(currency) == nil {
					return fmt.Errorf("%w: unknown currency code %q", common.ErrValidation, currency)
				}
				settings.Currency = currency
			}
			if cmd.Flags().Changed("timezone") {
				if _, err := time.LoadLocation(timezone); err != nil {
					return fmt.Errorf("%w: unknown timezone %q", common.ErrValidation, timezone)
				}
				settings.Timezone = timezone
			}
			if cmd.Flags().Changed("theme") {
				if theme != "light" && theme != "dark" {
					return fmt.Errorf("%w: theme must be light or dark", common.ErrValidation)
				}
				settings.Theme = theme
			}
			if cmd.Flags().Changed("date-format") {
				settings.DateFormat = dateFormat
			}

			if err := l.Store().SaveSettings(ctx, settings); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Settings updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone name")
	cmd.Flags().StringVar(&theme, "theme", "", "UI theme (light, dark)")
	cmd.Flags().StringVar(&dateFormat, "date-format", "", "preferred date display format")

	return cmd
}

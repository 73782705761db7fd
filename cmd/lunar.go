package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-WeddingBooking/internal/domain"
	"github.com/m04kA/SMC-WeddingBooking/pkg/lunar"
	"github.com/m04kA/SMC-WeddingBooking/pkg/vntime"
)

func newLunarCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "lunar <YYYY-MM-DD>",
		Short:   "Перевести дату в вьетнамский лунный календарь",
		Example: "  wedding-booking lunar 2024-02-10",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.ParseInLocation(domain.DateFormat, args[0], vntime.Location())
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", args[0], err)
			}

			lunarDate, err := lunar.ConvertChecked(date.Day(), int(date.Month()), date.Year())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), vntime.FormatDateTimeWithLunar(date))
			fmt.Fprintf(cmd.OutOrStdout(), "Năm âm lịch: %d\n", lunarDate.Year)
			return nil
		},
	}
}

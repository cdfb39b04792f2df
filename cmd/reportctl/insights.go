package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nexgestao/analytics-api/pkg/utils"
)

var insightsCmd = &cobra.Command{
	Use:     "insights",
	Short:   "Avalia as regras de insight da conta e imprime o resultado em JSON",
	PreRunE: requireAccount,
	RunE: func(cmd *cobra.Command, args []string) error {
		logActiveFlags(cmd)

		reporter, _, closeConn, err := services(cmd.Context())
		if err != nil {
			return err
		}
		defer closeConn()

		insights, err := reporter.GetInsights(accountID, time.Now())
		if err != nil {
			return fmt.Errorf("erro ao avaliar insights: %w", err)
		}

		fmt.Println(utils.PrettyJson(insights))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

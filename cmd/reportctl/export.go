package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexgestao/analytics-api/internal/usecases/exporting"
)

var outputPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta relatórios em CSV",
}

var exportOrdersCmd = &cobra.Command{
	Use:     "orders",
	Short:   "Exporta os pedidos da conta em CSV",
	PreRunE: requireAccount,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, func(exporter exporting.Exporter) (string, error) {
			return exporter.ExportOrders(accountID)
		})
	},
}

var exportKPIsCmd = &cobra.Command{
	Use:     "kpis",
	Short:   "Exporta os KPIs do dashboard em CSV",
	PreRunE: requireAccount,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, func(exporter exporting.Exporter) (string, error) {
			return exporter.ExportKPIs(accountID)
		})
	},
}

var exportRankingCmd = &cobra.Command{
	Use:     "ranking",
	Short:   "Exporta o ranking de clientes por receita em CSV",
	PreRunE: requireAccount,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, func(exporter exporting.Exporter) (string, error) {
			return exporter.ExportRanking(accountID)
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Arquivo de destino (default: stdout)")

	exportCmd.AddCommand(exportOrdersCmd)
	exportCmd.AddCommand(exportKPIsCmd)
	exportCmd.AddCommand(exportRankingCmd)
}

func runExport(cmd *cobra.Command, render func(exporting.Exporter) (string, error)) error {
	logActiveFlags(cmd)

	_, exporter, closeConn, err := services(cmd.Context())
	if err != nil {
		return err
	}
	defer closeConn()

	document, err := render(exporter)
	if err != nil {
		return fmt.Errorf("erro ao gerar relatório: %w", err)
	}

	if outputPath == "" {
		fmt.Fprint(os.Stdout, document)
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(document), 0o644); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", outputPath, err)
	}

	return nil
}

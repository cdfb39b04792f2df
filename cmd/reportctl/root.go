package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nexgestao/analytics-api/infrastructure/database/postgres"
	"github.com/nexgestao/analytics-api/infrastructure/repository"
	"github.com/nexgestao/analytics-api/internal/config"
	"github.com/nexgestao/analytics-api/internal/usecases/exporting"
	"github.com/nexgestao/analytics-api/internal/usecases/reporting"
)

var (
	accountID string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "reportctl",
	Short: "Exporta relatórios do dashboard direto do banco de dados",
	Long: `reportctl gera os mesmos relatórios servidos pela API, mas direto do
banco de dados, sem autenticação nem servidor HTTP. Útil para rotinas de
backoffice e conferência manual de números.

Exemplos:
  reportctl export orders --account ACC001 > orders.csv
  reportctl export kpis --account ACC001 --output kpis.csv
  reportctl insights --account ACC001`,
	SilenceUsage: true,
}

// Execute roda o comando raiz. Chamado uma única vez pelo main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&accountID, "account", "", "ID da conta (obrigatório)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Habilita logs detalhados")

	cobra.OnInitialize(func() {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
	})
}

// requireAccount valida o flag --account antes de executar o comando.
func requireAccount(cmd *cobra.Command, _ []string) error {
	if accountID == "" {
		return fmt.Errorf("o flag --account é obrigatório")
	}
	return nil
}

// logActiveFlags registra os flags alterados pelo usuário quando --verbose.
func logActiveFlags(cmd *cobra.Command) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		logrus.WithFields(logrus.Fields{
			"flag":  f.Name,
			"value": f.Value.String(),
		}).Debug("reportctl: flag ativo")
	})
}

// services abre a conexão com o banco e monta os usecases de relatório.
// O caller é responsável por chamar close.
func services(ctx context.Context) (reporting.Reporter, exporting.Exporter, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	orderRepo := repository.NewOrderRepository(conn)
	clientRepo := repository.NewClientRepository(conn)
	meetingRepo := repository.NewMeetingRepository(conn)
	campaignRepo := repository.NewCampaignRepository(conn)

	reporter := reporting.NewService(orderRepo, clientRepo, meetingRepo, campaignRepo)
	exporter := exporting.NewService(reporter)

	return reporter, exporter, func() { conn.Close() }, nil
}

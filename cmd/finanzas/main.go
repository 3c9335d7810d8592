package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fco-hortal/MVP-Finanzas/internal/config"
	"github.com/fco-hortal/MVP-Finanzas/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	logger *zap.Logger
	cfg    *config.Config
)

// rootCmd launches the interactive chat when run without arguments.
var rootCmd = &cobra.Command{
	Use:   "finanzas",
	Short: "Asistente financiero conversacional para pymes",
	Long: `Finanzas es un asistente financiero conversacional.

Carga un archivo Excel con tus estados financieros, responde el
cuestionario de perfil, y haz preguntas en lenguaje natural; las
respuestas las genera Gemini con el contexto de tus datos.

Sin argumentos inicia el chat interactivo.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("inicializando el logger: %w", err)
		}

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Registro detallado")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "finanzas.yaml", "Archivo de configuración")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(flattenCmd)
	rootCmd.AddCommand(accountCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

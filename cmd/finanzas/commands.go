package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/fco-hortal/MVP-Finanzas/internal/accounts"
	"github.com/fco-hortal/MVP-Finanzas/internal/chat"
	"github.com/fco-hortal/MVP-Finanzas/internal/gemini"
	"github.com/fco-hortal/MVP-Finanzas/internal/knowledge"
	"github.com/fco-hortal/MVP-Finanzas/internal/prompt"
	"github.com/fco-hortal/MVP-Finanzas/internal/workbook"
)

// askCmd answers a single question without entering the REPL.
var askCmd = &cobra.Command{
	Use:   "ask [pregunta]",
	Short: "Responde una pregunta puntual (sin sesión interactiva)",
	Long: `Construye el prompt con la configuración actual y hace una única
llamada al modelo. Con --archivo incluye el contexto de un Excel.

Ejemplo:
  finanzas ask --archivo balance.xlsx "¿Cómo está mi liquidez?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

// flattenCmd prints the text context a workbook would contribute.
var flattenCmd = &cobra.Command{
	Use:   "flatten [archivo.xlsx]",
	Short: "Muestra el contexto de texto que genera un Excel",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlatten,
}

// accountCmd groups account operations.
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Administración de cuentas",
}

var accountCreateCmd = &cobra.Command{
	Use:   "create [correo]",
	Short: "Registra una cuenta nueva",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountCreate,
}

var askFile string

func init() {
	askCmd.Flags().StringVar(&askFile, "archivo", "", "Excel a usar como contexto")
	accountCmd.AddCommand(accountCreateCmd)
}

// openStore builds the account store the config names.
func openStore() (accounts.Store, error) {
	switch cfg.Store.Backend {
	case "sqlite":
		return accounts.NewSQLiteStore(cfg.Store.Path)
	default:
		return accounts.NewFileStore(cfg.Store.Path), nil
	}
}

// personaText resolves the configured persona constant.
func personaText() string {
	if cfg.Chat.Persona == "smart_brevity" {
		return prompt.PersonaSmartBrevity
	}
	return prompt.PersonaAnalistaFinanciero
}

// flattenMode resolves the configured flatten mode.
func flattenMode() workbook.Mode {
	if cfg.Chat.FlattenMode == "compacto" {
		return workbook.Compact
	}
	return workbook.Verbose
}

// loadCatalog returns the knowledge catalog, honoring the optional
// override file.
func loadCatalog() *knowledge.Catalog {
	if cfg.Chat.KnowledgePath == "" {
		return knowledge.Default()
	}
	c, err := knowledge.LoadFile(cfg.Chat.KnowledgePath)
	if err != nil {
		logger.Warn("catálogo de conocimiento no cargado, usando el predeterminado",
			zap.String("ruta", cfg.Chat.KnowledgePath), zap.Error(err))
		return knowledge.Default()
	}
	return c
}

// newAssistant validates config and wires the Gemini-backed assistant.
func newAssistant(cmd *cobra.Command) (*chat.Assistant, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := gemini.New(cmd.Context(), cfg.LLM.APIKey, cfg.LLM.Model)
	if err != nil {
		return nil, err
	}

	return chat.NewAssistant(client, personaText(), loadCatalog(), cfg.LLMTimeout()), nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	assistant, err := newAssistant(cmd)
	if err != nil {
		return err
	}

	if askFile != "" {
		wb, err := workbook.ParseFile(askFile)
		if err != nil {
			// Parse failures degrade to a context-free question.
			fmt.Fprintf(os.Stderr, "⚠️  %v (continuando sin contexto)\n", err)
		} else {
			assistant.LoadWorkbook(wb, flattenMode())
		}
	}

	question := args[0]
	for _, extra := range args[1:] {
		question += " " + extra
	}

	return oneShot(cmd.Context(), assistant, question, os.Stdout)
}

// oneShot answers a single question for the non-interactive command.
// Unlike the REPL, where the error text standing in for the reply is
// the contract, a failed call here must leave a non-zero exit so
// scripts can tell failure from a reply.
func oneShot(ctx context.Context, assistant *chat.Assistant, question string, w io.Writer) error {
	start := time.Now()
	reply, err := assistant.Ask(ctx, question)
	logger.Debug("llamada al modelo",
		zap.Duration("duración", time.Since(start)), zap.Error(err))

	if err != nil {
		return err
	}
	fmt.Fprintln(w, reply)
	return nil
}

func runFlatten(cmd *cobra.Command, args []string) error {
	wb, err := workbook.ParseFile(args[0])
	if err != nil {
		return err
	}
	fmt.Print(workbook.Flatten(wb, flattenMode()))
	return nil
}

func runAccountCreate(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	email := args[0]
	fmt.Print("Contraseña: ")
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("leyendo la contraseña: %w", err)
	}

	if err := store.Create(email, string(pw), accounts.Profile{}); err != nil {
		return err
	}
	fmt.Printf("Cuenta creada para %s. Completa tu perfil en el chat.\n", email)
	return nil
}

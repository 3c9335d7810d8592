package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/fco-hortal/MVP-Finanzas/internal/accounts"
	"github.com/fco-hortal/MVP-Finanzas/internal/chat"
	"github.com/fco-hortal/MVP-Finanzas/internal/onboarding"
	"github.com/fco-hortal/MVP-Finanzas/internal/workbook"
)

// suggestedQuestions are offered via /ideas, mirroring the ones the
// dashboard used to show as buttons.
var suggestedQuestions = []string{
	"¿Cuál es el resumen de los ingresos y gastos?",
	"¿Cómo está la situación de liquidez?",
	"¿Cuáles son las principales categorías de gastos?",
	"¿Hay alguna tendencia preocupante en los datos?",
	"¿Qué recomendaciones financieras puedes darme?",
}

// runChat drives the interactive session: access, onboarding, file
// loading, and the question loop. Each user action is one synchronous
// pass; only the model call and file I/O block, both bounded.
func runChat(cmd *cobra.Command) error {
	assistant, err := newAssistant(cmd)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	reader := bufio.NewScanner(os.Stdin)
	fmt.Println("💼 Finanzas — asistente financiero (sesión " + assistant.Session().ID()[:8] + ")")

	email, profile, err := access(reader, store)
	if err != nil {
		return err
	}
	assistant.SetProfile(profile)

	if incomplete(profile) {
		profile, err = runOnboarding(reader, profile)
		if err != nil {
			return err
		}
		assistant.SetProfile(profile)
		if email != "" {
			if err := store.SetProfile(email, profile); err != nil {
				logger.Warn("no se pudo guardar el perfil", zap.Error(err))
			}
		}
	}

	printHelp()

	for {
		fmt.Print("\n> ")
		if !reader.Scan() {
			return nil
		}
		line := strings.TrimSpace(reader.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "/salir":
			fmt.Println("¡Hasta pronto!")
			return nil

		case line == "/limpiar":
			assistant.ClearHistory()
			fmt.Println("Historial borrado.")

		case line == "/ideas":
			for i, q := range suggestedQuestions {
				fmt.Printf("  %d. %s\n", i+1, q)
			}

		case line == "/perfil":
			for _, key := range accounts.ProfileKeys {
				fmt.Printf("  - %s: %s\n", key, assistant.Profile()[key])
			}

		case strings.HasPrefix(line, "/cargar "):
			path := strings.TrimSpace(strings.TrimPrefix(line, "/cargar "))
			wb, err := workbook.ParseFile(path)
			if err != nil {
				// Recoverable: keep chatting without context.
				fmt.Printf("⚠️  %v\n", err)
				continue
			}
			assistant.LoadWorkbook(wb, flattenMode())
			fmt.Printf("✅ Archivo cargado (%d hojas). ¡Haz tus preguntas!\n", len(wb.Sheets))

		case strings.HasPrefix(line, "/"):
			fmt.Println("Comando desconocido.")
			printHelp()

		default:
			answer(cmd.Context(), assistant, line)
		}
	}
}

// answer sends one question. The signal context is armed per call so a
// SIGINT cancels only the in-flight model call; the next question gets
// a fresh context and can retry.
func answer(ctx context.Context, assistant *chat.Assistant, question string) {
	if !assistant.HasContext() {
		fmt.Println("(sin archivo cargado; responderé sin datos del negocio)")
	}
	fmt.Println("Analizando...")

	callCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	reply, err := assistant.Ask(callCtx, question)
	if err != nil {
		logger.Warn("falló la llamada al modelo",
			zap.Duration("duración", time.Since(start)), zap.Error(err))
	}
	fmt.Println("\n🤖 " + reply)
}

// access runs the login/register gate. Empty email at the prompt means
// guest mode: the profile lives only in memory for this session.
func access(reader *bufio.Scanner, store accounts.Store) (string, accounts.Profile, error) {
	throttle := accounts.NewThrottle(5, time.Minute)

	for {
		fmt.Print("Correo (Enter para continuar sin cuenta): ")
		if !reader.Scan() {
			return "", accounts.Profile{}, nil
		}
		email := strings.TrimSpace(reader.Text())
		if email == "" {
			return "", accounts.Profile{}, nil
		}

		if !throttle.Allow(email) {
			fmt.Println("Demasiados intentos. Espera un minuto.")
			continue
		}

		fmt.Print("Contraseña: ")
		pw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", nil, fmt.Errorf("leyendo la contraseña: %w", err)
		}

		profile, err := store.Authenticate(email, string(pw))
		if err == nil {
			throttle.Reset(email)
			fmt.Println("Sesión iniciada.")
			return email, profile, nil
		}
		if !errors.Is(err, accounts.ErrInvalidCredentials) {
			return "", nil, err
		}

		// Same message for unknown identity and wrong password; offer
		// registration without revealing which case this was.
		fmt.Println(err.Error() + " ¿Registrar esta cuenta? (s/n)")
		if !reader.Scan() || strings.ToLower(strings.TrimSpace(reader.Text())) != "s" {
			continue
		}
		if err := store.Create(email, string(pw), accounts.Profile{}); err != nil {
			if errors.Is(err, accounts.ErrAlreadyExists) {
				fmt.Println("La cuenta ya existe; intenta iniciar sesión de nuevo.")
				continue
			}
			return "", nil, err
		}
		fmt.Println("Cuenta creada.")
		return email, accounts.Profile{}, nil
	}
}

// incomplete reports whether any onboarding key is missing.
func incomplete(p accounts.Profile) bool {
	for _, key := range accounts.ProfileKeys {
		if p[key] == "" {
			return true
		}
	}
	return false
}

// runOnboarding walks the questionnaire in the terminal, one numbered
// selection per step.
func runOnboarding(reader *bufio.Scanner, existing accounts.Profile) (accounts.Profile, error) {
	fmt.Println("\nCuéntanos de tu negocio para personalizar las respuestas.")
	m := onboarding.New(existing)

	for !m.Done() {
		q := m.Current()
		fmt.Printf("\n%d/%d %s\n", m.Step()+1, len(onboarding.Questions), q.Prompt)
		for i, opt := range q.Options {
			fmt.Printf("  %d. %s\n", i+1, opt)
		}
		fmt.Print("Opción: ")

		if !reader.Scan() {
			return m.Profile(), nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(reader.Text()))
		if err != nil || n < 1 || n > len(q.Options) {
			fmt.Printf("Ingresa un número entre 1 y %d.\n", len(q.Options))
			continue
		}
		if err := m.Answer(q.Options[n-1]); err != nil {
			return nil, err
		}
	}

	fmt.Println("\n✅ Perfil completo.")
	return m.Profile(), nil
}

func printHelp() {
	fmt.Println(`
Comandos:
  /cargar <archivo.xlsx>  carga un Excel como contexto
  /ideas                  preguntas sugeridas
  /perfil                 muestra tu perfil
  /limpiar                borra el historial del chat
  /salir                  termina la sesión
Cualquier otro texto se envía como pregunta.`)
}

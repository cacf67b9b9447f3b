package commands

import (
	"context"
	"fmt"
	"io"

	mem "edd-calculator/internal/adapters/storage/memory"
	"edd-calculator/internal/domain/calculations"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

const appVersion = "0.1.0"

// copyToClipboard es variable para poder reemplazarla en tests (no hay clipboard en CI).
var copyToClipboard = clipboard.WriteAll

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	var copyOut bool

	// El CLI no guarda historial; el repo en memoria solo vive lo que dura el comando.
	svc := calculations.NewService(mem.NewCalculationsRepo(), calculations.Options{})

	root := &cobra.Command{
		Use:           "eddcalc",
		Short:         "Pregnancy EDD calculator (CLI or web)",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("eddcalc v{{.Version}}\n")
	root.PersistentFlags().BoolVarP(&copyOut, "copy", "c", false, "Copy the result to the system clipboard")

	emit := func(cmd *cobra.Command, c calculations.Calculation) error {
		return printResult(cmd.OutOrStdout(), c.Summary, copyOut)
	}

	root.AddCommand(
		lmpCmd(svc, emit),
		gaDateCmd(svc, emit),
		ultrasoundCmd(svc, emit),
		reconcileCmd(svc, emit),
		serveCmd(),
	)
	return root
}

type emitFunc func(cmd *cobra.Command, c calculations.Calculation) error

func printResult(w io.Writer, text string, copyOut bool) error {
	fmt.Fprintln(w, text)
	if !copyOut {
		return nil
	}
	if err := copyToClipboard(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	fmt.Fprintln(w, "📋 Copied!")
	return nil
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

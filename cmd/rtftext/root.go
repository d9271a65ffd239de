package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/rtftext/format"
	"github.com/tsawler/rtftext/internal/config"
	"github.com/tsawler/rtftext/model"
	"github.com/tsawler/rtftext/reader"
	"github.com/tsawler/rtftext/text"
)

var errNoSource = errors.New("source path not provided")

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rtftext <file.rtf>",
		Short: "Extract plain text from an RTF document",
		Long: "rtftext converts an RTF document to plain text, one line per paragraph,\n" +
			"and writes it next to the source file with a .txt extension.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "" {
				return errNoSource
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			dest, err := run(cmd.Context(), logger, cfg, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Text extracted:", dest)
			return nil
		},
	}
}

func newLogger(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// run converts source and writes the text file, returning its path.
func run(ctx context.Context, log *slog.Logger, cfg config.Config, source string) (string, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("reading source: %w", err)
	}

	if format.DetectFromMagic(data) != format.RTF {
		log.Warn("input does not start with an RTF signature", slog.String("path", source))
	}

	doc, err := reader.Parse(ctx, data,
		reader.WithTokenBuffer(cfg.TokenBuffer),
		reader.WithDefaultCodepage(cfg.DefaultCodepage),
		reader.WithObserver(func(e reader.Event) {
			log.Debug("pipeline event",
				slog.String("event", e.Kind.String()),
				slog.Int("tokens", e.Tokens),
				slog.Any("err", e.Err))
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to parse RTF document %s: %w", source, err)
	}
	log.Debug("document parsed",
		slog.String("path", source),
		slog.Int("paragraphs", doc.ParagraphCount()),
		slog.Int("fonts", len(doc.Fonts)),
		slog.Int("codepage", doc.Codepage))

	dest := format.OutputPath(source, cfg.OutputExtension)
	if err := writeText(dest, doc); err != nil {
		return "", err
	}
	return dest, nil
}

// writeText writes the flattened document to dest.
func writeText(dest string, doc *model.Document) error {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if _, err := text.WriteTo(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("writing output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

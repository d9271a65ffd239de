package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Config
		wantErr string
	}{
		{
			name: "empty keeps defaults",
			yaml: "",
			want: Default(),
		},
		{
			name: "all keys",
			yaml: "token_buffer: 8\ndefault_codepage: 1251\noutput_extension: .text\nlog_level: debug\n",
			want: Config{TokenBuffer: 8, DefaultCodepage: 1251, OutputExtension: ".text", LogLevel: "debug"},
		},
		{
			name: "partial",
			yaml: "token_buffer: 0\n",
			want: Config{TokenBuffer: 0, DefaultCodepage: 1252, OutputExtension: ".txt", LogLevel: "info"},
		},
		{
			name:    "negative buffer",
			yaml:    "token_buffer: -1\n",
			wantErr: "token_buffer",
		},
		{
			name:    "bad extension",
			yaml:    "output_extension: txt\n",
			wantErr: "output_extension",
		},
		{
			name:    "bad level",
			yaml:    "log_level: loud\n",
			wantErr: "log_level",
		},
		{
			name:    "invalid yaml",
			yaml:    "token_buffer: [\n",
			wantErr: "parsing config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() without file mismatch (-want +got):\n%s", diff)
	}

	path := filepath.Join(t.TempDir(), "rtftext.yaml")
	if err := os.WriteFile(path, []byte("default_codepage: 1250\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvVar, path)
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultCodepage != 1250 {
		t.Errorf("DefaultCodepage = %d, want 1250", cfg.DefaultCodepage)
	}

	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := Config{LogLevel: tt.in}.Level()
		if err != nil || got != tt.want {
			t.Errorf("Level(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

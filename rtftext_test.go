package rtftext

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/tsawler/rtftext/core"
	"github.com/tsawler/rtftext/reader"
)

const sample = `{\rtf1\ansi\deff0{\fonttbl{\f0\fswiss Helvetica;}}` +
	`{\colortbl;\red255\green0\blue0;}` +
	`\f0\fs24 Dinosaurs {\b were} \cf1 reptiles\cf0 .\par ` +
	"Caf\xe9 society\\par}"

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.rtf")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen(t *testing.T) {
	// Test with non-existent file
	_, err := Open("nonexistent.rtf").Text()
	if err == nil {
		t.Error("expected error for non-existent file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapping os.ErrNotExist", err)
	}
}

func TestBasicTextExtraction(t *testing.T) {
	text, err := Open(writeSample(t)).Text()
	if err != nil {
		t.Fatalf("failed to extract text: %v", err)
	}

	want := "Dinosaurs were reptiles.\nCafé society"
	if text != want {
		t.Errorf("Text() = %q, want %q", text, want)
	}
}

func TestDocument(t *testing.T) {
	doc, err := FromBytes([]byte(sample)).Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if doc.ParagraphCount() != 2 {
		t.Fatalf("ParagraphCount() = %d, want 2", doc.ParagraphCount())
	}
	if doc.Fonts[0].Name != "Helvetica" {
		t.Errorf("font 0 = %q, want Helvetica", doc.Fonts[0].Name)
	}

	spans := doc.Paragraphs[0].Spans
	var bold, red bool
	for _, s := range spans {
		if s.Value == "were" && s.Style.Bold {
			bold = true
		}
		if s.Value == "reptiles" && s.Style.Foreground != nil && s.Style.Foreground.R == 255 {
			red = true
		}
	}
	if !bold || !red {
		t.Errorf("styles not preserved: bold=%v red=%v spans=%+v", bold, red, spans)
	}
}

func TestCodepage(t *testing.T) {
	text, err := FromBytes([]byte("{\\rtf1 \xcf\xf0\xe8}")).Codepage(1251).Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if text != "При" {
		t.Errorf("Text() = %q, want %q", text, "При")
	}

	if _, err := FromBytes([]byte(sample)).Codepage(0).Text(); err == nil {
		t.Error("expected error for codepage 0")
	}
}

func TestTokenBuffer(t *testing.T) {
	for _, n := range []int{0, 1, 128} {
		text, err := FromBytes([]byte(sample)).TokenBuffer(n).Text()
		if err != nil {
			t.Fatalf("TokenBuffer(%d) error = %v", n, err)
		}
		if text != "Dinosaurs were reptiles.\nCafé society" {
			t.Errorf("TokenBuffer(%d) text = %q", n, text)
		}
	}

	if _, err := FromBytes([]byte(sample)).TokenBuffer(-1).Text(); err == nil {
		t.Error("expected error for negative buffer")
	}
}

func TestImmutableChaining(t *testing.T) {
	base := FromBytes([]byte("{\\rtf1 \xe9}"))
	cyr := base.Codepage(1251)

	a, err := base.Text()
	if err != nil {
		t.Fatal(err)
	}
	b, err := cyr.Text()
	if err != nil {
		t.Fatal(err)
	}
	if a != "é" || b != "й" {
		t.Errorf("base = %q, derived = %q; want %q and %q", a, b, "é", "й")
	}
}

func TestObserve(t *testing.T) {
	var mu sync.Mutex
	settled := 0
	_, err := FromBytes([]byte(sample)).Observe(func(e reader.Event) {
		mu.Lock()
		defer mu.Unlock()
		if e.Kind == reader.EventSettled {
			settled++
		}
	}).Text()
	if err != nil {
		t.Fatal(err)
	}
	if settled != 1 {
		t.Errorf("settled %d times, want 1", settled)
	}
}

func TestContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := FromBytes([]byte(sample)).Context(ctx).Text(); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want %v", err, context.Canceled)
	}
}

func TestParseErrorMentionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.rtf")
	if err := os.WriteFile(path, []byte(`{\rtf1 {unclosed}`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Open(path).Text()
	if !errors.Is(err, core.ErrUnbalancedGroup) {
		t.Errorf("error = %v, want %v", err, core.ErrUnbalancedGroup)
	}
}

func TestMust(t *testing.T) {
	if got := Must(FromBytes([]byte(`{\rtf1 ok}`)).Text()); got != "ok" {
		t.Errorf("Must() = %q, want %q", got, "ok")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Must(FromBytes([]byte("garbage")).Text())
}

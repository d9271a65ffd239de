// rtftext extracts the plain text of an RTF document.
//
// Usage:
//
//	rtftext <file.rtf>
//
// The text is written next to the source, e.g. notes.rtf -> notes.txt.
// Settings are read from the YAML file named by RTFTEXT_CONFIG, if set.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

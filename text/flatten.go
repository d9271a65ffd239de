package text

import (
	"io"
	"strings"

	"github.com/tsawler/rtftext/model"
)

// Flatten returns the plain text of doc. A nil document yields "".
func Flatten(doc *model.Document) string {
	var b strings.Builder
	_, _ = WriteTo(&b, doc)
	return b.String()
}

// WriteTo writes the plain text of doc to w and returns the number of
// bytes written.
func WriteTo(w io.Writer, doc *model.Document) (int64, error) {
	if doc == nil {
		return 0, nil
	}

	var total int64
	for i, p := range doc.Paragraphs {
		if i > 0 {
			n, err := io.WriteString(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		for _, s := range p.Spans {
			n, err := io.WriteString(w, s.Value)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

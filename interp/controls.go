package interp

import (
	"github.com/tsawler/rtftext/core"
	"github.com/tsawler/rtftext/internal/charset"
	"github.com/tsawler/rtftext/model"
)

// Destinations whose content never reaches the body.
var skippedDestinations = map[string]bool{
	"author":             true,
	"buptim":             true,
	"colorschememapping": true,
	"comment":            true,
	"creatim":            true,
	"datastore":          true,
	"doccomm":            true,
	"filetbl":            true,
	"footer":             true,
	"footerf":            true,
	"footerl":            true,
	"footerr":            true,
	"footnote":           true,
	"generator":          true,
	"header":             true,
	"headerf":            true,
	"headerl":            true,
	"headerr":            true,
	"info":               true,
	"keywords":           true,
	"latentstyles":       true,
	"listoverridetable":  true,
	"listtable":          true,
	"object":             true,
	"operator":           true,
	"pict":               true,
	"printim":            true,
	"private":            true,
	"revtbl":             true,
	"revtim":             true,
	"rsidtbl":            true,
	"stylesheet":         true,
	"subject":            true,
	"themedata":          true,
	"title":              true,
	"xmlnstbl":           true,
}

// Control words that stand for a single character.
var specialCharacters = map[string]string{
	"tab":       "\t",
	"line":      "\n",
	"emdash":    "\u2014",
	"endash":    "\u2013",
	"emspace":   "\u2003",
	"enspace":   "\u2002",
	"qmspace":   "\u2005",
	"bullet":    "\u2022",
	"lquote":    "\u2018",
	"rquote":    "\u2019",
	"ldblquote": "\u201c",
	"rdblquote": "\u201d",
	"zwj":       "\u200d",
	"zwnj":      "\u200c",
}

// Control symbols that stand for a single character.
var specialSymbols = map[string]string{
	"~":  "\u00a0",
	"_":  "\u2011",
	"-":  "",
	`\`:  `\`,
	"{":  "{",
	"}":  "}",
	"\t": "\t",
}

var underlineWords = map[string]bool{
	"ul": true, "uld": true, "uldash": true, "uldashd": true, "uldashdd": true,
	"uldb": true, "ulhwave": true, "ulldash": true, "ulth": true, "ulthd": true,
	"ulthdash": true, "ulthdashd": true, "ulthdashdd": true, "ulthldash": true,
	"ululdbwave": true, "ulw": true, "ulwave": true,
}

func (in *Interpreter) controlWord(tok core.Token) {
	st := in.cur()

	if st.dest == destSkip {
		return
	}
	if in.skip > 0 {
		in.skip--
		return
	}

	word := tok.Value

	if skippedDestinations[word] {
		in.flushPending()
		st.dest = destSkip
		return
	}

	switch st.dest {
	case destFontTable:
		in.fontWord(tok)
		return
	case destColorTable:
		in.colorWord(tok)
		return
	}

	if s, ok := specialCharacters[word]; ok {
		in.flushPending()
		in.appendText(s)
		return
	}

	// Everything below changes state, so text decoded so far must be
	// emitted with the old state.
	in.flushPending()

	on := !tok.HasParam || tok.Param != 0

	switch {
	case word == "par" || word == "sect" || word == "page":
		in.endParagraph()

	case word == "fonttbl":
		st.dest = destFontTable
	case word == "colortbl":
		st.dest = destColorTable
		in.color = model.Color{}

	// document charset
	case word == "ansi":
		in.doc.Codepage = 1252
	case word == "mac":
		in.doc.Codepage = charset.CodepageMac
	case word == "pc":
		in.doc.Codepage = charset.CodepagePC
	case word == "pca":
		in.doc.Codepage = charset.CodepagePCA
	case word == "ansicpg" && tok.HasParam:
		in.doc.Codepage = tok.Param
	case word == "deff" && tok.HasParam:
		in.doc.DefaultFont = tok.Param
		st.style.Font = tok.Param

	// unicode
	case word == "u" && tok.HasParam:
		in.unicode(tok.Param)
	case word == "uc" && tok.HasParam:
		if tok.Param >= 0 {
			st.uc = tok.Param
		}

	// character formatting
	case word == "plain":
		st.style = model.TextStyle{Font: in.doc.DefaultFont}
	case word == "b":
		st.style.Bold = on
	case word == "i":
		st.style.Italic = on
	case underlineWords[word]:
		st.style.Underline = on
	case word == "ulnone":
		st.style.Underline = false
	case word == "strike" || word == "striked":
		st.style.Strike = on
	case word == "super":
		st.style.VerticalAlign = model.VAlignSuper
	case word == "sub":
		st.style.VerticalAlign = model.VAlignSub
	case word == "nosupersub":
		st.style.VerticalAlign = model.VAlignBaseline
	case word == "f" && tok.HasParam:
		st.style.Font = tok.Param
	case word == "fs" && tok.HasParam:
		st.style.FontSize = float64(tok.Param) / 2
	case word == "cf" && tok.HasParam:
		st.style.Foreground = in.colorRef(tok.Param)
	case (word == "cb" || word == "highlight" || word == "chcbpat") && tok.HasParam:
		st.style.Background = in.colorRef(tok.Param)

	// paragraph formatting
	case word == "pard":
		st.para = model.ParagraphStyle{}
		in.syncParagraph()
	case word == "ql":
		st.para.Alignment = model.AlignLeft
		in.syncParagraph()
	case word == "qc":
		st.para.Alignment = model.AlignCenter
		in.syncParagraph()
	case word == "qr":
		st.para.Alignment = model.AlignRight
		in.syncParagraph()
	case word == "qj":
		st.para.Alignment = model.AlignJustify
		in.syncParagraph()
	case word == "li" && tok.HasParam:
		st.para.IndentLeft = tok.Param
		in.syncParagraph()
	case word == "ri" && tok.HasParam:
		st.para.IndentRight = tok.Param
		in.syncParagraph()
	case word == "fi" && tok.HasParam:
		st.para.IndentFirst = tok.Param
		in.syncParagraph()
	}
}

func (in *Interpreter) controlSymbol(tok core.Token) {
	st := in.cur()

	if st.dest == destSkip {
		return
	}
	if tok.Value == "*" {
		// Ignorable destination: none of the ones this package
		// understands are marked with \*.
		in.flushPending()
		st.dest = destSkip
		return
	}
	if in.skip > 0 {
		in.skip--
		return
	}
	if st.dest != destBody {
		if st.dest == destFontTable {
			in.fontText(tok.Value)
		}
		return
	}

	if s, ok := specialSymbols[tok.Value]; ok {
		in.flushPending()
		in.appendText(s)
	}
}

// syncParagraph applies the group's paragraph style to the open paragraph,
// since paragraph properties belong to the paragraph they end.
func (in *Interpreter) syncParagraph() {
	if in.para != nil {
		in.para.Style = in.top().para
	}
}

// colorRef resolves a color table index. Index 0 and unknown indexes mean
// the automatic color.
func (in *Interpreter) colorRef(index int) *model.Color {
	if index == 0 {
		return nil
	}
	return in.doc.Color(index)
}

func (in *Interpreter) fontWord(tok core.Token) {
	switch tok.Value {
	case "f":
		if !tok.HasParam {
			return
		}
		in.finishFont()
		in.font = fontEntry{index: tok.Param, open: true}
	case "fcharset":
		if tok.HasParam {
			in.font.font.Charset = tok.Param
			in.font.font.HasCharset = true
		}
	case "fnil", "froman", "fswiss", "fmodern", "fscript", "fdecor", "ftech", "fbidi":
		in.font.font.Family = tok.Value[1:]
	}
}

func (in *Interpreter) colorWord(tok core.Token) {
	if !tok.HasParam {
		return
	}
	v := uint8(tok.Param)
	switch tok.Value {
	case "red":
		in.color.R = v
	case "green":
		in.color.G = v
	case "blue":
		in.color.B = v
	}
}

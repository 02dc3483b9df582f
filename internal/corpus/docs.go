package corpus

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// LoadDocument reads one free-text source into a single document unit,
// still unsplit. Source is the file's base name.
func LoadDocument(path string) (Unit, error) {
	var content string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		var data []byte
		data, err = os.ReadFile(path)
		content = string(data)
	case ".md", ".markdown":
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			content = markdownText(data)
		}
	case ".pdf":
		content, err = pdfText(path)
	default:
		return Unit{}, fmt.Errorf("unsupported document type %q", filepath.Ext(path))
	}
	if err != nil {
		return Unit{}, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return Unit{}, fmt.Errorf("document %s has no text", filepath.Base(path))
	}

	return Unit{Kind: KindDocument, Source: filepath.Base(path), Content: content}, nil
}

// markdownText flattens a markdown document to plain text by walking the
// parsed AST and collecting text segments.
func markdownText(src []byte) string {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var buf strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			switch t := n.(type) {
			case *ast.Text:
				buf.Write(t.Segment.Value(src))
				if t.SoftLineBreak() || t.HardLineBreak() {
					buf.WriteByte('\n')
				}
			case *ast.String:
				buf.Write(t.Value)
			}
		} else {
			switch n.(type) {
			case *ast.Paragraph, *ast.Heading, *ast.ListItem:
				buf.WriteString("\n\n")
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func pdfText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	rd, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rd); err != nil {
		return "", err
	}
	return buf.String(), nil
}

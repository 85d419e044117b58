// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns report files into the plain text the gate
// consumes. The core API only ever sees strings; file handling is a CLI
// convenience.
package preprocessors

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPages bounds PDF processing time on very large documents.
const maxPages = 50

// ReadInput returns the text of the given report file. PDF files are run
// through text extraction; everything else is read as plain text.
func ReadInput(path string) (string, error) {
	if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return ExtractPDFText(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file: %w", err)
	}
	return string(data), nil
}

// ExtractPDFText extracts the text of a PDF report, pages in order.
func ExtractPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	if pageCount > maxPages {
		pageCount = maxPages
	}

	type pageText struct {
		num  int
		text string
	}
	var pages []pageText

	for i := 1; i <= pageCount; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, pageText{num: i, text: text})
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].num < pages[j].num })

	var b strings.Builder
	for _, p := range pages {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.text)
	}
	return b.String(), nil
}

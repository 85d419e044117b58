// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadInputPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	content := "John Doe committed fraud.\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	text, err := ReadInput(path)
	if err != nil {
		t.Fatalf("ReadInput failed: %v", err)
	}
	if text != content {
		t.Errorf("text = %q, want %q", text, content)
	}
}

func TestReadInputMissingFile(t *testing.T) {
	if _, err := ReadInput("/nonexistent/report.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadInputMissingPDF(t *testing.T) {
	if _, err := ReadInput("/nonexistent/report.pdf"); err == nil {
		t.Fatal("expected error for missing PDF")
	}
}

func TestReadInputBadPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0600); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	if _, err := ReadInput(path); err == nil {
		t.Fatal("expected error for malformed PDF")
	}
}

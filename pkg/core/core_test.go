package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestScan_Smoke(t *testing.T) {
	root := Mapping().
		Put("api_key", StringNode("xK9#mQ2$vL8@nR5!")).
		Put("comment", StringNode("hello"))

	findings, err := Scan(root, DefaultPolicy())
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].KeyPath != "api_key" {
		t.Fatalf("unexpected key path %q", findings[0].KeyPath)
	}
}

func TestScanPath_Smoke(t *testing.T) {
	dir := t.TempDir()
	yml := "database:\n  password: xK9#mQ2$vL8@nR5!\n"
	if err := os.WriteFile(filepath.Join(dir, "app.yaml"), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := ScanPath(context.Background(), Config{Target: dir, Policy: DefaultPolicy()})
	if err != nil {
		t.Fatalf("ScanPath error: %v", err)
	}
	if res.FilesScanned != 1 {
		t.Fatalf("expected 1 scanned file, got %d", res.FilesScanned)
	}
	if len(res.Findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(res.Findings))
	}
}

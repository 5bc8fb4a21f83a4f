package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vendor_risk_backend/internal/config"
)

func TestLocalStorageUploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	provider := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}

	content := "vendor contract scan"
	url, err := provider.Upload(context.Background(), "assessments/a1/doc.pdf", strings.NewReader(content), int64(len(content)), "application/pdf")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "/uploads/assessments/a1/doc.pdf" {
		t.Errorf("URL = %q, want /uploads/assessments/a1/doc.pdf", url)
	}

	stored, err := os.ReadFile(filepath.Join(dir, "assessments", "a1", "doc.pdf"))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(stored) != content {
		t.Errorf("stored content = %q, want %q", stored, content)
	}

	if err := provider.Delete(context.Background(), "assessments/a1/doc.pdf"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "assessments", "a1", "doc.pdf")); !os.IsNotExist(err) {
		t.Error("file still exists after Delete")
	}
}

func TestStorageServiceFallsBackToLocal(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()

	svc := NewStorageService(cfg)
	if _, ok := svc.Provider.(*LocalStorageProvider); !ok {
		t.Fatalf("provider = %T, want *LocalStorageProvider", svc.Provider)
	}
}

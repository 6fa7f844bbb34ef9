package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName == "" {
		t.Fatal("expected AppName to be non-empty")
	}
	if AppName != "Aegistry" {
		t.Fatalf("AppName = %q, want %q", AppName, "Aegistry")
	}
}

func TestProductLine(t *testing.T) {
	if ProductLine == "" {
		t.Fatal("expected ProductLine to be non-empty")
	}
}

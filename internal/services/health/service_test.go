package health

import "testing"

func TestStatusReportsModes(t *testing.T) {
	got := NewService("mongo", "local").Status()
	if !got.OK || got.DocumentStore != "mongo" || got.ObjectStore != "local" {
		t.Fatalf("unexpected status: %+v", got)
	}
}

func TestStatusDegraded(t *testing.T) {
	got := NewService("", "s3").Status()
	if !got.OK {
		t.Fatalf("degraded mode should still report ok")
	}
	if got.DocumentStore != ModeDisabled {
		t.Fatalf("expected %q, got %q", ModeDisabled, got.DocumentStore)
	}
}

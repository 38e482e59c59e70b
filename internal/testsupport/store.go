package testsupport

import (
	"context"
	"testing"

	"camlink/internal/config"
	"camlink/internal/report"
)

// MustOpenStore opens the run store configured by cfg and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *report.Store {
	t.Helper()

	store, err := report.Open(context.Background(), cfg.RunStorePath())
	if err != nil {
		t.Fatalf("open run store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

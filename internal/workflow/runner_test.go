package workflow_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"camlink/internal/blocking"
	"camlink/internal/logging"
	"camlink/internal/specs"
	"camlink/internal/testsupport"
	"camlink/internal/workflow"
)

func TestRunEndToEnd(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithClassificationReports())
	dir := cfg.Paths.DatasetDir
	a := testsupport.WriteTitle(t, dir, "www.ebay.com", "1", "Canon EOS 7D Mark II Digital Camera")
	b := testsupport.WriteTitle(t, dir, "buy.net", "10", "Canon 7D Mark II Body")
	c := testsupport.WriteTitle(t, dir, "www.ebay.com", "2", "Nikon D90")
	d := testsupport.WriteTitle(t, dir, "www.ebay.com", "3", "Unbranded Spy Pen Camera 720p")
	e := testsupport.WriteTitle(t, dir, "cammarkt.com", "4", "Unbranded Spy Pen Camera 720p")
	testsupport.WriteRaw(t, dir+"/www.ebay.com/notes.txt", []byte("ignored"))

	result, err := workflow.NewRunner(cfg, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := []blocking.Pair{{Left: b, Right: a}, {Left: e, Right: d}}
	if !reflect.DeepEqual(result.Pairs, want) {
		t.Fatalf("unexpected pairs: got %+v want %+v", result.Pairs, want)
	}
	stats := result.Stats
	if stats.Records != 5 || stats.Solved != 3 || stats.Unsolved != 2 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.Pairs != 2 || stats.SolvedPairs != 1 || stats.UnsolvedPairs != 1 {
		t.Fatalf("unexpected pair counts: %+v", stats)
	}
	if result.RunID == "" {
		t.Fatal("expected run id")
	}

	matches, err := os.ReadFile(cfg.MatchesPath())
	if err != nil {
		t.Fatalf("read matches: %v", err)
	}
	wantCSV := "left_spec_id,right_spec_id\n" + b + "," + a + "\n" + e + "," + d + "\n"
	if string(matches) != wantCSV {
		t.Fatalf("unexpected matches report:\n%s", matches)
	}

	solved, err := os.ReadFile(cfg.SolvedPath())
	if err != nil {
		t.Fatalf("read solved: %v", err)
	}
	if !strings.Contains(string(solved), c+",nikon d90,nikon d90\n") {
		t.Fatalf("solved report misses nikon record:\n%s", solved)
	}
	if _, err := os.Stat(cfg.UnsolvedPath()); err != nil {
		t.Fatalf("expected unsolved report: %v", err)
	}
	if len(result.Reports) != 3 {
		t.Fatalf("expected three reports, got %q", result.Reports)
	}

	store := testsupport.MustOpenStore(t, cfg)
	latest, err := store.LatestRun(context.Background())
	if err != nil {
		t.Fatalf("LatestRun: %v", err)
	}
	if latest == nil || latest.ID != result.RunID || latest.Pairs != 2 {
		t.Fatalf("unexpected recorded run: %+v", latest)
	}
	pairs, err := store.Pairs(context.Background(), result.RunID)
	if err != nil {
		t.Fatalf("Pairs: %v", err)
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("recorded pairs mismatch: %+v", pairs)
	}
}

func TestRunFailsOnMalformedRecord(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteTitle(t, cfg.Paths.DatasetDir, "src", "1", "Nikon D90")
	testsupport.WriteRecord(t, cfg.Paths.DatasetDir, "src", "2", map[string]any{"brand": "nikon"})

	_, err := workflow.NewRunner(cfg, nil).Run(context.Background())
	var mre *specs.MalformedRecordError
	if !errors.As(err, &mre) {
		t.Fatalf("expected MalformedRecordError, got %v", err)
	}
	if mre.ID != "src//2" {
		t.Fatalf("unexpected malformed id: %q", mre.ID)
	}
	if _, statErr := os.Stat(cfg.MatchesPath()); !os.IsNotExist(statErr) {
		t.Fatalf("expected no report on failure, stat err: %v", statErr)
	}
}

func TestRunSkipsMalformedRecords(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithSkipMalformed(true), testsupport.WithoutRunHistory())
	testsupport.WriteTitle(t, cfg.Paths.DatasetDir, "a", "1", "Nikon D90")
	testsupport.WriteTitle(t, cfg.Paths.DatasetDir, "b", "1", "Nikon D90 kit")
	testsupport.WriteRecord(t, cfg.Paths.DatasetDir, "b", "2", map[string]any{specs.TitleAttribute: 12})

	var logs bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Writer: &logs})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	result, err := workflow.NewRunner(cfg, logger).Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(logs.String(), `"alert":"malformed_records_skipped"`) {
		t.Fatalf("expected skipped-records alert in logs:\n%s", logs.String())
	}
	if result.Stats.Malformed != 1 || len(result.Malformed) != 1 || result.Malformed[0].ID != "b//2" {
		t.Fatalf("unexpected malformed bookkeeping: %+v", result.Malformed)
	}
	if len(result.Pairs) != 1 {
		t.Fatalf("expected one pair, got %+v", result.Pairs)
	}
	if _, err := os.Stat(cfg.RunStorePath()); !os.IsNotExist(err) {
		t.Fatalf("expected no run store when history is disabled, stat err: %v", err)
	}
	if _, err := os.Stat(cfg.Paths.StateDir); !os.IsNotExist(err) {
		t.Fatalf("expected no state dir when history is disabled, stat err: %v", err)
	}
}

func TestRunMissingDataset(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if _, err := workflow.NewRunner(cfg, nil).Run(context.Background()); err == nil {
		t.Fatal("expected error for missing dataset dir")
	}
}

func TestRunRefusesConcurrentRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteTitle(t, cfg.Paths.DatasetDir, "src", "1", "Nikon D90")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}

	held := flock.New(cfg.LockPath())
	locked, err := held.TryLock()
	if err != nil || !locked {
		t.Fatalf("could not take lock: locked=%v err=%v", locked, err)
	}
	t.Cleanup(func() { _ = held.Unlock() })

	_, err = workflow.NewRunner(cfg, nil).Run(context.Background())
	if !errors.Is(err, workflow.ErrRunLocked) {
		t.Fatalf("expected ErrRunLocked, got %v", err)
	}
}

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"camlink/internal/specs"
	"camlink/internal/testsupport"
)

func writeSampleDataset(t *testing.T, dir string) {
	t.Helper()
	testsupport.WriteTitle(t, dir, "www.ebay.com", "1", "Canon EOS 7D Mark II Digital Camera")
	testsupport.WriteTitle(t, dir, "buy.net", "10", "Canon 7D Mark II Body")
	testsupport.WriteTitle(t, dir, "www.ebay.com", "2", "Nikon D90")
}

func TestMatchCommandWritesReportAndRecordsRun(t *testing.T) {
	env := setupCLITestEnv(t)
	writeSampleDataset(t, env.cfg.Paths.DatasetDir)

	out, _, err := runCLI(t, []string{"match"}, env.configPath)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	requireContains(t, out, "Pairs total")
	requireContains(t, out, "Wrote "+env.cfg.MatchesPath())

	data, err := os.ReadFile(env.cfg.MatchesPath())
	if err != nil {
		t.Fatalf("read matches: %v", err)
	}
	if string(data) != "left_spec_id,right_spec_id\nbuy.net//10,www.ebay.com//1\n" {
		t.Fatalf("unexpected matches:\n%s", data)
	}

	out, _, err = runCLI(t, []string{"runs"}, env.configPath)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	requireContains(t, out, "Records")

	out, _, err = runCLI(t, []string{"runs", "pairs"}, env.configPath)
	if err != nil {
		t.Fatalf("runs pairs: %v", err)
	}
	if out != "left_spec_id,right_spec_id\nbuy.net//10,www.ebay.com//1\n" {
		t.Fatalf("unexpected run pairs output:\n%s", out)
	}
}

func TestMatchCommandJSONAndOverrides(t *testing.T) {
	env := setupCLITestEnv(t)
	dataset := filepath.Join(testsupport.BaseDir(env.cfg), "other-dataset")
	outDir := filepath.Join(testsupport.BaseDir(env.cfg), "other-out")
	writeSampleDataset(t, dataset)
	testsupport.WriteRecord(t, dataset, "buy.net", "bad", map[string]any{"brand": "canon"})

	_, _, err := runCLI(t, []string{"match", "--dataset", dataset, "--out", outDir}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "malformed") {
		t.Fatalf("expected malformed record failure, got %v", err)
	}

	out, _, err := runCLI(t, []string{"match", "--dataset", dataset, "--out", outDir, "--skip-malformed", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("match --json: %v", err)
	}
	var payload matchOutput
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if payload.Stats.Records != 3 || payload.Stats.Pairs != 1 || payload.Stats.Malformed != 1 {
		t.Fatalf("unexpected stats: %+v", payload.Stats)
	}
	if len(payload.Malformed) != 1 || payload.Malformed[0] != specs.RecordID("buy.net", "bad.json") {
		t.Fatalf("unexpected malformed ids: %q", payload.Malformed)
	}
	if _, err := os.Stat(filepath.Join(outDir, env.cfg.Output.MatchesFile)); err != nil {
		t.Fatalf("expected report in --out dir: %v", err)
	}
}

func TestResolveCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"resolve", "--json", "Canon EOS 7D Mark II Digital Camera", "Spy Pen Camera"}, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	var results []resolveOutput
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(results) != 2 {
		t.Fatalf("expected two results, got %d", len(results))
	}
	if results[0].Identity != "canon 7d mark2" || !results[0].Solved {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
	if results[1].Solved || results[1].Brand != "" || results[1].NormalizedTitle == "" {
		t.Fatalf("unexpected second result: %+v", results[1])
	}

	out, _, err = runCLI(t, []string{"resolve", "Nikon D90"}, "")
	if err != nil {
		t.Fatalf("resolve table: %v", err)
	}
	requireContains(t, out, "d90")
	requireContains(t, out, "Normalized")
}

func TestResolveCommandKeepsTitleText(t *testing.T) {
	out, _, err := runCLI(t, []string{"resolve", "--json", "Nikon D90 & <Bag>"}, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	requireContains(t, out, `"title": "Nikon D90 & <Bag>"`)
}

func TestResolveCommandListsBrands(t *testing.T) {
	out, _, err := runCLI(t, []string{"resolve", "--brands"}, "")
	if err != nil {
		t.Fatalf("resolve --brands: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "aiptek" || !slices.Contains(lines, "canon") || !slices.IsSorted(lines) {
		t.Fatalf("unexpected brand listing: %q", lines)
	}

	if _, _, err := runCLI(t, []string{"resolve", "--brands", "Nikon D90"}, ""); err == nil {
		t.Fatal("expected --brands to reject titles")
	}
}

func TestResolveCommandRequiresTitle(t *testing.T) {
	if _, _, err := runCLI(t, []string{"resolve"}, ""); err == nil {
		t.Fatal("expected error without titles")
	}
}

func TestRunsWithoutHistory(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"runs"}, env.configPath)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	requireContains(t, out, "No runs recorded")

	out, _, err = runCLI(t, []string{"runs", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("runs --json: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("expected empty json list, got %q", out)
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunDefaults(t *testing.T) {
	out, err := execute(t, "run", "--no-chart")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "Total Seek Time:   640") {
		t.Errorf("Expected FCFS on the default queue:\n%s", out)
	}
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "seekplot.yaml")
	body := "schedule:\n  algorithm: SSTF\n  requests: \"10, 20\"\n  head: 15\n  disk_size: 50\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", cfgPath, "run", "--no-chart")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "SSTF") || !strings.Contains(out, "Total Seek Time:   15") {
		t.Errorf("Expected SSTF from config:\n%s", out)
	}

	out, err = execute(t, "--config", cfgPath, "run", "--no-chart", "-a", "look", "-d", "right")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "LOOK") || !strings.Contains(out, "Direction:         right") {
		t.Errorf("Expected LOOK from flags:\n%s", out)
	}
}

func TestRunInvalidInput(t *testing.T) {
	if _, err := execute(t, "run", "--head", "500"); err == nil {
		t.Error("Expected error for head beyond the disk")
	}
	if _, err := execute(t, "run", "-a", "random"); err == nil {
		t.Error("Expected error for unknown algorithm")
	}
}

func TestCompareAndList(t *testing.T) {
	out, err := execute(t, "compare", "--only", "SCAN,LOOK", "--sort", "total")
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if !strings.Contains(out, "Showing 2 algorithms") {
		t.Errorf("Expected two algorithms:\n%s", out)
	}

	out, err = execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "C-LOOK") {
		t.Errorf("Expected C-LOOK listed:\n%s", out)
	}
}

func TestReplaySpeedFlag(t *testing.T) {
	out, err := execute(t, "replay", "-r", "60", "--speed", "100ms", "--summary=false")
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !strings.Contains(out, "step 1/1") {
		t.Errorf("Expected one replayed step:\n%s", out)
	}

	if _, err := execute(t, "replay", "--speed", "10ms"); err == nil {
		t.Error("Expected error for speed below the minimum")
	}
}

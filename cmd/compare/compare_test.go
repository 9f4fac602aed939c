// file: cmd/compare/compare_test.go

package compare

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ha1tch/seekplot/internal/input"
)

func textbookForm() input.Form {
	return input.Form{
		Algorithm: "SSTF",
		Requests:  "98, 183, 37, 122, 14, 124, 65, 67",
		Head:      53,
		DiskSize:  200,
		Direction: "left",
	}
}

func TestCompareText(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultCompareOptions()
	opts.Out = &buf

	if err := Compare(context.Background(), textbookForm(), opts); err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Showing 6 algorithms") {
		t.Errorf("Expected six algorithms:\n%s", out)
	}
	if !strings.Contains(out, "* SSTF") {
		t.Errorf("Expected SSTF highlighted:\n%s", out)
	}
	if !strings.Contains(out, "Lowest total seek time: LOOK (208)") {
		t.Errorf("Expected LOOK to win:\n%s", out)
	}
}

func TestCompareSorted(t *testing.T) {
	tests := []struct {
		sort    string
		reverse bool
		want    []string
	}{
		{"order", false, []string{"FCFS", "SSTF", "SCAN", "C-SCAN", "LOOK", "C-LOOK"}},
		{"order", true, []string{"C-LOOK", "LOOK", "C-SCAN", "SCAN", "SSTF", "FCFS"}},
		{"name", false, []string{"C-LOOK", "C-SCAN", "FCFS", "LOOK", "SCAN", "SSTF"}},
		{"total", false, []string{"LOOK", "SSTF", "SCAN", "C-LOOK", "C-SCAN", "FCFS"}},
		{"average", true, []string{"FCFS", "C-SCAN", "C-LOOK", "SSTF", "SCAN", "LOOK"}},
	}

	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			var buf bytes.Buffer
			opts := DefaultCompareOptions()
			opts.Out = &buf
			opts.JSON = true
			opts.Sort = tt.sort
			opts.Reverse = tt.reverse

			if err := Compare(context.Background(), textbookForm(), opts); err != nil {
				t.Fatalf("Compare failed: %v", err)
			}

			var results []struct {
				Algorithm string `json:"algorithm"`
			}
			if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
				t.Fatalf("Invalid JSON output: %v", err)
			}
			var got []string
			for _, r := range results {
				got = append(got, r.Algorithm)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Wrong order. Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCompareSubset(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultCompareOptions()
	opts.Out = &buf
	opts.Algorithms = []string{"fcfs", "clook"}

	if err := Compare(context.Background(), textbookForm(), opts); err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Showing 2 algorithms") {
		t.Errorf("Expected two algorithms:\n%s", buf.String())
	}

	opts.Algorithms = []string{"bogus"}
	if err := Compare(context.Background(), textbookForm(), opts); err == nil {
		t.Error("Expected error for unknown algorithm")
	}

	opts.Algorithms = nil
	opts.Sort = "colour"
	if err := Compare(context.Background(), textbookForm(), opts); err == nil {
		t.Error("Expected error for unknown sort order")
	}
}

package render

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/seekplot/pkg/disk"
	"github.com/ha1tch/seekplot/pkg/sched"
)

var textbookQueue = []int{98, 183, 37, 122, 14, 124, 65, 67}

func TestMetrics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Metrics(&buf, sched.SSTF(textbookQueue, 53)))

	out := buf.String()
	assert.Contains(t, out, "SSTF (Shortest Seek Time First)")
	assert.Contains(t, out, "Total Seek Time:   236")
	assert.Contains(t, out, "Seek Count:        8")
	assert.Contains(t, out, "Average Seek Time: 29.50")
	assert.Contains(t, out, "53 -> 65 -> 67 -> 37 -> 14 -> 98 -> 122 -> 124 -> 183")
}

func TestMetricsEmptyQueue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Metrics(&buf, sched.FCFS(nil, 10)))
	assert.Contains(t, buf.String(), "Average Seek Time: n/a")
}

func TestNumberLine(t *testing.T) {
	var buf bytes.Buffer
	m := sched.FCFS([]int{10}, 5)
	require.NoError(t, NumberLine(&buf, m, []int{10}, 11, 11))

	want := "Disk Head Movement (tracks 0-10)\n" +
		" 0 |-----H----o| 10\n" +
		" 1 |     |====>| 5 -> 10 (5)\n"
	assert.Equal(t, want, buf.String())

	assert.Error(t, NumberLine(&buf, m, []int{10}, 0, 11))
	assert.Error(t, NumberLine(&buf, m, []int{10}, 11, 0))
}

func TestStepRow(t *testing.T) {
	extent := disk.Extent{Size: 11}

	assert.Equal(t, "  <===|    ", StepRow(extent, sched.Step{From: 6, To: 2, Distance: 4}, 11))
	assert.Equal(t, "     *     ", StepRow(extent, sched.Step{From: 5, To: 5}, 11))
	assert.Equal(t, "<~~~~~~~~~|", StepRow(extent, sched.Step{From: 10, To: 0, Distance: 10, Kind: sched.StepWrap}, 11))
}

func TestNumberLineMarksSyntheticSteps(t *testing.T) {
	var buf bytes.Buffer
	m := sched.CSCAN(textbookQueue, 53, 200)
	require.NoError(t, NumberLine(&buf, m, textbookQueue, 200, 40))

	out := buf.String()
	assert.Contains(t, out, "183 -> 199 (16) bounce")
	assert.Contains(t, out, "199 -> 0 (199) wrap")
	assert.Equal(t, len(m.Steps)+2, strings.Count(out, "\n"))
}

func TestComparison(t *testing.T) {
	results := []sched.Metrics{
		sched.FCFS(textbookQueue, 53),
		sched.SSTF(textbookQueue, 53),
	}

	var buf bytes.Buffer
	require.NoError(t, Comparison(&buf, results, sched.AlgSSTF, 10))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Algorithm Comparison (Showing 2 algorithms)", lines[0])
	assert.Contains(t, lines[1], "  FCFS   |..........| total    640")
	assert.Contains(t, lines[1], "avg    80.00")
	assert.Contains(t, lines[2], "* SSTF   |###       | total    236")

	buf.Reset()
	require.NoError(t, Comparison(&buf, nil, sched.AlgSSTF, 10))
	assert.Empty(t, buf.String())
}

func TestNewReplayer(t *testing.T) {
	r, err := NewReplayer(DefaultSpeed, 40)
	require.NoError(t, err)
	assert.Equal(t, "Slow", r.SpeedLabel())

	r, err = NewReplayer(520*time.Millisecond, 40)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, r.Speed)
	assert.Equal(t, "Normal", r.SpeedLabel())

	r, err = NewReplayer(MinSpeed, 40)
	require.NoError(t, err)
	assert.Equal(t, "Fast", r.SpeedLabel())

	_, err = NewReplayer(50*time.Millisecond, 40)
	assert.ErrorIs(t, err, ErrSpeedOutOfRange)
	_, err = NewReplayer(2*time.Second, 40)
	assert.ErrorIs(t, err, ErrSpeedOutOfRange)
	_, err = NewReplayer(DefaultSpeed, 0)
	assert.Error(t, err)
}

func TestReplay(t *testing.T) {
	r, err := NewReplayer(MinSpeed, 11)
	require.NoError(t, err)

	m := sched.CLOOK([]int{8, 2}, 5)
	var buf bytes.Buffer
	start := time.Now()
	require.NoError(t, r.Replay(context.Background(), &buf, m, 11))

	assert.GreaterOrEqual(t, time.Since(start), time.Duration(len(m.Steps))*MinSpeed-10*time.Millisecond)
	out := buf.String()
	assert.Contains(t, out, "head at 5")
	assert.Contains(t, out, "step 1/2")
	assert.Contains(t, out, "step 2/2")
	assert.Contains(t, out, "8 -> 2 (6), total 9")
	assert.Equal(t, m, sched.CLOOK([]int{8, 2}, 5), "replay must not change metrics")
}

func TestReplayCancelled(t *testing.T) {
	r, err := NewReplayer(MaxSpeed, 11)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err = r.Replay(ctx, &buf, sched.FCFS([]int{1, 2, 3}, 0), 11)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

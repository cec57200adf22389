package writer

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/pterm/pterm"
)

// Stats tracks written fixtures in real-time
type Stats struct {
	FilesWritten int64
	FailedCount  int64
	LinesWritten int64
	BytesWritten int64
	StartTime    time.Time
}

// NewStats creates a new stats tracker
func NewStats() *Stats {
	return &Stats{
		StartTime: time.Now(),
	}
}

// Add records a completed file
func (s *Stats) Add(r *Result) {
	atomic.AddInt64(&s.FilesWritten, 1)
	atomic.AddInt64(&s.LinesWritten, r.Lines)
	atomic.AddInt64(&s.BytesWritten, r.Bytes)
}

// IncrementFailed increments failed file count
func (s *Stats) IncrementFailed() {
	atomic.AddInt64(&s.FailedCount, 1)
}

// GetElapsed returns elapsed time
func (s *Stats) GetElapsed() time.Duration {
	return time.Since(s.StartTime)
}

// GetFiles returns written file count
func (s *Stats) GetFiles() int64 {
	return atomic.LoadInt64(&s.FilesWritten)
}

// GetLines returns written line count
func (s *Stats) GetLines() int64 {
	return atomic.LoadInt64(&s.LinesWritten)
}

// GetBytes returns written byte count
func (s *Stats) GetBytes() int64 {
	return atomic.LoadInt64(&s.BytesWritten)
}

// GetFailedCount returns failed file count
func (s *Stats) GetFailedCount() int64 {
	return atomic.LoadInt64(&s.FailedCount)
}

// Print displays stats in a formatted table
func (s *Stats) Print() {
	pterm.DefaultSection.Println("Write Statistics")

	tableData := pterm.TableData{
		{"Metric", "Value"},
		{"Files", fmt.Sprintf("%d", s.GetFiles())},
		{"Failed", fmt.Sprintf("%d", s.GetFailedCount())},
		{"Lines", fmt.Sprintf("%d", s.GetLines())},
		{"Bytes", fmt.Sprintf("%d", s.GetBytes())},
		{"Elapsed", s.GetElapsed().Round(time.Millisecond).String()},
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// Summary returns a compact one-line summary
func (s *Stats) Summary() string {
	return fmt.Sprintf("Files: %d | Lines: %d | Bytes: %d | Time: %s",
		s.GetFiles(), s.GetLines(), s.GetBytes(), s.GetElapsed().Round(time.Millisecond))
}

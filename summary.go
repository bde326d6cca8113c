package xtar

import (
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/nguyengg/xtar/codec"
)

// Op is the kind of operation that produced a Summary.
type Op string

const (
	OpArchive   Op = "archiving"
	OpUnarchive Op = "unarchiving"
)

// Summary describes a completed archive or unarchive run.
type Summary struct {
	Op        Op
	Name      string
	Algorithm codec.Algorithm
	// Level is the compression level requested for the run. Unused when unarchiving.
	Level int
	// Count is the number of entries written or extracted.
	Count int
	// Size is the size of the archive file in bytes.
	Size     int64
	Duration time.Duration
}

// String returns a line such as `done archiving "data.gz.tar" (3 files, 1.2 kB, 15ms)`.
func (s Summary) String() string {
	noun := "files"
	if s.Count == 1 {
		noun = "file"
	}

	return fmt.Sprintf(`done %s "%s" (%d %s, %s, %s)`,
		s.Op, s.Name, s.Count, noun, humanize.Bytes(uint64(max(s.Size, 0))), s.Duration.Round(time.Millisecond))
}

// Reporter receives the Summary of every completed run.
type Reporter interface {
	Report(Summary)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Summary)

func (f ReporterFunc) Report(s Summary) {
	f(s)
}

// LogReporter returns a Reporter that prints every Summary to the given logger.
func LogReporter(logger *log.Logger) Reporter {
	return ReporterFunc(func(s Summary) {
		logger.Print(s)
	})
}

var noopReporter = ReporterFunc(func(Summary) {})

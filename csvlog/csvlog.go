// Package csvlog mirrors saved survey responses into a flat CSV file meant
// for eyeballing in a spreadsheet. It is not a general CSV writer: values are
// wrapped in double quotes as they are, without escaping embedded quotes.
package csvlog

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mbolis/save-survey/model"
)

const Header = "ID,Timestamp,Interested,Players,Duration,Puzzle_Percentage,Price,Created_At\n"

const timeFormat = "2006-01-02T15:04:05.000Z"

type File struct {
	path string
	now  func() time.Time

	mu sync.Mutex
}

func New(path string) *File {
	return &File{path: path, now: time.Now}
}

func (f *File) Path() string {
	return f.path
}

// Append writes one line for resp, preceded by the header when the file is
// new or empty. Appends from concurrent requests never interleave.
func (f *File) Append(resp model.SurveyResponse) error {
	line := f.line(resp)

	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return err
	}
	if info.Size() == 0 {
		line = Header + line
	}

	if _, err = file.WriteString(line); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (f *File) line(resp model.SurveyResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", resp.ID)
	for _, v := range []string{
		resp.Timestamp.String(),
		resp.Interested.String(),
		resp.Players.String(),
		resp.Duration.String(),
		resp.PuzzlePercentage.String(),
		resp.Price.String(),
		f.now().UTC().Format(timeFormat),
	} {
		b.WriteString(`,"`)
		b.WriteString(v)
		b.WriteString(`"`)
	}
	b.WriteString("\n")
	return b.String()
}

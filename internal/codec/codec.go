// Package codec converts a task collection to and from the plain-text record
// format of the task file.
//
// Each task is written as four labelled lines followed by a blank line:
//
//	Task : <description>
//	Created at : <created_at>
//	ID : <integer>
//	Status : Done|Not Done
//
// Records are always written in ascending id order.
package codec

import (
	"bufio"
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"task-tracker.com/task-tracker/pkg/constants"
	model "task-tracker.com/task-tracker/pkg/models"
)

const (
	DescriptionLabel = "Task : "
	CreatedAtLabel   = "Created at : "
	IDLabel          = "ID : "
	StatusLabel      = "Status : "
)

// Encode writes every task to w, sorted by id. The input slice is not modified.
func Encode(w io.Writer, tasks []model.Task) error {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b model.Task) int { return cmp.Compare(a.ID, b.ID) })

	bw := bufio.NewWriter(w)
	for _, task := range sorted {
		if _, err := fmt.Fprintf(bw, "%s%s\n%s%s\n%s%d\n%s%s\n\n",
			DescriptionLabel, task.Description,
			CreatedAtLabel, task.CreatedAt,
			IDLabel, task.ID,
			StatusLabel, task.Status(),
		); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Marshal returns the encoded form of tasks. Writes to a bytes.Buffer cannot
// fail, so the Encode error is always nil here.
func Marshal(tasks []model.Task) []byte {
	var buf bytes.Buffer
	_ = Encode(&buf, tasks)
	return buf.Bytes()
}

// record accumulates the fields of the task currently being parsed.
type record struct {
	task  model.Task
	hasID bool
	dirty bool
}

func (r *record) reset() {
	*r = record{}
}

// Decode reads tasks from r in file order. Lines that carry none of the four
// labels are ignored. A record ends at a blank line, at the description line of
// the next record, or at end of input, and is kept only if it had a valid id
// line. Field state never carries over from one record to the next. Lines may
// be of any length.
func Decode(r io.Reader) ([]model.Task, error) {
	br := bufio.NewReader(r)

	var (
		tasks   []model.Task
		pending record
	)

	commit := func() {
		if pending.hasID {
			tasks = append(tasks, pending.task)
		}
		pending.reset()
	}

	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, readErr
		}
		if raw != "" {
			line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
			if strings.TrimSpace(line) == "" || pending.startsNewRecord(line) {
				commit()
			}
			pending.apply(line)
		}
		if readErr != nil {
			break
		}
	}
	commit()

	return tasks, nil
}

func (r *record) startsNewRecord(line string) bool {
	return r.dirty && strings.HasPrefix(line, DescriptionLabel)
}

func (r *record) apply(line string) {
	switch {
	case strings.HasPrefix(line, DescriptionLabel):
		r.task.Description = strings.TrimPrefix(line, DescriptionLabel)
		r.dirty = true
	case strings.HasPrefix(line, CreatedAtLabel):
		r.task.CreatedAt = strings.TrimPrefix(line, CreatedAtLabel)
		r.dirty = true
	case strings.HasPrefix(line, IDLabel):
		id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, IDLabel)))
		if err != nil {
			return
		}
		r.task.ID = id
		r.hasID = true
		r.dirty = true
	case strings.HasPrefix(line, StatusLabel):
		status := strings.TrimSpace(strings.TrimPrefix(line, StatusLabel))
		r.task.Done = status == string(constants.StatusDone)
		r.dirty = true
	}
}

// Unmarshal decodes tasks from data. See Decode.
func Unmarshal(data []byte) ([]model.Task, error) {
	return Decode(bytes.NewReader(data))
}

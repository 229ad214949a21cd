package codec

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "task-tracker.com/task-tracker/pkg/models"
)

func TestEncode_WritesRecordsInIDOrder(t *testing.T) {
	tasks := []model.Task{
		{ID: 3, Description: "walk dog", CreatedAt: "09:15:00 AM", Done: true},
		{ID: 1, Description: "buy milk", CreatedAt: "08:00:01 AM"},
	}

	var sb strings.Builder
	require.NoError(t, Encode(&sb, tasks))

	want := "Task : buy milk\n" +
		"Created at : 08:00:01 AM\n" +
		"ID : 1\n" +
		"Status : Not Done\n" +
		"\n" +
		"Task : walk dog\n" +
		"Created at : 09:15:00 AM\n" +
		"ID : 3\n" +
		"Status : Done\n" +
		"\n"
	assert.Equal(t, want, sb.String())
	assert.Equal(t, 3, tasks[0].ID, "input slice must not be reordered")
}

func TestEncode_Empty(t *testing.T) {
	assert.Empty(t, Marshal(nil))
}

func TestDecode_RoundTrip(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Description: "buy milk", CreatedAt: "08:00:01 AM"},
		{ID: 2, Description: "call mom", CreatedAt: "12:30:45 PM", Done: true},
		{ID: 5, Description: "", CreatedAt: "11:59:59 PM"},
		{ID: 7, Description: "Task : nested label", CreatedAt: "01:00:00 AM", Done: true},
	}

	first := Marshal(tasks)
	decoded, err := Unmarshal(first)
	require.NoError(t, err)
	assert.Equal(t, tasks, decoded)
	assert.Equal(t, string(first), string(Marshal(decoded)))
}

func TestDecode_IgnoresUnrecognizedLines(t *testing.T) {
	input := "# exported by hand\n" +
		"Task : buy milk\n" +
		"Priority : high\n" +
		"Created at : 08:00:01 AM\n" +
		"ID : 1\n" +
		"Status : Done\n" +
		"\n\n\n"

	tasks, err := Unmarshal([]byte(input))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, model.Task{ID: 1, Description: "buy milk", CreatedAt: "08:00:01 AM", Done: true}, tasks[0])
}

func TestDecode_StatusBeforeID(t *testing.T) {
	input := "Task : a\nCreated at : t1\nStatus : Done\nID : 4\n\n"

	tasks, err := Unmarshal([]byte(input))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Done)
	assert.Equal(t, 4, tasks[0].ID)
}

func TestDecode_DoesNotInheritFieldsFromPreviousRecord(t *testing.T) {
	input := "Task : first\nCreated at : t1\nID : 1\nStatus : Done\n\n" +
		"ID : 2\n\n"

	tasks, err := Unmarshal([]byte(input))
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, model.Task{ID: 2}, tasks[1])
}

func TestDecode_RecordsWithoutSeparator(t *testing.T) {
	input := "Task : a\nCreated at : t1\nID : 1\nStatus : Done\n" +
		"Task : b\nCreated at : t2\nID : 2\nStatus : Not Done"

	tasks, err := Unmarshal([]byte(input))
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].Description)
	assert.True(t, tasks[0].Done)
	assert.Equal(t, "b", tasks[1].Description)
	assert.False(t, tasks[1].Done)
}

func TestDecode_DropsRecordWithoutValidID(t *testing.T) {
	input := "Task : a\nCreated at : t1\nID : one\nStatus : Done\n\n" +
		"Task : b\nCreated at : t2\nID : 2\nStatus : Not Done\n\n"

	tasks, err := Unmarshal([]byte(input))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "b", tasks[0].Description)
}

func TestDecode_WindowsLineEndings(t *testing.T) {
	input := "Task : a\r\nCreated at : t1\r\nID : 1\r\nStatus : Done\r\n\r\n"

	tasks, err := Unmarshal([]byte(input))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, model.Task{ID: 1, Description: "a", CreatedAt: "t1", Done: true}, tasks[0])
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestDecode_ReaderError(t *testing.T) {
	_, err := Decode(failingReader{})
	assert.EqualError(t, err, "disk gone")
}

func TestDecode_LongDescription(t *testing.T) {
	long := strings.Repeat("x", 1<<20+10)
	tasks := []model.Task{
		{ID: 1, Description: "keep me", CreatedAt: "t1"},
		{ID: 2, Description: long, CreatedAt: "t2", Done: true},
	}

	decoded, err := Unmarshal(Marshal(tasks))
	require.NoError(t, err)
	assert.Equal(t, tasks, decoded)
}

func TestEncode_SortsExtremeIDs(t *testing.T) {
	tasks := []model.Task{
		{ID: math.MaxInt, Description: "max"},
		{ID: math.MinInt, Description: "min"},
		{ID: 1, Description: "one"},
	}

	decoded, err := Unmarshal(Marshal(tasks))
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.Equal(t, []int{math.MinInt, 1, math.MaxInt}, []int{decoded[0].ID, decoded[1].ID, decoded[2].ID})
}

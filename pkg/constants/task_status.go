package constants

type TaskStatus string

const (
	StatusDone    TaskStatus = "Done"
	StatusNotDone TaskStatus = "Not Done"
)

func StatusOf(done bool) TaskStatus {
	if done {
		return StatusDone
	}
	return StatusNotDone
}

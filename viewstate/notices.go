package viewstate

import (
	"github.com/fespace-studio/fespace/logger"
)

// noticeBuffer caps the number of undelivered user notifications.
const noticeBuffer = 16

// notices collects the transient user-facing messages a state holder emits
// when an operation fails. Failures never propagate to the UI as errors; they
// are logged and surfaced here as plain strings.
type notices struct {
	ch chan string
}

func newNotices() *notices {
	return &notices{ch: make(chan string, noticeBuffer)}
}

// C is the channel the UI drains to show snackbar-style notifications.
func (n *notices) C() <-chan string {
	return n.ch
}

// fail logs the underlying error and queues the user-facing message. When the
// UI is not draining, the oldest undelivered notice is dropped.
func (n *notices) fail(msg string, err error) {
	logger.Log.Error().Err(err).Msg(msg)
	n.push(msg)
}

func (n *notices) push(msg string) {
	for {
		select {
		case n.ch <- msg:
			return
		default:
			select {
			case <-n.ch:
			default:
			}
		}
	}
}

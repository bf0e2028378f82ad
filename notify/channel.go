package notify

import "context"

const defaultBuffer = 16

// ChannelNotifier delivers notifications over a buffered channel for a
// UI to consume. Delivery never blocks: when the consumer falls behind
// and the buffer fills, the oldest pending notification is dropped to
// make room for the newest.
type ChannelNotifier struct {
	ch chan Notification
}

// NewChannelNotifier creates a ChannelNotifier with the default buffer.
func NewChannelNotifier() *ChannelNotifier {
	return &ChannelNotifier{ch: make(chan Notification, defaultBuffer)}
}

func (c *ChannelNotifier) Notify(ctx context.Context, n Notification) {
	for {
		select {
		case c.ch <- n:
			return
		default:
		}
		select {
		case <-c.ch: // shed the oldest
		default:
		}
	}
}

// C returns the channel notifications are delivered on.
func (c *ChannelNotifier) C() <-chan Notification {
	return c.ch
}

package domain

// WatchEvent is a single item change delivered to a watch subscriber.
// Deleted marks the terminal event for a removed item; no further
// events follow it on the same subscription.
type WatchEvent struct {
	Item    Item
	Deleted bool
}

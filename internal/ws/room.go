package ws

import "fmt"

// RoomID derives the grouping key for a user pair: the two ids sorted
// ascending, joined with an underscore. Rooms are never persisted; the id is
// recomputed on every chat page load and every send.
func RoomID(a, b int) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d_%d", a, b)
}

// Package broadcast implements the publish/subscribe hub that fans lending
// notifications out to every registered holder.
//
// Delivery is synchronous and follows subscription order. Each delivery is isolated:
// a subscriber that returns an error or panics only loses its own notification.
package broadcast

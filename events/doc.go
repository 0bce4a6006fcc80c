// Package events provides a typed publish/subscribe dispatcher.
//
// An event kind is a zero sized marker type that embeds EventOf[C], where C
// is the context passed to subscribers of that kind:
//
//	type TileRevealedEvent struct{ events.EventOf[Position] }
//
// Subscribers are registered with Subscribe and invoked synchronously, in
// registration order, by Emit. A Dispatcher can be shared between goroutines.
package events

// Package notify provides a minimal synchronous publish/subscribe primitive.
// A Signal holds no value: Fire invokes every subscribed listener in subscription
// order before returning.
package notify

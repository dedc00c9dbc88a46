package models

// StreamResult carries one streamed value, or the error that ended the stream.
type StreamResult[T any] struct {
	Value T
	Err   error
}

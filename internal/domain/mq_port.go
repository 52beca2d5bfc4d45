package domain

// Message is a broker-agnostic key/value pair handed to the event publisher.
type Message struct {
	Key   []byte
	Value []byte
}

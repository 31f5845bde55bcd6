package framework

import "time"

// SubscriberConfig Subscriber settings
type SubscriberConfig struct {
	QueueName    string
	Concurrency  int           // pulling goroutines
	Timeout      time.Duration // long poll timeout
	TTR          time.Duration // time to run before redelivery
	Rate         time.Duration // pause between pulls
	ErrorBackoff time.Duration
}

// ProcessorConfig Processor settings
type ProcessorConfig struct {
	Concurrency int
	BufferSize  int           // capacity of the channel between Subscriber and Processor
	Timeout     time.Duration // per message
}

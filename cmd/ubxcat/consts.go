package main

import "time"

const (
	serialReadBufSize = 4096 // per Read() buffer

	rxBackoffMin = 20 * time.Millisecond
	rxBackoffMax = 500 * time.Millisecond
)

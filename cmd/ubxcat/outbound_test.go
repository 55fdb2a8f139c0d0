package main

import (
	"context"
	"testing"

	"github.com/kstaniek/go-ubx/internal/metrics"
)

func TestEnableNavPvtCountsBuilderInvocation(t *testing.T) {
	fp := &fakeSerialPort{}
	before := metrics.Snap().BuilderInvoked

	tx := enableNavPvt(context.Background(), fp, 4)
	defer tx.Close()

	if got := metrics.Snap().BuilderInvoked; got != before+1 {
		t.Fatalf("BuilderInvoked = %d, want %d", got, before+1)
	}
}

package main

import (
	"sync"
	"testing"
	"time"
)

func TestWaitTimeout(t *testing.T) {
	wg := &sync.WaitGroup{}
	if err := waitTimeout(wg, time.Second); err != nil {
		t.Errorf("expected no error for an empty wait group: %v", err)
	}

	wg.Add(1)
	if err := waitTimeout(wg, 10*time.Millisecond); err == nil {
		t.Errorf("expected a timeout while the wait group is not done")
	}
	wg.Done()
}

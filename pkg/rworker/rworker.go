// Package rworker schedules rate-limited goroutine jobs. The rate channel's
// capacity bounds how many jobs run at once; the first job error is kept on
// errCh, later ones are dropped.
package rworker

import "sync"

func Job(wg *sync.WaitGroup, fn func() error, rate chan struct{}, errCh chan<- error) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		rate <- struct{}{}
		if err := fn(); err != nil {
			select {
			case errCh <- err:
			default:
			}
		}
		<-rate
	}()
}

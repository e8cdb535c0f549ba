// Package stop implements a pattern for shutting down the servers of a
// process together.
package stop

import (
	"sync"
)

// Channel is used to return zero or more errors asynchronously. Call Done()
// once to pass errors to the Channel.
type Channel chan []error

// Result is a receive-only version of Channel. Call Wait() once to receive any
// returned errors.
type Result <-chan []error

// Done adds zero or more errors to the Channel and closes it, indicating the
// caller has finished stopping. It should be called exactly once.
func (ch Channel) Done(errs ...error) {
	if len(errs) > 0 && errs[0] != nil {
		ch <- errs
	}
	close(ch)
}

// Result converts a Channel to a Result.
func (ch Channel) Result() <-chan []error {
	return ch
}

// Wait blocks until Done() is called on the underlying Channel and returns any
// errors. It should be called exactly once.
func (r Result) Wait() []error {
	return <-r
}

// Stopper is implemented by anything serving in the background.
type Stopper interface {
	// Stop returns immediately and shuts down in a separate goroutine. The
	// returned Result yields the errors of the shutdown, if any.
	Stop() Result
}

// Group is a collection of Stoppers that can be stopped all at once.
type Group struct {
	stoppers []Stopper
	sync.Mutex
}

// NewGroup allocates a new Group.
func NewGroup() *Group {
	return &Group{}
}

// Add appends a Stopper to the Group.
func (g *Group) Add(s Stopper) {
	g.Lock()
	defer g.Unlock()

	g.stoppers = append(g.stoppers, s)
}

// Stop stops all members of the Group concurrently and collects their
// errors.
func (g *Group) Stop() Result {
	g.Lock()
	defer g.Unlock()

	whenDone := make(Channel)

	waitChannels := make([]Result, 0, len(g.stoppers))
	for _, s := range g.stoppers {
		waitFor := s.Stop()
		if waitFor == nil {
			panic("received a nil chan from Stop")
		}
		waitChannels = append(waitChannels, waitFor)
	}

	go func() {
		var errs []error
		for _, waitForMe := range waitChannels {
			errs = append(errs, waitForMe.Wait()...)
		}
		whenDone.Done(errs...)
	}()

	return whenDone.Result()
}

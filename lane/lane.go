// Copyright (c) 2024 Symbol Not Found LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:SymbolNotFound/balloon/lane/lane.go

// Package lane provides a channel-based wrapper around a set of concurrent
// workers, allowing a single collector goroutine to retrieve each worker's
// result as it completes without shearing or blocking the others. It is the
// fan-out/fan-in shape BalloonM's independent lanes run on.
package lane

// Result carries one worker's output (or failure) back to the collector,
// tagged by its original index so ordering survives goroutine scheduling.
type Result[T any] struct {
	Index int
	Value T
	Err   error
}

// Pool streams the results of a fixed number of concurrent workers.
type Pool[T any] interface {
	Results() <-chan Result[T]
	Close()
}

// Work is the unit of computation handed to each lane, identified by its
// index in [0, n).
type Work[T any] func(index int) (T, error)

// Run starts n goroutines, each invoking work with its own index, and
// returns a Pool streaming their results in completion order. The pool's
// channel is closed automatically once all n results have been delivered.
func Run[T any](n int, work Work[T]) Pool[T] {
	channel := make(chan Result[T], n)
	p := &pool[T]{channel: channel}
	p.start(n, work)
	return p
}

type pool[T any] struct {
	channel chan Result[T]
	done    chan struct{}
}

func (p *pool[T]) start(n int, work Work[T]) {
	p.done = make(chan struct{})
	go func() {
		inner := make(chan Result[T], n)
		for i := 0; i < n; i++ {
			go func(index int) {
				value, err := work(index)
				inner <- Result[T]{Index: index, Value: value, Err: err}
			}(i)
		}
		for i := 0; i < n; i++ {
			select {
			case r := <-inner:
				p.channel <- r
			case <-p.done:
				close(p.channel)
				return
			}
		}
		close(p.channel)
	}()
}

func (p *pool[T]) Results() <-chan Result[T] {
	return p.channel
}

// Close signals the collecting goroutine to stop forwarding results early.
// Already-started workers still run to completion; their results are
// discarded. Safe to call after all results have been drained, a no-op in
// that case since the internal goroutine has already exited.
func (p *pool[T]) Close() {
	select {
	case <-p.done:
	default:
		close(p.done)
	}
}

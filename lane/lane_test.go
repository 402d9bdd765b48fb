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
// github.com:SymbolNotFound/balloon/lane/lane_test.go

package lane_test

import (
	"errors"
	"testing"

	"github.com/SymbolNotFound/balloon/lane"
)

func Test_Run_DeliversAllResults(t *testing.T) {
	const n = 8
	pool := lane.Run(n, func(index int) (int, error) {
		return index * index, nil
	})

	seen := make(map[int]bool)
	for r := range pool.Results() {
		if r.Err != nil {
			t.Fatalf("unexpected error at index %d: %v", r.Index, r.Err)
		}
		if r.Value != r.Index*r.Index {
			t.Errorf("index %d: got value %d, want %d", r.Index, r.Value, r.Index*r.Index)
		}
		seen[r.Index] = true
	}
	if len(seen) != n {
		t.Errorf("got %d distinct results, want %d", len(seen), n)
	}
}

func Test_Run_PropagatesWorkerError(t *testing.T) {
	wantErr := errors.New("lane failed")
	pool := lane.Run(4, func(index int) (int, error) {
		if index == 2 {
			return 0, wantErr
		}
		return index, nil
	})

	var errCount int
	for r := range pool.Results() {
		if r.Index == 2 {
			if !errors.Is(r.Err, wantErr) {
				t.Errorf("index 2: got err %v, want %v", r.Err, wantErr)
			}
			errCount++
		}
	}
	if errCount != 1 {
		t.Errorf("expected exactly one errored result, got %d", errCount)
	}
}

func Test_Run_SingleWorker(t *testing.T) {
	pool := lane.Run(1, func(index int) (string, error) {
		return "only", nil
	})
	r, ok := <-pool.Results()
	if !ok {
		t.Fatal("expected one result, got none")
	}
	if r.Value != "only" || r.Index != 0 {
		t.Errorf("got %+v, want {Index:0 Value:only}", r)
	}
	if _, ok := <-pool.Results(); ok {
		t.Error("expected channel to be closed after single result")
	}
}

func Test_Pool_Close(t *testing.T) {
	pool := lane.Run(4, func(index int) (int, error) {
		return index, nil
	})
	// Close should not panic even if called after results were fully drained.
	for range pool.Results() {
	}
	pool.Close()
}

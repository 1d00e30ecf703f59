// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package intern provides a string interning table.
//
// An Interner maps strings to small comparable handles. Two handles from the
// same Interner are equal if and only if the strings they were created from
// are equal. An Interner is safe for concurrent use, so that several lexers
// running in different goroutines can share a single table.
//
package intern

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrUnknownHandle is returned by Resolve for handles that did not originate
// from the Interner.
//
var ErrUnknownHandle = errors.New("unknown intern handle")

// lastID is the last Interner id allocated. Handles carry the id of their
// Interner so that handles from another table are detected.
var lastID uint32

// A Handle identifies an interned string. The zero Handle is not valid.
//
type Handle struct {
	table uint32
	index uint32
}

// IsValid returns true if h has been returned by some Interner.
//
func (h Handle) IsValid() bool {
	return h.table != 0
}

func (h Handle) String() string {
	return fmt.Sprintf("%d#%d", h.table, h.index)
}

// An Interner is a string interning table. The zero value is not usable, use
// New.
//
type Interner struct {
	id uint32

	m    sync.RWMutex
	idx  map[string]uint32
	strs []string
}

// New returns a new, empty Interner.
//
func New() *Interner {
	return &Interner{
		id:  atomic.AddUint32(&lastID, 1),
		idx: make(map[string]uint32),
	}
}

// Intern returns the handle for s, registering s if it has not been seen
// before. The Interner keeps its own copy of s.
//
func (in *Interner) Intern(s string) Handle {
	in.m.RLock()
	i, ok := in.idx[s]
	in.m.RUnlock()
	if ok {
		return Handle{in.id, i}
	}

	in.m.Lock()
	defer in.m.Unlock()
	// another writer may have won the race since RUnlock
	if i, ok = in.idx[s]; ok {
		return Handle{in.id, i}
	}
	// s is usually a slice of a larger source text: copy it so that the
	// table does not pin the whole source in memory.
	c := string([]byte(s))
	i = uint32(len(in.strs))
	in.strs = append(in.strs, c)
	in.idx[c] = i
	return Handle{in.id, i}
}

// Lookup returns the handle for s if s has already been interned.
//
func (in *Interner) Lookup(s string) (Handle, bool) {
	in.m.RLock()
	i, ok := in.idx[s]
	in.m.RUnlock()
	if !ok {
		return Handle{}, false
	}
	return Handle{in.id, i}, true
}

// Resolve returns the string for handle h. The returned error wraps
// ErrUnknownHandle if h was not returned by in.
//
func (in *Interner) Resolve(h Handle) (string, error) {
	if h.table != in.id {
		return "", fmt.Errorf("resolve %v: %w", h, ErrUnknownHandle)
	}
	in.m.RLock()
	defer in.m.RUnlock()
	if int(h.index) >= len(in.strs) {
		return "", fmt.Errorf("resolve %v: %w", h, ErrUnknownHandle)
	}
	return in.strs[h.index], nil
}

// MustResolve is like Resolve but panics if h was not returned by in.
//
func (in *Interner) MustResolve(h Handle) string {
	s, err := in.Resolve(h)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of distinct strings in the table.
//
func (in *Interner) Len() int {
	in.m.RLock()
	n := len(in.strs)
	in.m.RUnlock()
	return n
}

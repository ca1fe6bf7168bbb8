// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"sync"
	"time"
)

// DefaultCapacity is the number of entries a sink keeps for replay
const DefaultCapacity = 1000

// DefaultTail is the number of entries shown by a log refresh
const DefaultTail = 100

const timeLayout = "2006-01-02 15:04:05"

// 🏷️ Level classifies an entry
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// 📝 Entry is one message in the sink
type Entry struct {
	Seq     uint64    `json:"seq"`
	Time    time.Time `json:"time"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
}

// String renders the entry as "[YYYY-MM-DD HH:MM:SS] message"
func (e Entry) String() string {
	return "[" + e.Time.Format(timeLayout) + "] " + e.Message
}

// 📬 Sink is an append-only ordered message channel.
//
// Entries get strictly increasing sequence numbers. The sink keeps the most
// recent entries in a bounded buffer for Poll, Since and Tail, and pushes every
// entry to subscribers without blocking the writer. A subscriber whose buffer
// is full misses that entry; it can catch up with Since.
type Sink struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
	seq      uint64
	cursor   uint64
	subs     map[uint64]chan Entry
	nextSub  uint64
	closed   bool
	now      func() time.Time
}

// SinkOption configures a sink
type SinkOption func(*Sink)

// WithClock replaces the sink's time source
func WithClock(now func() time.Time) SinkOption {
	return func(s *Sink) {
		s.now = now
	}
}

// 🏭 NewSink creates a sink that retains up to capacity entries
func NewSink(capacity int, opts ...SinkOption) *Sink {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s := &Sink{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity),
		subs:     map[uint64]chan Entry{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append records a message and fans it out to subscribers
func (s *Sink) Append(level Level, msg string) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	e := Entry{Seq: s.seq, Time: s.now(), Level: level, Message: msg}

	if len(s.entries) == s.capacity {
		copy(s.entries, s.entries[1:])
		s.entries = s.entries[:len(s.entries)-1]
	}
	s.entries = append(s.entries, e)

	for _, ch := range s.subs {
		select {
		case ch <- e:
		default:
		}
	}
	return e
}

// Poll returns the entries appended since the previous Poll and advances the cursor
func (s *Sink) Poll() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.since(s.cursor)
	s.cursor = s.seq
	return out
}

// Since returns the retained entries with a sequence number above seq
func (s *Sink) Since(seq uint64) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.since(seq)
}

func (s *Sink) since(seq uint64) []Entry {
	out := []Entry{}
	for _, e := range s.entries {
		if e.Seq > seq {
			out = append(out, e)
		}
	}
	return out
}

// Tail returns at most the last n retained entries
func (s *Sink) Tail(n int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Entry, n)
	copy(out, s.entries[len(s.entries)-n:])
	return out
}

// LastSeq returns the sequence number of the newest entry
func (s *Sink) LastSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// 📡 Subscribe registers a push consumer. The returned func unregisters it and
// closes the channel; calling it more than once is safe.
func (s *Sink) Subscribe(buffer int) (<-chan Entry, func()) {
	if buffer <= 0 {
		buffer = 64
	}
	ch := make(chan Entry, buffer)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
}

// Close closes every subscriber channel. Appends still land in the buffer.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// Strings renders entries with String
func Strings(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}

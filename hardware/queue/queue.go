// This file is part of Pagesim.
//
// Pagesim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pagesim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pagesim.  If not, see <https://www.gnu.org/licenses/>.

package queue

import "fmt"

// Queue is a fixed-capacity circular FIFO of process IDs.
type Queue struct {
	items []int
	front int
	count int
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		panic(fmt.Sprintf("queue: invalid capacity (%d)", capacity))
	}
	return &Queue{
		items: make([]int, capacity),
	}
}

func (q *Queue) String() string {
	return fmt.Sprintf("%d queued", q.count)
}

// IsEmpty reports whether the queue holds no IDs.
func (q *Queue) IsEmpty() bool {
	return q.count == 0
}

// Len returns the number of IDs in the queue.
func (q *Queue) Len() int {
	return q.count
}

// Enqueue adds an ID to the rear of the queue. A full queue means more
// enqueues than the process population allows, which is a defect in the
// caller.
func (q *Queue) Enqueue(id int) {
	if q.count == len(q.items) {
		panic(fmt.Sprintf("queue: enqueue of %d past capacity (%d)", id, len(q.items)))
	}

	q.items[(q.front+q.count)%len(q.items)] = id
	q.count++
}

// Dequeue removes and returns the ID at the front of the queue. The second
// return value is false if the queue is empty.
func (q *Queue) Dequeue() (int, bool) {
	if q.count == 0 {
		return 0, false
	}

	id := q.items[q.front]
	q.front = (q.front + 1) % len(q.items)
	q.count--

	return id, true
}

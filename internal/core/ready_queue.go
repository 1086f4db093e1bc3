package core

import "container/heap"

// ReadyQueue holds processes waiting for the cpu, ordered by remaining time,
// then arrival time, then the order in which they were queued.
type ReadyQueue struct {
	h   readyHeap
	seq uint64
}

type readyItem struct {
	process *SimProcess
	seq     uint64
}

// NewReadyQueue creates an empty ready queue.
func NewReadyQueue() *ReadyQueue {
	q := &ReadyQueue{h: make(readyHeap, 0)}
	heap.Init(&q.h)
	return q
}

// Push queues p. A process must not change its remaining time while queued.
func (q *ReadyQueue) Push(p *SimProcess) {
	q.seq++
	heap.Push(&q.h, readyItem{process: p, seq: q.seq})
}

// Peek returns the head of the queue without removing it, or nil.
func (q *ReadyQueue) Peek() *SimProcess {
	if len(q.h) == 0 {
		return nil
	}
	return q.h[0].process
}

// Pop removes and returns the head of the queue, or nil when empty.
func (q *ReadyQueue) Pop() *SimProcess {
	if len(q.h) == 0 {
		return nil
	}
	return heap.Pop(&q.h).(readyItem).process
}

// Len returns the number of queued processes.
func (q *ReadyQueue) Len() int {
	return len(q.h)
}

type readyHeap []readyItem

func (h readyHeap) Len() int { return len(h) }

func (h readyHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.process.RemainingTime != b.process.RemainingTime {
		return a.process.RemainingTime < b.process.RemainingTime
	}
	if a.process.ArrivalTime != b.process.ArrivalTime {
		return a.process.ArrivalTime < b.process.ArrivalTime
	}
	return a.seq < b.seq
}

func (h readyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *readyHeap) Push(x any) {
	*h = append(*h, x.(readyItem))
}

func (h *readyHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = readyItem{}
	*h = old[:n-1]
	return item
}

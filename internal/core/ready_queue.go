package core

// ReadyQueue is a FIFO of process ids. It is owned by a single run and is not safe for concurrent use.
type ReadyQueue struct {
	queue []int
	head  int
}

func NewReadyQueue(capacity int) *ReadyQueue {
	return &ReadyQueue{queue: make([]int, 0, capacity)}
}

func (q *ReadyQueue) AddToEnd(pid int) {
	q.queue = append(q.queue, pid)
}

func (q *ReadyQueue) RemoveFromTop() (int, bool) {
	if q.head == len(q.queue) {
		return 0, false
	}
	pid := q.queue[q.head]
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head > 32 && q.head*2 > len(q.queue) {
		q.queue = append(q.queue[:0], q.queue[q.head:]...)
		q.head = 0
	}
	return pid, true
}

func (q *ReadyQueue) Len() int {
	return len(q.queue) - q.head
}

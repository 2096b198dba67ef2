package overflow

// EndOfChain - Custom error to inform that an iterator has no more records to return
type EndOfChain struct {
	msg string
}

// Error - Used to notify that the end of the chain was reached
func (E EndOfChain) Error() string {
	if E.msg == "" {
		return "end of overflow chain"
	}
	return E.msg
}

// node - One link in the overflow chain
type node[E any] struct {
	record E
	next   *node[E]
}

// Chain - A singly linked list of overflow records belonging to one bucket.
// New records are always put at the head, the chain is never sorted.
// The zero value is an empty chain ready to use.
type Chain[E any] struct {
	head   *node[E]
	length int64
}

// Len - Returns number of records in the chain
func (C *Chain[E]) Len() int64 {
	return C.length
}

// Empty - Returns true if the chain holds no records
func (C *Chain[E]) Empty() bool {
	return C.head == nil
}

// PushFront - Puts record at the head of the chain
func (C *Chain[E]) PushFront(record E) {
	C.head = &node[E]{record: record, next: C.head}
	C.length++
}

// PopFront - Unlinks the head of the chain and returns its record.
// It returns:
//   - record is the record that was at the head, zero value if the chain was empty
//   - ok is false if the chain was empty
func (C *Chain[E]) PopFront() (record E, ok bool) {
	if C.head == nil {
		return
	}

	n := C.head
	C.head = n.next
	n.next = nil
	C.length--

	record = n.record
	ok = true

	return
}

// Remove - Unlinks the first record (counting from head) for which match returns true.
// It returns:
//   - record is the removed record, zero value if nothing matched
//   - ok is false if nothing matched
func (C *Chain[E]) Remove(match func(E) bool) (record E, ok bool) {
	for link := &C.head; *link != nil; link = &(*link).next {
		n := *link
		if match(n.record) {
			*link = n.next
			n.next = nil
			C.length--

			record = n.record
			ok = true
			return
		}
	}

	return
}

// Find - Returns the first record (counting from head) for which match returns true
func (C *Chain[E]) Find(match func(E) bool) (record E, ok bool) {
	iter := C.Records()
	for iter.HasNext() {
		r, _ := iter.Next()
		if match(r) {
			record = r
			ok = true
			return
		}
	}

	return
}

// Clear - Unlinks every record, calling fn on each of them in head to tail order
func (C *Chain[E]) Clear(fn func(E)) {
	for C.head != nil {
		record, _ := C.PopFront()
		if fn != nil {
			fn(record)
		}
	}
}

// Records - Returns an iterator positioned at the head of the chain.
// The chain must not be modified while iterating.
func (C *Chain[E]) Records() *Records[E] {
	return newRecords(C.head)
}

// Records - Is used to iterate over overflow records one by one.
type Records[E any] struct {
	current *node[E]
}

// newRecords - Returns a pointer to a new Records struct
func newRecords[E any](start *node[E]) *Records[E] {

	return &Records[E]{
		current: start,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (O *Records[E]) HasNext() bool {
	return O.current != nil
}

// Next - Returns record.
// It returns:
//   - record is the next overflow record.
//   - err is nil or, if there are no more records when calling this function, an error of type EndOfChain.
func (O *Records[E]) Next() (record E, err error) {
	if O.current == nil {
		err = EndOfChain{}
		return
	}

	record = O.current.record
	O.current = O.current.next

	return
}

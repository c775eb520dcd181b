package client

import (
	"fmt"
	"io"
	"sync"
)

// Toaster shows transient messages to the end user
type Toaster interface {
	Success(msg string)
	Error(msg string)
}

// WriterToaster prints toasts as lines on w
type WriterToaster struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterToaster(w io.Writer) *WriterToaster {
	return &WriterToaster{w: w}
}

func (t *WriterToaster) Success(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "[ok] %s\n", msg)
}

func (t *WriterToaster) Error(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "[error] %s\n", msg)
}

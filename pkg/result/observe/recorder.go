package observe

import "sync"

// Recorder keeps every error it intercepts. It is safe for concurrent use.
type Recorder struct {
	mu   sync.Mutex
	errs []error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Intercept(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

// Errors returns a copy of the recorded errors in interception order.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]error, len(r.errs))
	copy(out, r.errs)
	return out
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errs)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = nil
}

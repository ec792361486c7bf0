package ledger

import "sync"

// accountLocker serializes balance mutations per account. A transfer holds
// the locks of both of its accounts for the duration of load-validate-persist,
// so two transfers sharing an account can never both act on a stale balance.
type accountLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLocker() *accountLocker {
	return &accountLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *accountLocker) lockFor(id string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

// LockPair acquires the locks of both accounts in lexicographic id order so
// that concurrent transfers over the same pair cannot deadlock. The returned
// function releases both locks.
func (l *accountLocker) LockPair(a, b string) func() {
	first, second := a, b
	if second < first {
		first, second = second, first
	}

	fm := l.lockFor(first)
	sm := l.lockFor(second)

	fm.Lock()
	sm.Lock()
	return func() {
		sm.Unlock()
		fm.Unlock()
	}
}

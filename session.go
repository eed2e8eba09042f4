package unitconverter

import (
	"sync"

	"github.com/google/uuid"
)

type HookFunc func(res ConversionResult, s *Session) error

// Session keeps the results of one interactive run in the order they were
// produced.
type Session struct {
	ID      string
	mutex   sync.Mutex
	results []ConversionResult
	hooks   []HookFunc
}

func NewSession() *Session {
	return &Session{ID: uuid.New().String()}
}

func (s *Session) AddHook(h HookFunc) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.hooks = append(s.hooks, h)
}

// Convert runs req and records the result. Failed conversions are not
// recorded. The first hook error is returned along with the result.
func (s *Session) Convert(req ConversionRequest) (ConversionResult, error) {
	res, err := req.Do()
	if err != nil {
		return ConversionResult{}, err
	}
	s.mutex.Lock()
	s.results = append(s.results, res)
	hooks := append([]HookFunc(nil), s.hooks...)
	s.mutex.Unlock()
	return res, s.runHooks(res, hooks)
}

func (s *Session) runHooks(res ConversionResult, hooks []HookFunc) error {
	for _, hook := range hooks {
		if err := hook(res, s); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) Results() []ConversionResult {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]ConversionResult(nil), s.results...)
}

func (s *Session) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.results)
}

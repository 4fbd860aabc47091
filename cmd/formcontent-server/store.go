package main

import (
	"sync"

	"github.com/goliatone/go-formcontent/pkg/govuk"
)

// answerStore keeps submitted answers in memory for the preview session.
type answerStore struct {
	mu      sync.RWMutex
	answers govuk.Data
}

func newAnswerStore() *answerStore {
	return &answerStore{answers: govuk.Data{}}
}

func (s *answerStore) Get(id string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.answers[id]
	return value, ok
}

func (s *answerStore) Set(id string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[id] = value
}

func (s *answerStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.answers, id)
}

func (s *answerStore) Snapshot() govuk.Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(govuk.Data, len(s.answers))
	for key, value := range s.answers {
		out[key] = value
	}
	return out
}

package storage

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when a removal targets an object that is not stored.
var ErrNotFound = errors.New("object not found in storage")

// Storage is an interface for ordered object collections.
type Storage[T comparable] interface {
	// List returns all objects from the storage in insertion order.
	List() []T

	// Add appends an object to the storage.
	// It does not guard against duplicates; the same object can be stored twice.
	Add(o T)

	// Remove deletes the first occurrence of the object from the storage.
	// Iff the object is not present, ErrNotFound is returned and the storage stays unchanged.
	Remove(o T) error

	// Contains reports whether the object is currently stored.
	Contains(o T) bool

	// Length returns the number of currently stored objects in the storage.
	Length() uint

	// Purge removes all objects from the storage.
	Purge()
}

// localStorage stores objects in the local application memory.
// The backing slice keeps insertion order observable so that removals always
// target the first occurrence.
type localStorage[T comparable] struct {
	sync.RWMutex
	objects []T
}

// NewLocalStorage responds with a Storage implementation.
// This implementation stores the data thread-safe in the local application memory.
func NewLocalStorage[T comparable]() *localStorage[T] {
	return &localStorage[T]{}
}

func (s *localStorage[T]) List() []T {
	s.RLock()
	defer s.RUnlock()
	objects := make([]T, len(s.objects))
	copy(objects, s.objects)
	return objects
}

func (s *localStorage[T]) Add(o T) {
	s.Lock()
	defer s.Unlock()
	s.objects = append(s.objects, o)
}

func (s *localStorage[T]) Remove(o T) error {
	s.Lock()
	defer s.Unlock()
	for i, object := range s.objects {
		if object == o {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *localStorage[T]) Contains(o T) bool {
	s.RLock()
	defer s.RUnlock()
	for _, object := range s.objects {
		if object == o {
			return true
		}
	}
	return false
}

func (s *localStorage[T]) Length() uint {
	s.RLock()
	defer s.RUnlock()
	return uint(len(s.objects))
}

func (s *localStorage[T]) Purge() {
	s.Lock()
	defer s.Unlock()
	s.objects = nil
}

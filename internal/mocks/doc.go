// Package mocks provides centralized mock implementations for testing.
//
// Each mock is a struct with one function field per interface method. A nil
// function field falls back to the zero-value response stored on the mock, so
// tests only set the behavior they care about:
//
//	words := &mocks.MockWordStore{
//	    GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
//	        return nil, store.ErrWordNotFound
//	    },
//	}
package mocks

package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"depot/internal/domain"
	"depot/internal/store"
)

func TestFileStore_RoundTrip_Property(t *testing.T) {
	s, err := store.NewFileStore[domain.RemoteEmployee](t.TempDir())
	require.NoError(t, err)

	rapid.Check(t, func(rt *rapid.T) {
		// Keys have to be valid file names, so stick to a safe alphabet.
		name := rapid.StringMatching(`[A-Za-z0-9_-]{1,32}`).Draw(rt, "name")
		country := rapid.StringN(0, 64, -1).Draw(rt, "country")

		want := domain.RemoteEmployee{
			Employee: domain.Employee{Name: name},
			Country:  country,
		}
		if err := s.Insert(want); err != nil {
			rt.Fatalf("insert: %v", err)
		}

		got, err := s.Get(name)
		if err != nil {
			rt.Fatalf("get: %v", err)
		}
		if got != want {
			rt.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
		}
	})
}

package tenderwatch_test

import (
	"testing"

	"github.com/brunesco/tenderwatch"
	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	t.Parallel()

	fields := []string{
		"Travaux de voirie",
		"Province Sud",
		"https://example.nc/avis/123",
		"2024-01-10",
		"2024-03-05",
		"Le présent marché porte sur des travaux de voirie.",
	}

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, tenderwatch.Fingerprint(fields...), tenderwatch.Fingerprint(fields...))
	})

	t.Run("changing any single field changes the digest", func(t *testing.T) {
		t.Parallel()

		base := tenderwatch.Fingerprint(fields...)
		for i := range fields {
			changed := make([]string, len(fields))
			copy(changed, fields)
			changed[i] = changed[i] + "x"
			assert.NotEqual(t, base, tenderwatch.Fingerprint(changed...), "field %d", i)
		}
	})

	t.Run("field boundaries cannot collide", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t,
			tenderwatch.Fingerprint("ab", "c"),
			tenderwatch.Fingerprint("a", "bc"),
		)
		assert.NotEqual(t,
			tenderwatch.Fingerprint("a|", "b"),
			tenderwatch.Fingerprint("a", "|b"),
		)
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			tenderwatch.Fingerprint("a", "b"),
			tenderwatch.Fingerprint(" a ", "b\n"),
		)
	})

	t.Run("absent fields hash as empty strings", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, tenderwatch.Fingerprint("", ""), tenderwatch.Fingerprint("", ""))
		assert.NotEqual(t, tenderwatch.Fingerprint("", ""), tenderwatch.Fingerprint(""))
	})
}

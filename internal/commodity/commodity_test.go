package commodity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "rice", "Rice"},
		{"uppercase", "RICE", "Rice"},
		{"two words", " black pepper ", "Black Pepper"},
		{"already canonical", "Bajra", "Bajra"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("canonical name resolves first", func(t *testing.T) {
		labels := Resolve("Rice")
		assert.Equal(t, []string{"Rice", "Paddy (Dhan)(Common)", "Paddy (Dhan)"}, labels)
	})

	t.Run("unknown commodity resolves to itself", func(t *testing.T) {
		assert.Equal(t, []string{"Quinoa"}, Resolve("Quinoa"))
	})

	t.Run("duplicates removed preserving order", func(t *testing.T) {
		labels := Resolve("Soybean")
		assert.Equal(t, []string{"Soybean", "Soyabean"}, labels)
	})
}

func TestBasePrice(t *testing.T) {
	assert.Equal(t, 2200.0, BasePrice("Rice"))
	assert.Equal(t, 55000.0, BasePrice("Black Pepper"))
	assert.Equal(t, 2000.0, BasePrice("Quinoa"))
}

func TestPopularReturnsCopy(t *testing.T) {
	first := Popular()
	first[0] = "mutated"
	assert.Equal(t, "Onion", Popular()[0])
	assert.Len(t, Popular(), 30)
}

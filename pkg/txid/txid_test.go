package txid

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Format(t *testing.T) {
	now := time.Date(2024, 1, 1, 15, 4, 5, 0, time.UTC)

	id := Generate(now)

	parts := strings.Split(id, "-")
	assert.Len(t, parts, 3)
	assert.Equal(t, "TXN", parts[0])
	assert.Equal(t, "20240101150405", parts[1])
	assert.Len(t, parts[2], 8)
}

func TestGenerate_PracticalUniqueness(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{})

	for i := 0; i < 1000; i++ {
		id := Generate(now)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate transaction id: %s", id)
		seen[id] = struct{}{}
	}
}

package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber_Format(t *testing.T) {
	n := generateOrderNumber(time.Now())
	assert.True(t, strings.HasPrefix(n, "ORD"))
	assert.Greater(t, len(n), 10)
}

func TestGenerateOrderNumber_UniqueUnderRapidCreation(t *testing.T) {
	const count = 10000

	seen := make(map[string]struct{}, count)
	for i := 0; i < count; i++ {
		n := generateOrderNumber(time.Now())
		_, dup := seen[n]
		assert.False(t, dup, "duplicate order number %s at iteration %d", n, i)
		seen[n] = struct{}{}
	}
	assert.Len(t, seen, count)
}

package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("")
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, p)

	p, err = ParsePriority("critical")
	require.NoError(t, err)
	assert.Equal(t, 4, p.Weight())

	_, err = ParsePriority("urgent")
	assert.Error(t, err)
}

func TestPriority_WeightOrder(t *testing.T) {
	all := AllPriorities()
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i].Weight(), all[i-1].Weight())
	}
}

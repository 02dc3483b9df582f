package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendEvictsOldestFirst(t *testing.T) {
	h := New(10)
	for i := 0; i < 6; i++ {
		h.Append(Turn{Role: RoleUser, Text: fmt.Sprintf("q%d", i)})
		h.Append(Turn{Role: RoleAssistant, Text: fmt.Sprintf("a%d", i)})
	}

	require.Equal(t, 10, h.Len(), "cap always holds")
	turns := h.Snapshot()
	assert.Equal(t, "q1", turns[0].Text, "the chronologically oldest pair is evicted")
	assert.Equal(t, "a5", turns[9].Text)
	for i := 0; i < len(turns); i += 2 {
		assert.Equal(t, RoleUser, turns[i].Role, "oldest-first order preserved")
		assert.Equal(t, RoleAssistant, turns[i+1].Role)
	}
}

func TestOddCapRoundsUpToWholePairs(t *testing.T) {
	h := New(5)
	for i := 0; i < 8; i++ {
		h.Append(Turn{Role: RoleUser, Text: fmt.Sprintf("t%d", i)})
	}
	assert.Equal(t, 6, h.Len())
}

func TestSnapshotIsDetached(t *testing.T) {
	h := New(10)
	h.Append(Turn{Role: RoleUser, Text: "hi"})

	snap := h.Snapshot()
	snap[0].Text = "mutated"
	h.Append(Turn{Role: RoleAssistant, Text: "hello"})

	assert.Equal(t, "hi", h.Snapshot()[0].Text)
	assert.Len(t, snap, 1)
}

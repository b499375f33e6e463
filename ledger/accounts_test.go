package ledger

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestAccountList(t *testing.T) {
	t.Run("AddIsIdempotent", func(t *testing.T) {
		l := NewAccountList(nil)

		assert.True(t, l.Add("Checking"))
		assert.False(t, l.Add("Checking"))
		assert.Equal(t, []string{"Checking"}, l.Names())
	})

	t.Run("BlankIsNoOp", func(t *testing.T) {
		l := NewAccountList(nil)

		assert.False(t, l.Add(""))
		assert.Equal(t, 0, l.Len())
	})

	t.Run("PreservesInsertionOrder", func(t *testing.T) {
		l := NewAccountList([]string{"Savings", "Checking", "Savings", ""})

		assert.Equal(t, []string{"Savings", "Checking"}, l.Names())
	})

	t.Run("NamesReturnsCopy", func(t *testing.T) {
		l := NewAccountList([]string{"Checking"})

		names := l.Names()
		names[0] = "mutated"

		assert.Equal(t, []string{"Checking"}, l.Names())
	})
}

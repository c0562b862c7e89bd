package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/lending-library-go/lending/core"
)

func Test_CatalogItem_LoanAndReturn(t *testing.T) {
	// arrange
	item := core.NewCatalogItem("978-0-13-110362-7", "The C Programming Language", "Kernighan, Ritchie", "programming")
	assert.True(t, item.Available)
	assert.Empty(t, item.HeldBy)

	// act
	item.MarkLoaned("h-1")

	// assert
	assert.False(t, item.Available)
	assert.Equal(t, "h-1", item.HeldBy)

	// act
	item.MarkReturned()

	// assert
	assert.True(t, item.Available)
	assert.Empty(t, item.HeldBy)
}

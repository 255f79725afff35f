package analytics

import (
	"bytes"
	"testing"

	"restaurant-orders-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	pizza := &models.MenuItem{Name: "Margherita"}
	coke := &models.MenuItem{Name: "Coke"}
	orders := []models.Order{
		{
			ID:         7,
			FinalTotal: 22.5,
			Items: []models.OrderItem{
				{MenuItem: pizza, Quantity: 2},
				{MenuItem: coke, Quantity: 1},
			},
		},
		{ID: 8, FinalTotal: 10},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, orders))

	lines := buf.String()
	assert.Contains(t, lines, "orderId,totalAmount,items")
	assert.Contains(t, lines, `7,22.5,"Margherita (x2), Coke (x1)"`)
	assert.Contains(t, lines, "8,10,")
}

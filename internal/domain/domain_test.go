package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The SPA reads camelCase keys; a drift here breaks every page silently.
func TestProductWireFormat(t *testing.T) {
	spec := "Immunity Care"
	p := Product{
		ID:          "abc",
		Name:        "Organic Immunity Plus",
		Description: "booster",
		Price:       "299.00",
		Category:    "Organic Immunity",
		Specialty:   &spec,
		InStock:     true,
		IsOrganic:   true,
		CreatedAt:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, "Organic Immunity Plus", m["name"])
	assert.Equal(t, "Immunity Care", m["specialty"])
	assert.Equal(t, true, m["inStock"])
	assert.Equal(t, true, m["isOrganic"])
	assert.Contains(t, m, "imageUrl")
	assert.Nil(t, m["imageUrl"])
	assert.Contains(t, m, "createdAt")
}

func TestUserWireFormatHidesPassword(t *testing.T) {
	data, err := json.Marshal(User{ID: "u1", Username: "meera", Password: "hash"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.NotContains(t, m, "password")
}

func TestCartItemWireFormat(t *testing.T) {
	qty := 2
	pid := "p1"
	data, err := json.Marshal(CartItem{ID: "c1", ProductID: &pid, Quantity: &qty})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "p1", m["productId"])
	assert.Equal(t, float64(2), m["quantity"])
	assert.Contains(t, m, "userId")
	assert.Nil(t, m["userId"])
}

package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestState_FilterChangesResetPage(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(s *State)
	}{
		{"category", func(s *State) { s.SetCategory("necklaces") }},
		{"price ceiling", func(s *State) { s.SetPriceMax(decimal.NewFromInt(50)) }},
		{"color", func(s *State) { s.ToggleColor("Gold", true) }},
		{"size", func(s *State) { s.ToggleSize("M", true) }},
		{"in stock", func(s *State) { s.SetInStockOnly(true) }},
		{"on sale", func(s *State) { s.SetOnSaleOnly(true) }},
		{"sort", func(s *State) { s.SetSort(SortPriceLow) }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.SetPage(4)
			tt.mutate(s)
			assert.Equal(t, 1, s.Page)
		})
	}
}

func TestState_SetPagePreservesFilters(t *testing.T) {
	s := NewState()
	s.SetCategory("necklaces")
	s.ToggleColor("Gold", true)
	s.SetSort(SortRating)

	s.SetPage(3)

	assert.Equal(t, 3, s.Page)
	assert.Equal(t, "necklaces", s.Filters.Category)
	assert.Equal(t, []string{"Gold"}, s.Filters.Colors)
	assert.Equal(t, SortRating, s.Sort)
}

func TestState_ToggleColor(t *testing.T) {
	s := NewState()

	s.ToggleColor("Gold", true)
	s.ToggleColor("Silber", true)
	s.ToggleColor("Gold", true) // already present, no duplicate
	assert.Equal(t, []string{"Gold", "Silber"}, s.Filters.Colors)

	s.ToggleColor("Gold", false)
	assert.Equal(t, []string{"Silber"}, s.Filters.Colors)
}

func TestState_Reset(t *testing.T) {
	s := NewState()
	s.SetCategory("bags")
	s.SetPriceMax(decimal.NewFromInt(100))
	s.SetInStockOnly(true)
	s.SetPage(2)

	s.Reset()

	assert.Equal(t, *NewState(), *s)
}

func TestState_SetPageFloorsAtOne(t *testing.T) {
	s := NewState()
	s.SetPage(0)
	assert.Equal(t, 1, s.Page)
	s.SetPage(-3)
	assert.Equal(t, 1, s.Page)
}

package catalog

import "github.com/shopspring/decimal"

// State is the mutable filter/sort/pagination state for one browsing
// session. Every filter or sort mutation resets the page to 1; only an
// explicit page change preserves the rest of the state.
type State struct {
	Filters  Filters `json:"filters"`
	Sort     SortKey `json:"sort"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

func NewState() *State {
	return &State{
		Sort:     SortName,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

func (s *State) SetCategory(category string) {
	s.Filters.Category = category
	s.Page = 1
}

func (s *State) SetPriceMax(max decimal.Decimal) {
	s.Filters.PriceMax = max
	s.Page = 1
}

// ToggleColor adds or removes a color from the accepted set.
func (s *State) ToggleColor(color string, accepted bool) {
	s.Filters.Colors = toggle(s.Filters.Colors, color, accepted)
	s.Page = 1
}

// ToggleSize adds or removes a size from the accepted set.
func (s *State) ToggleSize(size string, accepted bool) {
	s.Filters.Sizes = toggle(s.Filters.Sizes, size, accepted)
	s.Page = 1
}

func (s *State) SetInStockOnly(on bool) {
	s.Filters.InStockOnly = on
	s.Page = 1
}

func (s *State) SetOnSaleOnly(on bool) {
	s.Filters.OnSaleOnly = on
	s.Page = 1
}

func (s *State) SetSort(key SortKey) {
	s.Sort = key
	s.Page = 1
}

// SetPage changes only the page; filters and sort are untouched.
func (s *State) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page = page
}

// Reset restores the default state.
func (s *State) Reset() {
	*s = *NewState()
}

func toggle(values []string, value string, on bool) []string {
	if on {
		for _, v := range values {
			if v == value {
				return values
			}
		}
		return append(values, value)
	}
	out := values[:0]
	for _, v := range values {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

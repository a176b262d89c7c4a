package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullClubName(t *testing.T) {
	c := &Club{Name: "Qi10", Variant: "Max", Brand: &Brand{Name: "TaylorMade"}}
	assert.Equal(t, "TaylorMade Qi10 Max", FullClubName(c))

	assert.Equal(t, "Qi10", FullClubName(&Club{Name: "Qi10"}))
	assert.Empty(t, FullClubName(nil))
}

func TestPriceDisplay(t *testing.T) {
	tests := []struct {
		name  string
		price *Price
		want  string
	}{
		{name: "no price", price: nil, want: ""},
		{name: "zero amount", price: &Price{Amount: 0, Currency: "USD"}, want: ""},
		{name: "usd", price: &Price{Amount: 599.99, Currency: "USD"}, want: "$599.99"},
		{name: "default currency", price: &Price{Amount: 450}, want: "$450"},
		{name: "eur", price: &Price{Amount: 500, Currency: "EUR"}, want: "€500"},
		{name: "gbp", price: &Price{Amount: 400, Currency: "GBP"}, want: "£400"},
		{name: "range wins", price: &Price{Amount: 400, PriceRange: "$400-$600"}, want: "$400-$600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceDisplay(&Club{Price: tt.price}))
		})
	}
}

func TestPerformanceRatingDisplay(t *testing.T) {
	assert.Equal(t, "MOI Rating: 9800", PerformanceRatingDisplay(&Club{PerformanceRating: &PerformanceRating{Value: 9800}}))
	assert.Equal(t, "SPIN Rating: 2.5", PerformanceRatingDisplay(&Club{PerformanceRating: &PerformanceRating{Value: 2.5, Type: "spin"}}))
	assert.Empty(t, PerformanceRatingDisplay(&Club{}))
}

func TestTargetHandicapDisplay(t *testing.T) {
	c := &Club{TargetHandicaps: []string{"low-handicaps", "high-handicaps", "scratch"}}
	assert.Equal(t, "Low Handicaps, High Handicaps, scratch", TargetHandicapDisplay(c))
}

func TestAdjustabilityDisplay(t *testing.T) {
	assert.Equal(t, "Fixed", AdjustabilityDisplay(&Club{}))

	c := &Club{Specifications: &ClubSpecifications{Adjustability: &Adjustability{Type: "12-way"}}}
	assert.Equal(t, "12-way Adjustable Hosel", AdjustabilityDisplay(c))
}

func TestLoftsDisplay(t *testing.T) {
	c := &Club{Specifications: &ClubSpecifications{AvailableLofts: []float64{9, 10.5, 12}}}
	assert.Equal(t, "9°, 10.5°, 12°", LoftsDisplay(c))
	assert.Empty(t, LoftsDisplay(&Club{}))
}

func TestClubTypeDisplays(t *testing.T) {
	assert.Equal(t, "Golf Club", ClubTypeDisplay(&Club{}))
	assert.Equal(t, "Fairway Wood", ClubTypeDisplay(&Club{ClubType: "fairway-wood"}))
	assert.Equal(t, "Mallet Putter", ClubSubTypeDisplay(&Club{ClubSubType: "mallet-putter"}))
	assert.Equal(t, "Super Game Improvement", ClubSubTypeDisplay(&Club{ClubSubType: "super-game-improvement"}))
}

func TestAwards(t *testing.T) {
	c := &Club{Awards: []string{"gold", "", "editors-choice"}}

	assert.True(t, HasAward(c, "gold"))
	assert.False(t, HasAward(c, "silver"))
	assert.False(t, HasAward(nil, "gold"))
	assert.Equal(t, []string{"gold", "editors-choice"}, AwardBadges(c))
	assert.Equal(t, []string{}, AwardBadges(nil))
}

func clubIDs(clubs []Club) []string {
	out := make([]string, 0, len(clubs))
	for _, c := range clubs {
		out = append(out, c.ID)
	}
	return out
}

func TestSortClubsByOrder(t *testing.T) {
	clubs := []Club{
		{ID: "unordered-1"},
		{ID: "third", Order: 3},
		{ID: "first", Order: 1},
		{ID: "unordered-2"},
	}

	assert.Equal(t, []string{"first", "third", "unordered-1", "unordered-2"}, clubIDs(SortClubsByOrder(clubs)))
}

func TestFilterClubs(t *testing.T) {
	clubs := []Club{
		{ID: "d1", ClubType: "driver", Awards: []string{"gold"}},
		{ID: "p1", ClubType: "putter"},
		{ID: "d2", ClubType: "driver"},
	}

	assert.Equal(t, []string{"d1", "d2"}, clubIDs(FilterClubsByType(clubs, "driver")))
	assert.Equal(t, []string{"d1"}, clubIDs(FilterClubsByAward(clubs, "gold")))
}

func TestClubsForGuide(t *testing.T) {
	all := []Club{
		{ID: "a", Order: 2},
		{ID: "b", Order: 1},
		{ID: "c", Order: 3},
	}
	guide := &BuyingGuide{Clubs: []Club{{ID: "a"}, {ID: "b"}}}

	assert.Equal(t, []string{"b", "a"}, clubIDs(ClubsForGuide(guide, all)))
	assert.Equal(t, []Club{}, ClubsForGuide(nil, all))
}

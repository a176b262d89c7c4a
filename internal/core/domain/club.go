package domain

import (
	"slices"
	"strconv"
	"strings"
)

// unorderedClubRank sorts clubs without a display order after every ordered club.
const unorderedClubRank = 999

type Brand struct {
	ID          string     `json:"_id,omitempty"`
	Name        string     `json:"name,omitempty"`
	Slug        *Slug      `json:"slug,omitempty"`
	Logo        *ImageFile `json:"logo,omitempty"`
	Website     string     `json:"website,omitempty"`
	Description string     `json:"description,omitempty"`
	Specialties []string   `json:"specialties,omitempty"`
	Clubs       []Club     `json:"clubs,omitempty"`
}

type Price struct {
	Amount     float64 `json:"amount,omitempty"`
	Currency   string  `json:"currency,omitempty"`
	PriceRange string  `json:"priceRange,omitempty"`
}

type PerformanceRating struct {
	Value float64 `json:"value,omitempty"`
	Type  string  `json:"type,omitempty"`
}

type HotListScore struct {
	GDScore      float64 `json:"gdScore,omitempty"`
	HotListScore float64 `json:"hotListScore,omitempty"`
	Award        string  `json:"award,omitempty"`
}

type Adjustability struct {
	Type string `json:"type,omitempty"`
}

type ClubSpecifications struct {
	AvailableLofts []float64      `json:"availableLofts,omitempty"`
	Adjustability  *Adjustability `json:"adjustability,omitempty"`
	HeadWeight     string         `json:"headWeight,omitempty"`
	LengthOptions  []string       `json:"lengthOptions,omitempty"`
	SoleGrinds     []string       `json:"soleGrinds,omitempty"`
	FinishOptions  []string       `json:"finishOptions,omitempty"`
}

type ProductImages struct {
	ToeView     *ImageReference `json:"toeView,omitempty"`
	AddressView *ImageReference `json:"addressView,omitempty"`
}

type Club struct {
	ID                string              `json:"_id,omitempty"`
	Name              string              `json:"name,omitempty"`
	Slug              *Slug               `json:"slug,omitempty"`
	ClubType          string              `json:"clubType,omitempty"`
	ClubSubType       string              `json:"clubSubType,omitempty"`
	Variant           string              `json:"variant,omitempty"`
	Brand             *Brand              `json:"brand,omitempty"`
	PerformanceRating *PerformanceRating  `json:"performanceRating,omitempty"`
	Awards            []string            `json:"awards,omitempty"`
	TargetHandicaps   []string            `json:"targetHandicaps,omitempty"`
	WhyWeLikeIt       string              `json:"whyWeLikeIt,omitempty"`
	Specifications    *ClubSpecifications `json:"specifications,omitempty"`
	HeroImage         *ImageReference     `json:"heroImage,omitempty"`
	ProductImages     *ProductImages      `json:"productImages,omitempty"`
	Price             *Price              `json:"price,omitempty"`
	HotListScore      *HotListScore       `json:"hotListScore,omitempty"`
	BuyNowURL         string              `json:"buyNowUrl,omitempty"`
	Featured          bool                `json:"featured,omitempty"`
	Order             int                 `json:"order,omitempty"`
}

type BuyingGuide struct {
	ID                 string `json:"_id,omitempty"`
	Title              string `json:"title,omitempty"`
	Slug               *Slug  `json:"slug,omitempty"`
	Category           string `json:"category,omitempty"`
	ClubType           string `json:"clubType,omitempty"`
	ContentType        string `json:"contentType,omitempty"`
	Introduction       any    `json:"introduction,omitempty"`
	EvaluationCriteria any    `json:"evaluationCriteria,omitempty"`
	PublishedAt        string `json:"publishedAt,omitempty"`
	Year               int    `json:"year,omitempty"`
	Clubs              []Club `json:"clubs,omitempty"`
}

// FullClubName joins brand, name and variant, skipping empty parts.
func FullClubName(c *Club) string {
	if c == nil {
		return ""
	}
	var parts []string
	if c.Brand != nil && c.Brand.Name != "" {
		parts = append(parts, c.Brand.Name)
	}
	for _, p := range []string{c.Name, c.Variant} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func PriceDisplay(c *Club) string {
	if c == nil || c.Price == nil || c.Price.Amount == 0 {
		return ""
	}
	if c.Price.PriceRange != "" {
		return c.Price.PriceRange
	}

	var symbol string
	switch c.Price.Currency {
	case "", "USD":
		symbol = "$"
	case "EUR":
		symbol = "€"
	default:
		symbol = "£"
	}
	return symbol + strconv.FormatFloat(c.Price.Amount, 'f', -1, 64)
}

func PerformanceRatingDisplay(c *Club) string {
	if c == nil || c.PerformanceRating == nil || c.PerformanceRating.Value == 0 {
		return ""
	}
	kind := c.PerformanceRating.Type
	if kind == "" {
		kind = "MOI"
	}
	return strings.ToUpper(kind) + " Rating: " + strconv.FormatFloat(c.PerformanceRating.Value, 'f', -1, 64)
}

var handicapLabels = map[string]string{
	"low-handicaps":    "Low Handicaps",
	"middle-handicaps": "Mid Handicaps",
	"high-handicaps":   "High Handicaps",
}

func TargetHandicapDisplay(c *Club) string {
	if c == nil || len(c.TargetHandicaps) == 0 {
		return ""
	}
	labels := make([]string, 0, len(c.TargetHandicaps))
	for _, h := range c.TargetHandicaps {
		if l, ok := handicapLabels[h]; ok {
			labels = append(labels, l)
		} else {
			labels = append(labels, h)
		}
	}
	return strings.Join(labels, ", ")
}

var adjustabilityLabels = map[string]string{
	"fixed":        "Fixed Hosel",
	"8-way":        "8-way Adjustable Hosel",
	"12-way":       "12-way Adjustable Hosel",
	"16-way":       "16-way Adjustable Hosel",
	"33-way":       "33-way Adjustable Hosel",
	"plus-minus-2": "±2° Adjustable",
}

func AdjustabilityDisplay(c *Club) string {
	if c == nil || c.Specifications == nil || c.Specifications.Adjustability == nil || c.Specifications.Adjustability.Type == "" {
		return "Fixed"
	}
	t := c.Specifications.Adjustability.Type
	if l, ok := adjustabilityLabels[t]; ok {
		return l
	}
	return t
}

func LoftsDisplay(c *Club) string {
	if c == nil || c.Specifications == nil || len(c.Specifications.AvailableLofts) == 0 {
		return ""
	}
	lofts := make([]string, 0, len(c.Specifications.AvailableLofts))
	for _, l := range c.Specifications.AvailableLofts {
		lofts = append(lofts, strconv.FormatFloat(l, 'f', -1, 64)+"°")
	}
	return strings.Join(lofts, ", ")
}

var clubTypeLabels = map[string]string{
	"driver":       "Driver",
	"fairway-wood": "Fairway Wood",
	"hybrid":       "Hybrid",
	"iron":         "Iron",
	"wedge":        "Wedge",
	"putter":       "Putter",
}

func ClubTypeDisplay(c *Club) string {
	if c == nil || c.ClubType == "" {
		return "Golf Club"
	}
	if l, ok := clubTypeLabels[c.ClubType]; ok {
		return l
	}
	return c.ClubType
}

var clubSubTypeLabels = map[string]string{
	"blade-putter":           "Blade Putter",
	"mallet-putter":          "Mallet Putter",
	"mid-mallet-putter":      "Mid-Mallet Putter",
	"game-improvement-iron":  "Game Improvement Iron",
	"players-iron":           "Players Iron",
	"players-distance-iron":  "Players Distance Iron",
	"tour-iron":              "Tour Iron",
	"max-forgiveness-driver": "Max Forgiveness Driver",
	"low-spin-driver":        "Low Spin Driver",
	"draw-bias-driver":       "Draw Bias Driver",
	"tour-driver":            "Tour Driver",
}

// ClubSubTypeDisplay falls back to title-casing the hyphenated value.
func ClubSubTypeDisplay(c *Club) string {
	if c == nil || c.ClubSubType == "" {
		return ""
	}
	if l, ok := clubSubTypeLabels[c.ClubSubType]; ok {
		return l
	}
	words := strings.Split(c.ClubSubType, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func HasAward(c *Club, award string) bool {
	return c != nil && slices.Contains(c.Awards, award)
}

// AwardBadges returns the non-empty awards.
func AwardBadges(c *Club) []string {
	if c == nil {
		return []string{}
	}
	out := make([]string, 0, len(c.Awards))
	for _, a := range c.Awards {
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

func clubRank(c Club) int {
	if c.Order <= 0 {
		return unorderedClubRank
	}
	return c.Order
}

func SortClubsByOrder(clubs []Club) []Club {
	sorted := slices.Clone(clubs)
	slices.SortStableFunc(sorted, func(a, b Club) int {
		return clubRank(a) - clubRank(b)
	})
	return sorted
}

func FilterClubsByType(clubs []Club, clubType string) []Club {
	out := make([]Club, 0, len(clubs))
	for _, c := range clubs {
		if c.ClubType == clubType {
			out = append(out, c)
		}
	}
	return out
}

func FilterClubsByAward(clubs []Club, award string) []Club {
	out := make([]Club, 0, len(clubs))
	for i := range clubs {
		if HasAward(&clubs[i], award) {
			out = append(out, clubs[i])
		}
	}
	return out
}

// ClubsForGuide picks the guide's clubs out of allClubs, in display order.
func ClubsForGuide(guide *BuyingGuide, allClubs []Club) []Club {
	if guide == nil || len(guide.Clubs) == 0 {
		return []Club{}
	}
	ids := make(map[string]struct{}, len(guide.Clubs))
	for _, c := range guide.Clubs {
		ids[c.ID] = struct{}{}
	}
	picked := make([]Club, 0, len(guide.Clubs))
	for _, c := range allClubs {
		if _, ok := ids[c.ID]; ok {
			picked = append(picked, c)
		}
	}
	return SortClubsByOrder(picked)
}

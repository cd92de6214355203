// Package listing derives marketplace listing data from SKU records: tag
// lists, category ids and mock prices, plus the per-marketplace projections.
package listing

import (
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"

	"skuflow/pkg/sku"
)

// DefaultPrice is returned for SKUs without tags.
const DefaultPrice = 9.99

var nonWord = regexp.MustCompile(`[^\w\s]`)

// GenerateTags derives tags from the title, excluding brand words. Both
// inputs are lowercased and stripped of non-word characters before
// tokenizing; duplicates are removed with first-occurrence order kept.
func GenerateTags(title, brand string) []string {
	titleWords := strings.Fields(nonWord.ReplaceAllString(strings.ToLower(title), ""))
	brandWords := strings.Fields(nonWord.ReplaceAllString(strings.ToLower(brand), ""))

	excluded := make(map[string]struct{}, len(brandWords))
	for _, w := range brandWords {
		excluded[w] = struct{}{}
	}

	tags := make([]string, 0, len(titleWords))
	seen := make(map[string]struct{}, len(titleWords))
	for _, w := range titleWords {
		if _, ok := excluded[w]; ok {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		tags = append(tags, w)
	}
	return tags
}

// CategoryID maps the last tag to a category in [0,999]. xxhash is stable
// across processes, so the same tag always lands in the same category.
func CategoryID(lastTag string) int {
	return int(xxhash.Sum64String(lastTag) % 1000)
}

// score maps a string to [1,10] deterministically.
func score(s string) int {
	return int(xxhash.Sum64String(s)%10) + 1
}

// MockPrice derives a price from the brand and tags. The brand score carries
// 30% weight, the last tag score 60% and the tag count 10%, summed in cents
// on top of a 999-cent base. SKUs without tags get DefaultPrice.
func MockPrice(brand string, tags []string) float64 {
	if len(tags) == 0 {
		return DefaultPrice
	}
	brandScore := score(brand)
	lastTagScore := score(tags[len(tags)-1])
	numTagsScore := min(len(tags), 10)

	cents := 999 + brandScore*30 + lastTagScore*60 + numTagsScore*10
	return float64(cents) / 100
}

// Depop is the listing shape published to Depop.
type Depop struct {
	Title string   `json:"title"`
	Brand string   `json:"brand"`
	Tags  []string `json:"tags"`
	Image string   `json:"image"`
	Price float64  `json:"price"`
}

// EBay is the listing shape published to eBay.
type EBay struct {
	Title      string  `json:"title"`
	CategoryID int     `json:"category_id"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
}

// Listing bundles the per-marketplace projections of one SKU.
type Listing struct {
	Depop Depop `json:"depop"`
	EBay  EBay  `json:"ebay"`
}

// Build projects a SKU into its marketplace listings. The category comes
// from the last tag, or 0 when the SKU has no tags.
func Build(s sku.SKU) Listing {
	categoryID := 0
	if len(s.Tags) > 0 {
		categoryID = CategoryID(s.Tags[len(s.Tags)-1])
	}
	price := MockPrice(s.Brand, s.Tags)

	return Listing{
		Depop: Depop{
			Title: s.Title,
			Brand: s.Brand,
			Tags:  s.Tags,
			Image: s.ImageURL,
			Price: price,
		},
		EBay: EBay{
			Title:      s.Title,
			CategoryID: categoryID,
			Price:      price,
			Image:      s.ImageURL,
		},
	}
}

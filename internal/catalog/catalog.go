package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/aminegames/gamekiosk/internal/domain"
)

// Catalog is the ordered in-memory collection of sellable games, keyed by
// unique id. Insertion order is preserved because it is the tie-breaker for
// every sort and the base order for pagination. Catalog is not safe for
// concurrent use; the kiosk session serializes access.
type Catalog struct {
	games      []*domain.Game
	index      map[int64]*domain.Game
	categories []domain.Category
}

// Name ordering is locale-aware and case-insensitive (French collation,
// matching the shop locale). The choice is fixed so orderings reproduce.
var nameCollator = collate.New(language.French, collate.IgnoreCase)

func New() *Catalog {
	return &Catalog{index: make(map[int64]*domain.Game)}
}

// NewFromData builds a catalog from a persisted or seed document. Games with
// duplicate ids after the first are dropped to keep the id-unique invariant.
func NewFromData(data domain.GamesData) *Catalog {
	c := New()
	for i := range data.Games {
		g := data.Games[i]
		_ = c.Add(g)
	}
	c.categories = append([]domain.Category(nil), data.Categories...)
	return c
}

// Len returns the number of games.
func (c *Catalog) Len() int { return len(c.games) }

// Games returns a snapshot of all games in insertion order.
func (c *Catalog) Games() []domain.Game {
	out := make([]domain.Game, 0, len(c.games))
	for _, g := range c.games {
		out = append(out, *g)
	}
	return out
}

// Categories returns the navigation category entries.
func (c *Catalog) Categories() []domain.Category {
	return append([]domain.Category(nil), c.categories...)
}

// SetCategories replaces the navigation category entries.
func (c *Catalog) SetCategories(categories []domain.Category) {
	c.categories = append([]domain.Category(nil), categories...)
}

// Get returns a copy of the game with the given id.
func (c *Catalog) Get(id int64) (domain.Game, bool) {
	g, ok := c.index[id]
	if !ok {
		return domain.Game{}, false
	}
	return *g, true
}

// Add inserts a new game at the end of the catalog.
func (c *Catalog) Add(g domain.Game) error {
	if _, exists := c.index[g.ID]; exists {
		return domain.ErrDuplicateGameID
	}
	cp := g
	c.games = append(c.games, &cp)
	c.index[g.ID] = &cp
	return nil
}

// Update replaces the stored game with the same id, keeping catalog position.
func (c *Catalog) Update(g domain.Game) error {
	stored, ok := c.index[g.ID]
	if !ok {
		return domain.ErrGameNotFound
	}
	*stored = g
	return nil
}

// Delete removes a game from the catalog.
func (c *Catalog) Delete(id int64) error {
	if _, ok := c.index[id]; !ok {
		return domain.ErrGameNotFound
	}
	delete(c.index, id)
	for i, g := range c.games {
		if g.ID == id {
			c.games = append(c.games[:i], c.games[i+1:]...)
			break
		}
	}
	return nil
}

// DecrementStock reduces the stock of a game by qty, clamping at zero. The
// clamp mirrors the original kiosk behavior; an oversell is masked rather
// than rejected.
func (c *Catalog) DecrementStock(id int64, qty int) error {
	g, ok := c.index[id]
	if !ok {
		return domain.ErrGameNotFound
	}
	g.Stock -= qty
	if g.Stock < 0 {
		g.Stock = 0
	}
	return nil
}

// Data exports the catalog as a persistable document.
func (c *Catalog) Data() domain.GamesData {
	return domain.GamesData{
		Games:      c.Games(),
		Categories: c.Categories(),
	}
}

// Filter selects games matching the given constraints. Empty platform or
// category means no constraint, and a non-positive maxPrice leaves the price
// unbounded. Results keep catalog insertion order. Filter never fails:
// invalid filters simply match everything.
func (c *Catalog) Filter(platform, category string, maxPrice float64) []domain.Game {
	out := make([]domain.Game, 0, len(c.games))
	for _, g := range c.games {
		if platform != "" && g.Platform != platform {
			continue
		}
		if category != "" && g.Category != category {
			continue
		}
		if maxPrice > 0 && g.Price > maxPrice {
			continue
		}
		out = append(out, *g)
	}
	return out
}

// Sort returns a copy of items ordered by key. Sorting is stable: equal keys
// keep their relative catalog order. An unknown key returns the input order.
func Sort(items []domain.Game, key domain.SortKey) []domain.Game {
	out := append([]domain.Game(nil), items...)
	switch key {
	case domain.SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case domain.SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Name, out[j].Name) > 0
		})
	case domain.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case domain.SortPopular:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Popularity > out[j].Popularity })
	}
	return out
}

// Paginate slices items into 1-based pages of pageSize. Zero items yields
// zero pages. A page past the end returns an empty slice, never an error;
// clamping the page number is the caller's job.
func Paginate(items []domain.Game, pageSize, page int) ([]domain.Game, int) {
	if pageSize < 1 || page < 1 {
		return nil, 0
	}
	totalPages := (len(items) + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []domain.Game{}, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return append([]domain.Game(nil), items[start:end]...), totalPages
}

// CategoriesForPlatform lists the distinct categories of a platform with
// their game counts, in first-seen catalog order.
func (c *Catalog) CategoriesForPlatform(platform string) []domain.CategoryCount {
	var out []domain.CategoryCount
	seen := make(map[string]int)
	for _, g := range c.games {
		if g.Platform != platform {
			continue
		}
		if idx, ok := seen[g.Category]; ok {
			out[idx].Count++
			continue
		}
		seen[g.Category] = len(out)
		out = append(out, domain.CategoryCount{ID: g.Category, Name: g.Category, Count: 1})
	}
	return out
}

// PlatformCounts lists the distinct platforms with their game counts, in
// first-seen catalog order.
func (c *Catalog) PlatformCounts() []domain.PlatformCount {
	var out []domain.PlatformCount
	seen := make(map[string]int)
	for _, g := range c.games {
		if idx, ok := seen[g.Platform]; ok {
			out[idx].Count++
			continue
		}
		seen[g.Platform] = len(out)
		out = append(out, domain.PlatformCount{Platform: g.Platform, Count: 1})
	}
	return out
}

// Search matches query case-insensitively against name, platform and
// category, in catalog order.
func (c *Catalog) Search(query string) []domain.Game {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []domain.Game{}
	}
	var out []domain.Game
	for _, g := range c.games {
		if strings.Contains(strings.ToLower(g.Name), query) ||
			strings.Contains(strings.ToLower(g.Platform), query) ||
			strings.Contains(strings.ToLower(g.Category), query) {
			out = append(out, *g)
		}
	}
	return out
}

// LowStockCount returns the number of games with stock under threshold.
func (c *Catalog) LowStockCount(threshold int) int {
	var n int
	for _, g := range c.games {
		if g.Stock < threshold {
			n++
		}
	}
	return n
}

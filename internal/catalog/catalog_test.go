package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aminegames/gamekiosk/internal/domain"
)

func testGames() []domain.Game {
	return []domain.Game{
		{ID: 1, Name: "God of War Ragnarök", Platform: "PS5", Category: "Action-Aventure", Price: 300, Stock: 5, Popularity: 95},
		{ID: 2, Name: "FIFA 23", Platform: "PS5", Category: "Sport", Price: 250, Stock: 8, Popularity: 88},
		{ID: 3, Name: "Halo Infinite", Platform: "XBOX Series", Category: "FPS", Price: 280, Stock: 6, Popularity: 82},
		{ID: 4, Name: "Zelda Tears of the Kingdom", Platform: "Switch", Category: "Aventure", Price: 320, Stock: 4, Popularity: 97},
	}
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	return NewFromData(domain.GamesData{Games: testGames(), Categories: DefaultCategories()})
}

func TestNewFromDataDropsDuplicateIDs(t *testing.T) {
	games := testGames()
	games = append(games, domain.Game{ID: 1, Name: "Clone", Platform: "PS5", Price: 10, Stock: 1})
	c := NewFromData(domain.GamesData{Games: games})
	assert.Equal(t, 4, c.Len())
	g, found := c.Get(1)
	require.True(t, found)
	assert.Equal(t, "God of War Ragnarök", g.Name)
}

func TestFilter(t *testing.T) {
	c := newTestCatalog(t)

	t.Run("by platform", func(t *testing.T) {
		items := c.Filter("PS5", "", 0)
		require.Len(t, items, 2)
		for _, g := range items {
			assert.Equal(t, "PS5", g.Platform)
		}
	})

	t.Run("by platform and category", func(t *testing.T) {
		items := c.Filter("PS5", "Sport", 0)
		require.Len(t, items, 1)
		assert.Equal(t, "FIFA 23", items[0].Name)
	})

	t.Run("price bound is inclusive", func(t *testing.T) {
		items := c.Filter("", "", 280)
		require.Len(t, items, 2)
		for _, g := range items {
			assert.LessOrEqual(t, g.Price, 280.0)
		}
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.Filter("PC", "", 0))
	})
}

func TestSort(t *testing.T) {
	c := newTestCatalog(t)
	items := c.Games()

	t.Run("name ascending uses french collation", func(t *testing.T) {
		sorted := Sort(items, domain.SortNameAsc)
		require.Len(t, sorted, 4)
		assert.Equal(t, "FIFA 23", sorted[0].Name)
		assert.Equal(t, "Zelda Tears of the Kingdom", sorted[3].Name)
	})

	t.Run("price descending", func(t *testing.T) {
		sorted := Sort(items, domain.SortPriceDesc)
		assert.Equal(t, 320.0, sorted[0].Price)
		assert.Equal(t, 250.0, sorted[3].Price)
	})

	t.Run("popular first", func(t *testing.T) {
		sorted := Sort(items, domain.SortPopular)
		assert.Equal(t, 97, sorted[0].Popularity)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := items[0].ID
		_ = Sort(items, domain.SortPriceAsc)
		assert.Equal(t, before, items[0].ID)
	})

	t.Run("stable on equal keys", func(t *testing.T) {
		ties := []domain.Game{
			{ID: 10, Name: "A", Price: 100},
			{ID: 11, Name: "B", Price: 100},
			{ID: 12, Name: "C", Price: 100},
		}
		sorted := Sort(ties, domain.SortPriceAsc)
		assert.Equal(t, int64(10), sorted[0].ID)
		assert.Equal(t, int64(11), sorted[1].ID)
		assert.Equal(t, int64(12), sorted[2].ID)
	})
}

func TestPaginate(t *testing.T) {
	items := make([]domain.Game, 30)
	for i := range items {
		items[i] = domain.Game{ID: int64(i + 1)}
	}

	t.Run("full pages", func(t *testing.T) {
		page, total := Paginate(items, 12, 1)
		assert.Equal(t, 3, total)
		require.Len(t, page, 12)
		assert.Equal(t, int64(1), page[0].ID)
	})

	t.Run("last partial page", func(t *testing.T) {
		page, total := Paginate(items, 12, 3)
		assert.Equal(t, 3, total)
		require.Len(t, page, 6)
		assert.Equal(t, int64(25), page[0].ID)
	})

	t.Run("past the end", func(t *testing.T) {
		page, total := Paginate(items, 12, 4)
		assert.Equal(t, 3, total)
		assert.Empty(t, page)
	})

	t.Run("no items", func(t *testing.T) {
		page, total := Paginate(nil, 12, 1)
		assert.Equal(t, 0, total)
		assert.Empty(t, page)
	})

	t.Run("invalid page size", func(t *testing.T) {
		page, total := Paginate(items, 0, 1)
		assert.Equal(t, 0, total)
		assert.Nil(t, page)
	})
}

func TestAddUpdateDelete(t *testing.T) {
	c := newTestCatalog(t)

	err := c.Add(domain.Game{ID: 1, Name: "Clone"})
	assert.ErrorIs(t, err, domain.ErrDuplicateGameID)

	require.NoError(t, c.Add(domain.Game{ID: 5, Name: "Spider-Man 2", Platform: "PS5", Price: 350, Stock: 3}))
	assert.Equal(t, 5, c.Len())

	err = c.Update(domain.Game{ID: 99, Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrGameNotFound)

	require.NoError(t, c.Update(domain.Game{ID: 5, Name: "Spider-Man 2", Platform: "PS5", Price: 330, Stock: 3}))
	g, _ := c.Get(5)
	assert.Equal(t, 330.0, g.Price)
	// update keeps insertion order
	assert.Equal(t, int64(5), c.Games()[4].ID)

	assert.ErrorIs(t, c.Delete(99), domain.ErrGameNotFound)
	require.NoError(t, c.Delete(5))
	assert.Equal(t, 4, c.Len())
	_, found := c.Get(5)
	assert.False(t, found)
}

func TestDecrementStockClampsAtZero(t *testing.T) {
	c := newTestCatalog(t)
	require.NoError(t, c.DecrementStock(4, 10))
	g, _ := c.Get(4)
	assert.Equal(t, 0, g.Stock)

	assert.ErrorIs(t, c.DecrementStock(99, 1), domain.ErrGameNotFound)
}

func TestCategoriesForPlatform(t *testing.T) {
	c := newTestCatalog(t)
	cats := c.CategoriesForPlatform("PS5")
	require.Len(t, cats, 2)
	// first-seen order
	assert.Equal(t, "Action-Aventure", cats[0].Name)
	assert.Equal(t, 1, cats[0].Count)
	assert.Equal(t, "Sport", cats[1].Name)
}

func TestPlatformCounts(t *testing.T) {
	c := newTestCatalog(t)
	counts := c.PlatformCounts()
	require.Len(t, counts, 3)
	assert.Equal(t, "PS5", counts[0].Platform)
	assert.Equal(t, 2, counts[0].Count)
}

func TestSearch(t *testing.T) {
	c := newTestCatalog(t)
	assert.Len(t, c.Search("fifa"), 1)
	assert.Len(t, c.Search("PS5"), 2)
	assert.Len(t, c.Search("sport"), 1)
	assert.Empty(t, c.Search("doom"))
}

func TestLowStockCount(t *testing.T) {
	c := newTestCatalog(t)
	assert.Equal(t, 0, c.LowStockCount(3))
	require.NoError(t, c.DecrementStock(4, 2))
	assert.Equal(t, 1, c.LowStockCount(3))
}

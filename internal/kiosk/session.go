package kiosk

import (
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aminegames/gamekiosk/internal/cart"
	"github.com/aminegames/gamekiosk/internal/catalog"
	"github.com/aminegames/gamekiosk/internal/domain"
	"github.com/aminegames/gamekiosk/internal/ledger"
	"github.com/aminegames/gamekiosk/internal/store"
	"github.com/aminegames/gamekiosk/pkg/common"
)

// Event bus topics published by the session.
const (
	TopicActivity = "kiosk.activity"
	TopicCheckout = "kiosk.checkout"
	TopicIdle     = "kiosk.idle"
)

// Session owns the kiosk state: catalog, cart, sales ledger and settings.
// There is one logical actor (the customer at the kiosk plus the admin
// screen), so a single mutex serializes every operation; under that lock a
// checkout's stock decrement and ledger append are atomic from the caller's
// point of view.
type Session struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	cart     *cart.Cart
	ledger   *ledger.Ledger
	settings domain.Settings
	storage  store.Storage
	bus      EventBus.Bus
	orderIDs *cart.OrderIDGenerator
	now      func() time.Time
}

func NewSession(storage store.Storage, bus EventBus.Bus, orderPrefix string) *Session {
	return &Session{
		catalog:  catalog.New(),
		cart:     cart.New(),
		ledger:   ledger.New(nil),
		settings: domain.DefaultSettings(),
		storage:  storage,
		bus:      bus,
		orderIDs: cart.NewOrderIDGenerator(orderPrefix),
		now:      time.Now,
	}
}

// Load reads the persisted documents, falling back per document: catalog to
// the seed source, ledger to empty, settings to defaults. Malformed
// documents are recovered the same way and logged once.
func (s *Session) Load(seedSource string) error {
	var (
		gamesData domain.GamesData
		orders    []domain.Order
		settings  domain.Settings
	)

	var g errgroup.Group
	g.Go(func() error {
		found, err := store.GetJSON(s.storage, store.KeyGamesData, &gamesData)
		if err != nil {
			zap.L().Warn("persisted catalog unreadable, reloading seed", zap.Error(err))
		}
		if !found || err != nil || len(gamesData.Games) == 0 {
			gamesData = catalog.LoadSeed(seedSource)
		}
		return nil
	})
	g.Go(func() error {
		found, err := store.GetJSON(s.storage, store.KeySalesHistory, &orders)
		if err != nil {
			zap.L().Warn("sales history unreadable, starting empty", zap.Error(err))
			orders = nil
		}
		if !found {
			orders = nil
		}
		return nil
	})
	g.Go(func() error {
		settings = domain.DefaultSettings()
		if _, err := store.GetJSON(s.storage, store.KeySettings, &settings); err != nil {
			zap.L().Warn("settings unreadable, using defaults", zap.Error(err))
			settings = domain.DefaultSettings()
		}
		settings.Normalize()
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = catalog.NewFromData(gamesData)
	s.ledger = ledger.New(orders)
	s.settings = settings
	zap.L().Info("kiosk state loaded",
		zap.Int("games", s.catalog.Len()),
		zap.Int("orders", s.ledger.Len()))
	return nil
}

func (s *Session) touch() {
	if s.bus != nil {
		s.bus.Publish(TopicActivity)
	}
}

// BrowseResult is the catalog view the kiosk UI renders.
type BrowseResult struct {
	Items      []domain.Game `json:"items"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	TotalItems int           `json:"total_items"`
}

// Browse filters, sorts and paginates the catalog.
func (s *Session) Browse(platform, category string, maxPrice float64, key domain.SortKey, page, pageSize int) BrowseResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	filtered := s.catalog.Filter(platform, category, maxPrice)
	sorted := catalog.Sort(filtered, key)
	items, totalPages := catalog.Paginate(sorted, pageSize, page)
	return BrowseResult{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		TotalItems: len(sorted),
	}
}

// Search matches games by name, platform or category.
func (s *Session) Search(query string) []domain.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.catalog.Search(query)
}

// CategoriesForPlatform lists a platform's categories with counts.
func (s *Session) CategoriesForPlatform(platform string) []domain.CategoryCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.catalog.CategoriesForPlatform(platform)
}

// PlatformCounts lists platforms with game counts for the home screen.
func (s *Session) PlatformCounts() []domain.PlatformCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.catalog.PlatformCounts()
}

// GetGame returns a single game for the details modal.
func (s *Session) GetGame(id int64) (domain.Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.catalog.Get(id)
}

// CartLineView joins a cart line with its live catalog data.
type CartLineView struct {
	Game      domain.Game `json:"game"`
	Quantity  int         `json:"quantity"`
	LineTotal float64     `json:"line_total"`
}

// CartView is the rendered cart state.
type CartView struct {
	Lines      []CartLineView    `json:"lines"`
	Totals     domain.CartTotals `json:"totals"`
	CanConfirm bool              `json:"can_confirm"`
	MinItems   int               `json:"min_items"`
}

// AddToCart adds one unit of a game.
func (s *Session) AddToCart(gameID int64) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.cart.Add(s.catalog, gameID); err != nil {
		return s.cartViewLocked(), err
	}
	return s.cartViewLocked(), nil
}

// RemoveFromCart removes one unit of a game.
func (s *Session) RemoveFromCart(gameID int64) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.cart.Remove(gameID)
	return s.cartViewLocked()
}

// ChangeQuantity applies a signed delta to a cart line.
func (s *Session) ChangeQuantity(gameID int64, delta int) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.cart.ChangeQuantity(s.catalog, gameID, delta); err != nil {
		return s.cartViewLocked(), err
	}
	return s.cartViewLocked(), nil
}

// Cart returns the current cart view.
func (s *Session) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.cartViewLocked()
}

// ClearCart empties the cart, e.g. when the inactivity countdown fires.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

func (s *Session) cartViewLocked() CartView {
	totals := s.cart.Totals(s.catalog, s.settings)
	view := CartView{
		Lines:      make([]CartLineView, 0, len(s.cart.Lines())),
		Totals:     totals,
		CanConfirm: totals.ItemCount >= s.settings.MinItems,
		MinItems:   s.settings.MinItems,
	}
	for _, line := range s.cart.Lines() {
		game, ok := s.catalog.Get(line.GameID)
		if !ok {
			continue
		}
		view.Lines = append(view.Lines, CartLineView{
			Game:      game,
			Quantity:  line.Quantity,
			LineTotal: common.Round2(game.Price * float64(line.Quantity)),
		})
	}
	return view
}

// Checkout commits the cart into an order, persists the ledger and the
// decremented stock, and publishes the checkout event.
func (s *Session) Checkout() (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	order, err := s.cart.Checkout(s.catalog, s.ledger, s.settings, s.orderIDs, s.now())
	if err != nil {
		return domain.Order{}, err
	}
	s.persistLedgerLocked()
	s.persistCatalogLocked()
	if s.bus != nil {
		s.bus.Publish(TopicCheckout, order)
	}
	zap.L().Info("order completed",
		zap.String("order_id", order.ID),
		zap.Int("items", order.ItemCount()),
		zap.Float64("total", order.Total))
	return order, nil
}

func (s *Session) persistLedgerLocked() {
	if err := store.PutJSON(s.storage, store.KeySalesHistory, s.ledger.Orders()); err != nil {
		zap.L().Error("failed to persist sales history", zap.Error(err))
	}
}

func (s *Session) persistCatalogLocked() {
	data := s.catalog.Data()
	data.LastUpdate = s.now()
	if err := store.PutJSON(s.storage, store.KeyGamesData, data); err != nil {
		zap.L().Error("failed to persist catalog", zap.Error(err))
	}
}

func (s *Session) persistSettingsLocked() {
	if err := store.PutJSON(s.storage, store.KeySettings, s.settings); err != nil {
		zap.L().Error("failed to persist settings", zap.Error(err))
	}
}

// Games returns the full catalog for the admin list.
func (s *Session) Games() []domain.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Games()
}

// Categories returns the navigation categories.
func (s *Session) Categories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Categories()
}

// AddGame inserts a game, generating an id when none is given.
func (s *Session) AddGame(g domain.Game) (domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g.ID == 0 {
		g.ID = common.UUIDint64()
	}
	if err := s.catalog.Add(g); err != nil {
		return domain.Game{}, err
	}
	s.persistCatalogLocked()
	return g, nil
}

// UpdateGame replaces an existing game.
func (s *Session) UpdateGame(g domain.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.catalog.Update(g); err != nil {
		return err
	}
	s.persistCatalogLocked()
	return nil
}

// DeleteGame removes a game from the catalog.
func (s *Session) DeleteGame(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.catalog.Delete(id); err != nil {
		return err
	}
	s.persistCatalogLocked()
	return nil
}

// Orders returns the sales ledger in append order.
func (s *Session) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Orders()
}

// OrdersBetween returns ledger entries within [from, to).
func (s *Session) OrdersBetween(from, to time.Time) []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Between(from, to)
}

// GetOrder returns a single order by id.
func (s *Session) GetOrder(id string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Get(id)
}

// RecentOrders returns up to n most recent orders, newest first.
func (s *Session) RecentOrders(n int) []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Recent(n)
}

// LedgerSummary returns dashboard aggregates.
func (s *Session) LedgerSummary() ledger.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Summarize()
}

// LowStockCount counts games with stock under threshold.
func (s *Session) LowStockCount(threshold int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.LowStockCount(threshold)
}

// GameCount returns the catalog size.
func (s *Session) GameCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Len()
}

// Settings returns a copy of the active settings.
func (s *Session) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SaveSettings replaces the settings and persists them.
func (s *Session) SaveSettings(settings domain.Settings) {
	settings.Normalize()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.persistSettingsLocked()
}

// Backup exports the full kiosk state as one document.
func (s *Session) Backup() domain.Backup {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings := s.settings
	return domain.Backup{
		Games:      s.catalog.Games(),
		Categories: s.catalog.Categories(),
		Sales:      s.ledger.Orders(),
		Settings:   &settings,
		BackupDate: s.now(),
	}
}

// Restore replaces the whole kiosk state from a backup document. The backup
// must carry games, sales and settings; otherwise nothing changes and
// ErrInvalidBackupFormat is returned. The in-flight cart is discarded since
// its lines may reference replaced games.
func (s *Session) Restore(b domain.Backup) error {
	if b.Games == nil || b.Sales == nil || b.Settings == nil {
		return errors.WithStack(domain.ErrInvalidBackupFormat)
	}
	settings := *b.Settings
	settings.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = catalog.NewFromData(domain.GamesData{Games: b.Games, Categories: b.Categories})
	s.ledger = ledger.New(b.Sales)
	s.settings = settings
	s.cart.Clear()
	s.persistCatalogLocked()
	s.persistLedgerLocked()
	s.persistSettingsLocked()
	zap.L().Info("kiosk state restored from backup",
		zap.Int("games", s.catalog.Len()),
		zap.Int("orders", s.ledger.Len()),
		zap.Time("backup_date", b.BackupDate))
	return nil
}

// Persist writes all documents, used by the periodic flush job and shutdown.
func (s *Session) Persist() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistCatalogLocked()
	s.persistLedgerLocked()
	s.persistSettingsLocked()
}

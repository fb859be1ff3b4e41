package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
)

// memStore is an in-memory stand-in for Postgres. Transactions are serialized
// and rolled back on error, which is what the row locks give the services.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	users    map[uuid.UUID]models.UserDB
	wallets  map[uuid.UUID]models.Wallet // keyed by owner
	txns     []models.Transaction
	claims   map[uuid.UUID]models.Claim
	bookings map[uuid.UUID]models.Booking

	failPaymentUpdate error
}

type memSnapshot struct {
	users    map[uuid.UUID]models.UserDB
	wallets  map[uuid.UUID]models.Wallet
	txns     []models.Transaction
	claims   map[uuid.UUID]models.Claim
	bookings map[uuid.UUID]models.Booking
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[uuid.UUID]models.UserDB{},
		wallets:  map[uuid.UUID]models.Wallet{},
		claims:   map[uuid.UUID]models.Claim{},
		bookings: map[uuid.UUID]models.Booking{},
	}
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type memTxKey struct{}

func (s *memStore) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snap := memSnapshot{
		users:    copyMap(s.users),
		wallets:  copyMap(s.wallets),
		txns:     append([]models.Transaction(nil), s.txns...),
		claims:   copyMap(s.claims),
		bookings: copyMap(s.bookings),
	}
	s.mu.Unlock()

	if err := fn(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		s.mu.Lock()
		s.users, s.wallets, s.txns, s.claims, s.bookings = snap.users, snap.wallets, snap.txns, snap.claims, snap.bookings
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memStore) addUser(role models.Role) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.users[id] = models.UserDB{UserID: id, Name: "user " + id.String()[:4], Email: id.String() + "@example.com", Role: role}
	return id
}

func (s *memStore) addBooking(agentID uuid.UUID, status models.BookingStatus) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.bookings[id] = models.Booking{
		ID:            id,
		AgentID:       agentID,
		BookingStatus: status,
		PaymentStatus: models.PaymentUnpaid,
		Sellers:       models.Sellers{{Seller: "Hotel Sol", Services: []string{"hotel"}}},
	}
	return id
}

func (s *memStore) wallet(ownerID uuid.UUID) (models.Wallet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wallets[ownerID]
	return w, ok
}

func (s *memStore) walletCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.wallets)
}

func (s *memStore) transactionsOf(walletID uuid.UUID) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Transaction
	for _, t := range s.txns {
		if t.WalletID == walletID {
			out = append(out, t)
		}
	}
	return out
}

func (s *memStore) booking(id uuid.UUID) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings[id]
}

func (s *memStore) claim(id uuid.UUID) models.Claim {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.claims[id]
}

// --- wallets ---

type memWallets struct{ s *memStore }

func (r memWallets) CreateIfAbsent(ctx context.Context, w *models.Wallet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.wallets[w.OwnerID]; !ok {
		r.s.wallets[w.OwnerID] = *w
	}
	return nil
}

func (r memWallets) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*models.Wallet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.wallets[ownerID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &w, nil
}

func (r memWallets) GetByOwnerIDForUpdate(ctx context.Context, ownerID uuid.UUID) (*models.Wallet, error) {
	return r.GetByOwnerID(ctx, ownerID)
}

func (r memWallets) Update(ctx context.Context, w *models.Wallet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.wallets[w.OwnerID]
	if !ok || cur.Version != w.Version {
		return models.ErrConflict
	}
	w.Version++
	r.s.wallets[w.OwnerID] = *w
	return nil
}

func (r memWallets) AppendTransaction(ctx context.Context, t *models.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.txns = append(r.s.txns, *t)
	return nil
}

func (r memWallets) List(ctx context.Context, filter models.WalletFilter) ([]models.WalletListItem, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []models.WalletListItem
	for _, w := range r.s.wallets {
		if filter.MinBalance != nil && w.Balance.LessThan(*filter.MinBalance) {
			continue
		}
		if filter.MaxBalance != nil && w.Balance.GreaterThan(*filter.MaxBalance) {
			continue
		}
		u := r.s.users[w.OwnerID]
		all = append(all, models.WalletListItem{Wallet: w, OwnerName: u.Name, OwnerEmail: u.Email})
	}
	return paginate(all, filter.Page), len(all), nil
}

func (r memWallets) ListTransactions(ctx context.Context, walletID uuid.UUID, page models.Page) ([]models.Transaction, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []models.Transaction
	for _, t := range r.s.txns {
		if t.WalletID == walletID {
			all = append(all, t)
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	return paginate(all, page), len(all), nil
}

func paginate[T any](items []T, p models.Page) []T {
	p = p.Normalize()
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// --- users ---

type memUsers struct{ s *memStore }

func (r memUsers) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

// --- bookings ---

type memBookings struct{ s *memStore }

func (r memBookings) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &b, nil
}

func (r memBookings) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return r.GetByID(ctx, id)
}

func (r memBookings) UpdateBookingStatus(ctx context.Context, b *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.bookings[b.ID] = *b
	return nil
}

func (r memBookings) UpdatePaymentStatus(ctx context.Context, b *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failPaymentUpdate != nil {
		return r.s.failPaymentUpdate
	}
	r.s.bookings[b.ID] = *b
	return nil
}

// --- claims ---

type memClaims struct{ s *memStore }

func (r memClaims) Save(ctx context.Context, c *models.Claim) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.claims {
		if existing.BookingID == c.BookingID {
			return fmt.Errorf("%w: claims_booking_id_key", models.ErrConflict)
		}
	}
	r.s.claims[c.ID] = *c
	return nil
}

func (r memClaims) GetByID(ctx context.Context, id uuid.UUID) (*models.Claim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.claims[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &c, nil
}

func (r memClaims) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Claim, error) {
	return r.GetByID(ctx, id)
}

func (r memClaims) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Claim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.claims {
		if c.BookingID == bookingID {
			return &c, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r memClaims) UpdateDecision(ctx context.Context, c *models.Claim) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.claims[c.ID].Status != models.ClaimPending {
		return models.ErrInvalidStateTransition
	}
	r.s.claims[c.ID] = *c
	return nil
}

func (r memClaims) ListByAgent(ctx context.Context, agentID uuid.UUID, bookingID *uuid.UUID) ([]models.Claim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Claim{}
	for _, c := range r.s.claims {
		if c.AgentID == agentID && (bookingID == nil || c.BookingID == *bookingID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memClaims) List(ctx context.Context, filter models.ClaimFilter) ([]models.Claim, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []models.Claim
	for _, c := range r.s.claims {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		all = append(all, c)
	}
	return paginate(all, filter.Page), len(all), nil
}

// --- events ---

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, events ...models.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
}

func (p *recordingPublisher) types() []models.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// tickingClock returns strictly increasing times.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

// --- wiring ---

type fixture struct {
	store     *memStore
	publisher *recordingPublisher
	ledger    *LedgerService
	claims    *ClaimService
	bookings  *BookingService
}

func newFixture(rates RateResolver) *fixture {
	store := newMemStore()
	pub := &recordingPublisher{}
	clock := tickingClock()

	ledger := NewLedgerService(store, memWallets{store}, memWallets{store}, memUsers{store}, pub)
	ledger.now = clock
	claims := NewClaimService(store, memClaims{store}, memClaims{store}, memBookings{store}, ledger, rates, pub, 2)
	claims.now = clock
	bookings := NewBookingService(store, memBookings{store})
	bookings.now = clock

	return &fixture{store: store, publisher: pub, ledger: ledger, claims: claims, bookings: bookings}
}

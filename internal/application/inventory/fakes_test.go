package inventory_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmolina/planta-api/internal/domain"
	"github.com/dmolina/planta-api/internal/domain/entity"
	"github.com/dmolina/planta-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria con semántica transaccional
//
// Reproduce lo que el motor espera de PostgreSQL: bloqueo de fila por producto
// (GetForUpdate), escrituras en búfer que solo se materializan al commit y
// rollback implícito si el callback falla. El bloqueo se sostiene hasta el fin
// de la transacción, igual que un SELECT FOR UPDATE.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	machines map[string]*entity.Machine
	balances map[string]*entity.StockBalance // key: productID
	entries  []*entity.LedgerEntry
	runs     map[string]*entity.ProductionRun

	locksMu sync.Mutex
	locks   map[string]chan struct{} // bloqueo de fila por producto (cap 1)
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]*entity.Product),
		machines: make(map[string]*entity.Machine),
		balances: make(map[string]*entity.StockBalance),
		runs:     make(map[string]*entity.ProductionRun),
		locks:    make(map[string]chan struct{}),
	}
}

func (s *memStore) lockChan(productID string) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	ch, ok := s.locks[productID]
	if !ok {
		ch = make(chan struct{}, 1)
		s.locks[productID] = ch
	}
	return ch
}

func (s *memStore) acquire(productID string, timeout time.Duration) error {
	select {
	case s.lockChan(productID) <- struct{}{}:
		return nil
	case <-time.After(timeout):
		return domain.ErrLockTimeout
	}
}

func (s *memStore) release(productID string) {
	<-s.lockChan(productID)
}

// seedProduct registra un producto con su saldo aprovisionado.
func (s *memStore) seedProduct(p *entity.Product, qty decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
	s.balances[p.ID] = &entity.StockBalance{
		ID:          "bal-" + p.ID,
		ProductID:   p.ID,
		Quantity:    qty,
		UnitMeasure: p.UnitMeasure,
		UpdatedAt:   time.Now(),
	}
}

func (s *memStore) seedMachine(m *entity.Machine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machines[m.ID] = m
}

func (s *memStore) balanceOf(productID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.balances[productID]
	if !ok {
		return decimal.Zero
	}
	return b.Quantity
}

func (s *memStore) entriesBySource(sourceTxID string) []*entity.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.LedgerEntry
	for _, e := range s.entries {
		if e.SourceTransactionID == sourceTxID {
			out = append(out, e)
		}
	}
	return out
}

func (s *memStore) entryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *memStore) ledgerSumOf(productID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := decimal.Zero
	for _, e := range s.entries {
		if e.ProductID == productID {
			sum = sum.Add(e.QuantityChange)
		}
	}
	return sum
}

// removeEntry borra un asiento comprometido. Simula una escritura por fuera
// del motor para los tests de conciliación; el motor real nunca borra asientos.
func (s *memStore) removeEntry(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios de lectura (fuera de transacción)
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *memStore }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) List(category string, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.s.products {
		if category == "" || p.Category == category {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeMachineRepo struct{ s *memStore }

var _ repository.MachineRepository = (*fakeMachineRepo)(nil)

func (r *fakeMachineRepo) Create(m *entity.Machine) error {
	r.s.seedMachine(m)
	return nil
}

func (r *fakeMachineRepo) GetByID(id string) (*entity.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.machines[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMachineRepo) Update(m *entity.Machine) error {
	r.s.seedMachine(m)
	return nil
}

func (r *fakeMachineRepo) List(limit, offset int) ([]*entity.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Machine
	for _, m := range r.s.machines {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

type fakeBalanceRepo struct{ s *memStore }

var _ repository.BalanceRepository = (*fakeBalanceRepo)(nil)

func (r *fakeBalanceRepo) Create(b *entity.StockBalance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.balances[b.ProductID] = b
	return nil
}

func (r *fakeBalanceRepo) GetByProduct(productID string) (*entity.StockBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.balances[productID]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBalanceRepo) GetForUpdate(productID string) (*entity.StockBalance, error) {
	b, err := r.GetByProduct(productID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBalanceNotFound
	}
	return b, nil
}

func (r *fakeBalanceRepo) UpdateQuantity(b *entity.StockBalance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *b
	r.s.balances[b.ProductID] = &cp
	return nil
}

type fakeLedgerRepo struct{ s *memStore }

var _ repository.LedgerRepository = (*fakeLedgerRepo)(nil)

func (r *fakeLedgerRepo) Create(e *entity.LedgerEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *e
	r.s.entries = append(r.s.entries, &cp)
	return nil
}

func (r *fakeLedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.entries {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLedgerRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.LedgerEntry
	for _, e := range r.s.entries {
		if e.ProductID != productID {
			continue
		}
		if from != nil && e.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && e.CreatedAt.After(*to) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeLedgerRepo) ListBySourceTransaction(sourceTxID string) ([]*entity.LedgerEntry, error) {
	entries := r.s.entriesBySource(sourceTxID)
	out := make([]*entity.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeLedgerRepo) SumByProduct(productID string) (decimal.Decimal, error) {
	return r.s.ledgerSumOf(productID), nil
}

type fakeRunRepo struct{ s *memStore }

var _ repository.ProductionRunRepository = (*fakeRunRepo)(nil)

func (r *fakeRunRepo) Create(run *entity.ProductionRun) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *run
	r.s.runs[run.ID] = &cp
	return nil
}

func (r *fakeRunRepo) GetByID(id string) (*entity.ProductionRun, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	run, ok := r.s.runs[id]
	if !ok {
		return nil, nil
	}
	cp := *run
	return &cp, nil
}

func (r *fakeRunRepo) List(limit, offset int) ([]*entity.ProductionRun, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ProductionRun
	for _, run := range r.s.runs {
		cp := *run
		out = append(out, &cp)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner falso: búfer de escrituras, commit al final, rollback en error
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	s           *memStore
	lockTimeout time.Duration

	// Inyección de fallos de persistencia: el n-ésimo Create de asiento de la
	// transacción (base 1) devuelve failWith. 0 = deshabilitado.
	failEntryAt int
	failWith    error
}

func newFakeTxRunner(s *memStore) *fakeTxRunner {
	return &fakeTxRunner{s: s, lockTimeout: 2 * time.Second}
}

type fakeTx struct {
	runner   *fakeTxRunner
	held     []string
	heldSet  map[string]bool
	balances map[string]*entity.StockBalance
	entries  []*entity.LedgerEntry
	runs     []*entity.ProductionRun
}

func (f *fakeTxRunner) newTx() *fakeTx {
	return &fakeTx{
		runner:   f,
		heldSet:  make(map[string]bool),
		balances: make(map[string]*entity.StockBalance),
	}
}

func (t *fakeTx) commit() {
	s := t.runner.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for pid, b := range t.balances {
		s.balances[pid] = b
	}
	s.entries = append(s.entries, t.entries...)
	for _, run := range t.runs {
		s.runs[run.ID] = run
	}
}

// releaseAll suelta los bloqueos en orden inverso, siempre después del commit
// (o del descarte del búfer si la transacción falló).
func (t *fakeTx) releaseAll() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.runner.s.release(t.held[i])
	}
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.LedgerRepository, repository.BalanceRepository) error) error {
	tx := f.newTx()
	defer tx.releaseAll()
	if err := fn(&txLedgerRepo{tx: tx}, &txBalanceRepo{tx: tx}); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (f *fakeTxRunner) RunProduction(ctx context.Context, fn func(repository.LedgerRepository, repository.BalanceRepository, repository.ProductionRunRepository) error) error {
	tx := f.newTx()
	defer tx.releaseAll()
	if err := fn(&txLedgerRepo{tx: tx}, &txBalanceRepo{tx: tx}, &txRunRepo{tx: tx}); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// txBalanceRepo vista transaccional del saldo: GetForUpdate toma el bloqueo de
// fila y lo retiene; las escrituras quedan en el búfer de la transacción.
type txBalanceRepo struct{ tx *fakeTx }

var _ repository.BalanceRepository = (*txBalanceRepo)(nil)

func (r *txBalanceRepo) Create(b *entity.StockBalance) error {
	cp := *b
	r.tx.balances[b.ProductID] = &cp
	return nil
}

func (r *txBalanceRepo) GetByProduct(productID string) (*entity.StockBalance, error) {
	if b, ok := r.tx.balances[productID]; ok {
		cp := *b
		return &cp, nil
	}
	s := r.tx.runner.s
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.balances[productID]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *txBalanceRepo) GetForUpdate(productID string) (*entity.StockBalance, error) {
	tx := r.tx
	if !tx.heldSet[productID] {
		if err := tx.runner.s.acquire(productID, tx.runner.lockTimeout); err != nil {
			return nil, err
		}
		tx.heldSet[productID] = true
		tx.held = append(tx.held, productID)
	}
	b, err := r.GetByProduct(productID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBalanceNotFound
	}
	return b, nil
}

func (r *txBalanceRepo) UpdateQuantity(b *entity.StockBalance) error {
	cp := *b
	r.tx.balances[b.ProductID] = &cp
	return nil
}

type txLedgerRepo struct{ tx *fakeTx }

var _ repository.LedgerRepository = (*txLedgerRepo)(nil)

func (r *txLedgerRepo) Create(e *entity.LedgerEntry) error {
	t := r.tx
	if t.runner.failEntryAt > 0 && len(t.entries)+1 == t.runner.failEntryAt {
		return t.runner.failWith
	}
	cp := *e
	t.entries = append(t.entries, &cp)
	return nil
}

func (r *txLedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	for _, e := range r.tx.entries {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return (&fakeLedgerRepo{s: r.tx.runner.s}).GetByID(id)
}

func (r *txLedgerRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	return (&fakeLedgerRepo{s: r.tx.runner.s}).ListByProduct(productID, from, to, limit, offset)
}

func (r *txLedgerRepo) ListBySourceTransaction(sourceTxID string) ([]*entity.LedgerEntry, error) {
	return (&fakeLedgerRepo{s: r.tx.runner.s}).ListBySourceTransaction(sourceTxID)
}

func (r *txLedgerRepo) SumByProduct(productID string) (decimal.Decimal, error) {
	return r.tx.runner.s.ledgerSumOf(productID), nil
}

type txRunRepo struct{ tx *fakeTx }

var _ repository.ProductionRunRepository = (*txRunRepo)(nil)

func (r *txRunRepo) Create(run *entity.ProductionRun) error {
	cp := *run
	r.tx.runs = append(r.tx.runs, &cp)
	return nil
}

func (r *txRunRepo) GetByID(id string) (*entity.ProductionRun, error) {
	return (&fakeRunRepo{s: r.tx.runner.s}).GetByID(id)
}

func (r *txRunRepo) List(limit, offset int) ([]*entity.ProductionRun, error) {
	return (&fakeRunRepo{s: r.tx.runner.s}).List(limit, offset)
}

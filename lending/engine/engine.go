package engine

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/AntonStoeckl/lending-library-go/lending/broadcast"
	"github.com/AntonStoeckl/lending-library-go/lending/core"
	"github.com/AntonStoeckl/lending-library-go/lending/shell"
)

const (
	opRegisterHolder   = "register_holder"
	opDeregisterHolder = "deregister_holder"
	opAddItem          = "add_item"
	opRemoveItem       = "remove_item"
	opBorrow           = "borrow"
	opReturnItem       = "return_item"
	opNotifyOverdue    = "notify_overdue"

	transactionIDPrefix = "TRANS-"
)

// Engine is the lending library. It owns the holder registry, the item registry, and the ledger.
type Engine struct {
	mu sync.Mutex

	holders   map[core.HolderIDString]*core.Holder
	items     map[core.ItemKeyString]*core.CatalogItem
	ledger    []*core.LoanRecord
	openLoans int

	broadcaster *broadcast.Broadcaster
	clock       core.Clock
	logger      shell.Logger
	metrics     shell.MetricsCollector
	journal     Journal
}

// Statistics is a point-in-time summary of the library.
type Statistics struct {
	Holders        int
	Items          int
	AvailableItems int
	Transactions   int
	OpenLoans      int
	OverdueLoans   int
}

// New creates an empty Engine with optional configuration.
func New(options ...Option) (*Engine, error) {
	e := &Engine{
		holders: make(map[core.HolderIDString]*core.Holder),
		items:   make(map[core.ItemKeyString]*core.CatalogItem),
		ledger:  make([]*core.LoanRecord, 0),
		clock:   core.SystemClock,
	}

	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}

	var broadcasterOptions []broadcast.Option
	if e.logger != nil {
		broadcasterOptions = append(broadcasterOptions, broadcast.WithLogger(e.logger))
	}

	e.broadcaster = broadcast.NewBroadcaster(broadcasterOptions...)

	return e, nil
}

// RegisterHolder adds the holder and subscribes it to notifications.
// The engine takes ownership of the holder. An ID that is already used by a holder or an observer is rejected.
// Open loans the ledger still records for the ID become the holdings of the new holder.
func (e *Engine) RegisterHolder(holder *core.Holder) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()

	if holder == nil {
		return e.reject(opRegisterHolder, start, "", "", core.NewFailure(core.HolderNotFound, "no holder supplied"))
	}

	if _, exists := e.holders[holder.ID]; exists {
		return e.reject(opRegisterHolder, start, holder.ID, "", core.NewFailure(
			core.DuplicateIdentity,
			fmt.Sprintf("holder %s is already registered", holder.ID),
		))
	}

	if e.broadcaster.IsSubscribed(holder.ID) {
		return e.reject(opRegisterHolder, start, holder.ID, "", core.NewFailure(
			core.DuplicateIdentity,
			fmt.Sprintf("id %s is in use by an observer", holder.ID),
		))
	}

	stillHeld := e.openItemKeysOf(holder.ID)
	if len(stillHeld) > holder.Limit() {
		return e.reject(opRegisterHolder, start, holder.ID, "", core.NewFailure(
			core.BorrowLimitReached,
			fmt.Sprintf("%s still has %d open loans, the limit is %d", holder.ID, len(stillHeld), holder.Limit()),
		))
	}

	for _, itemKey := range stillHeld {
		holder.RecordBorrow(itemKey)
	}

	e.holders[holder.ID] = holder
	e.broadcaster.Subscribe(holder)

	e.record(core.BuildHolderRegistered(holder.Snapshot(), e.now()))
	e.succeed(opRegisterHolder, start, logAttrHolderID, holder.ID)

	return nil
}

// DeregisterHolder removes the holder and its subscription. Unknown IDs are ignored.
// Loans of the holder stay in the ledger and are restored if the ID is registered again.
func (e *Engine) DeregisterHolder(holderID core.HolderIDString) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()

	if _, exists := e.holders[holderID]; !exists {
		return
	}

	delete(e.holders, holderID)
	e.broadcaster.Unsubscribe(holderID)

	e.record(core.BuildHolderDeregistered(holderID, e.now()))
	e.succeed(opDeregisterHolder, start, logAttrHolderID, holderID)
}

// AddItem puts an available copy of the item into the catalog. An existing entry with the same key
// is replaced, unless that entry is currently loaned.
func (e *Engine) AddItem(item *core.CatalogItem) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()

	if item == nil {
		return e.reject(opAddItem, start, "", "", core.NewFailure(core.ItemNotFound, "no item supplied"))
	}

	if existing, exists := e.items[item.Key]; exists && !existing.Available {
		return e.reject(opAddItem, start, existing.HeldBy, item.Key, core.NewFailure(
			core.ItemUnavailable,
			fmt.Sprintf("item %s is on loan and can not be replaced", item.Key),
		))
	}

	stored := *item
	stored.MarkReturned() // new catalog entries are always on the shelf

	e.items[stored.Key] = &stored

	e.record(core.BuildItemAddedToCatalog(stored, e.now()))
	e.succeed(opAddItem, start, logAttrItemKey, stored.Key)

	return nil
}

// RemoveItem takes the item out of the catalog. Unknown keys are ignored, loaned items are rejected.
func (e *Engine) RemoveItem(itemKey core.ItemKeyString) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()

	item, exists := e.items[itemKey]
	if !exists {
		return nil
	}

	if !item.Available {
		return e.reject(opRemoveItem, start, item.HeldBy, itemKey, core.NewFailure(
			core.ItemUnavailable,
			fmt.Sprintf("item %s is on loan and can not be removed", itemKey),
		))
	}

	delete(e.items, itemKey)

	e.record(core.BuildItemRemovedFromCatalog(itemKey, e.now()))
	e.succeed(opRemoveItem, start, logAttrItemKey, itemKey)

	return nil
}

// Observe subscribes an additional observer, one that is not a holder, to all notifications.
// Observers are called while the engine is locked and must not call back into the engine.
// The observer ID must not be used by a registered holder or another observer.
func (e *Engine) Observe(observer broadcast.Subscriber) error {
	if observer == nil {
		return ErrNilObserver
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	observerID := observer.SubscriberID()

	if _, isHolder := e.holders[observerID]; isHolder {
		return core.NewFailure(core.DuplicateIdentity, fmt.Sprintf("id %s belongs to a registered holder", observerID))
	}

	if e.broadcaster.IsSubscribed(observerID) {
		return core.NewFailure(core.DuplicateIdentity, fmt.Sprintf("observer %s is already subscribed", observerID))
	}

	e.broadcaster.Subscribe(observer)

	return nil
}

// StopObserving removes an observer added with Observe. Unknown IDs are ignored.
// Holders are only unsubscribed by DeregisterHolder, so their IDs are rejected.
func (e *Engine) StopObserving(observerID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, isHolder := e.holders[observerID]; isHolder {
		return core.NewFailure(core.DuplicateIdentity, fmt.Sprintf("id %s belongs to a registered holder", observerID))
	}

	e.broadcaster.Unsubscribe(observerID)

	return nil
}

// SubscriberIDs returns the IDs of holders and observers in delivery order.
func (e *Engine) SubscriberIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.broadcaster.SubscriberIDs()
}

// Holder returns a snapshot of the registered holder.
func (e *Engine) Holder(holderID core.HolderIDString) (core.Holder, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	holder, exists := e.holders[holderID]
	if !exists {
		return core.Holder{}, holderNotFound(holderID)
	}

	return holder.Snapshot(), nil
}

// Item returns a copy of the catalog item.
func (e *Engine) Item(itemKey core.ItemKeyString) (core.CatalogItem, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, exists := e.items[itemKey]
	if !exists {
		return core.CatalogItem{}, itemNotFound(itemKey)
	}

	return *item, nil
}

// AllHolders returns snapshots of all registered holders, ordered by ID.
func (e *Engine) AllHolders() []core.Holder {
	e.mu.Lock()
	defer e.mu.Unlock()

	holders := make([]core.Holder, 0, len(e.holders))
	for _, id := range slices.Sorted(maps.Keys(e.holders)) {
		holders = append(holders, e.holders[id].Snapshot())
	}

	return holders
}

// AllItems returns copies of all catalog items, ordered by key.
func (e *Engine) AllItems() []core.CatalogItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.itemsWhere(func(core.CatalogItem) bool { return true })
}

// AvailableItems returns copies of all items on the shelf, ordered by key.
func (e *Engine) AvailableItems() []core.CatalogItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.itemsWhere(func(item core.CatalogItem) bool { return item.Available })
}

// HeldItems returns the catalog items the holder currently holds, in borrow order.
func (e *Engine) HeldItems(holderID core.HolderIDString) ([]core.CatalogItem, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	holder, exists := e.holders[holderID]
	if !exists {
		return nil, holderNotFound(holderID)
	}

	held := make([]core.CatalogItem, 0, holder.HeldCount())
	for _, key := range holder.HeldItemKeys() {
		if item, ok := e.items[key]; ok {
			held = append(held, *item)
		}
	}

	return held, nil
}

// Statistics summarizes registries and ledger at the current clock time.
func (e *Engine) Statistics() Statistics {
	e.mu.Lock()
	defer e.mu.Unlock()

	available := 0
	for _, item := range e.items {
		if item.Available {
			available++
		}
	}

	return Statistics{
		Holders:        len(e.holders),
		Items:          len(e.items),
		AvailableItems: available,
		Transactions:   len(e.ledger),
		OpenLoans:      e.openLoans,
		OverdueLoans:   len(e.overdueAt(e.now())),
	}
}

func (e *Engine) itemsWhere(keep func(core.CatalogItem) bool) []core.CatalogItem {
	items := make([]core.CatalogItem, 0, len(e.items))

	for _, key := range slices.Sorted(maps.Keys(e.items)) {
		if item := *e.items[key]; keep(item) {
			items = append(items, item)
		}
	}

	return items
}

func (e *Engine) now() time.Time {
	return core.ToOccurredAt(e.clock())
}

func holderNotFound(holderID core.HolderIDString) *core.Failure {
	return core.NewFailure(core.HolderNotFound, fmt.Sprintf("no holder with id %s", holderID))
}

func itemNotFound(itemKey core.ItemKeyString) *core.Failure {
	return core.NewFailure(core.ItemNotFound, fmt.Sprintf("no item with key %s", itemKey))
}

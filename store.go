package kvbench

import (
	"fmt"
)

// Row is one key/payload pair handed to BatchInsert.
type Row struct {
	Key     string
	Payload string
}

// Store is a layer for accessing the key-value store to be benchmarked.
// One instance is shared by all workers of a run, so implementations must be
// safe for concurrent use (the harness relies on the binding's own pooling).
//
// The harness does not interpret results beyond success and failure: it keeps
// a count of outcomes and measures the latency of each call end-to-end. Retry
// behavior inside a call is the binding's responsibility; the harness only
// observes the final outcome.
type Store interface {
	// Set the properties for this store.
	SetProperties(p Properties)

	// Get the properties for this store.
	GetProperties() Properties

	// Initialize any state for this store, including connections and
	// pools. Called once, before any worker starts.
	Init() error

	// Cleanup any state for this store. Called once, after all workers
	// have finished.
	Cleanup() error

	// Read performs a single-key point lookup and returns the payload,
	// or an empty string when no such row exists. A missing row is not
	// an error.
	Read(table string, keyColumn string, payloadColumn string, key string) (string, error)

	// WriteInTransaction upserts one row inside a transaction attributed
	// solely to that key.
	WriteInTransaction(table string, keyColumn string, payloadColumn string, key string, payload string) error

	// BatchInsert inserts multiple rows in one call. Used only during
	// dataset preparation.
	BatchInsert(table string, keyColumn string, payloadColumn string, rows []Row) error
}

type StoreBase struct {
	p Properties
}

func NewStoreBase() *StoreBase {
	return &StoreBase{}
}

func (self *StoreBase) SetProperties(p Properties) {
	self.p = p
}

func (self *StoreBase) GetProperties() Properties {
	return self.p
}

type MakeStoreFunc func() Store

// Stores maps binding names to constructors. The binding package registers
// its concrete stores here via AddBindings().
var Stores = map[string]MakeStoreFunc{
	"basic": func() Store {
		return NewBasicStore()
	},
}

func NewStore(name string, props Properties) (Store, error) {
	f, ok := Stores[name]
	if !ok {
		return nil, fmt.Errorf("unsupported store: %s", name)
	}
	store := f()
	store.SetProperties(props)
	return store, nil
}

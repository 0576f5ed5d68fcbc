package binding

import (
	badger "github.com/dgraph-io/badger/v4"
	"github.com/hhkbp2/kvbench"
)

const (
	PropertyBadgerDir        = "badger.dir"
	PropertyBadgerDirDefault = "kvbench-badger"
)

// BadgerStore benchmarks an embedded Badger database. Reads run inside a
// read-only transaction, the upsert inside a read-write transaction, and
// batch inserts go through a WriteBatch.
type BadgerStore struct {
	*kvbench.StoreBase
	db *badger.DB
}

func NewBadgerStore() *BadgerStore {
	return &BadgerStore{
		StoreBase: kvbench.NewStoreBase(),
	}
}

func badgerKey(table, key string) []byte {
	return []byte(table + "/" + key)
}

func (self *BadgerStore) Init() error {
	props := self.GetProperties()
	dir := props.GetDefault(PropertyBadgerDir, PropertyBadgerDirDefault)
	options := badger.DefaultOptions(dir)
	options.Logger = nil
	db, err := badger.Open(options)
	if err != nil {
		return err
	}
	self.db = db
	return nil
}

func (self *BadgerStore) Cleanup() error {
	if self.db != nil {
		return self.db.Close()
	}
	return nil
}

func (self *BadgerStore) Read(table, keyColumn, payloadColumn, key string) (string, error) {
	var payload string
	err := self.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(table, key))
		if err != nil {
			return err
		}
		value, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		payload = string(value)
		return nil
	})
	if err == badger.ErrKeyNotFound {
		return "", nil
	}
	return payload, err
}

func (self *BadgerStore) WriteInTransaction(table, keyColumn, payloadColumn, key, payload string) error {
	return self.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(table, key), []byte(payload))
	})
}

func (self *BadgerStore) BatchInsert(table, keyColumn, payloadColumn string, rows []kvbench.Row) error {
	batch := self.db.NewWriteBatch()
	defer batch.Cancel()
	for _, row := range rows {
		if err := batch.Set(badgerKey(table, row.Key), []byte(row.Payload)); err != nil {
			return err
		}
	}
	return batch.Flush()
}

package kvbench

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// BasicStore is a demo store that does nothing but echo the operations.
// It can simulate a per-call delay, which makes it useful for exercising the
// harness without any external service.
type BasicStore struct {
	*StoreBase
	verbose        bool
	randomizeDelay bool
	toDelay        int64

	lock sync.RWMutex
	rows map[string]string
}

func NewBasicStore() *BasicStore {
	return &BasicStore{
		StoreBase: NewStoreBase(),
		rows:      make(map[string]string),
	}
}

func (self *BasicStore) Init() error {
	p := self.GetProperties()
	var err error
	self.verbose, err = strconv.ParseBool(
		p.GetDefault(ConfigBasicVerbose, ConfigBasicVerboseDefault))
	if err != nil {
		return err
	}
	self.toDelay, err = strconv.ParseInt(
		p.GetDefault(ConfigBasicSimulateDelay, ConfigBasicSimulateDelayDefault), 0, 64)
	if err != nil {
		return err
	}
	self.randomizeDelay, err = strconv.ParseBool(
		p.GetDefault(ConfigBasicRandomizeDelay, ConfigBasicRandomizeDelayDefault))
	if err != nil {
		return err
	}
	if self.verbose {
		OutputProperties(p)
	}
	return nil
}

func (self *BasicStore) Cleanup() error {
	return nil
}

func (self *BasicStore) delay() {
	if self.toDelay > 0 {
		millis := self.toDelay
		if self.randomizeDelay {
			millis = rand.Int63n(self.toDelay)
			if millis == 0 {
				return
			}
		}
		time.Sleep(time.Duration(millis) * time.Millisecond)
	}
}

func (self *BasicStore) Read(table, keyColumn, payloadColumn, key string) (string, error) {
	self.delay()
	if self.verbose {
		Output("READ %s %s.%s %s", table, keyColumn, payloadColumn, key)
	}
	self.lock.RLock()
	defer self.lock.RUnlock()
	return self.rows[key], nil
}

func (self *BasicStore) WriteInTransaction(table, keyColumn, payloadColumn, key, payload string) error {
	self.delay()
	if self.verbose {
		Output("WRITE %s %s=%s %s=<%d bytes>", table, keyColumn, key, payloadColumn, len(payload))
	}
	self.lock.Lock()
	defer self.lock.Unlock()
	self.rows[key] = payload
	return nil
}

func (self *BasicStore) BatchInsert(table, keyColumn, payloadColumn string, rows []Row) error {
	self.delay()
	if self.verbose {
		Output("BATCH INSERT %s %d rows", table, len(rows))
	}
	self.lock.Lock()
	defer self.lock.Unlock()
	for _, row := range rows {
		self.rows[row.Key] = row.Payload
	}
	return nil
}

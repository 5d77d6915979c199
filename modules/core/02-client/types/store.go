package types

import (
	"sync"

	"github.com/google/btree"

	"github.com/cosmos/ibc-verify/modules/core/exported"
)

// StoreProvider returns isolated client stores so each client reads and
// writes in a separate namespace.
type StoreProvider interface {
	ClientStore(clientID string) exported.ClientStore
}

// consensusStateEntry pairs a consensus state with the height it was stored
// at, ordered the way heights are ordered: revision number first, then
// revision height.
type consensusStateEntry struct {
	height         Height
	consensusState exported.ConsensusState
}

func consensusStateEntryLess(a, b consensusStateEntry) bool {
	return a.height.LT(b.height)
}

var (
	_ exported.ClientStore = (*memClientStore)(nil)
	_ StoreProvider        = (*memStoreProvider)(nil)
)

// memClientStore is an in-memory implementation of exported.ClientStore.
// Consensus states are kept in a height-ordered btree so ascending iteration
// and neighbour lookups stay cheap as the set grows. Host chains with a real
// storage layer supply their own implementation instead.
type memClientStore struct {
	mtx sync.RWMutex

	clientState     exported.ClientState
	consensusStates *btree.BTreeG[consensusStateEntry]
	processedTimes  map[Height]uint64
	processedHeight map[Height]exported.Height
}

func newMemClientStore() *memClientStore {
	return &memClientStore{
		consensusStates: btree.NewG(2, consensusStateEntryLess),
		processedTimes:  make(map[Height]uint64),
		processedHeight: make(map[Height]exported.Height),
	}
}

// GetClientState returns the stored client state, if one was set.
func (s *memClientStore) GetClientState() (exported.ClientState, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if s.clientState == nil {
		return nil, false
	}
	return s.clientState, true
}

// SetClientState overwrites the client state slot.
func (s *memClientStore) SetClientState(clientState exported.ClientState) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.clientState = clientState
}

// GetConsensusState returns the consensus state stored at the given height.
func (s *memClientStore) GetConsensusState(height exported.Height) (exported.ConsensusState, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	entry, found := s.consensusStates.Get(consensusStateEntry{height: toConcreteHeight(height)})
	if !found {
		return nil, false
	}
	return entry.consensusState, true
}

// SetConsensusState stores the consensus state at the given height.
func (s *memClientStore) SetConsensusState(height exported.Height, consensusState exported.ConsensusState) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.consensusStates.ReplaceOrInsert(consensusStateEntry{
		height:         toConcreteHeight(height),
		consensusState: consensusState,
	})
}

// DeleteConsensusState removes the consensus state stored at the given height.
func (s *memClientStore) DeleteConsensusState(height exported.Height) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.consensusStates.Delete(consensusStateEntry{height: toConcreteHeight(height)})
}

// IterateConsensusStates visits stored consensus states in ascending height
// order until cb returns true.
func (s *memClientStore) IterateConsensusStates(cb func(height exported.Height, consensusState exported.ConsensusState) bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	s.consensusStates.Ascend(func(entry consensusStateEntry) bool {
		return !cb(entry.height, entry.consensusState)
	})
}

// GetProcessedTime returns the host timestamp (in nanoseconds) recorded when
// the consensus state at the given height was stored.
func (s *memClientStore) GetProcessedTime(height exported.Height) (uint64, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	timeNs, found := s.processedTimes[toConcreteHeight(height)]
	return timeNs, found
}

// SetProcessedTime records the host timestamp (in nanoseconds) at which the
// consensus state for the given height was stored.
func (s *memClientStore) SetProcessedTime(height exported.Height, timeNs uint64) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.processedTimes[toConcreteHeight(height)] = timeNs
}

// GetProcessedHeight returns the host height recorded when the consensus
// state at the given height was stored.
func (s *memClientStore) GetProcessedHeight(height exported.Height) (exported.Height, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	processedHeight, found := s.processedHeight[toConcreteHeight(height)]
	if !found {
		return nil, false
	}
	return processedHeight, true
}

// SetProcessedHeight records the host height at which the consensus state for
// the given height was stored.
func (s *memClientStore) SetProcessedHeight(height exported.Height, processedHeight exported.Height) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.processedHeight[toConcreteHeight(height)] = processedHeight
}

// DeleteConsensusMetadata removes the processing metadata recorded for the
// given height.
func (s *memClientStore) DeleteConsensusMetadata(height exported.Height) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.processedTimes, toConcreteHeight(height))
	delete(s.processedHeight, toConcreteHeight(height))
}

// memStoreProvider hands out one memClientStore per client id.
type memStoreProvider struct {
	mtx    sync.Mutex
	stores map[string]*memClientStore
}

// NewMemStoreProvider returns an in-memory StoreProvider. It is the reference
// implementation of the host storage interface and is what the test suites
// run against.
func NewMemStoreProvider() StoreProvider {
	return &memStoreProvider{
		stores: make(map[string]*memClientStore),
	}
}

// ClientStore returns the isolated store for the given client id, creating it
// on first use.
func (p *memStoreProvider) ClientStore(clientID string) exported.ClientStore {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	store, found := p.stores[clientID]
	if !found {
		store = newMemClientStore()
		p.stores[clientID] = store
	}
	return store
}

// toConcreteHeight normalizes any exported.Height into the concrete Height
// used as the store key.
func toConcreteHeight(height exported.Height) Height {
	if concrete, ok := height.(Height); ok {
		return concrete
	}
	return NewHeight(height.GetRevisionNumber(), height.GetRevisionHeight())
}

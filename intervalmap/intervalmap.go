package intervalmap

import (
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/iotaledger/interval.go/constraints"
	"github.com/iotaledger/interval.go/interval"
	"github.com/iotaledger/interval.go/lo"
	"github.com/iotaledger/interval.go/stringify"
)

// region IntervalMap //////////////////////////////////////////////////////////////////////////////////////////////////

// IntervalMap is a data structure that maps disjoint Intervals to values and that resolves point queries to the value
// of the Interval containing the queried key.
type IntervalMap[K constraints.Numeric, V any] struct {
	tree *redblacktree.Tree

	sync.RWMutex
}

// New returns an empty IntervalMap.
func New[K constraints.Numeric, V any]() *IntervalMap[K, V] {
	return new(IntervalMap[K, V]).Init()
}

// Init initializes the IntervalMap by creating the underlying search tree that orders the stored Intervals by their
// lower EndPoints.
func (i *IntervalMap[K, V]) Init() *IntervalMap[K, V] {
	i.Lock()
	defer i.Unlock()
	if i.tree != nil {
		panic("IntervalMap has already been initialized before")
	}

	i.tree = redblacktree.NewWith(func(a interface{}, b interface{}) int {
		return a.(interval.EndPoint[K]).Compare(b.(interval.EndPoint[K]))
	})

	return i
}

// Set maps the given Interval to the given value, replacing the value of an identical previously stored Interval. It
// returns an ErrOverlappingInterval if the Interval shares values with a different previously stored Interval.
func (i *IntervalMap[K, V]) Set(intervalToStore interval.Interval[K], value V) error {
	i.Lock()
	defer i.Unlock()

	if overlappingEntry, overlaps := i.overlappingEntry(intervalToStore); overlaps && overlappingEntry.interval != intervalToStore {
		return errors.Wrapf(ErrOverlappingInterval, "%s overlaps the stored %s", intervalToStore, overlappingEntry.interval)
	}

	i.tree.Put(intervalToStore.LowerEndPoint(), entry[K, V]{interval: intervalToStore, value: value})

	return nil
}

// Get returns the value of the stored Interval that contains the given key. The second return value is false if no
// stored Interval contains the key.
func (i *IntervalMap[K, V]) Get(key K) (value V, exists bool) {
	i.RLock()
	defer i.RUnlock()

	foundEntry, found := i.containingEntry(key)
	if !found {
		return value, false
	}

	return foundEntry.value, true
}

// GetInterval returns the stored Interval that contains the given key. The second return value is false if no stored
// Interval contains the key.
func (i *IntervalMap[K, V]) GetInterval(key K) (containingInterval interval.Interval[K], exists bool) {
	i.RLock()
	defer i.RUnlock()

	foundEntry, found := i.containingEntry(key)
	if !found {
		return containingInterval, false
	}

	return foundEntry.interval, true
}

// Delete removes the stored Interval that contains the given key together with its value. It returns the removed
// Interval and a flag that indicates if an Interval was removed.
func (i *IntervalMap[K, V]) Delete(key K) (removedInterval interval.Interval[K], removed bool) {
	i.Lock()
	defer i.Unlock()

	foundEntry, found := i.containingEntry(key)
	if !found {
		return removedInterval, false
	}

	i.tree.Remove(foundEntry.interval.LowerEndPoint())

	return foundEntry.interval, true
}

// Intervals returns the stored Intervals in ascending order.
func (i *IntervalMap[K, V]) Intervals() (intervals []interval.Interval[K]) {
	i.ForEach(func(storedInterval interval.Interval[K], _ V) bool {
		intervals = append(intervals, storedInterval)

		return true
	})

	return intervals
}

// Values returns the values of the stored Intervals in ascending order of their Intervals.
func (i *IntervalMap[K, V]) Values() []V {
	i.RLock()
	defer i.RUnlock()

	return lo.Map(i.tree.Values(), func(storedEntry interface{}) V {
		return storedEntry.(entry[K, V]).value
	})
}

// ForEach iterates through the stored Intervals in ascending order and calls the consumer with each Interval and its
// value. It aborts the iteration if the consumer returns false.
func (i *IntervalMap[K, V]) ForEach(consumer func(storedInterval interval.Interval[K], value V) bool) {
	i.RLock()
	defer i.RUnlock()

	for it := i.tree.Iterator(); it.Next(); {
		storedEntry := it.Value().(entry[K, V])
		if !consumer(storedEntry.interval, storedEntry.value) {
			break
		}
	}
}

// Size returns the amount of Intervals that are stored in the map.
func (i *IntervalMap[K, V]) Size() int {
	i.RLock()
	defer i.RUnlock()

	return i.tree.Size()
}

// Empty returns true if the map does not contain any Intervals.
func (i *IntervalMap[K, V]) Empty() bool {
	i.RLock()
	defer i.RUnlock()

	return i.tree.Empty()
}

// Clear removes all Intervals and values from the map.
func (i *IntervalMap[K, V]) Clear() {
	i.Lock()
	defer i.Unlock()
	i.tree.Clear()
}

// String returns a human-readable version of the IntervalMap.
func (i *IntervalMap[K, V]) String() string {
	structFields := make([]*stringify.StructField, 0)
	i.ForEach(func(storedInterval interval.Interval[K], value V) bool {
		structFields = append(structFields, stringify.NewStructField(storedInterval.String(), value))

		return true
	})

	return stringify.Struct("IntervalMap", structFields...)
}

// containingEntry returns the entry of the stored Interval that contains the given key. Since the stored Intervals
// are disjoint, the only candidate is the one with the largest lower EndPoint that admits the key.
func (i *IntervalMap[K, V]) containingEntry(key K) (foundEntry entry[K, V], exists bool) {
	node, found := i.tree.Floor(interval.Lower(key, interval.BoundTypeClosed))
	if !found {
		return foundEntry, false
	}

	if storedEntry := node.Value.(entry[K, V]); storedEntry.interval.Contains(key) {
		return storedEntry, true
	}

	return foundEntry, false
}

// overlappingEntry returns the entry of a stored Interval that overlaps the given Interval. Since the stored
// Intervals are disjoint, it is enough to check the closest stored Intervals on both sides of the given lower
// EndPoint.
func (i *IntervalMap[K, V]) overlappingEntry(intervalToCheck interval.Interval[K]) (foundEntry entry[K, V], exists bool) {
	if node, found := i.tree.Floor(intervalToCheck.LowerEndPoint()); found {
		if storedEntry := node.Value.(entry[K, V]); storedEntry.interval.Overlaps(intervalToCheck) {
			return storedEntry, true
		}
	}
	if node, found := i.tree.Ceiling(intervalToCheck.LowerEndPoint()); found {
		if storedEntry := node.Value.(entry[K, V]); storedEntry.interval.Overlaps(intervalToCheck) {
			return storedEntry, true
		}
	}

	return foundEntry, false
}

// code contract (make sure the type implements all required methods).
var _ fmt.Stringer = &IntervalMap[int, int]{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region entry ////////////////////////////////////////////////////////////////////////////////////////////////////////

// entry couples a stored Interval with its mapped value inside the search tree.
type entry[K constraints.Numeric, V any] struct {
	interval interval.Interval[K]
	value    V
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

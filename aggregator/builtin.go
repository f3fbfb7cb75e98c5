package aggregator

import (
	"math"
	"sort"
	"sync"

	"github.com/spf13/cast"
)

// AggregateType names a reduction applied to one value column.
type AggregateType string

const (
	Sum           AggregateType = "sum"
	Count         AggregateType = "count"
	Avg           AggregateType = "avg"
	Mean          AggregateType = "mean"
	Max           AggregateType = "max"
	Min           AggregateType = "min"
	StdDev        AggregateType = "stddev"
	Median        AggregateType = "median"
	CountDistinct AggregateType = "count_distinct"
	NUnique       AggregateType = "nunique"
	First         AggregateType = "first"
	Last          AggregateType = "last"
)

// AggregatorFunction accumulates values for one column of one group.
// New returns a fresh accumulator of the same kind.
type AggregatorFunction interface {
	New() AggregatorFunction
	Add(value interface{})
	Result() interface{}
}

type SumAggregator struct {
	value float64
}

func (s *SumAggregator) New() AggregatorFunction {
	return &SumAggregator{}
}

func (s *SumAggregator) Add(v interface{}) {
	s.value += cast.ToFloat64(v)
}

func (s *SumAggregator) Result() interface{} {
	return s.value
}

type CountAggregator struct {
	count int
}

func (c *CountAggregator) New() AggregatorFunction {
	return &CountAggregator{}
}

func (c *CountAggregator) Add(_ interface{}) {
	c.count++
}

func (c *CountAggregator) Result() interface{} {
	return c.count
}

type AvgAggregator struct {
	sum   float64
	count int
}

func (a *AvgAggregator) New() AggregatorFunction {
	return &AvgAggregator{}
}

func (a *AvgAggregator) Add(v interface{}) {
	a.sum += cast.ToFloat64(v)
	a.count++
}

func (a *AvgAggregator) Result() interface{} {
	if a.count == 0 {
		return 0.0
	}
	return a.sum / float64(a.count)
}

type MinAggregator struct {
	value float64
	first bool
}

func (m *MinAggregator) New() AggregatorFunction {
	return &MinAggregator{first: true}
}

func (m *MinAggregator) Add(v interface{}) {
	vv := cast.ToFloat64(v)
	if m.first || vv < m.value {
		m.value = vv
		m.first = false
	}
}

func (m *MinAggregator) Result() interface{} {
	return m.value
}

type MaxAggregator struct {
	value float64
	first bool
}

func (m *MaxAggregator) New() AggregatorFunction {
	return &MaxAggregator{first: true}
}

func (m *MaxAggregator) Add(v interface{}) {
	vv := cast.ToFloat64(v)
	if m.first || vv > m.value {
		m.value = vv
		m.first = false
	}
}

func (m *MaxAggregator) Result() interface{} {
	return m.value
}

type StdDevAggregator struct {
	values []float64
}

func (s *StdDevAggregator) New() AggregatorFunction {
	return &StdDevAggregator{}
}

func (s *StdDevAggregator) Add(v interface{}) {
	s.values = append(s.values, cast.ToFloat64(v))
}

func (s *StdDevAggregator) Result() interface{} {
	if len(s.values) < 2 {
		return 0.0
	}
	avg := calculateAverage(s.values)
	var sum float64
	for _, v := range s.values {
		sum += (v - avg) * (v - avg)
	}
	return math.Sqrt(sum / float64(len(s.values)-1))
}

type MedianAggregator struct {
	values []float64
}

func (m *MedianAggregator) New() AggregatorFunction {
	return &MedianAggregator{}
}

func (m *MedianAggregator) Add(v interface{}) {
	m.values = append(m.values, cast.ToFloat64(v))
}

func (m *MedianAggregator) Result() interface{} {
	if len(m.values) == 0 {
		return 0.0
	}
	sort.Float64s(m.values)
	return m.values[len(m.values)/2]
}

// CountDistinctAggregator counts distinct values by their string form.
type CountDistinctAggregator struct {
	seen map[string]struct{}
}

func (c *CountDistinctAggregator) New() AggregatorFunction {
	return &CountDistinctAggregator{seen: make(map[string]struct{})}
}

func (c *CountDistinctAggregator) Add(v interface{}) {
	if c.seen == nil {
		c.seen = make(map[string]struct{})
	}
	c.seen[cast.ToString(v)] = struct{}{}
}

func (c *CountDistinctAggregator) Result() interface{} {
	return len(c.seen)
}

type FirstAggregator struct {
	value interface{}
	set   bool
}

func (f *FirstAggregator) New() AggregatorFunction {
	return &FirstAggregator{}
}

func (f *FirstAggregator) Add(v interface{}) {
	if !f.set {
		f.value = v
		f.set = true
	}
}

func (f *FirstAggregator) Result() interface{} {
	return f.value
}

type LastAggregator struct {
	value interface{}
}

func (l *LastAggregator) New() AggregatorFunction {
	return &LastAggregator{}
}

func (l *LastAggregator) Add(v interface{}) {
	l.value = v
}

func (l *LastAggregator) Result() interface{} {
	return l.value
}

var (
	aggregatorRegistry = make(map[string]func() AggregatorFunction)
	registryMutex      sync.RWMutex
)

// Register adds a custom aggregator constructor to the global registry.
// A registered name shadows the builtin of the same name.
func Register(name string, constructor func() AggregatorFunction) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	aggregatorRegistry[name] = constructor
}

// Lookup resolves an aggregator constructor by name, custom registrations
// first, then builtins. The second return reports whether the name is known.
func Lookup(aggType AggregateType) (func() AggregatorFunction, bool) {
	registryMutex.RLock()
	constructor, exists := aggregatorRegistry[string(aggType)]
	registryMutex.RUnlock()
	if exists {
		return constructor, true
	}

	switch aggType {
	case Sum:
		return func() AggregatorFunction { return &SumAggregator{} }, true
	case Count:
		return func() AggregatorFunction { return &CountAggregator{} }, true
	case Avg, Mean:
		return func() AggregatorFunction { return &AvgAggregator{} }, true
	case Min:
		return func() AggregatorFunction { return &MinAggregator{first: true} }, true
	case Max:
		return func() AggregatorFunction { return &MaxAggregator{first: true} }, true
	case StdDev:
		return func() AggregatorFunction { return &StdDevAggregator{} }, true
	case Median:
		return func() AggregatorFunction { return &MedianAggregator{} }, true
	case CountDistinct, NUnique:
		return func() AggregatorFunction { return &CountDistinctAggregator{seen: make(map[string]struct{})} }, true
	case First:
		return func() AggregatorFunction { return &FirstAggregator{} }, true
	case Last:
		return func() AggregatorFunction { return &LastAggregator{} }, true
	default:
		return nil, false
	}
}

// CreateBuiltinAggregator builds an aggregator for aggType, panicking on an
// unknown name. Callers that cannot guarantee the name should use Lookup.
func CreateBuiltinAggregator(aggType AggregateType) AggregatorFunction {
	constructor, exists := Lookup(aggType)
	if !exists {
		panic("unsupported aggregator type: " + aggType)
	}
	return constructor()
}

func calculateAverage(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

package cutpool

import (
	"fmt"
	"math"
	"sort"

	"github.com/solvekit/cutpost/rowmat"
)

// ageRemovedFromLP marks a row that is currently installed in the LP
// (removed from the pool's active separation set): spec's age == -1.
const ageRemovedFromLP int32 = -1

// CutPool owns a sparse row matrix plus per-row metadata, and curates
// which rows are worth re-separating. It is single-threaded: the caller
// serializes access externally.
type CutPool struct {
	rows *rowmat.Matrix

	// Per-row metadata, indexed by rowmat.RowID.
	rhs          []float64
	age          []int32
	normInv      []float64
	maxAbs       []float64
	integral     []bool
	modification []uint64

	supportMap map[uint64][]rowmat.RowID

	observers   []Observer
	freeHandles []ObserverHandle

	nCols      int
	sepaRounds int

	ageLimit                      int32
	duplicateParallelismThreshold float64
	selectionParallelismThreshold float64
}

// New returns an empty CutPool sized for a model with nCols columns.
// Complexity: O(1).
func New(nCols int, opts ...Option) *CutPool {
	p := &CutPool{
		rows:                          rowmat.New(),
		supportMap:                    make(map[uint64][]rowmat.RowID),
		nCols:                         nCols,
		ageLimit:                      defaultAgeLimit,
		duplicateParallelismThreshold: defaultDuplicateParallelismThreshold,
		selectionParallelismThreshold: defaultSelectionParallelismThreshold,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddCut screens a proposed row against the pool's existing rows and, if
// it is not a near-duplicate of one with identical support, appends it.
//
// Stage 1 (Validate): indices must be strictly ascending, matching len(values).
// Stage 2 (Execute): hash the support, compute norm/max-abs with
// compensated summation, screen the hash bucket for parallel duplicates.
// Stage 3 (Finalize): append, record metadata, notify observers.
// Complexity: O(n + b) where n is the row length and b is the duplicate
// bucket size.
func (p *CutPool) AddCut(idx []int32, val []float64, rhs float64, integral bool) (rowmat.RowID, error) {
	if len(idx) != len(val) {
		contractViolationf("AddCut: len(idx)=%d != len(val)=%d", len(idx), len(val))
	}

	hash := supportHash(idx)
	norm, maxAbs := normAndMaxAbs(val)
	normInv := 1 / norm

	for _, r := range p.supportMap[hash] {
		if p.rows.IsTombstoned(r) {
			continue
		}
		rIdx, rVal := p.rows.Entries(r)
		if !sameSupport(idx, rIdx) {
			continue
		}
		dot := mergeDot(idx, val, rIdx, rVal)
		parallelism := dot * normInv * p.normInv[r]
		if parallelism >= p.duplicateParallelismThreshold {
			return rowmat.InvalidRowID, ErrDuplicateCut
		}
	}

	id := p.rows.AppendRow(idx, val)
	p.growMetadata(id)
	p.rhs[id] = rhs
	p.age[id] = 0
	p.normInv[id] = normInv
	p.maxAbs[id] = maxAbs
	p.integral[id] = integral
	p.modification[id]++
	p.supportMap[hash] = append(p.supportMap[hash], id)

	for _, obs := range p.observers {
		if obs != nil {
			obs.CutAdded(id)
		}
	}

	return id, nil
}

// growMetadata extends the per-row metadata slices so index id is valid.
func (p *CutPool) growMetadata(id rowmat.RowID) {
	n := int(id) + 1
	for len(p.rhs) < n {
		p.rhs = append(p.rhs, 0)
		p.age = append(p.age, 0)
		p.normInv = append(p.normInv, 0)
		p.maxAbs = append(p.maxAbs, 0)
		p.integral = append(p.integral, false)
		p.modification = append(p.modification, 0)
	}
}

// Separate scores every dormant row against x against the current
// column bounds and greedily selects a parallelism-bounded subset of the
// most violated cuts.
//
// Stage 1 (Execute): score each live row, aging and evicting the
// unviolated ones as we go.
// Stage 2 (Execute): sort candidates by descending efficacy, ties broken
// by ascending RowID.
// Stage 3 (Execute): greedily select candidates whose parallelism against
// every already-selected row stays at or below the selection threshold.
// Stage 4 (Finalize): emit the selection in CSR layout.
// Complexity: O(sum of live row lengths + k^2) where k is the number of
// candidates surviving the violation screen.
func (p *CutPool) Separate(x, lb, ub []float64, feastol float64) CutSet {
	p.sepaRounds++
	ageLimitEff := min32(int32(p.sepaRounds), p.ageLimit)

	var candidates []candidate
	for r := 0; r < p.rows.NumRows(); r++ {
		id := rowmat.RowID(r)
		if p.age[id] < 0 {
			continue
		}
		idx, val := p.rows.Entries(id)
		v := denseDot(idx, val, x) - p.rhs[id]

		if v <= feastol {
			p.age[id]++
			if p.age[id] > ageLimitEff {
				p.evict(id)
			}
			continue
		}

		effNormSq := effectiveNormSquared(idx, val, x, lb, ub, feastol)
		effNorm := sqrtPositive(effNormSq)
		if effNorm == 0 {
			// Every coefficient sat at its minimal-activity bound; fall
			// back to the row's plain max-abs so efficacy stays finite.
			effNorm = p.maxAbs[id]
		}
		sparsityBonus := 0.01 * (1 - float64(len(idx))/float64(p.nCols))
		efficacy := v/effNorm + sparsityBonus

		p.age[id] = 0
		candidates = append(candidates, candidate{row: id, efficacy: efficacy})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].efficacy != candidates[j].efficacy {
			return candidates[i].efficacy > candidates[j].efficacy
		}
		return candidates[i].row < candidates[j].row
	})

	var selected []rowmat.RowID
	for _, c := range candidates {
		idxC, valC := p.rows.Entries(c.row)
		accept := true
		for _, k := range selected {
			idxK, valK := p.rows.Entries(k)
			par := mergeDot(idxC, valC, idxK, valK) * p.normInv[c.row] * p.normInv[k]
			if par > p.selectionParallelismThreshold {
				accept = false
				break
			}
		}
		if !accept {
			continue
		}
		p.age[c.row] = ageRemovedFromLP
		p.modification[c.row]++
		selected = append(selected, c.row)
	}

	return p.buildCutSet(selected)
}

func (p *CutPool) buildCutSet(selected []rowmat.RowID) CutSet {
	cs := CutSet{
		ARstart:    make([]int, len(selected)+1),
		Upper:      make([]float64, len(selected)),
		CutIndices: make([]rowmat.RowID, len(selected)),
	}
	for i, id := range selected {
		idx, val := p.rows.Entries(id)
		cs.ARstart[i] = len(cs.ARindex)
		cs.ARindex = append(cs.ARindex, idx...)
		cs.ARvalue = append(cs.ARvalue, val...)
		cs.Upper[i] = p.rhs[id]
		cs.CutIndices[i] = id
	}
	cs.ARstart[len(selected)] = len(cs.ARindex)
	return cs
}

// evict removes row id from the matrix and the support map, marking it
// permanently out of the active separation set.
func (p *CutPool) evict(id rowmat.RowID) {
	idx, _ := p.rows.Entries(id)
	hash := supportHash(idx)
	p.rows.RemoveRow(id)
	p.rhs[id] = 0
	p.age[id] = ageRemovedFromLP
	p.modification[id]++

	bucket := p.supportMap[hash]
	for i, r := range bucket {
		if r == id {
			p.supportMap[hash] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
}

// PerformAging increments every live row's age by one round and evicts
// rows that have gone more than AgeLimit rounds without being selected.
// Unlike Separate's eviction threshold, this always uses the pool's plain
// AgeLimit, not a round-leniency minimum.
// Complexity: O(number of rows).
func (p *CutPool) PerformAging() {
	for r := 0; r < p.rows.NumRows(); r++ {
		id := rowmat.RowID(r)
		if p.age[id] < 0 {
			continue
		}
		p.age[id]++
		if p.age[id] > p.ageLimit {
			p.evict(id)
		}
	}
}

// LPCutRemoved marks row id as re-eligible for separation after the LP
// dropped it, without resetting it to a pristine just-added state.
func (p *CutPool) LPCutRemoved(id rowmat.RowID) {
	p.age[id] = 1
}

// GetParallelism returns the cosine similarity between rows a and b. It is
// symmetric and returns 1 (within floating-point tolerance) for a == b.
func (p *CutPool) GetParallelism(a, b rowmat.RowID) float64 {
	idxA, valA := p.rows.Entries(a)
	idxB, valB := p.rows.Entries(b)
	return mergeDot(idxA, valA, idxB, valB) * p.normInv[a] * p.normInv[b]
}

// RegisterObserver adds obs to the set notified on every new row. The
// returned handle is used to unregister it later.
func (p *CutPool) RegisterObserver(obs Observer) ObserverHandle {
	if len(p.freeHandles) > 0 {
		h := p.freeHandles[len(p.freeHandles)-1]
		p.freeHandles = p.freeHandles[:len(p.freeHandles)-1]
		p.observers[h] = obs
		return h
	}
	p.observers = append(p.observers, obs)
	return ObserverHandle(len(p.observers) - 1)
}

// UnregisterObserver removes a previously registered observer. The pool
// holds no lifetime over observers; this is the caller's responsibility
// to call before the observer itself is torn down.
func (p *CutPool) UnregisterObserver(h ObserverHandle) {
	if int(h) < 0 || int(h) >= len(p.observers) {
		return
	}
	p.observers[h] = nil
	p.freeHandles = append(p.freeHandles, h)
}

// NumRows returns the number of row slots ever assigned, including
// tombstoned ones.
func (p *CutPool) NumRows() int {
	return p.rows.NumRows()
}

// IsLive reports whether id is currently dormant in the pool, eligible
// for separation (age >= 0 and not tombstoned).
func (p *CutPool) IsLive(id rowmat.RowID) bool {
	return p.age[id] >= 0 && !p.rows.IsTombstoned(id)
}

// Entries exposes a row's column indices and coefficients for callers
// (such as an observer) that need to inspect a newly-added cut.
func (p *CutPool) Entries(id rowmat.RowID) (idx []int32, val []float64) {
	return p.rows.Entries(id)
}

func contractViolationf(format string, args ...interface{}) {
	panic(fmt.Sprintf("cutpool: contract violation: "+format, args...))
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func sqrtPositive(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Sqrt(x)
}

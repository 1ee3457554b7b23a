package xwfill

import (
	"context"
	"slices"

	"crosswarped.com/xwfill/pkg/primitives"
)

// Assignment maps variables to the word chosen for them. It may be partial
// during search; a solved puzzle has an entry for every variable.
type Assignment map[Variable]string

// Arc is a directed consistency obligation: the domain of X must stay
// compatible with the domain of Y.
type Arc struct {
	X Variable
	Y Variable
}

// Solver fills a crossword from a fixed vocabulary. It owns one mutable
// piece of state, the per-variable candidate domains, and narrows them
// through node consistency, AC-3 propagation, and backtracking search.
type Solver struct {
	crossword *Crossword
	domains   map[Variable]*primitives.WordSet
}

// CreateSolver returns a solver whose every domain starts as the full
// vocabulary.
func CreateSolver(crossword *Crossword, words []string) *Solver {
	domains := make(map[Variable]*primitives.WordSet, len(crossword.Variables()))
	for _, v := range crossword.Variables() {
		domains[v] = primitives.NewWordSet(words...)
	}
	return &Solver{
		crossword: crossword,
		domains:   domains,
	}
}

// Domain returns a snapshot of the current candidate words for v.
func (s *Solver) Domain(v Variable) []string {
	return s.domains[v].Words()
}

// Solve narrows the domains with node and arc consistency, then runs
// backtracking search. It returns a complete, pairwise-consistent assignment,
// or nil if no satisfying assignment exists (or ctx was cancelled first).
func (s *Solver) Solve(ctx context.Context) Assignment {
	s.EnforceNodeConsistency()
	if !s.AC3(ctx, nil) {
		return nil
	}
	return s.backtrack(ctx, Assignment{})
}

// EnforceNodeConsistency removes from each variable's domain every word
// whose length does not match the slot.
func (s *Solver) EnforceNodeConsistency() {
	for v, domain := range s.domains {
		domain.Filter(func(word string) bool {
			return len(word) == v.Length
		})
	}
}

// Revise makes x arc-consistent with y by removing from x's domain every
// word with no compatible partner in y's current domain at their overlap.
// It reports whether anything was removed. If x and y do not cross it is a
// no-op.
func (s *Solver) Revise(x, y Variable) bool {
	return s.revise(x, y) != nil
}

// revise is Revise, additionally returning x's prior domain when anything
// was removed so the caller can undo, and nil otherwise.
func (s *Solver) revise(x, y Variable) *primitives.WordSet {
	ov, ok := s.crossword.Overlap(x, y)
	if !ok {
		return nil
	}

	// Collect the letters y can still place in the shared cell; x's words
	// survive iff they put one of those letters there. Characters outside
	// a-z don't fit in the CharSet and are tracked on the side.
	allowed := primitives.NewCharSet()
	var unusual map[rune]bool
	for wy := range s.domains[y].All() {
		r := rune(wy[ov.J])
		if err := allowed.Add(r); err != nil {
			if unusual == nil {
				unusual = make(map[rune]bool)
			}
			unusual[r] = true
		}
	}

	return s.domains[x].FilterUndo(func(wx string) bool {
		r := rune(wx[ov.I])
		return allowed.Contains(r) || unusual[r]
	})
}

// AC3 runs arc-consistency propagation until a fixed point. A nil arcs
// argument seeds the queue with every directed arc of the puzzle; otherwise
// the given arcs seed it. Pending arcs are processed most-recently-added
// first. It returns false if some domain wiped out (or ctx was cancelled),
// true once every domain is arc-consistent and non-empty.
func (s *Solver) AC3(ctx context.Context, arcs []Arc) bool {
	if arcs == nil {
		for _, x := range s.crossword.Variables() {
			for _, y := range s.crossword.Neighbors(x) {
				arcs = append(arcs, Arc{X: x, Y: y})
			}
		}
	} else {
		arcs = slices.Clone(arcs)
	}

	for len(arcs) > 0 {
		if ctx.Err() != nil {
			return false
		}

		arc := arcs[len(arcs)-1]
		arcs = arcs[:len(arcs)-1]

		if !s.Revise(arc.X, arc.Y) {
			continue
		}
		if s.domains[arc.X].Empty() {
			return false
		}
		for _, z := range s.crossword.Neighbors(arc.X) {
			if z != arc.Y {
				arcs = append(arcs, Arc{X: z, Y: arc.X})
			}
		}
	}
	return true
}

// complete checks whether every variable of the puzzle is assigned.
func (s *Solver) complete(assignment Assignment) bool {
	return len(assignment) == len(s.crossword.Variables())
}

// consistent checks whether the assigned words fit the crossword: each word
// matches its slot's length and every assigned pair of crossing words agrees
// on the shared letter.
func (s *Solver) consistent(assignment Assignment) bool {
	for v1, word1 := range assignment {
		if v1.Length != len(word1) {
			return false
		}
		for _, v2 := range s.crossword.Neighbors(v1) {
			word2, assigned := assignment[v2]
			if !assigned {
				continue
			}
			ov, _ := s.crossword.Overlap(v1, v2)
			if word1[ov.I] != word2[ov.J] {
				return false
			}
		}
	}
	return true
}

// orderDomainValues returns var's candidate words, least constraining first:
// ascending by how many unassigned neighbors still hold the same word string
// in their domain. Ties keep domain order.
func (s *Solver) orderDomainValues(v Variable, assignment Assignment) []string {
	var unassigned []Variable
	for _, neighbor := range s.crossword.Neighbors(v) {
		if _, ok := assignment[neighbor]; !ok {
			unassigned = append(unassigned, neighbor)
		}
	}

	conflicts := make(map[string]int, s.domains[v].Len())
	for word := range s.domains[v].All() {
		for _, neighbor := range unassigned {
			if s.domains[neighbor].Contains(word) {
				conflicts[word]++
			}
		}
	}

	words := s.domains[v].Words()
	slices.SortStableFunc(words, func(a, b string) int {
		return conflicts[a] - conflicts[b]
	})
	return words
}

// selectUnassignedVariable picks the next variable to branch on: smallest
// remaining domain first, ties broken by most neighbors. Recomputed on every
// call since domains shrink as the search progresses.
func (s *Solver) selectUnassignedVariable(assignment Assignment) Variable {
	var candidates []Variable
	for _, v := range s.crossword.Variables() {
		if _, ok := assignment[v]; !ok {
			candidates = append(candidates, v)
		}
	}

	slices.SortStableFunc(candidates, func(a, b Variable) int {
		if d := s.domains[a].Len() - s.domains[b].Len(); d != 0 {
			return d
		}
		return len(s.crossword.Neighbors(b)) - len(s.crossword.Neighbors(a))
	})
	return candidates[0]
}

// infer propagates the consequences of having just assigned v, running AC-3
// seeded with only the arcs pointing into v. Domains are narrowed in place;
// the returned map holds, for every variable that was narrowed, its domain
// as it was before its first revision. The caller applies that map with
// restore when the branch fails.
//
// If a domain wipes out (or ctx is cancelled), infer restores everything it
// touched and reports false, leaving the domains exactly as it found them.
func (s *Solver) infer(ctx context.Context, v Variable) (map[Variable]*primitives.WordSet, bool) {
	undo := make(map[Variable]*primitives.WordSet)

	neighbors := s.crossword.Neighbors(v)
	queue := make([]Arc, 0, len(neighbors))
	for _, x := range neighbors {
		queue = append(queue, Arc{X: x, Y: v})
	}

	for len(queue) > 0 {
		if ctx.Err() != nil {
			s.restore(undo)
			return nil, false
		}

		arc := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		prior := s.revise(arc.X, arc.Y)
		if prior == nil {
			continue
		}
		if _, recorded := undo[arc.X]; !recorded {
			undo[arc.X] = prior
		}

		if s.domains[arc.X].Empty() {
			s.restore(undo)
			return nil, false
		}
		for _, z := range s.crossword.Neighbors(arc.X) {
			if z != arc.Y {
				queue = append(queue, Arc{X: z, Y: arc.X})
			}
		}
	}
	return undo, true
}

// restore puts back the recorded pre-inference domains.
func (s *Solver) restore(undo map[Variable]*primitives.WordSet) {
	for v, domain := range undo {
		s.domains[v] = domain
	}
}

// backtrack is the recursive search. Each call owns the undo records of its
// own speculative inference and applies them before trying a sibling value or
// returning failure, so the domains always reflect exactly the committed
// assignment.
func (s *Solver) backtrack(ctx context.Context, assignment Assignment) Assignment {
	if s.complete(assignment) {
		return assignment
	}
	if ctx.Err() != nil {
		return nil
	}

	v := s.selectUnassignedVariable(assignment)
	for _, word := range s.orderDomainValues(v, assignment) {
		assignment[v] = word
		if s.consistent(assignment) {
			if undo, ok := s.infer(ctx, v); ok {
				if result := s.backtrack(ctx, assignment); result != nil {
					return result
				}
				s.restore(undo)
			}
		}
		delete(assignment, v)
	}
	return nil
}

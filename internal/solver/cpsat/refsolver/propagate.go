package refsolver

type propResult int

const (
	noop propResult = iota
	progress
	infeasible
)

// propagate runs unit propagation to a fixpoint over every constraint,
// narrowing assigned in place. It returns false as soon as any constraint is
// proven unsatisfiable given the current (possibly partial) assignment.
func propagate(a *Adapter, assigned map[int]int64) bool {
	changed := true
	for changed {
		changed = false
		for i := range a.constraints {
			switch propagateOne(a, &a.constraints[i], assigned) {
			case infeasible:
				return false
			case progress:
				changed = true
			}
		}
	}
	return true
}

func propagateOne(a *Adapter, c *constraint, assigned map[int]int64) propResult {
	switch c.kind {
	case kEquality:
		return propagateEquality(a, c, assigned, false)
	case kGreaterOrEqual:
		return propagateEquality(a, c, assigned, true)
	case kMaxEquality:
		return propagateExtremum(a, c, assigned, true)
	case kMinEquality:
		return propagateExtremum(a, c, assigned, false)
	case kImplication:
		return propagateImplication(c, assigned)
	case kBoolAnd:
		return propagateBoolAnd(c, assigned)
	case kBoolOr:
		return propagateBoolOr(c, assigned)
	default:
		return noop
	}
}

func setForced(a *Adapter, assigned map[int]int64, id int, value int64) propResult {
	v := a.vars[id]
	if value < v.lo || value > v.hi {
		return infeasible
	}
	if existing, ok := assigned[id]; ok {
		if existing != value {
			return infeasible
		}
		return noop
	}
	assigned[id] = value
	return progress
}

func propagateEquality(a *Adapter, c *constraint, assigned map[int]int64, isGE bool) propResult {
	var sumKnown int64
	unboundIdx := -1
	unboundCount := 0
	for i, id := range c.vars {
		if val, ok := assigned[id]; ok {
			sumKnown += c.coeffs[i] * val
		} else {
			unboundCount++
			unboundIdx = i
		}
	}
	if unboundCount == 0 {
		if isGE {
			if sumKnown < c.target {
				return infeasible
			}
			return noop
		}
		if sumKnown != c.target {
			return infeasible
		}
		return noop
	}
	if isGE || unboundCount > 1 {
		return noop
	}
	coeff := c.coeffs[unboundIdx]
	if coeff == 0 {
		return noop
	}
	remaining := c.target - sumKnown
	if remaining%coeff != 0 {
		return infeasible
	}
	return setForced(a, assigned, c.vars[unboundIdx], remaining/coeff)
}

// propagateExtremum handles both AddMaxEquality (isMax=true) and
// AddMinEquality (isMax=false). c.vars[0] is the target, c.vars[1:] the
// operands.
func propagateExtremum(a *Adapter, c *constraint, assigned map[int]int64, isMax bool) propResult {
	target := c.vars[0]
	operands := c.vars[1:]

	allOperandsBound := true
	var extremum int64
	first := true
	for _, id := range operands {
		val, ok := assigned[id]
		if !ok {
			allOperandsBound = false
			break
		}
		if first || (isMax && val > extremum) || (!isMax && val < extremum) {
			extremum = val
			first = false
		}
	}

	if allOperandsBound {
		if tv, ok := assigned[target]; ok {
			if tv != extremum {
				return infeasible
			}
			return noop
		}
		return setForced(a, assigned, target, extremum)
	}
	return noop
}

func propagateImplication(c *constraint, assigned map[int]int64) propResult {
	ante, conseq := c.vars[0], c.vars[1]
	av, aok := assigned[ante]
	cv, cok := assigned[conseq]
	if aok && cok {
		if av == 1 && cv == 0 {
			return infeasible
		}
		return noop
	}
	if aok && av == 1 && !cok {
		assigned[conseq] = 1
		return progress
	}
	if cok && cv == 0 && !aok {
		assigned[ante] = 0
		return progress
	}
	return noop
}

func propagateBoolAnd(c *constraint, assigned map[int]int64) propResult {
	target := c.vars[0]
	operands := c.vars[1:]

	allBound := true
	allOne := true
	zeroCount := 0
	var unboundOperand int = -1
	for _, id := range operands {
		val, ok := assigned[id]
		if !ok {
			allBound = false
			unboundOperand = id
			continue
		}
		if val == 0 {
			allOne = false
			zeroCount++
		}
	}

	if allBound {
		want := int64(0)
		if allOne {
			want = 1
		}
		if tv, ok := assigned[target]; ok {
			if tv != want {
				return infeasible
			}
			return noop
		}
		assigned[target] = want
		return progress
	}

	tv, tok := assigned[target]
	if tok && tv == 1 {
		// AND == 1 forces every operand to 1.
		result := noop
		for _, id := range operands {
			if _, ok := assigned[id]; !ok {
				assigned[id] = 1
				result = progress
			}
		}
		return result
	}
	if tok && tv == 0 && zeroCount == 0 && unboundOperand >= 0 && countUnbound(operands, assigned) == 1 {
		assigned[unboundOperand] = 0
		return progress
	}
	return noop
}

func propagateBoolOr(c *constraint, assigned map[int]int64) propResult {
	target := c.vars[0]
	operands := c.vars[1:]

	allBound := true
	anyOne := false
	oneCount := 0
	var unboundOperand int = -1
	for _, id := range operands {
		val, ok := assigned[id]
		if !ok {
			allBound = false
			unboundOperand = id
			continue
		}
		if val == 1 {
			anyOne = true
			oneCount++
		}
	}

	if allBound {
		want := int64(0)
		if anyOne {
			want = 1
		}
		if tv, ok := assigned[target]; ok {
			if tv != want {
				return infeasible
			}
			return noop
		}
		assigned[target] = want
		return progress
	}

	tv, tok := assigned[target]
	if tok && tv == 0 {
		// OR == 0 forces every operand to 0.
		result := noop
		for _, id := range operands {
			if _, ok := assigned[id]; !ok {
				assigned[id] = 0
				result = progress
			}
		}
		return result
	}
	if tok && tv == 1 && oneCount == 0 && unboundOperand >= 0 && countUnbound(operands, assigned) == 1 {
		assigned[unboundOperand] = 1
		return progress
	}
	return noop
}

func countUnbound(ids []int, assigned map[int]int64) int {
	n := 0
	for _, id := range ids {
		if _, ok := assigned[id]; !ok {
			n++
		}
	}
	return n
}

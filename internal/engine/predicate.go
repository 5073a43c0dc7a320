package engine

// CompareOp identifies one comparison operator. The numeric values are part
// of the kernel ABI: the filter kernel receives them in its uniform params.
type CompareOp uint32

const (
	EQ CompareOp = iota
	NE
	LT
	LE
	GT
	GE
)

// String returns the SQL-ish spelling of the operator.
func (op CompareOp) String() string {
	switch op {
	case EQ:
		return "="
	case NE:
		return "!="
	case LT:
		return "<"
	case LE:
		return "<="
	case GT:
		return ">"
	case GE:
		return ">="
	default:
		return "?"
	}
}

// Predicate pairs a comparison operator with a threshold. Immutable;
// consumed by Filter and CountWhere.
type Predicate struct {
	Op        CompareOp
	Threshold float32
}

// Matches evaluates the predicate against v with IEEE-754 comparison
// semantics, so NaN matches nothing, including NE.
func (p Predicate) Matches(v float32) bool {
	switch p.Op {
	case EQ:
		return v == p.Threshold
	case NE:
		return v < p.Threshold || v > p.Threshold
	case LT:
		return v < p.Threshold
	case LE:
		return v <= p.Threshold
	case GT:
		return v > p.Threshold
	case GE:
		return v >= p.Threshold
	default:
		return false
	}
}

func (p Predicate) String() string {
	return p.Op.String()
}

// ParsePredicate builds a Predicate from an operator spelling such as ">"
// or ">=". Unknown spellings fail with ErrInvalidData.
func ParsePredicate(op string, threshold float32) (Predicate, error) {
	for _, c := range []CompareOp{EQ, NE, LT, LE, GT, GE} {
		if c.String() == op {
			return Predicate{Op: c, Threshold: threshold}, nil
		}
	}
	if op == "==" {
		return Predicate{Op: EQ, Threshold: threshold}, nil
	}
	if op == "<>" {
		return Predicate{Op: NE, Threshold: threshold}, nil
	}
	return Predicate{}, E("parsePredicate", ErrInvalidData, nil)
}

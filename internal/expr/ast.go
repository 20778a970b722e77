package expr

// Op identifies a binary (or the unary minus) operator.
type Op int

// Supported operators, in no particular precedence order.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpNeg // unary minus
)

// Symbol returns the display notation for the operator. Subtraction,
// multiplication, and division use the typographic math symbols rather than
// their ASCII input forms, matching the rendering the step formulas use.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub, OpNeg:
		return "−" // −
	case OpMul:
		return "×" // ×
	case OpDiv:
		return "÷" // ÷
	case OpPow:
		return "^"
	}
	return "?"
}

// Name returns the natural-language name of the operator, used in step
// explanations ("Apply multiplication to the computed values").
func (o Op) Name() string {
	switch o {
	case OpAdd:
		return "addition"
	case OpSub:
		return "subtraction"
	case OpMul:
		return "multiplication"
	case OpDiv:
		return "division"
	case OpPow:
		return "exponentiation"
	case OpNeg:
		return "negation"
	}
	return "unknown"
}

// Node is one node of a parsed expression tree. The concrete kinds are
// Number, Variable, Unary, Binary, and Call.
type Node interface {
	node()
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Variable is a named symbol: a free variable or one of the named constants
// (e, pi, i).
type Variable struct {
	Name string
}

// Unary is a prefix operator application; only unary minus exists in the
// grammar.
type Unary struct {
	Op      Op
	Operand Node
}

// Binary is an infix operator application.
type Binary struct {
	Op    Op
	Left  Node
	Right Node
}

// Call is a function application, e.g. sin(x) or log(100).
type Call struct {
	Name string
	Args []Node
}

func (*Number) node()   {}
func (*Variable) node() {}
func (*Unary) node()    {}
func (*Binary) node()   {}
func (*Call) node()     {}

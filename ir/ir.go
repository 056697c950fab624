package ir

import (
	"fmt"

	"github.com/npillmayer/gll/grammar"
	"github.com/npillmayer/gll/ranges"
)

// InputCheck is a pure function of the current scanner lookahead: it tests
// whether the upcoming input matches one of a set of literals (bucketed by
// length, following the original reference implementation's asymptotics) or
// falls inside one of a set of character-class ranges. IncludesEmpty marks
// a TEST-set check that is also satisfied by end-of-derivation (the
// alternative's suffix is nullable).
type InputCheck struct {
	Literals      map[int][]string
	Ranges        []*ranges.Set
	IncludesEmpty bool
}

// NewLiteralCheck builds the single-literal check LiteralCheck(s).
func NewLiteralCheck(s string) InputCheck {
	return InputCheck{Literals: map[int][]string{len([]rune(s)): {s}}}
}

// NewRangeCheck builds the single-class check RangeCheck(set).
func NewRangeCheck(set *ranges.Set) InputCheck {
	return InputCheck{Ranges: []*ranges.Set{set}}
}

// NodeTarget selects which working register a produced SPPF node is
// assigned to.
type NodeTarget int

const (
	TargetCN NodeTarget = iota
	TargetCR
)

func (t NodeTarget) String() string {
	if t == TargetCR {
		return "c_r"
	}
	return "c_n"
}

// Statement is one instruction of a parse function's straight-line body.
type Statement interface {
	isStatement()
	String() string
}

// Comment is a no-op annotation carried through from grammar analysis,
// purely for readability of dumped IR.
type Comment struct{ Text string }

func (Comment) isStatement()     {}
func (c Comment) String() string { return "// " + c.Text }

// ConditionalCheck guards a nested statement list on an input check or a
// TEST-set check succeeding against the current lookahead.
type ConditionalCheck struct {
	CheckIndex int
	Then       []Statement
}

func (ConditionalCheck) isStatement() {}
func (c ConditionalCheck) String() string {
	return fmt.Sprintf("if check[%d] { %d stmts }", c.CheckIndex, len(c.Then))
}

// InvokeNodeT assigns getNodeT(the terminal matched by CheckIndex) to
// Target, then advances the scanner past the match.
type InvokeNodeT struct {
	CheckIndex int
	Target     NodeTarget
}

func (InvokeNodeT) isStatement() {}
func (s InvokeNodeT) String() string {
	return fmt.Sprintf("%s := getNodeT(check[%d]); advance", s.Target, s.CheckIndex)
}

// InvokeNodeP assigns getNodeP(Slot, c_n, c_r) to Target (always c_n, per
// §4.4 step 3, but kept generalized to match the reference IR's shape).
type InvokeNodeP struct {
	Slot   grammar.Slot
	Target NodeTarget
}

func (InvokeNodeP) isStatement() {}
func (s InvokeNodeP) String() string {
	return fmt.Sprintf("%s := getNodeP(%s, c_n, c_r)", s.Target, s.Slot)
}

// InvokeCreate assigns create(Slot) to c_u.
type InvokeCreate struct {
	Slot grammar.Slot
}

func (InvokeCreate) isStatement() {}
func (s InvokeCreate) String() string {
	return fmt.Sprintf("c_u := create(%s)", s.Slot)
}

// CallFunction transfers control to the parse function for a nonterminal's
// start function (the "goto" of a GLL block ending in a nonterminal).
type CallFunction struct {
	Nonterminal grammar.Nonterminal
}

func (CallFunction) isStatement() {}
func (s CallFunction) String() string {
	return fmt.Sprintf("call F_%s", s.Nonterminal)
}

// InvokeAdd emits add(Slot, c_u, position, c_n) -- used by a nonterminal's
// start function for every alternative whose TEST set matches.
type InvokeAdd struct {
	Slot grammar.Slot
}

func (InvokeAdd) isStatement() {}
func (s InvokeAdd) String() string {
	return fmt.Sprintf("add(%s, c_u, position, c_n)", s.Slot)
}

// InvokePop emits pop().
type InvokePop struct{}

func (InvokePop) isStatement()     {}
func (InvokePop) String() string { return "pop()" }

// Disambiguate evaluates an inline ambiguity check (precede/not-precede, or
// an inline follow/not-follow on a terminal); on failure it aborts the
// current function, adding no descriptor.
type Disambiguate struct {
	CheckIndex int
}

func (Disambiguate) isStatement() {}
func (s Disambiguate) String() string {
	return fmt.Sprintf("disambiguate(check[%d]) or return", s.CheckIndex)
}

// AmbiguityKind discriminates the three ambiguity-check families.
type AmbiguityKind int

const (
	PrecedeKind AmbiguityKind = iota
	FollowKind
	RestrictionKind
)

// AmbiguityCheck is a precede/follow/restriction constraint attached to a
// return slot (if InPop) or evaluated inline at the point of the tag
// (otherwise). Literals is length-bucketed; Negated inverts the match
// result (not-precede / not-follow); restriction checks are never negated
// in this representation (a restriction's payload already names the
// forbidden values).
type AmbiguityCheck struct {
	Slot     grammar.Slot
	Kind     AmbiguityKind
	Literals map[int][]string
	Ranges   []*ranges.Set
	Negated  bool
	InPop    bool
}

// Function is one parse function: a straight-line list of statements,
// corresponding to a GLL block (or a nonterminal's start function).
type Function struct {
	Name string
	Slot grammar.Slot
	Body []Statement
}

// Metadata carries descriptive information about a parser definition.
type Metadata struct {
	Name string
}

// ParserDefinition is the complete, immutable output of lowering a grammar
// and a tag map (see package irgen). It is consumed by package interp.
type ParserDefinition struct {
	Metadata        Metadata
	StartSlot       grammar.Slot
	FinalSlot       grammar.Slot
	SlotInfos       map[grammar.Slot]grammar.SlotInfo
	InputChecks     []InputCheck
	AmbiguityChecks []AmbiguityCheck
	Functions       map[string]*Function
	Goto            map[grammar.Slot]string
	// ChecksBySlot indexes in-pop ambiguity checks by the slot they are
	// registered against (the return slot of the nonterminal they guard).
	ChecksBySlot map[grammar.Slot][]int
}

// New builds an empty ParserDefinition shell; irgen.Build populates it.
func New(name string) *ParserDefinition {
	return &ParserDefinition{
		Metadata:     Metadata{Name: name},
		SlotInfos:    make(map[grammar.Slot]grammar.SlotInfo),
		Functions:    make(map[string]*Function),
		Goto:         make(map[grammar.Slot]string),
		ChecksBySlot: make(map[grammar.Slot][]int),
	}
}

// DeclareFunction registers fn under its own name, wiring every slot of its
// GLL block (here, just its own Slot) to it in the goto map.
func (pd *ParserDefinition) DeclareFunction(fn *Function) {
	pd.Functions[fn.Name] = fn
	pd.Goto[fn.Slot] = fn.Name
	tracer().Debugf("ir.DeclareFunction: %s (slot %s, %d statements)", fn.Name, fn.Slot, len(fn.Body))
}

// DeclareInputCheck interns check and returns its index.
func (pd *ParserDefinition) DeclareInputCheck(check InputCheck) int {
	pd.InputChecks = append(pd.InputChecks, check)
	return len(pd.InputChecks) - 1
}

// DeclareAmbiguityCheck interns check, indexes it by slot if it is an
// in-pop check, and returns its index.
func (pd *ParserDefinition) DeclareAmbiguityCheck(check AmbiguityCheck) int {
	pd.AmbiguityChecks = append(pd.AmbiguityChecks, check)
	idx := len(pd.AmbiguityChecks) - 1
	if check.InPop {
		pd.ChecksBySlot[check.Slot] = append(pd.ChecksBySlot[check.Slot], idx)
	}
	return idx
}

// SlotInfo implements engine.SlotInfoProvider, returning the alpha/beta
// predicates computed for slot at grammar-analysis time and carried
// verbatim into the IR by irgen.Build.
func (pd *ParserDefinition) SlotInfo(slot grammar.Slot) grammar.SlotInfo {
	return pd.SlotInfos[slot]
}

// FunctionFor resolves the parse function registered for slot, panicking
// with a diagnostic if none exists -- a missing goto entry is an internal
// invariant violation, never a user-facing error.
func (pd *ParserDefinition) FunctionFor(slot grammar.Slot) *Function {
	name, ok := pd.Goto[slot]
	if !ok {
		panic(fmt.Sprintf("ir: no goto entry for grammar slot %s", slot))
	}
	fn, ok := pd.Functions[name]
	if !ok {
		panic(fmt.Sprintf("ir: goto entry %s for slot %s names no function", name, slot))
	}
	return fn
}

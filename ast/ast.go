// Package ast declares the tree produced by the parser. Nodes are built once,
// owned exclusively by their parent and never mutated after attachment.
package ast

type Pos struct {
	Line   int
	Column int
}

func (p Pos) Position() Pos {
	return p
}

type Node interface {
	Position() Pos
}

type Stmt interface {
	Node
	stmtNode()
}

type Expr interface {
	Node
	exprNode()
}

type Program struct {
	Pos
	Body []Stmt
}

// statements

type FunctionDef struct {
	Pos
	Decorators []Expr
	Name       string
	Params     []*Param
	Returns    Expr // optional
	Body       []Stmt
}

type Param struct {
	Pos
	Name       string
	Annotation Expr // optional
	Default    Expr // optional
}

type ClassDef struct {
	Pos
	Decorators []Expr
	Name       string
	Bases      []Expr
	Body       []Stmt
}

type If struct {
	Pos
	Cond  Expr
	Body  []Stmt
	Elifs []*Elif
	Else  []Stmt
}

type Elif struct {
	Pos
	Cond Expr
	Body []Stmt
}

type For struct {
	Pos
	Target string
	Iter   Expr
	Body   []Stmt
}

type While struct {
	Pos
	Cond Expr
	Body []Stmt
}

type Try struct {
	Pos
	Body     []Stmt
	Handlers []*Handler
	Finally  []Stmt
}

// Handler is one except clause. Type and Name are empty when absent.
type Handler struct {
	Pos
	Type string
	Name string
	Body []Stmt
}

type With struct {
	Pos
	Items []*WithItem
	Body  []Stmt
}

type WithItem struct {
	Context Expr
	Target  string
}

type Return struct {
	Pos
	Value Expr // optional
}

type Yield struct {
	Pos
	Value Expr // optional
}

type Raise struct {
	Pos
	Exc Expr // optional
}

type Break struct {
	Pos
}

type Continue struct {
	Pos
}

type Global struct {
	Pos
	Names []string
}

type Import struct {
	Pos
	Module string
	Alias  string
}

type ImportFrom struct {
	Pos
	Module string
	Names  []*ImportName
}

type ImportName struct {
	Name  string
	Alias string
}

type ExprStmt struct {
	Pos
	X Expr
}

type Assign struct {
	Pos
	Targets []Expr
	Value   Expr
}

type AugAssign struct {
	Pos
	Target Expr
	Op     string
	Value  Expr
}

// expressions

type BinaryOp struct {
	Pos
	Left  Expr
	Op    string
	Right Expr
}

type UnaryOp struct {
	Pos
	Op      string
	Operand Expr
}

// Compare is a comparison chain: Left Ops[0] Comparators[0] Ops[1] ...
type Compare struct {
	Pos
	Left        Expr
	Ops         []string
	Comparators []Expr
}

type BoolOp struct {
	Pos
	Op     string
	Values []Expr
}

type Call struct {
	Pos
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

type Keyword struct {
	Name  string
	Value Expr
}

type Attribute struct {
	Pos
	Value Expr
	Attr  string
}

type Subscript struct {
	Pos
	Value Expr
	Index Expr
}

type Name struct {
	Pos
	ID string
}

type LiteralKind uint8

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralString
	LiteralBool
	LiteralNone
)

// Literal holds a constant. Value is *big.Int, float64, string, bool or nil
// according to Kind.
type Literal struct {
	Pos
	Kind  LiteralKind
	Value any
}

// FString is an interpolated string. Fields are ordinary expressions.
type FString struct {
	Pos
	Parts []FStringPart
}

// FStringPart is literal text when Value is nil, otherwise a replacement
// field with an optional conversion ("r", "s" or "a") and format spec.
type FStringPart struct {
	Text       string
	Value      Expr
	Conversion string
	Spec       []FStringPart
}

type List struct {
	Pos
	Elts []Expr
}

type Dict struct {
	Pos
	Keys   []Expr
	Values []Expr
}

type Lambda struct {
	Pos
	Params []string
	Body   Expr
}

type IfExp struct {
	Pos
	Test   Expr
	Body   Expr
	OrElse Expr
}

func (*FunctionDef) stmtNode() {}
func (*ClassDef) stmtNode()    {}
func (*If) stmtNode()          {}
func (*For) stmtNode()         {}
func (*While) stmtNode()       {}
func (*Try) stmtNode()         {}
func (*With) stmtNode()        {}
func (*Return) stmtNode()      {}
func (*Yield) stmtNode()       {}
func (*Raise) stmtNode()       {}
func (*Break) stmtNode()       {}
func (*Continue) stmtNode()    {}
func (*Global) stmtNode()      {}
func (*Import) stmtNode()      {}
func (*ImportFrom) stmtNode()  {}
func (*ExprStmt) stmtNode()    {}
func (*Assign) stmtNode()      {}
func (*AugAssign) stmtNode()   {}

func (*BinaryOp) exprNode()  {}
func (*UnaryOp) exprNode()   {}
func (*Compare) exprNode()   {}
func (*BoolOp) exprNode()    {}
func (*Call) exprNode()      {}
func (*Attribute) exprNode() {}
func (*Subscript) exprNode() {}
func (*Name) exprNode()      {}
func (*Literal) exprNode()   {}
func (*FString) exprNode()   {}
func (*List) exprNode()      {}
func (*Dict) exprNode()      {}
func (*Lambda) exprNode()    {}
func (*IfExp) exprNode()     {}

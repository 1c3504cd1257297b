package ast

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a tree in depth-first source order.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {

	case *Program:
		walkStmts(n.Body, v)

	case *FunctionDef:
		walkExprs(n.Decorators, v)
		for _, param := range n.Params {
			Walk(param, v)
		}
		Walk(n.Returns, v)
		walkStmts(n.Body, v)

	case *Param:
		Walk(n.Annotation, v)
		Walk(n.Default, v)

	case *ClassDef:
		walkExprs(n.Decorators, v)
		walkExprs(n.Bases, v)
		walkStmts(n.Body, v)

	case *If:
		Walk(n.Cond, v)
		walkStmts(n.Body, v)
		for _, elif := range n.Elifs {
			Walk(elif, v)
		}
		walkStmts(n.Else, v)

	case *Elif:
		Walk(n.Cond, v)
		walkStmts(n.Body, v)

	case *For:
		Walk(n.Iter, v)
		walkStmts(n.Body, v)

	case *While:
		Walk(n.Cond, v)
		walkStmts(n.Body, v)

	case *Try:
		walkStmts(n.Body, v)
		for _, handler := range n.Handlers {
			Walk(handler, v)
		}
		walkStmts(n.Finally, v)

	case *Handler:
		walkStmts(n.Body, v)

	case *With:
		for _, item := range n.Items {
			Walk(item.Context, v)
		}
		walkStmts(n.Body, v)

	case *Return:
		Walk(n.Value, v)

	case *Yield:
		Walk(n.Value, v)

	case *Raise:
		Walk(n.Exc, v)

	case *ExprStmt:
		Walk(n.X, v)

	case *Assign:
		walkExprs(n.Targets, v)
		Walk(n.Value, v)

	case *AugAssign:
		Walk(n.Target, v)
		Walk(n.Value, v)

	case *BinaryOp:
		Walk(n.Left, v)
		Walk(n.Right, v)

	case *UnaryOp:
		Walk(n.Operand, v)

	case *Compare:
		Walk(n.Left, v)
		walkExprs(n.Comparators, v)

	case *BoolOp:
		walkExprs(n.Values, v)

	case *Call:
		Walk(n.Func, v)
		walkExprs(n.Args, v)
		for _, kw := range n.Keywords {
			Walk(kw.Value, v)
		}

	case *Attribute:
		Walk(n.Value, v)

	case *Subscript:
		Walk(n.Value, v)
		Walk(n.Index, v)

	case *FString:
		walkParts(n.Parts, v)

	case *List:
		walkExprs(n.Elts, v)

	case *Dict:
		for i := range n.Keys {
			Walk(n.Keys[i], v)
			Walk(n.Values[i], v)
		}

	case *Lambda:
		Walk(n.Body, v)

	case *IfExp:
		Walk(n.Body, v)
		Walk(n.Test, v)
		Walk(n.OrElse, v)

	}
}

func walkParts(parts []FStringPart, v Visitor) {
	for _, part := range parts {
		if part.Value != nil {
			Walk(part.Value, v)
		}
		walkParts(part.Spec, v)
	}
}

func walkStmts(stmts []Stmt, v Visitor) {
	for _, stmt := range stmts {
		Walk(stmt, v)
	}
}

func walkExprs(exprs []Expr, v Visitor) {
	for _, expr := range exprs {
		Walk(expr, v)
	}
}

// Count returns the number of nodes reachable from node, node included.
func Count(node Node) int {
	n := 0
	Walk(node, func(Node) bool {
		n++
		return true
	})
	return n
}

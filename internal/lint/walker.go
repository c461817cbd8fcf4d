package lint

import (
	"sglint/internal/diag"
	"sglint/internal/tree"
)

// Walker performs the single deterministic pre-order traversal of a
// compilation unit, offering every node exactly once to every enabled rule.
//
// Rules are independent: all of them see every node, regardless of what
// earlier rules matched. A panicking matcher is contained and contributes
// nothing for that node; the traversal itself never fails.
type Walker struct {
	rules []Rule
	ctx   *Context
	sink  *diag.Sink
}

// NewWalker creates a walker over the registry's rules, emitting into sink.
func NewWalker(reg *Registry, ctx *Context, sink *diag.Sink) *Walker {
	return &Walker{rules: reg.Rules(), ctx: ctx, sink: sink}
}

// Traverse visits the whole unit.
func (w *Walker) Traverse(unit *tree.Unit) {
	if unit == nil {
		return
	}
	for _, d := range unit.Decls {
		w.walkDecl(d)
	}
}

// offer presents one node to every rule in registration order. Rule id and
// severity are stamped here so a rule cannot emit under a foreign identity
// or at an unconfigured level.
func (w *Walker) offer(n tree.Node) {
	for _, r := range w.rules {
		ds := safeMatch(r, n, w.ctx)
		for i := range ds {
			ds[i].Rule = r.ID()
			ds[i].Severity = r.Severity()
		}
		w.sink.AddAll(ds)
	}
}

// safeMatch runs one matcher, converting a panic into "no match". Matchers
// are required to be total; this is the engine-side guarantee that a broken
// one cannot abort the host's traversal.
func safeMatch(r Rule, n tree.Node, ctx *Context) (ds []diag.Diagnostic) {
	defer func() {
		if recover() != nil {
			ds = nil
		}
	}()
	return r.Match(n, ctx)
}

func (w *Walker) walkDecl(d *tree.Decl) {
	if d == nil {
		return
	}
	w.offer(d)

	switch data := d.Data.(type) {
	case tree.FuncData:
		w.walkExpr(data.Body)
	case tree.InterfaceData:
		for _, m := range data.Methods {
			w.walkDecl(m)
		}
	case tree.ImplData:
		for _, item := range data.Items {
			w.walkDecl(item)
		}
	case tree.ConstData:
		w.walkExpr(data.Value)
	case tree.TypeData:
		// no children
	}
}

func (w *Walker) walkStmt(s *tree.Stmt) {
	if s == nil {
		return
	}
	w.offer(s)

	switch data := s.Data.(type) {
	case tree.LetData:
		w.walkExpr(data.Init)
	case tree.ExprStmtData:
		w.walkExpr(data.Expr)
	case tree.AssignData:
		w.walkExpr(data.LHS)
		w.walkExpr(data.RHS)
	case tree.ReturnData:
		w.walkExpr(data.Value)
	}
}

func (w *Walker) walkExpr(e *tree.Expr) {
	if e == nil {
		return
	}
	w.offer(e)

	switch data := e.Data.(type) {
	case tree.LiteralData, tree.VarRefData:
		// leaves
	case tree.UnaryOpData:
		w.walkExpr(data.Operand)
	case tree.BinaryOpData:
		w.walkExpr(data.Left)
		w.walkExpr(data.Right)
	case tree.CallData:
		w.walkExpr(data.Callee)
		for _, a := range data.Args {
			w.walkExpr(a)
		}
	case tree.MethodCallData:
		w.walkExpr(data.Receiver)
		for _, a := range data.Args {
			w.walkExpr(a)
		}
	case tree.FieldAccessData:
		w.walkExpr(data.Object)
	case tree.IndexData:
		w.walkExpr(data.Object)
		w.walkExpr(data.Index)
	case tree.RangeData:
		w.walkExpr(data.Low)
		w.walkExpr(data.High)
	case tree.IfData:
		w.walkExpr(data.Cond)
		w.walkExpr(data.Then)
		w.walkExpr(data.Else)
	case tree.ClosureData:
		w.walkExpr(data.Body)
	case tree.BlockData:
		for _, s := range data.Stmts {
			w.walkStmt(s)
		}
		w.walkExpr(data.Tail)
	}
}

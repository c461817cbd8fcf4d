package wire

import (
	"fmt"

	"sglint/internal/source"
	"sglint/internal/tree"
)

type declW struct {
	Kind uint8  `msgpack:"k"`
	Span spanW  `msgpack:"s"`
	Name string `msgpack:"n,omitempty"`

	Func  *funcW  `msgpack:"fn,omitempty"`
	Iface *ifaceW `msgpack:"if,omitempty"`
	Impl  *implW  `msgpack:"im,omitempty"`
	Const *constW `msgpack:"c,omitempty"`
}

type funcW struct {
	Unsafe bool     `msgpack:"u"`
	Params []paramW `msgpack:"p,omitempty"`
	Body   *exprW   `msgpack:"b,omitempty"`
}

type paramW struct {
	Name string    `msgpack:"n"`
	Ty   *typeRefW `msgpack:"t,omitempty"`
	Span spanW     `msgpack:"s"`
}

type ifaceW struct {
	Unsafe  bool     `msgpack:"u"`
	Def     uint32   `msgpack:"d"`
	Methods []*declW `msgpack:"m,omitempty"`
}

type implW struct {
	Unsafe bool     `msgpack:"u"`
	Iface  uint32   `msgpack:"i"`
	Items  []*declW `msgpack:"it,omitempty"`
}

type constW struct {
	Ty    *typeRefW `msgpack:"t,omitempty"`
	Value *exprW    `msgpack:"v,omitempty"`
}

type typeRefW struct {
	Name string `msgpack:"n"`
	Span spanW  `msgpack:"s"`
}

type patternW struct {
	Kind  uint8      `msgpack:"k"`
	Span  spanW      `msgpack:"s"`
	Name  string     `msgpack:"n,omitempty"`
	Elems []patternW `msgpack:"e,omitempty"`
}

type stmtW struct {
	Kind uint8 `msgpack:"k"`
	Span spanW `msgpack:"s"`

	Let    *letW    `msgpack:"l,omitempty"`
	Expr   *exprW   `msgpack:"e,omitempty"`
	Assign *assignW `msgpack:"a,omitempty"`
	Ret    *retW    `msgpack:"r,omitempty"`
}

type letW struct {
	Pat  patternW  `msgpack:"p"`
	Ty   *typeRefW `msgpack:"t,omitempty"`
	Init *exprW    `msgpack:"i,omitempty"`
}

type assignW struct {
	LHS *exprW `msgpack:"l"`
	RHS *exprW `msgpack:"r"`
}

type retW struct {
	Value *exprW `msgpack:"v,omitempty"`
}

type exprW struct {
	Kind uint8 `msgpack:"k"`
	Span spanW `msgpack:"s"`

	Lit     *litW     `msgpack:"li,omitempty"`
	Var     *varW     `msgpack:"v,omitempty"`
	Unary   *unaryW   `msgpack:"un,omitempty"`
	Binary  *binaryW  `msgpack:"bi,omitempty"`
	Call    *callW    `msgpack:"c,omitempty"`
	Method  *methodW  `msgpack:"m,omitempty"`
	Field   *fieldW   `msgpack:"f,omitempty"`
	Index   *indexW   `msgpack:"ix,omitempty"`
	Range   *rangeW   `msgpack:"rg,omitempty"`
	If      *ifW      `msgpack:"if,omitempty"`
	Closure *closureW `msgpack:"cl,omitempty"`
	Block   *blockW   `msgpack:"bl,omitempty"`
}

type litW struct {
	Kind uint8  `msgpack:"k"`
	Text string `msgpack:"t"`
}

type varW struct {
	Name string `msgpack:"n"`
	Def  uint32 `msgpack:"d"`
}

type unaryW struct {
	Op      string `msgpack:"o"`
	Operand *exprW `msgpack:"e"`
}

type binaryW struct {
	Op    string `msgpack:"o"`
	Left  *exprW `msgpack:"l"`
	Right *exprW `msgpack:"r"`
}

type callW struct {
	Callee *exprW   `msgpack:"c"`
	Args   []*exprW `msgpack:"a,omitempty"`
	Def    uint32   `msgpack:"d"`
}

type methodW struct {
	Method   string   `msgpack:"m"`
	Receiver *exprW   `msgpack:"r"`
	Args     []*exprW `msgpack:"a,omitempty"`
	Def      uint32   `msgpack:"d"`
}

type fieldW struct {
	Object *exprW `msgpack:"o"`
	Name   string `msgpack:"n"`
}

type indexW struct {
	Object *exprW `msgpack:"o"`
	Index  *exprW `msgpack:"i"`
}

type rangeW struct {
	Kind uint8  `msgpack:"k"`
	Low  *exprW `msgpack:"l,omitempty"`
	High *exprW `msgpack:"h,omitempty"`
}

type ifW struct {
	Cond *exprW `msgpack:"c"`
	Then *exprW `msgpack:"t"`
	Else *exprW `msgpack:"e,omitempty"`
}

type closureW struct {
	Params    []closureParamW `msgpack:"p,omitempty"`
	Body      *exprW          `msgpack:"b"`
	Coroutine bool            `msgpack:"co"`
}

type closureParamW struct {
	Pat    patternW `msgpack:"p"`
	TySpan spanW    `msgpack:"t"`
}

type blockW struct {
	Stmts  []*stmtW `msgpack:"st,omitempty"`
	Tail   *exprW   `msgpack:"tl,omitempty"`
	Safety uint8    `msgpack:"sf"`
}

func encodeUnit(u *tree.Unit) unitW {
	w := unitW{Name: u.Name, File: uint32(u.File)}
	for _, d := range u.Decls {
		w.Decls = append(w.Decls, encodeDecl(d))
	}
	return w
}

func decodeUnit(w *unitW) (*tree.Unit, error) {
	u := &tree.Unit{Name: w.Name, File: source.FileID(w.File)}
	for _, d := range w.Decls {
		decl, err := decodeDecl(d)
		if err != nil {
			return nil, err
		}
		u.Decls = append(u.Decls, decl)
	}
	return u, nil
}

func encodeDecl(d *tree.Decl) *declW {
	if d == nil {
		return nil
	}
	w := &declW{Kind: uint8(d.Kind), Span: encodeSpan(d.Span), Name: d.Name}
	switch data := d.Data.(type) {
	case tree.FuncData:
		fw := &funcW{Unsafe: data.Unsafe, Body: encodeExpr(data.Body)}
		for _, p := range data.Params {
			fw.Params = append(fw.Params, paramW{Name: p.Name, Ty: encodeTypeRef(p.Ty), Span: encodeSpan(p.Span)})
		}
		w.Func = fw
	case tree.InterfaceData:
		iw := &ifaceW{Unsafe: data.Unsafe, Def: uint32(data.Def)}
		for _, m := range data.Methods {
			iw.Methods = append(iw.Methods, encodeDecl(m))
		}
		w.Iface = iw
	case tree.ImplData:
		iw := &implW{Unsafe: data.Unsafe, Iface: uint32(data.Interface)}
		for _, item := range data.Items {
			iw.Items = append(iw.Items, encodeDecl(item))
		}
		w.Impl = iw
	case tree.ConstData:
		w.Const = &constW{Ty: encodeTypeRef(data.Ty), Value: encodeExpr(data.Value)}
	case tree.TypeData:
		// kind tag alone is enough
	}
	return w
}

func decodeDecl(w *declW) (*tree.Decl, error) {
	if w == nil {
		return nil, nil
	}
	d := &tree.Decl{Kind: tree.DeclKind(w.Kind), Span: decodeSpan(w.Span), Name: w.Name}
	switch d.Kind {
	case tree.DeclFunc:
		if w.Func == nil {
			return nil, fmt.Errorf("decl %q: missing function payload", w.Name)
		}
		body, err := decodeExpr(w.Func.Body)
		if err != nil {
			return nil, err
		}
		data := tree.FuncData{Unsafe: w.Func.Unsafe, Body: body}
		for _, p := range w.Func.Params {
			data.Params = append(data.Params, tree.Param{
				Name: p.Name, Ty: decodeTypeRef(p.Ty), Span: decodeSpan(p.Span),
			})
		}
		d.Data = data
	case tree.DeclInterface:
		if w.Iface == nil {
			return nil, fmt.Errorf("decl %q: missing interface payload", w.Name)
		}
		data := tree.InterfaceData{Unsafe: w.Iface.Unsafe, Def: tree.DefID(w.Iface.Def)}
		for _, m := range w.Iface.Methods {
			md, err := decodeDecl(m)
			if err != nil {
				return nil, err
			}
			data.Methods = append(data.Methods, md)
		}
		d.Data = data
	case tree.DeclImpl:
		if w.Impl == nil {
			return nil, fmt.Errorf("decl %q: missing impl payload", w.Name)
		}
		data := tree.ImplData{Unsafe: w.Impl.Unsafe, Interface: tree.DefID(w.Impl.Iface)}
		for _, item := range w.Impl.Items {
			id, err := decodeDecl(item)
			if err != nil {
				return nil, err
			}
			data.Items = append(data.Items, id)
		}
		d.Data = data
	case tree.DeclConst:
		if w.Const == nil {
			return nil, fmt.Errorf("decl %q: missing const payload", w.Name)
		}
		value, err := decodeExpr(w.Const.Value)
		if err != nil {
			return nil, err
		}
		d.Data = tree.ConstData{Ty: decodeTypeRef(w.Const.Ty), Value: value}
	case tree.DeclType:
		d.Data = tree.TypeData{}
	default:
		return nil, fmt.Errorf("decl %q: unknown kind %d", w.Name, w.Kind)
	}
	return d, nil
}

func encodeTypeRef(t *tree.TypeRef) *typeRefW {
	if t == nil {
		return nil
	}
	return &typeRefW{Name: t.Name, Span: encodeSpan(t.Span)}
}

func decodeTypeRef(w *typeRefW) *tree.TypeRef {
	if w == nil {
		return nil
	}
	return &tree.TypeRef{Name: w.Name, Span: decodeSpan(w.Span)}
}

func encodePattern(p tree.Pattern) patternW {
	w := patternW{Kind: uint8(p.Kind), Span: encodeSpan(p.Span), Name: p.Name}
	for _, e := range p.Elems {
		w.Elems = append(w.Elems, encodePattern(e))
	}
	return w
}

func decodePattern(w patternW) tree.Pattern {
	p := tree.Pattern{Kind: tree.PatternKind(w.Kind), Span: decodeSpan(w.Span), Name: w.Name}
	for _, e := range w.Elems {
		p.Elems = append(p.Elems, decodePattern(e))
	}
	return p
}

func encodeStmt(s *tree.Stmt) *stmtW {
	if s == nil {
		return nil
	}
	w := &stmtW{Kind: uint8(s.Kind), Span: encodeSpan(s.Span)}
	switch data := s.Data.(type) {
	case tree.LetData:
		w.Let = &letW{Pat: encodePattern(data.Pat), Ty: encodeTypeRef(data.Ty), Init: encodeExpr(data.Init)}
	case tree.ExprStmtData:
		w.Expr = encodeExpr(data.Expr)
	case tree.AssignData:
		w.Assign = &assignW{LHS: encodeExpr(data.LHS), RHS: encodeExpr(data.RHS)}
	case tree.ReturnData:
		w.Ret = &retW{Value: encodeExpr(data.Value)}
	}
	return w
}

func decodeStmt(w *stmtW) (*tree.Stmt, error) {
	if w == nil {
		return nil, nil
	}
	s := &tree.Stmt{Kind: tree.StmtKind(w.Kind), Span: decodeSpan(w.Span)}
	switch s.Kind {
	case tree.StmtLet:
		if w.Let == nil {
			return nil, fmt.Errorf("let statement: missing payload")
		}
		init, err := decodeExpr(w.Let.Init)
		if err != nil {
			return nil, err
		}
		s.Data = tree.LetData{Pat: decodePattern(w.Let.Pat), Ty: decodeTypeRef(w.Let.Ty), Init: init}
	case tree.StmtExpr:
		e, err := decodeExpr(w.Expr)
		if err != nil {
			return nil, err
		}
		s.Data = tree.ExprStmtData{Expr: e}
	case tree.StmtAssign:
		if w.Assign == nil {
			return nil, fmt.Errorf("assignment: missing payload")
		}
		lhs, err := decodeExpr(w.Assign.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := decodeExpr(w.Assign.RHS)
		if err != nil {
			return nil, err
		}
		s.Data = tree.AssignData{LHS: lhs, RHS: rhs}
	case tree.StmtReturn:
		var value *tree.Expr
		if w.Ret != nil {
			var err error
			value, err = decodeExpr(w.Ret.Value)
			if err != nil {
				return nil, err
			}
		}
		s.Data = tree.ReturnData{Value: value}
	default:
		return nil, fmt.Errorf("unknown statement kind %d", w.Kind)
	}
	return s, nil
}

func encodeExprs(es []*tree.Expr) []*exprW {
	if len(es) == 0 {
		return nil
	}
	out := make([]*exprW, 0, len(es))
	for _, e := range es {
		out = append(out, encodeExpr(e))
	}
	return out
}

func decodeExprs(ws []*exprW) ([]*tree.Expr, error) {
	if len(ws) == 0 {
		return nil, nil
	}
	out := make([]*tree.Expr, 0, len(ws))
	for _, w := range ws {
		e, err := decodeExpr(w)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func encodeExpr(e *tree.Expr) *exprW {
	if e == nil {
		return nil
	}
	w := &exprW{Kind: uint8(e.Kind), Span: encodeSpan(e.Span)}
	switch data := e.Data.(type) {
	case tree.LiteralData:
		w.Lit = &litW{Kind: uint8(data.Kind), Text: data.Text}
	case tree.VarRefData:
		w.Var = &varW{Name: data.Name, Def: uint32(data.Def)}
	case tree.UnaryOpData:
		w.Unary = &unaryW{Op: data.Op, Operand: encodeExpr(data.Operand)}
	case tree.BinaryOpData:
		w.Binary = &binaryW{Op: data.Op, Left: encodeExpr(data.Left), Right: encodeExpr(data.Right)}
	case tree.CallData:
		w.Call = &callW{Callee: encodeExpr(data.Callee), Args: encodeExprs(data.Args), Def: uint32(data.Def)}
	case tree.MethodCallData:
		w.Method = &methodW{Method: data.Method, Receiver: encodeExpr(data.Receiver), Args: encodeExprs(data.Args), Def: uint32(data.Def)}
	case tree.FieldAccessData:
		w.Field = &fieldW{Object: encodeExpr(data.Object), Name: data.FieldName}
	case tree.IndexData:
		w.Index = &indexW{Object: encodeExpr(data.Object), Index: encodeExpr(data.Index)}
	case tree.RangeData:
		w.Range = &rangeW{Kind: uint8(data.Kind), Low: encodeExpr(data.Low), High: encodeExpr(data.High)}
	case tree.IfData:
		w.If = &ifW{Cond: encodeExpr(data.Cond), Then: encodeExpr(data.Then), Else: encodeExpr(data.Else)}
	case tree.ClosureData:
		cw := &closureW{Body: encodeExpr(data.Body), Coroutine: data.Coroutine}
		for _, p := range data.Params {
			cw.Params = append(cw.Params, closureParamW{Pat: encodePattern(p.Pat), TySpan: encodeSpan(p.TySpan)})
		}
		w.Closure = cw
	case tree.BlockData:
		bw := &blockW{Tail: encodeExpr(data.Tail), Safety: uint8(data.Safety)}
		for _, s := range data.Stmts {
			bw.Stmts = append(bw.Stmts, encodeStmt(s))
		}
		w.Block = bw
	}
	return w
}

func decodeExpr(w *exprW) (*tree.Expr, error) {
	if w == nil {
		return nil, nil
	}
	e := &tree.Expr{Kind: tree.ExprKind(w.Kind), Span: decodeSpan(w.Span)}
	switch e.Kind {
	case tree.ExprLiteral:
		if w.Lit == nil {
			return nil, fmt.Errorf("literal: missing payload")
		}
		e.Data = tree.LiteralData{Kind: tree.LiteralKind(w.Lit.Kind), Text: w.Lit.Text}
	case tree.ExprVarRef:
		if w.Var == nil {
			return nil, fmt.Errorf("variable reference: missing payload")
		}
		e.Data = tree.VarRefData{Name: w.Var.Name, Def: tree.DefID(w.Var.Def)}
	case tree.ExprUnaryOp:
		if w.Unary == nil {
			return nil, fmt.Errorf("unary op: missing payload")
		}
		operand, err := decodeExpr(w.Unary.Operand)
		if err != nil {
			return nil, err
		}
		e.Data = tree.UnaryOpData{Op: w.Unary.Op, Operand: operand}
	case tree.ExprBinaryOp:
		if w.Binary == nil {
			return nil, fmt.Errorf("binary op: missing payload")
		}
		left, err := decodeExpr(w.Binary.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(w.Binary.Right)
		if err != nil {
			return nil, err
		}
		e.Data = tree.BinaryOpData{Op: w.Binary.Op, Left: left, Right: right}
	case tree.ExprCall:
		if w.Call == nil {
			return nil, fmt.Errorf("call: missing payload")
		}
		callee, err := decodeExpr(w.Call.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprs(w.Call.Args)
		if err != nil {
			return nil, err
		}
		e.Data = tree.CallData{Callee: callee, Args: args, Def: tree.DefID(w.Call.Def)}
	case tree.ExprMethodCall:
		if w.Method == nil {
			return nil, fmt.Errorf("method call: missing payload")
		}
		recv, err := decodeExpr(w.Method.Receiver)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprs(w.Method.Args)
		if err != nil {
			return nil, err
		}
		e.Data = tree.MethodCallData{Method: w.Method.Method, Receiver: recv, Args: args, Def: tree.DefID(w.Method.Def)}
	case tree.ExprFieldAccess:
		if w.Field == nil {
			return nil, fmt.Errorf("field access: missing payload")
		}
		obj, err := decodeExpr(w.Field.Object)
		if err != nil {
			return nil, err
		}
		e.Data = tree.FieldAccessData{Object: obj, FieldName: w.Field.Name}
	case tree.ExprIndex:
		if w.Index == nil {
			return nil, fmt.Errorf("index: missing payload")
		}
		obj, err := decodeExpr(w.Index.Object)
		if err != nil {
			return nil, err
		}
		idx, err := decodeExpr(w.Index.Index)
		if err != nil {
			return nil, err
		}
		e.Data = tree.IndexData{Object: obj, Index: idx}
	case tree.ExprRange:
		if w.Range == nil {
			return nil, fmt.Errorf("range: missing payload")
		}
		low, err := decodeExpr(w.Range.Low)
		if err != nil {
			return nil, err
		}
		high, err := decodeExpr(w.Range.High)
		if err != nil {
			return nil, err
		}
		e.Data = tree.RangeData{Kind: tree.RangeKind(w.Range.Kind), Low: low, High: high}
	case tree.ExprIf:
		if w.If == nil {
			return nil, fmt.Errorf("if: missing payload")
		}
		cond, err := decodeExpr(w.If.Cond)
		if err != nil {
			return nil, err
		}
		then, err := decodeExpr(w.If.Then)
		if err != nil {
			return nil, err
		}
		els, err := decodeExpr(w.If.Else)
		if err != nil {
			return nil, err
		}
		e.Data = tree.IfData{Cond: cond, Then: then, Else: els}
	case tree.ExprClosure:
		if w.Closure == nil {
			return nil, fmt.Errorf("closure: missing payload")
		}
		body, err := decodeExpr(w.Closure.Body)
		if err != nil {
			return nil, err
		}
		data := tree.ClosureData{Body: body, Coroutine: w.Closure.Coroutine}
		for _, p := range w.Closure.Params {
			data.Params = append(data.Params, tree.ClosureParam{
				Pat: decodePattern(p.Pat), TySpan: decodeSpan(p.TySpan),
			})
		}
		e.Data = data
	case tree.ExprBlock:
		if w.Block == nil {
			return nil, fmt.Errorf("block: missing payload")
		}
		tail, err := decodeExpr(w.Block.Tail)
		if err != nil {
			return nil, err
		}
		data := tree.BlockData{Tail: tail, Safety: tree.BlockSafety(w.Block.Safety)}
		for _, s := range w.Block.Stmts {
			st, err := decodeStmt(s)
			if err != nil {
				return nil, err
			}
			data.Stmts = append(data.Stmts, st)
		}
		e.Data = data
	default:
		return nil, fmt.Errorf("unknown expression kind %d", w.Kind)
	}
	return e, nil
}

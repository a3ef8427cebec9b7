package resolver

import (
	"github.com/gallium-lang/gallium/internal/ast"
	"github.com/gallium-lang/gallium/internal/diagnostic"
)

// Resolver is Phase 2 (§4.3): given the global table Phase 1 built, it
// walks every declaration's types, statements, and expressions, replacing
// every IdentifierExpr and UnqualifiedUserDefinedType/
// UnqualifiedDynInterfaceType with its resolved form, or an error node
// plus a diagnostic when resolution fails.
type Resolver struct {
	table    *GlobalTable
	reporter diagnostic.Reporter
	scopes   *ScopeStack
}

// NewResolver builds a Phase 2 resolver over a Phase 1 table, with
// same-scope-only shadow checking.
func NewResolver(table *GlobalTable, reporter diagnostic.Reporter) *Resolver {
	return &Resolver{table: table, reporter: reporter, scopes: NewScopeStack()}
}

// NewResolverWithConfig builds a Phase 2 resolver whose shadow checking
// follows strictShadowing — internal/pipeline.Config's StrictShadowing
// toggle threads through to here.
func NewResolverWithConfig(table *GlobalTable, reporter diagnostic.Reporter, strictShadowing bool) *Resolver {
	scopes := NewScopeStack()
	if strictShadowing {
		scopes = NewScopeStackStrict()
	}

	return &Resolver{table: table, reporter: reporter, scopes: scopes}
}

// Resolve runs Phase 2 over every declaration in prog in place.
func (r *Resolver) Resolve(prog *ast.Program) {
	for _, decl := range prog.Declarations {
		r.resolveDeclaration(decl)
	}
}

func (r *Resolver) resolveDeclaration(decl ast.Declaration) {
	switch d := decl.(type) {
	case *ast.FunctionDeclaration:
		r.resolveFunctionLike(d.Proto, nil, d.Body)
	case *ast.MethodDeclaration:
		r.resolveFunctionLike(d.Proto, d.ReceiverType, d.Body)
	case *ast.ExternalFnDeclaration:
		r.resolvePrototypeTypes(d.Proto)
	case *ast.ExternalBlockDeclaration:
		for _, fn := range d.Decls {
			r.resolvePrototypeTypes(fn.Proto)
		}
	case *ast.StructDeclaration:
		for i := range d.Fields {
			d.Fields[i].Type = r.resolveType(d.Fields[i].Type)
		}
	case *ast.TypeAliasDeclaration:
		d.Aliased = r.resolveType(d.Aliased)
	case *ast.ConstantDeclaration:
		if d.TypeHint != nil {
			d.TypeHint = r.resolveType(d.TypeHint)
		}

		d.Value = r.resolveExpr(d.Value)
	case *ast.ClassDeclaration, *ast.ImportDeclaration, *ast.ImportFromDeclaration, *ast.ErrorDeclaration:
		// ClassDeclaration never reaches here with a live class body — Phase
		// 1 already substituted an ErrorDeclaration for it (code 99).
		// Imports have nothing to resolve in a single-module Program.
	}
}

// resolveFunctionLike resolves a prototype's types and, if body is
// non-nil (it is nil for an extern), its body in a fresh scope seeded
// with the parameters and, for a method, an implicit self binding.
func (r *Resolver) resolveFunctionLike(proto *ast.Prototype, receiver ast.Type, body *ast.BlockExpr) {
	r.resolvePrototypeTypes(proto)

	if body == nil {
		return
	}

	r.scopes.Push()
	defer r.scopes.Pop()

	if proto.Self != ast.SelfNone && receiver != nil {
		r.scopes.Declare(&ast.LocalBinding{
			Name:      "self",
			Type:      receiver,
			IsMutable: proto.Self == ast.SelfRefMut || proto.Self == ast.SelfValueMut,
			DeclSpan:  proto.Span,
		}, r.reporter)
	}

	for _, param := range proto.Params {
		r.scopes.Declare(&ast.LocalBinding{
			Name:     param.Name,
			Type:     param.Type,
			DeclSpan: param.Span,
		}, r.reporter)
	}

	r.resolveBlockInPlace(body)
}

func (r *Resolver) resolvePrototypeTypes(proto *ast.Prototype) {
	for _, param := range proto.Params {
		param.Type = r.resolveType(param.Type)
	}

	if proto.ReturnType != nil {
		proto.ReturnType = r.resolveType(proto.ReturnType)
	}
}

// resolveType replaces every unqualified type reference reachable from t
// with its resolved form, recursing into every structural subtype.
func (r *Resolver) resolveType(t ast.Type) ast.Type {
	switch ty := t.(type) {
	case *ast.UnqualifiedUserDefinedType:
		return r.resolveUserDefinedType(ty)
	case *ast.UnqualifiedDynInterfaceType:
		// No InterfaceDeclaration kind exists anywhere in this AST (§3.5),
		// so nothing could ever populate a DynInterfaceType target — this
		// always fails, honestly, rather than guessing at a declaration
		// shape the distillation never specified.
		r.reporter.Report(diagnostic.New(14, diagnostic.PointOut(ty.Span(), diagnostic.SeverityError, "unknown type `"+ty.ID.String()+"`")))
		return &ast.ErrorType{TypeBase: ast.TypeBase{NodeSpan: ty.Span()}}
	case *ast.ReferenceType:
		ty.Elem = r.resolveType(ty.Elem)
		return ty
	case *ast.SliceType:
		ty.Elem = r.resolveType(ty.Elem)
		return ty
	case *ast.PointerType:
		ty.Elem = r.resolveType(ty.Elem)
		return ty
	case *ast.ArrayType:
		ty.Elem = r.resolveType(ty.Elem)
		return ty
	case *ast.IndirectionType:
		ty.Elem = r.resolveType(ty.Elem)
		return ty
	case *ast.FunctionPointerType:
		for i, p := range ty.Params {
			ty.Params[i] = r.resolveType(p)
		}

		if ty.Return != nil {
			ty.Return = r.resolveType(ty.Return)
		}

		return ty
	default:
		return t
	}
}

func (r *Resolver) resolveUserDefinedType(t *ast.UnqualifiedUserDefinedType) ast.Type {
	env := r.environmentFor(t.ID.Prefix)
	if env == nil {
		r.reporter.Report(diagnostic.New(14, diagnostic.PointOut(t.Span(), diagnostic.SeverityError, "unknown type `"+t.ID.String()+"`")))
		return &ast.ErrorType{TypeBase: ast.TypeBase{NodeSpan: t.Span()}}
	}

	entity, ok := env.Entities[t.ID.Name]
	if !ok {
		r.reporter.Report(diagnostic.New(14, diagnostic.PointOut(t.Span(), diagnostic.SeverityError, "unknown type `"+t.ID.String()+"`")))
		return &ast.ErrorType{TypeBase: ast.TypeBase{NodeSpan: t.Span()}}
	}

	if entity.Type == nil {
		r.reporter.Report(diagnostic.New(58, diagnostic.PointOut(t.Span(), diagnostic.SeverityError, "`"+t.ID.String()+"` does not name a type")))
		return &ast.ErrorType{TypeBase: ast.TypeBase{NodeSpan: t.Span()}}
	}

	return ast.CloneType(entity.Type)
}

// environmentFor resolves an optional module-path prefix to its
// environment. With no nested-module construct in this front-end (see
// environment.go's rootModule), every prefix other than the implicit root
// misses — but the lookup is written generally so a later surface parser
// that adds real module nesting only has to populate ByPath.
func (r *Resolver) environmentFor(prefix *ast.ModuleID) *Environment {
	if prefix == nil {
		return r.table.Root
	}

	return r.table.ByPath[prefix.CanonicalPrefix()]
}

func (r *Resolver) resolveBlockInPlace(b *ast.BlockExpr) {
	for i, s := range b.Statements {
		b.Statements[i] = r.resolveStatement(s)
	}

	if b.Tail != nil {
		b.Tail = r.resolveExpr(b.Tail)
	}
}

// resolveBlock pushes a fresh scope around b, the way every block
// introduced by an if/loop/while/for body needs (§4.3).
func (r *Resolver) resolveBlock(b *ast.BlockExpr) *ast.BlockExpr {
	r.scopes.Push()
	r.resolveBlockInPlace(b)
	r.scopes.Pop()

	return b
}

func (r *Resolver) resolveStatement(s ast.Statement) ast.Statement {
	switch st := s.(type) {
	case *ast.BindingStatement:
		if st.TypeHint != nil {
			st.TypeHint = r.resolveType(st.TypeHint)
		}

		st.Init = r.resolveExpr(st.Init)

		binding := &ast.LocalBinding{
			Name:      st.Name,
			Type:      st.TypeHint,
			IsMutable: st.Mutable,
			DeclSpan:  st.Span(),
		}
		st.Binding = binding
		r.scopes.Declare(binding, r.reporter)

		return st
	case *ast.AssertionStatement:
		st.Cond = r.resolveExpr(st.Cond)
		return st
	case *ast.ExpressionStatement:
		st.Expr = r.resolveExpr(st.Expr)
		return st
	default:
		return s
	}
}

func (r *Resolver) resolveExpr(e ast.Expression) ast.Expression {
	switch ex := e.(type) {
	case *ast.IdentifierExpr:
		return r.resolveIdentifier(ex)
	case *ast.ArrayLiteralExpr:
		for i, el := range ex.Elements {
			ex.Elements[i] = r.resolveExpr(el)
		}

		return ex
	case *ast.CallExpr:
		ex.Callee = r.resolveExpr(ex.Callee)
		for i, a := range ex.Args {
			ex.Args[i] = r.resolveExpr(a)
		}

		for i, g := range ex.GenericArgs {
			ex.GenericArgs[i] = r.resolveType(g)
		}

		return ex
	case *ast.MethodCallExpr:
		ex.Receiver = r.resolveExpr(ex.Receiver)
		for i, a := range ex.Args {
			ex.Args[i] = r.resolveExpr(a)
		}

		return ex
	case *ast.IndexExpr:
		ex.Object = r.resolveExpr(ex.Object)
		ex.Index = r.resolveExpr(ex.Index)

		return ex
	case *ast.FieldAccessExpr:
		ex.Object = r.resolveExpr(ex.Object)
		return ex
	case *ast.GroupExpr:
		ex.Inner = r.resolveExpr(ex.Inner)
		return ex
	case *ast.UnaryExpr:
		ex.Operand = r.resolveExpr(ex.Operand)
		return ex
	case *ast.BinaryExpr:
		ex.Left = r.resolveExpr(ex.Left)
		ex.Right = r.resolveExpr(ex.Right)

		return ex
	case *ast.CastExpr:
		ex.Operand = r.resolveExpr(ex.Operand)
		ex.Target = r.resolveType(ex.Target)

		return ex
	case *ast.BlockExpr:
		return r.resolveBlock(ex)
	case *ast.IfThenExpr:
		ex.Cond = r.resolveExpr(ex.Cond)
		ex.Then = r.resolveBlock(ex.Then)

		return ex
	case *ast.IfElseExpr:
		ex.Cond = r.resolveExpr(ex.Cond)
		ex.Then = r.resolveBlock(ex.Then)

		for i := range ex.ElseIfs {
			ex.ElseIfs[i].Cond = r.resolveExpr(ex.ElseIfs[i].Cond)
			ex.ElseIfs[i].Then = r.resolveBlock(ex.ElseIfs[i].Then)
		}

		if ex.Else != nil {
			ex.Else = r.resolveBlock(ex.Else)
		}

		return ex
	case *ast.LoopExpr:
		ex.Body = r.resolveBlock(ex.Body)
		return ex
	case *ast.WhileExpr:
		ex.Cond = r.resolveExpr(ex.Cond)
		ex.Body = r.resolveBlock(ex.Body)

		return ex
	case *ast.ForExpr:
		ex.Init = r.resolveExpr(ex.Init)
		ex.Last = r.resolveExpr(ex.Last)

		r.scopes.Push()
		r.scopes.Declare(&ast.LocalBinding{Name: ex.LoopVar, DeclSpan: ex.Span()}, r.reporter)
		r.resolveBlockInPlace(ex.Body)
		r.scopes.Pop()

		return ex
	case *ast.ReturnExpr:
		if ex.Value != nil {
			ex.Value = r.resolveExpr(ex.Value)
		}

		return ex
	case *ast.BreakExpr:
		if ex.Value != nil {
			ex.Value = r.resolveExpr(ex.Value)
		}

		return ex
	case *ast.StructInitExpr:
		ex.Target = r.resolveType(ex.Target)
		for i := range ex.Fields {
			ex.Fields[i].Value = r.resolveExpr(ex.Fields[i].Value)
		}

		return ex
	case *ast.ImplicitConversionExpr:
		ex.Inner = r.resolveExpr(ex.Inner)
		return ex
	case *ast.LoadExpr:
		ex.Inner = r.resolveExpr(ex.Inner)
		return ex
	case *ast.AddressOfExpr:
		ex.Operand = r.resolveExpr(ex.Operand)
		return ex
	case *ast.SliceOfExpr:
		ex.Operand = r.resolveExpr(ex.Operand)
		return ex
	case *ast.RangeExpr:
		ex.Start = r.resolveExpr(ex.Start)
		ex.End = r.resolveExpr(ex.End)

		return ex
	case *ast.SizeofExpr:
		ex.Target = r.resolveType(ex.Target)
		return ex
	default:
		// ErrorExpr, every literal kind, ContinueExpr, and the
		// already-resolved forms (LocalIdentifierExpr, OverloadRefExpr,
		// StaticGlobalExpr, StaticCallExpr, StaticMethodCallExpr) have
		// nothing left to resolve.
		return e
	}
}

func (r *Resolver) resolveIdentifier(e *ast.IdentifierExpr) ast.Expression {
	if e.ID.Prefix == nil {
		if binding, ok := r.scopes.Lookup(e.ID.Name); ok {
			return &ast.LocalIdentifierExpr{ExprBase: e.ExprBase, Name: e.ID.Name, Binding: binding}
		}
	}

	env := r.environmentFor(e.ID.Prefix)
	if env == nil {
		r.reporter.Report(diagnostic.New(18, diagnostic.PointOut(e.Span(), diagnostic.SeverityError, "unknown name `"+e.ID.String()+"`")))
		return &ast.ErrorExpr{ExprBase: e.ExprBase}
	}

	if set, ok := env.Functions[e.ID.Name]; ok {
		candidates := make([]ast.CallableDecl, len(set.Decls))
		copy(candidates, set.Decls)

		return &ast.OverloadRefExpr{
			ExprBase:   e.ExprBase,
			FQID:       ast.NewFullyQualifiedID(env.Path, e.ID.Name),
			Candidates: candidates,
		}
	}

	if entity, ok := env.Entities[e.ID.Name]; ok {
		if _, isConst := entity.Decl.(*ast.ConstantDeclaration); isConst {
			return &ast.StaticGlobalExpr{
				ExprBase: e.ExprBase,
				FQID:     ast.NewFullyQualifiedID(env.Path, e.ID.Name),
				Decl:     entity.Decl,
			}
		}

		r.reporter.Report(diagnostic.New(22, diagnostic.PointOut(e.Span(), diagnostic.SeverityError, "`"+e.ID.String()+"` is a type, not a value")))
		return &ast.ErrorExpr{ExprBase: e.ExprBase}
	}

	r.reporter.Report(diagnostic.New(18, diagnostic.PointOut(e.Span(), diagnostic.SeverityError, "unknown name `"+e.ID.String()+"`")))
	return &ast.ErrorExpr{ExprBase: e.ExprBase}
}

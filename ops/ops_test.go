package ops

import (
	"testing"

	"github.com/atoorisol/jssms/ir"
	"github.com/atoorisol/jssms/z80flags"
)

func TestNOOPEmitsEmptyEffect(t *testing.T) {
	stmts := NOOP()(0, 0, 0)
	if len(stmts) != 0 {
		t.Errorf("len(stmts) = %d, want 0", len(stmts))
	}
}

func TestLD8RegToRegDirection(t *testing.T) {
	// LD8('b','c') means B = C: dst is the first argument.
	stmts := LD8("b", "c")(0, 0, 0)
	if len(stmts) != 1 {
		t.Fatalf("len(stmts) = %d, want 1", len(stmts))
	}
	exprStmt, ok := stmts[0].(*ir.ExpressionStatement)
	if !ok {
		t.Fatalf("stmts[0] = %#v, want *ExpressionStatement", stmts[0])
	}
	assignExpr, ok := exprStmt.Expression.(*ir.AssignmentExpression)
	if !ok {
		t.Fatalf("expression = %#v, want *AssignmentExpression", exprStmt.Expression)
	}
	dst, ok := assignExpr.Left.(ir.Register)
	if !ok || dst.Name != "b" {
		t.Errorf("Left = %#v, want Register{b}", assignExpr.Left)
	}
	src, ok := assignExpr.Right.(ir.Register)
	if !ok || src.Name != "c" {
		t.Errorf("Right = %#v, want Register{c}", assignExpr.Right)
	}
}

func TestLD8Imm(t *testing.T) {
	stmts := LD8("a")(0x42, 0, 0)
	exprStmt := stmts[0].(*ir.ExpressionStatement)
	assignExpr := exprStmt.Expression.(*ir.AssignmentExpression)
	lit, ok := assignExpr.Right.(ir.Literal)
	if !ok || lit.Value != 0x42 {
		t.Errorf("Right = %#v, want Literal{0x42}", assignExpr.Right)
	}
}

func TestLD8MemAbs(t *testing.T) {
	// LD A,(nn): dst = readMem(value)
	stmts := LD8("a", "n", "n")(0x1234, 0, 0)
	exprStmt := stmts[0].(*ir.ExpressionStatement)
	assignExpr := exprStmt.Expression.(*ir.AssignmentExpression)
	call, ok := assignExpr.Right.(*ir.CallExpression)
	if !ok || call.Callee.Name != "readMem" {
		t.Fatalf("Right = %#v, want CallExpression(readMem)", assignExpr.Right)
	}
	arg := call.Args[0].(ir.Literal)
	if arg.Value != 0x1234 {
		t.Errorf("arg = %#v, want Literal{0x1234}", arg)
	}
}

func TestLD8MemPair(t *testing.T) {
	// LD A,(HL): dst = readMem(getHL())
	stmts := LD8("a", "h", "l")(0, 0, 0)
	exprStmt := stmts[0].(*ir.ExpressionStatement)
	assignExpr := exprStmt.Expression.(*ir.AssignmentExpression)
	call := assignExpr.Right.(*ir.CallExpression)
	inner := call.Args[0].(*ir.CallExpression)
	if inner.Callee.Name != "getHL" {
		t.Errorf("inner callee = %q, want getHL", inner.Callee.Name)
	}
}

func TestLD8InvalidArityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid LD8 arity")
		}
	}()
	LD8("a", "b", "c", "d")
}

func TestLD16SetsRegisterPair(t *testing.T) {
	stmts := LD16("b", "c")(0x1234, 0, 0)
	exprStmt := stmts[0].(*ir.ExpressionStatement)
	call := exprStmt.Expression.(*ir.CallExpression)
	if call.Callee.Name != "setBC" {
		t.Errorf("callee = %q, want setBC", call.Callee.Name)
	}
}

func TestLD16MismatchedShapePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid LD16 shape")
		}
	}()
	LD16("b", "c", "x", "y")
}

func TestLDWriteMemDoubleWriteOrder(t *testing.T) {
	// LD (nn),HL -> writeMem(value, l); writeMem(value+1, h)
	stmts := LD_WRITE_MEM("n", "n", "h", "l")(0x2000, 0, 0)
	if len(stmts) != 2 {
		t.Fatalf("len(stmts) = %d, want 2", len(stmts))
	}
	first := stmts[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	if first.Args[1].(ir.Register).Name != "l" {
		t.Errorf("first write = %#v, want low byte first", first.Args[1])
	}
	second := stmts[1].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	if second.Args[1].(ir.Register).Name != "h" {
		t.Errorf("second write = %#v, want high byte second", second.Args[1])
	}
}

func TestXORACollapsesToLiterals(t *testing.T) {
	stmts := XOR("a")(0, 0, 0)
	if len(stmts) != 2 {
		t.Fatalf("len(stmts) = %d, want 2", len(stmts))
	}
	aAssign := stmts[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	aLit, ok := aAssign.Right.(ir.Literal)
	if !ok || aLit.Value != 0 {
		t.Errorf("a assignment = %#v, want Literal{0}", aAssign.Right)
	}
	fAssign := stmts[1].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	fLit, ok := fAssign.Right.(ir.Literal)
	if !ok {
		t.Fatalf("f assignment = %#v, want Literal", fAssign.Right)
	}
	if fLit.Value != int32(z80flags.SZPTable[0]) {
		t.Errorf("f literal = 0x%X, want 0x%X", fLit.Value, z80flags.SZPTable[0])
	}
}

func TestXOROtherRegisterDoesNotCollapse(t *testing.T) {
	stmts := XOR("b")(0, 0, 0)
	if len(stmts) != 2 {
		t.Fatalf("len(stmts) = %d, want 2", len(stmts))
	}
	xorAssign := stmts[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	if xorAssign.Op != "^=" {
		t.Errorf("Op = %q, want ^=", xorAssign.Op)
	}
	fAssign := stmts[1].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	if _, ok := fAssign.Right.(*ir.MemberExpression); !ok {
		t.Errorf("f assignment = %#v, want a MemberExpression lookup", fAssign.Right)
	}
}

func TestANDSelfCollapsesToFlagOnly(t *testing.T) {
	stmts := AND("a")(0, 0, 0)
	if len(stmts) != 1 {
		t.Fatalf("len(stmts) = %d, want 1 (collapsed)", len(stmts))
	}
}

func TestORImmediate(t *testing.T) {
	stmts := OR()(0x0F, 0, 0)
	if len(stmts) != 2 {
		t.Fatalf("len(stmts) = %d, want 2", len(stmts))
	}
	orAssign := stmts[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	if orAssign.Op != "|=" {
		t.Errorf("Op = %q, want |=", orAssign.Op)
	}
}

func TestADDDispatchesByArity(t *testing.T) {
	// ADD() imm8 -> add_a(value)
	immStmts := ADD()(5, 0, 0)
	immCall := immStmts[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	if immCall.Args[0].(ir.Literal).Value != 5 {
		t.Errorf("imm arg = %#v, want Literal{5}", immCall.Args[0])
	}

	// ADD(r) -> add_a(r)
	regStmts := ADD("c")(0, 0, 0)
	regCall := regStmts[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	if regCall.Args[0].(ir.Register).Name != "c" {
		t.Errorf("reg arg = %#v, want Register{c}", regCall.Args[0])
	}

	// ADD(hi,lo) -> add_a(readMem(get<HI LO>()))
	memStmts := ADD("h", "l")(0, 0, 0)
	memCall := memStmts[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	readCall, ok := memCall.Args[0].(*ir.CallExpression)
	if !ok || readCall.Callee.Name != "readMem" {
		t.Errorf("mem arg = %#v, want CallExpression(readMem)", memCall.Args[0])
	}
}

func TestADDTooManyArgsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid ADD arity")
		}
	}()
	ADD("a", "b", "c")
}

func TestJRUnconditionalTarget(t *testing.T) {
	stmts := JR(ir.NewLiteral(1))(0xFE, 0x100, 0x100)
	ifStmt := stmts[0].(*ir.IfStatement)
	body := ifStmt.Consequent.(*ir.BlockStatement)
	pcAssign := body.Body[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	target := pcAssign.Right.(ir.Literal)
	if target.Value != 0x100 {
		t.Errorf("target = 0x%X, want 0x100", target.Value)
	}
}

func TestDJNZStructure(t *testing.T) {
	stmts := DJNZ()(0xFE, 0x200, 0x100)
	if len(stmts) != 2 {
		t.Fatalf("len(stmts) = %d, want 2", len(stmts))
	}
	if _, ok := stmts[1].(*ir.IfStatement); !ok {
		t.Errorf("stmts[1] = %#v, want *IfStatement", stmts[1])
	}
}

func TestRETUnconditional(t *testing.T) {
	stmts := RET()(0, 0, 0)
	if len(stmts) != 3 {
		t.Fatalf("len(stmts) = %d, want 3", len(stmts))
	}
	if _, ok := stmts[2].(*ir.ReturnStatement); !ok {
		t.Errorf("stmts[2] = %#v, want *ReturnStatement", stmts[2])
	}
}

func TestRETConditionalIsSingleCall(t *testing.T) {
	stmts := RET("==", byte(0x40))(0, 0, 0)
	if len(stmts) != 1 {
		t.Fatalf("len(stmts) = %d, want 1", len(stmts))
	}
	call := stmts[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	if call.Callee.Name != "ret" {
		t.Errorf("callee = %q, want ret", call.Callee.Name)
	}
}

func TestJPUnconditionalTerminates(t *testing.T) {
	stmts := JP()(0x2000, 0x2000, 0)
	if len(stmts) != 2 {
		t.Fatalf("len(stmts) = %d, want 2", len(stmts))
	}
	if _, ok := stmts[1].(*ir.ReturnStatement); !ok {
		t.Errorf("stmts[1] = %#v, want *ReturnStatement", stmts[1])
	}
}

func TestCALLPushesReturnAddress(t *testing.T) {
	stmts := CALL()(0x3000, 0x3000, 0x100)
	pushCall := stmts[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	arg := pushCall.Args[0].(ir.Literal)
	if arg.Value != 0x102 {
		t.Errorf("pushed return address = 0x%X, want 0x102", arg.Value)
	}
}

func TestRSTPushesCurrentPC(t *testing.T) {
	stmts := RST(0x38)(0, 0, 0x150)
	pushCall := stmts[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	arg := pushCall.Args[0].(ir.Literal)
	if arg.Value != 0x150 {
		t.Errorf("pushed pc = 0x%X, want 0x150", arg.Value)
	}
	pcAssign := stmts[1].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	target := pcAssign.Right.(ir.Literal)
	if target.Value != 0x38 {
		t.Errorf("target = 0x%X, want 0x38", target.Value)
	}
}

func TestLD8DReadsIndexedMemory(t *testing.T) {
	stmts := LD8_D("b", "i", "IX")(5, 0, 0)
	assignExpr := stmts[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	readCall := assignExpr.Right.(*ir.CallExpression)
	addr := readCall.Args[0].(*ir.BinaryExpression)
	getCall := addr.Left.(*ir.CallExpression)
	if getCall.Callee.Name != "getIX" {
		t.Errorf("callee = %q, want getIX", getCall.Callee.Name)
	}
	disp := addr.Right.(ir.Literal)
	if disp.Value != 5 {
		t.Errorf("disp = %d, want 5", disp.Value)
	}
}

func TestPOPIndexedRegister(t *testing.T) {
	stmts := POP("i", "IY")(0, 0, 0)
	if len(stmts) != 2 {
		t.Fatalf("len(stmts) = %d, want 2", len(stmts))
	}
	setCall := stmts[0].(*ir.ExpressionStatement).Expression.(*ir.CallExpression)
	if setCall.Callee.Name != "setIY" {
		t.Errorf("callee = %q, want setIY", setCall.Callee.Name)
	}
}

func TestPUSHMainPairDecrementsSPFirst(t *testing.T) {
	stmts := PUSH("b", "c")(0, 0, 0)
	if len(stmts) != 3 {
		t.Fatalf("len(stmts) = %d, want 3", len(stmts))
	}
	spAssign := stmts[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	if spAssign.Op != "-=" {
		t.Errorf("Op = %q, want -=", spAssign.Op)
	}
}

func TestCombinatorsAreDeterministic(t *testing.T) {
	a := LD8("b", "c")(0, 0, 0)
	b := LD8("b", "c")(0, 0, 0)
	if len(a) != len(b) {
		t.Fatalf("len mismatch: %d vs %d", len(a), len(b))
	}
	af := a[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	bf := b[0].(*ir.ExpressionStatement).Expression.(*ir.AssignmentExpression)
	if af.Left.(ir.Register).Name != bf.Left.(ir.Register).Name {
		t.Error("two invocations of the same combinator with the same args produced different IR")
	}
}

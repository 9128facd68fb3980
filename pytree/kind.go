package pytree

import "fmt"

// Production names the grammar rule an interior node was produced by.
// The set is closed and follows the lib2to3 grammar vocabulary.
type Production int

const (
	ProdInvalid Production = iota
	ProdFileInput
	ProdSimpleStmt
	ProdExprStmt
	ProdDecorated
	ProdDecorator
	ProdClassDef
	ProdFuncDef
	ProdLambDef
	ProdParameters
	ProdTypedArgsList
	ProdVarArgsList
	ProdDottedName
	ProdDictSetMaker
	ProdComparison
	ProdArithExpr
	ProdTerm
	ProdFactor
	ProdPower
	ProdAtom
	ProdTrailer
	ProdArglist
	ProdArgument
	ProdSubscriptList
	ProdSubscript
	ProdSliceOp
	ProdTestList
	ProdCompFor
	ProdCompIf
	ProdSuite
)

var productionNames = [...]string{
	ProdInvalid:       "invalid",
	ProdFileInput:     "file_input",
	ProdSimpleStmt:    "simple_stmt",
	ProdExprStmt:      "expr_stmt",
	ProdDecorated:     "decorated",
	ProdDecorator:     "decorator",
	ProdClassDef:      "classdef",
	ProdFuncDef:       "funcdef",
	ProdLambDef:       "lambdef",
	ProdParameters:    "parameters",
	ProdTypedArgsList: "typedargslist",
	ProdVarArgsList:   "varargslist",
	ProdDottedName:    "dotted_name",
	ProdDictSetMaker:  "dictsetmaker",
	ProdComparison:    "comparison",
	ProdArithExpr:     "arith_expr",
	ProdTerm:          "term",
	ProdFactor:        "factor",
	ProdPower:         "power",
	ProdAtom:          "atom",
	ProdTrailer:       "trailer",
	ProdArglist:       "arglist",
	ProdArgument:      "argument",
	ProdSubscriptList: "subscriptlist",
	ProdSubscript:     "subscript",
	ProdSliceOp:       "sliceop",
	ProdTestList:      "testlist",
	ProdCompFor:       "comp_for",
	ProdCompIf:        "comp_if",
	ProdSuite:         "suite",
}

func (p Production) String() string {
	if int(p) < 0 || int(p) >= len(productionNames) {
		return fmt.Sprintf("unknown-production(%d)", int(p))
	}
	return productionNames[p]
}

// TokenKind classifies a leaf's token.
type TokenKind int

const (
	TokInvalid TokenKind = iota
	TokName
	TokNumber
	TokString
	TokKeyword
	TokOp
)

func (k TokenKind) String() string {
	switch k {
	case TokName:
		return "NAME"
	case TokNumber:
		return "NUMBER"
	case TokString:
		return "STRING"
	case TokKeyword:
		return "KEYWORD"
	case TokOp:
		return "OP"
	default:
		return fmt.Sprintf("unknown-token-kind(%d)", int(k))
	}
}

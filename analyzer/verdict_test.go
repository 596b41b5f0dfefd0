package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/daocheck/analyzer/decl"
)

func TestOracle_Judge(t *testing.T) {
	tests := []struct {
		description string
		method      *decl.Method
		expect      Verdict
	}{
		{
			description: "entity return",
			method:      &decl.Method{Name: "getAll", ReturnType: "Invoice"},
			expect:      Conforming,
		},
		{
			description: "unrelated return",
			method:      &decl.Method{Name: "getAll", ReturnType: "Car"},
			expect:      NonConforming,
		},
		{
			description: "trivial return",
			method:      &decl.Method{Name: "count", ReturnType: "long", Parameters: []decl.TypeRef{"Car"}},
			expect:      Conforming,
		},
		{
			description: "unrelated return redeemed by entity parameter",
			method:      &decl.Method{Name: "getAll2", ReturnType: "AnyDTO", Parameters: []decl.TypeRef{"int", "Invoice"}},
			expect:      Conforming,
		},
		{
			description: "unrelated return with trivial parameters",
			method:      &decl.Method{Name: "getAll3", ReturnType: "AnyDTO", Parameters: []decl.TypeRef{"Integer", "Calendar"}},
			expect:      NonConforming,
		},
		{
			description: "void with trivial parameters",
			method:      &decl.Method{Name: "getAll", ReturnType: decl.Void, Parameters: []decl.TypeRef{"int", "Double", "Long"}},
			expect:      Conforming,
		},
		{
			description: "void without parameters",
			method:      &decl.Method{Name: "flush", ReturnType: decl.Void},
			expect:      Conforming,
		},
		{
			description: "void with unrelated parameter",
			method:      &decl.Method{Name: "getAll2", ReturnType: decl.Void, Parameters: []decl.TypeRef{"Invoice", "Product"}},
			expect:      NonConforming,
		},
		{
			description: "void with bounded type variable",
			method: &decl.Method{Name: "getAll2", ReturnType: decl.Void, Parameters: []decl.TypeRef{"T"},
				Bounds: map[string]decl.TypeRef{"T": "Invoice"}},
			expect: Conforming,
		},
		{
			description: "bounded type variable return",
			method: &decl.Method{Name: "getAll", ReturnType: "T",
				Bounds: map[string]decl.TypeRef{"T": "Invoice"}},
			expect: Conforming,
		},
		{
			description: "unbounded type variable return",
			method:      &decl.Method{Name: "getAll", ReturnType: "T"},
			expect:      NonConforming,
		},
	}
	oracle := New().Oracle("Invoice")
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.EqualValues(t, tc.expect.String(), oracle.Judge(tc.method).String())
		})
	}
}

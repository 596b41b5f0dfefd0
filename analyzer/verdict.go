package analyzer

import "github.com/viant/daocheck/analyzer/decl"

// Judge classifies a method. A non-void return type is accepted unless it is a Mismatch,
// in which case only a Match parameter can redeem the method. A void method is accepted
// as long as no parameter is a Mismatch.
func (o *Oracle) Judge(method *decl.Method) Verdict {
	if !method.ReturnType.IsVoid() {
		if o.Classify(method.ReturnType, method.Bounds) != Mismatch {
			return Conforming
		}
		for _, parameter := range method.Parameters {
			if o.Classify(parameter, method.Bounds) == Match {
				return Conforming
			}
		}
		return NonConforming
	}
	for _, parameter := range method.Parameters {
		if o.Classify(parameter, method.Bounds) == Mismatch {
			return NonConforming
		}
	}
	return Conforming
}

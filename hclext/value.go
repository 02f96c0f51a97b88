// Package hclext decodes attribute values of constitution settings with
// their exact JSON types.
//
// gohcl converts values to the Go type of the target field, so a JSON
// number decodes into a string field and "300" into an int field. Settings
// declare their attributes as hcl.Expression instead and read them with
// the functions of this package, which reject any other type.
//
// Example:
//
//	type config struct {
//	    Window hcl.Expression `hcl:"window,optional"`
//	}
//
//	window, ok, err := hclext.Int(cfg.Window)
//
// Every function reports ok=false for an absent attribute or a JSON null.
package hclext

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Value evaluates expr without variables or functions.
// A nil expression evaluates to null.
func Value(expr hcl.Expression) (cty.Value, error) {
	if expr == nil {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	return val, nil
}

// String reads a JSON string.
func String(expr hcl.Expression) (string, bool, error) {
	val, err := Value(expr)
	if err != nil || val.IsNull() {
		return "", false, err
	}
	if !val.Type().Equals(cty.String) {
		return "", false, typeError("a string", val)
	}
	return val.AsString(), true, nil
}

// Bool reads a JSON boolean.
func Bool(expr hcl.Expression) (bool, bool, error) {
	val, err := Value(expr)
	if err != nil || val.IsNull() {
		return false, false, err
	}
	if !val.Type().Equals(cty.Bool) {
		return false, false, typeError("a boolean", val)
	}
	return val.True(), true, nil
}

// Int reads a JSON number that is a whole number within the range of int.
func Int(expr hcl.Expression) (int, bool, error) {
	val, err := Value(expr)
	if err != nil || val.IsNull() {
		return 0, false, err
	}
	if !val.Type().Equals(cty.Number) {
		return 0, false, typeError("a whole number", val)
	}
	var n int
	if err := gocty.FromCtyValue(val, &n); err != nil {
		return 0, false, fmt.Errorf("must be a whole number: %w", err)
	}
	return n, true, nil
}

// StringList reads a JSON array whose elements are all strings.
// An empty array is returned as a non-nil empty slice.
func StringList(expr hcl.Expression) ([]string, bool, error) {
	val, err := Value(expr)
	if err != nil || val.IsNull() {
		return nil, false, err
	}
	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return nil, false, typeError("an array of strings", val)
	}

	list := make([]string, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		idx, elem := it.Element()
		if elem.IsNull() || !elem.Type().Equals(cty.String) {
			i, _ := idx.AsBigFloat().Int64()
			return nil, false, fmt.Errorf("element %d must be a string, got %s", i, friendlyName(elem))
		}
		list = append(list, elem.AsString())
	}
	return list, true, nil
}

func typeError(want string, val cty.Value) error {
	return fmt.Errorf("must be %s, got %s", want, friendlyName(val))
}

func friendlyName(val cty.Value) string {
	if val.IsNull() {
		return "null"
	}
	return val.Type().FriendlyName()
}

// Package skill wraps plain Go functions as agent tools.
//
// A skill declares its functions with parameter names and descriptions;
// the parameter types are read off the function signature by reflection
// and mapped to JSON-Schema primitive names through a fixed table, with
// anything unmapped defaulting to "string". Parameters not marked
// Optional are required.
//
// Invocation converts the named arguments to the function's parameter
// types and calls it. A nil result becomes the literal "OK", anything
// else is stringified, and any returned error or panic is caught and
// reported as an "Error in <tool_name>: ..." string - faults never
// escape to the agent loop.
package skill

import (
	"context"
	"fmt"
	"reflect"

	"github.com/themavik/nanobot/internal/tool"
)

// Param declares one function parameter.
type Param struct {
	Name        string
	Description string
	Optional    bool // has a default (the type's zero value); not required
}

// Func declares a skill function to wrap.
type Func struct {
	Name        string
	Description string
	Params      []Param
	// Fn is the function to call. It may take a leading context.Context,
	// must accept one argument per declared Param, and may return up to
	// two values where a trailing error is honoured.
	Fn any
}

// funcTool implements tool.Tool over a reflected function.
type funcTool struct {
	name        string
	description string
	schema      tool.Schema
	fn          reflect.Value
	takesCtx    bool
	params      []Param
	inTypes     []reflect.Type
}

// New wraps f as a tool named "<skillName>_<f.Name>". It fails if Fn is
// not a function or its arity does not match the declared parameters.
func New(skillName string, f Func) (tool.Tool, error) {
	fn := reflect.ValueOf(f.Fn)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("skill %s: %s is not a function", skillName, f.Name)
	}

	typ := fn.Type()
	if typ.IsVariadic() {
		return nil, fmt.Errorf("skill %s: %s: variadic functions are not supported", skillName, f.Name)
	}

	in := 0
	takesCtx := typ.NumIn() > 0 && typ.In(0) == reflect.TypeFor[context.Context]()
	if takesCtx {
		in = 1
	}
	if typ.NumIn()-in != len(f.Params) {
		return nil, fmt.Errorf("skill %s: %s declares %d parameters but takes %d arguments",
			skillName, f.Name, len(f.Params), typ.NumIn()-in)
	}
	if typ.NumOut() > 2 {
		return nil, fmt.Errorf("skill %s: %s returns %d values, at most 2 supported", skillName, f.Name, typ.NumOut())
	}

	props := make(map[string]tool.Property, len(f.Params))
	var required []string
	inTypes := make([]reflect.Type, len(f.Params))
	for i, p := range f.Params {
		t := typ.In(in + i)
		inTypes[i] = t
		desc := p.Description
		if desc == "" {
			desc = p.Name
		}
		props[p.Name] = tool.Property{Type: jsonType(t), Description: desc}
		if !p.Optional {
			required = append(required, p.Name)
		}
	}

	name := f.Name
	if skillName != "" {
		name = skillName + "_" + f.Name
	}
	description := f.Description
	if description == "" {
		description = fmt.Sprintf("Run %s from skill %s", f.Name, skillName)
	}

	return &funcTool{
		name:        name,
		description: description,
		schema:      tool.ObjectSchema(props, required),
		fn:          fn,
		takesCtx:    takesCtx,
		params:      f.Params,
		inTypes:     inTypes,
	}, nil
}

// MustNew is New that panics on declaration errors. Skill declarations
// are static, so a bad one is a programmer error caught at startup.
func MustNew(skillName string, f Func) tool.Tool {
	t, err := New(skillName, f)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *funcTool) Name() string            { return t.name }
func (t *funcTool) Description() string     { return t.description }
func (t *funcTool) Parameters() tool.Schema { return t.schema }

func (t *funcTool) Execute(ctx context.Context, args map[string]any) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("Error in %s: %v", t.name, r)
		}
	}()

	in := make([]reflect.Value, 0, len(t.params)+1)
	if t.takesCtx {
		in = append(in, reflect.ValueOf(ctx))
	}
	for i, p := range t.params {
		arg, ok := args[p.Name]
		if !ok && !p.Optional {
			return fmt.Sprintf("Error in %s: missing argument %s", t.name, p.Name)
		}
		v, err := convert(arg, t.inTypes[i])
		if err != nil {
			return fmt.Sprintf("Error in %s: argument %s: %v", t.name, p.Name, err)
		}
		in = append(in, v)
	}

	out := t.fn.Call(in)

	// A trailing error return is honoured before the value
	if n := len(out); n > 0 {
		if last := out[n-1]; last.Type() == reflect.TypeFor[error]() {
			if !last.IsNil() {
				return fmt.Sprintf("Error in %s: %v", t.name, last.Interface().(error))
			}
			out = out[:n-1]
		}
	}

	if len(out) == 0 {
		return "OK"
	}
	v := out[0]
	if isNil(v) {
		return "OK"
	}
	return fmt.Sprint(v.Interface())
}

// jsonType maps a Go type to its JSON-Schema primitive name. The table
// is fixed; unknown types fall back to "string".
func jsonType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "string"
	}
}

// convert coerces a decoded JSON argument to the target parameter type.
// A missing optional argument yields the zero value (the parameter's
// default); required arguments are rejected before conversion.
// JSON numbers arrive as float64 and are narrowed to integer kinds when
// the target asks for one.
func convert(arg any, target reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(target), nil
	}

	v := reflect.ValueOf(arg)
	if v.Type() == target {
		return v, nil
	}
	if v.Type().AssignableTo(target) {
		return v.Convert(target), nil
	}

	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		if v.CanConvert(target) {
			return v.Convert(target), nil
		}
	case reflect.Slice:
		if arr, ok := arg.([]any); ok {
			out := reflect.MakeSlice(target, len(arr), len(arr))
			for i, el := range arr {
				ev, err := convert(el, target.Elem())
				if err != nil {
					return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
				}
				out.Index(i).Set(ev)
			}
			return out, nil
		}
	case reflect.Map:
		if m, ok := arg.(map[string]any); ok && target.Key().Kind() == reflect.String {
			out := reflect.MakeMapWithSize(target, len(m))
			for k, el := range m {
				ev, err := convert(el, target.Elem())
				if err != nil {
					return reflect.Value{}, fmt.Errorf("key %q: %w", k, err)
				}
				out.SetMapIndex(reflect.ValueOf(k).Convert(target.Key()), ev)
			}
			return out, nil
		}
	case reflect.Interface:
		if target.NumMethod() == 0 {
			return v, nil
		}
	}

	return reflect.Value{}, fmt.Errorf("cannot use %T as %s", arg, target)
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

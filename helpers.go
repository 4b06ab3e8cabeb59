package iup

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// SetAttributes sets every attribute in attrs on ih. Iteration order is not
// specified; use separate SetAttribute calls when order matters.
func (x *Iup) SetAttributes(ih Ihandle, attrs map[string]string) {
	for name, value := range attrs {
		x.SetAttribute(ih, name, value)
	}
}

// BindCallbacks registers every exported method of obj as a callback on ih.
// The callback name is derived from the method name: Action becomes ACTION,
// CloseCb becomes CLOSE_CB, KAny becomes K_ANY. Methods must have one of
// the shapes accepted by SetCallbackFunc.
//
// Returns the list of registered callback names and the first error
// encountered.
func (x *Iup) BindCallbacks(ih Ihandle, obj any) ([]string, error) {
	v := reflect.ValueOf(obj)
	t := v.Type()

	var bound []string
	for i := 0; i < t.NumMethod(); i++ {
		method := t.Method(i)

		// Skip unexported methods.
		if !method.IsExported() {
			continue
		}

		name := CallbackName(method.Name)
		if err := x.SetCallbackFunc(ih, name, v.Method(i).Interface()); err != nil {
			return bound, fmt.Errorf("binding %s: %w", name, err)
		}
		bound = append(bound, name)
	}
	return bound, nil
}

// CallbackName converts a Go-style method name to the native callback key.
// Example: "ValuechangedCb" -> "VALUECHANGED_CB"
func CallbackName(s string) string {
	return strings.ToUpper(camelToSnake(s))
}

// camelToSnake converts a CamelCase name to snake_case.
// Example: "GetUserByID" -> "get_user_by_id"
func camelToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// Insert underscore before uppercase runs, but not at the start.
			if i > 0 {
				prev := runes[i-1]
				// Don't insert underscore between consecutive uppercase
				// unless the next char is lowercase (e.g., "ID" stays together
				// but "IDa" → "i_da" boundary).
				if unicode.IsLower(prev) {
					b.WriteRune('_')
				} else if i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
					b.WriteRune('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

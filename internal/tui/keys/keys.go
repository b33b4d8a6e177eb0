package keys

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMapToSlice takes a struct of fields of type key.Binding and returns it as
// a slice instead. Disabled bindings are omitted.
func KeyMapToSlice(t any) (bindings []key.Binding) {
	v := reflect.ValueOf(t)
	if v.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < v.NumField(); i++ {
		binding, ok := v.Field(i).Interface().(key.Binding)
		if !ok || !binding.Enabled() {
			continue
		}
		bindings = append(bindings, binding)
	}
	return
}

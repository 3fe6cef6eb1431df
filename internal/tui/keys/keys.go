package keys

import (
	"reflect"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapToSlice takes a struct of fields of type key.Binding and returns it as
// a slice instead.
func KeyMapToSlice(t any) (bindings []key.Binding) {
	typ := reflect.TypeOf(t)
	if typ.Kind() != reflect.Struct {
		return nil
	}
	for i := range typ.NumField() {
		v := reflect.ValueOf(t).Field(i)
		if b, ok := v.Interface().(key.Binding); ok {
			bindings = append(bindings, b)
		}
	}
	return
}

// TabNumber returns the zero-based tab index for a GotoTab key.
func TabNumber(msg tea.KeyMsg) (int, bool) {
	if !key.Matches(msg, Navigation.GotoTab) {
		return 0, false
	}
	n, err := strconv.Atoi(msg.String())
	if err != nil {
		return 0, false
	}
	return n - 1, true
}

package forms

import (
	"slices"

	tea "charm.land/bubbletea/v2"
)

// Form owns a set of fields and a focus ring over the visible ones.
// Hidden fields keep their values but are skipped by navigation.
type Form struct {
	fields       []Field
	order        []string
	focusedIndex int
	nextKeys     []string
	prevKeys     []string
}

// NewForm creates a new form with the given fields, all visible in the
// given order
func NewForm(fields ...Field) *Form {
	f := &Form{
		fields:   fields,
		nextKeys: []string{"tab"},
		prevKeys: []string{"shift+tab"},
	}
	for _, field := range fields {
		f.order = append(f.order, field.Key())
	}
	return f
}

// SetNavigationKeys replaces the keys that move focus forward and backward
func (f *Form) SetNavigationKeys(next, prev []string) {
	f.nextKeys = next
	f.prevKeys = prev
}

// Init focuses the first visible field
func (f *Form) Init() tea.Cmd {
	if len(f.order) == 0 {
		return nil
	}
	f.focusedIndex = 0
	return f.Get(f.order[0]).Focus()
}

// Update handles focus navigation and forwards everything else to the
// focused field
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case slices.Contains(f.nextKeys, keyMsg.String()):
			return f, f.move(1)
		case slices.Contains(f.prevKeys, keyMsg.String()):
			return f, f.move(-1)
		}
	}

	focused := f.Focused()
	if focused == nil {
		return f, nil
	}
	_, cmd := focused.Update(msg)
	return f, cmd
}

// move shifts focus by delta, wrapping around the ring
func (f *Form) move(delta int) tea.Cmd {
	if len(f.order) == 0 {
		return nil
	}

	if current := f.Focused(); current != nil {
		current.Blur()
	}

	n := len(f.order)
	f.focusedIndex = ((f.focusedIndex+delta)%n + n) % n

	return f.Get(f.order[f.focusedIndex]).Focus()
}

// SetOrder makes only the given keys visible, in that order. Unknown keys
// are ignored. It reports whether the focused field is still visible; when
// it is not, nothing is focused until Focus or Init is called.
func (f *Form) SetOrder(keys ...string) bool {
	focusedKey := f.FocusedKey()

	order := make([]string, 0, len(keys))
	for _, k := range keys {
		if f.Get(k) != nil {
			order = append(order, k)
		}
	}
	f.order = order

	if idx := slices.Index(order, focusedKey); idx >= 0 {
		f.focusedIndex = idx
		return true
	}

	for _, field := range f.fields {
		field.Blur()
	}
	f.focusedIndex = -1
	return false
}

// Focus moves focus to the visible field with the given key
func (f *Form) Focus(key string) tea.Cmd {
	idx := slices.Index(f.order, key)
	if idx < 0 {
		return nil
	}

	if current := f.Focused(); current != nil {
		current.Blur()
	}
	f.focusedIndex = idx
	return f.Get(key).Focus()
}

// Focused returns the focused field, or nil
func (f *Form) Focused() Field {
	if f.focusedIndex < 0 || f.focusedIndex >= len(f.order) {
		return nil
	}
	return f.Get(f.order[f.focusedIndex])
}

// FocusedKey returns the key of the focused field, or ""
func (f *Form) FocusedKey() string {
	if field := f.Focused(); field != nil {
		return field.Key()
	}
	return ""
}

// Order returns the visible keys in focus order
func (f *Form) Order() []string {
	return slices.Clone(f.order)
}

// Visible reports whether the field with the given key is in the ring
func (f *Form) Visible(key string) bool {
	return slices.Contains(f.order, key)
}

// Fields returns every field, visible or not
func (f *Form) Fields() []Field {
	return f.fields
}

// Get retrieves a field by key
func (f *Form) Get(key string) Field {
	for _, field := range f.fields {
		if field.Key() == key {
			return field
		}
	}
	return nil
}

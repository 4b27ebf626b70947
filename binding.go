package vlcplayer

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// FieldBinding locates the int64 field of a caller type that stores the
// context Handle.
type FieldBinding struct {
	typ   reflect.Type
	index []int
	name  string
}

// boundFields is resolved once at load by Bind and read by the package-level
// lifecycle calls.
var boundFields atomic.Pointer[FieldBinding]

// ResolveField resolves field on the struct type of sample without
// installing it. sample may be a struct value or a pointer to one.
func ResolveField(sample any, field string) (*FieldBinding, error) {
	t := reflect.TypeOf(sample)
	if t == nil {
		return nil, fmt.Errorf("%w: nil caller type", ErrBindingResolution)
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrBindingResolution, t)
	}

	sf, ok := t.FieldByName(field)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %q", ErrBindingResolution, t, field)
	}
	if !sf.IsExported() {
		return nil, fmt.Errorf("%w: %s.%s is not exported", ErrBindingResolution, t, field)
	}
	if sf.Type.Kind() != reflect.Int64 {
		return nil, fmt.Errorf("%w: %s.%s is %s, want int64", ErrBindingResolution, t, field, sf.Type)
	}

	return &FieldBinding{typ: t, index: sf.Index, name: field}, nil
}

// Bind resolves field on the caller type and installs it for the
// package-level Create, Start, Stop and Destroy calls. Call it once, from
// the host's init.
func Bind(sample any, field string) error {
	b, err := ResolveField(sample, field)
	if err != nil {
		return err
	}
	boundFields.Store(b)
	return nil
}

// MustBind is like Bind but panics on failure: without a resolved field no
// lifecycle call can store or retrieve its context.
func MustBind(sample any, field string) {
	if err := Bind(sample, field); err != nil {
		panic(err)
	}
}

// Bound returns the installed binding, or nil before Bind.
func Bound() *FieldBinding {
	return boundFields.Load()
}

func (b *FieldBinding) String() string {
	return b.typ.String() + "." + b.name
}

// field returns the settable token field of owner.
func (b *FieldBinding) field(owner any) (reflect.Value, error) {
	v := reflect.ValueOf(owner)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: owner must be a non-nil *%s", ErrBindingResolution, b.typ)
	}
	if v.Elem().Type() != b.typ {
		return reflect.Value{}, fmt.Errorf("%w: owner is %s, bound to *%s", ErrBindingResolution, v.Type(), b.typ)
	}
	f, err := v.Elem().FieldByIndexErr(b.index)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %v", ErrBindingResolution, err)
	}
	return f, nil
}

// Get reads the Handle stored in owner.
func (b *FieldBinding) Get(owner any) (Handle, error) {
	f, err := b.field(owner)
	if err != nil {
		return 0, err
	}
	return Handle(f.Int()), nil
}

// Set stores h in owner.
func (b *FieldBinding) Set(owner any, h Handle) error {
	f, err := b.field(owner)
	if err != nil {
		return err
	}
	f.SetInt(int64(h))
	return nil
}

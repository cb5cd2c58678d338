package cvar

import (
	"errors"
	"reflect"
	"testing"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := New()
	if err := r.Register("fov", "90"); err != nil {
		t.Fatalf("Register returned %v", err)
	}

	got, err := r.Value("fov")
	if err != nil || got != "90" {
		t.Errorf("Value(fov) = %q, %v; want %q", got, err, "90")
	}

	if err := r.Set("fov", "110"); err != nil {
		t.Fatalf("Set returned %v", err)
	}
	got, err = r.Value("fov")
	if err != nil || got != "110" {
		t.Errorf("Value(fov) after Set = %q, %v; want %q", got, err, "110")
	}
}

func TestRegistry_UnknownVariable(t *testing.T) {
	r := New()
	if _, err := r.Value("nonexistent"); !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("Value returned %v, want ErrUnknownVariable", err)
	}
	if err := r.Set("nonexistent", "1"); !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("Set returned %v, want ErrUnknownVariable", err)
	}
	if err := r.Reset("nonexistent"); !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("Reset returned %v, want ErrUnknownVariable", err)
	}
}

func TestRegistry_DuplicateRegistrationRejected(t *testing.T) {
	r := New()
	if err := r.RegisterArchive("fov", "90"); err != nil {
		t.Fatalf("first registration returned %v", err)
	}

	// All four variants must refuse the existing name
	regs := []func(string, string) error{
		r.Register,
		r.RegisterArchive,
		r.RegisterUpdateInfo,
		r.RegisterArchiveUpdateInfo,
	}
	for i, reg := range regs {
		if err := reg("fov", "100"); !errors.Is(err, ErrDuplicateName) {
			t.Errorf("variant %d returned %v, want ErrDuplicateName", i, err)
		}
	}

	// The original entry is untouched
	if got, _ := r.Value("fov"); got != "90" {
		t.Errorf("value mutated to %q by failed registration", got)
	}
}

func TestRegistry_RegistrationVariantFlags(t *testing.T) {
	r := New()
	mustRegister(t, r.Register("plain", "1"))
	mustRegister(t, r.RegisterArchive("arch", "1"))
	mustRegister(t, r.RegisterUpdateInfo("info", "1"))
	mustRegister(t, r.RegisterArchiveUpdateInfo("both", "1"))

	want := map[string][2]bool{
		"plain": {false, false},
		"arch":  {true, false},
		"info":  {false, true},
		"both":  {true, true},
	}
	for _, v := range r.List() {
		flags := want[v.Name]
		if v.Archive != flags[0] || v.Info != flags[1] {
			t.Errorf("%s: archive=%v info=%v, want %v", v.Name, v.Archive, v.Info, flags)
		}
	}
}

func mustRegister(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
}

func TestRegistry_TypedGetters(t *testing.T) {
	r := New()
	mustRegister(t, r.Register("sensitivity", "3.5"))
	mustRegister(t, r.Register("rate", "2500"))
	mustRegister(t, r.Register("cl_name", "player"))

	if f, err := r.Float64("sensitivity"); err != nil || f != 3.5 {
		t.Errorf("Float64 = %v, %v", f, err)
	}
	if n, err := r.Int("rate"); err != nil || n != 2500 {
		t.Errorf("Int = %v, %v", n, err)
	}
	if b, err := r.Bool("rate"); err != nil || !b {
		t.Errorf("Bool(rate) = %v, %v; want true", b, err)
	}

	// Numeric parse failure is distinct from unknown variable
	if _, err := r.Float64("cl_name"); !errors.Is(err, ErrParse) {
		t.Errorf("Float64(cl_name) returned %v, want ErrParse", err)
	}
	if _, err := r.Int("cl_name"); !errors.Is(err, ErrParse) {
		t.Errorf("Int(cl_name) returned %v, want ErrParse", err)
	}
	if _, err := r.Float64("missing"); !errors.Is(err, ErrUnknownVariable) {
		t.Errorf("Float64(missing) returned %v, want ErrUnknownVariable", err)
	}
}

func TestRegistry_ResetRestoresDefault(t *testing.T) {
	r := New()
	mustRegister(t, r.Register("fov", "90"))
	if err := r.Set("fov", "130"); err != nil {
		t.Fatal(err)
	}
	if err := r.Reset("fov"); err != nil {
		t.Fatal(err)
	}
	if got, _ := r.Value("fov"); got != "90" {
		t.Errorf("value after Reset = %q, want %q", got, "90")
	}
}

func TestRegistry_ListSortedByName(t *testing.T) {
	r := New()
	for _, name := range []string{"zulu", "alpha", "mike"} {
		mustRegister(t, r.Register(name, "0"))
	}

	var names []string
	for _, v := range r.List() {
		names = append(names, v.Name)
	}
	if !reflect.DeepEqual(names, []string{"alpha", "mike", "zulu"}) {
		t.Errorf("List order = %v", names)
	}
}

func TestRegistry_InfoSetMarksDirty(t *testing.T) {
	r := New()
	mustRegister(t, r.RegisterUpdateInfo("cl_name", "player"))
	mustRegister(t, r.Register("fov", "90"))

	if err := r.Set("cl_name", "grunt"); err != nil {
		t.Fatal(err)
	}
	if err := r.Set("fov", "110"); err != nil {
		t.Fatal(err)
	}

	dirty := r.TakeDirtyInfo()
	if !reflect.DeepEqual(dirty, []string{"cl_name"}) {
		t.Errorf("TakeDirtyInfo = %v, want [cl_name]", dirty)
	}

	// Drained: a second take reports nothing
	if dirty := r.TakeDirtyInfo(); len(dirty) != 0 {
		t.Errorf("second TakeDirtyInfo = %v, want empty", dirty)
	}
}

func TestRegistry_NotifyFiresOnInfoSetOnly(t *testing.T) {
	r := New()
	mustRegister(t, r.RegisterUpdateInfo("cl_color", "0"))
	mustRegister(t, r.Register("fov", "90"))

	var gotName, gotValue string
	calls := 0
	r.Notify(func(name, value string) {
		gotName, gotValue = name, value
		calls++
	})

	if err := r.Set("fov", "100"); err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Fatalf("notify fired for non-info variable")
	}

	if err := r.Set("cl_color", "4"); err != nil {
		t.Fatal(err)
	}
	if calls != 1 || gotName != "cl_color" || gotValue != "4" {
		t.Errorf("notify calls=%d name=%q value=%q", calls, gotName, gotValue)
	}
}

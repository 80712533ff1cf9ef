package contact

import (
	"context"
	"testing"
)

func TestFormReadFieldsTrims(t *testing.T) {
	f := NewForm("")
	f.SetName("  Ana ")
	f.SetEmail("ana@example.com\n")
	f.SetMessage("\tHola")

	want := Submission{Name: "Ana", Email: "ana@example.com", Message: "Hola"}
	if got := f.ReadFields(); got != want {
		t.Errorf("ReadFields() = %+v, want %+v", got, want)
	}

	// raw values are left alone
	if snap := f.Snapshot(); snap.Name != "  Ana " {
		t.Errorf("Snapshot().Name = %q, want raw value", snap.Name)
	}
}

func TestFormSubmit(t *testing.T) {
	f := NewForm("")
	if f.Submit(context.Background()) {
		t.Error("Submit() without a listener should not fire")
	}

	calls := 0
	f.OnSubmit(func(ctx context.Context) { calls++ })

	if !f.Submit(context.Background()) || calls != 1 {
		t.Fatalf("Submit() should fire once, calls = %d", calls)
	}

	f.SetBusy(true)
	if f.Submit(context.Background()) {
		t.Error("Submit() on a disabled button should not fire")
	}
	f.SetBusy(false)

	if !f.Submit(context.Background()) || calls != 2 {
		t.Errorf("Submit() after leaving busy should fire, calls = %d", calls)
	}
}

func TestFormOnChange(t *testing.T) {
	f := NewForm("")
	changes := 0
	f.SetOnChange(func() {
		// the listener must be able to read the form
		_ = f.Snapshot()
		changes++
	})

	f.Fill(Submission{Name: "Ana"})
	f.SetBusy(true)
	f.Present("Enviado", KindSuccess)
	f.ClearFields()
	f.HideStatus()
	f.SetBusy(false)

	if changes != 6 {
		t.Errorf("changes = %d, want 6", changes)
	}

	f.SetOnChange(nil)
	f.SetName("x")
	if changes != 6 {
		t.Errorf("listener called after removal, changes = %d", changes)
	}
}

func TestFormClearFields(t *testing.T) {
	f := NewForm("")
	f.Fill(Submission{Name: "Ana", Email: "ana@example.com", Message: "Hola"})
	f.ClearFields()

	snap := f.Snapshot()
	if snap.Name != "" || snap.Email != "" || snap.Message != "" {
		t.Errorf("fields not cleared: %+v", snap)
	}
}

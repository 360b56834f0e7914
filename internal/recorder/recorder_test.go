package recorder

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/matheus3301/chardetect/internal/bus"
	"github.com/matheus3301/chardetect/internal/detect"
	"github.com/matheus3301/chardetect/internal/share"
	"github.com/matheus3301/chardetect/internal/status"
	"github.com/matheus3301/chardetect/internal/store"
)

func testDB(t *testing.T) *store.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func analyze(t *testing.T, text string) *detect.Analysis {
	t.Helper()
	d, err := detect.New(nil, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	return d.Analyze(text)
}

func waitEvent(t *testing.T, ch <-chan bus.Event, kind string) bus.Event {
	t.Helper()
	select {
	case evt := <-ch:
		if evt.Kind != kind {
			t.Fatalf("event kind = %q, want %s", evt.Kind, kind)
		}
		return evt
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for %s event", kind)
	}
	return bus.Event{}
}

func TestSave(t *testing.T) {
	db := testDB(t)
	b := bus.New()
	r := New(db, b, nil, nil)

	ch, unsub := b.Subscribe("sample.", 10)
	defer unsub()

	s, created, err := r.Save("s1", analyze(t, "Aб\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Error("first Save() should create the sample")
	}
	if s.CharCount != 3 || s.BlockCount != 2 || s.SubstitutedCount != 1 {
		t.Errorf("sample counts = %d/%d/%d, want 3/2/1", s.CharCount, s.BlockCount, s.SubstitutedCount)
	}
	if s.ShareToken != share.Encode("Aб\n") {
		t.Errorf("ShareToken = %q", s.ShareToken)
	}

	stored, err := db.GetSample("s1")
	if err != nil {
		t.Fatal(err)
	}
	if stored == nil || len(stored.Blocks) != 2 {
		t.Fatalf("stored sample = %+v", stored)
	}
	if stored.Blocks[0].BlockName != "Basic Latin" || stored.Blocks[0].CharCount != 2 {
		t.Errorf("first block = %+v", stored.Blocks[0])
	}

	evt := waitEvent(t, ch, bus.KindSampleSaved)
	ref, ok := evt.Payload.(bus.SampleRef)
	if !ok || ref.ID != "s1" || ref.CharCount != 3 {
		t.Errorf("payload = %#v", evt.Payload)
	}
}

func TestSaveIdempotent(t *testing.T) {
	db := testDB(t)
	r := New(db, bus.New(), nil, nil)

	if _, _, err := r.Save("s1", analyze(t, "v1")); err != nil {
		t.Fatal(err)
	}
	_, created, err := r.Save("s1", analyze(t, "v2"))
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("second Save() with the same id should update")
	}
	n, err := db.SampleCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("SampleCount() = %d, want 1", n)
	}
}

func TestSaveGeneratesID(t *testing.T) {
	r := New(testDB(t), bus.New(), nil, nil)
	a, _, err := r.Save("", analyze(t, "x"))
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := r.Save("", analyze(t, "x"))
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("generated ids %q and %q should be unique", a.ID, b.ID)
	}
}

func TestDelete(t *testing.T) {
	db := testDB(t)
	b := bus.New()
	r := New(db, b, nil, nil)
	if _, _, err := r.Save("s1", analyze(t, "x")); err != nil {
		t.Fatal(err)
	}

	ch, unsub := b.Subscribe("sample.", 10)
	defer unsub()

	deleted, err := r.Delete("s1")
	if err != nil || !deleted {
		t.Fatalf("Delete() = %v, %v", deleted, err)
	}
	waitEvent(t, ch, bus.KindSampleDeleted)

	deleted, err = r.Delete("s1")
	if err != nil || deleted {
		t.Fatalf("second Delete() = %v, %v", deleted, err)
	}
	select {
	case evt := <-ch:
		t.Errorf("unexpected event for missing sample: %+v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestStoreFailureDegradesAndRecovers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Migrate(); err != nil {
		t.Fatal(err)
	}

	m := status.NewMachine(nil)
	if err := m.Transition(status.Ready, "boot"); err != nil {
		t.Fatal(err)
	}
	r := New(db, bus.New(), m, nil)

	// Dropping the table makes every write fail.
	if _, err := db.Exec(`DROP TABLE sample_blocks`); err != nil {
		t.Fatal(err)
	}
	if _, _, err := r.Save("s1", analyze(t, "x")); err == nil {
		t.Fatal("Save() should fail without the sample_blocks table")
	}
	if m.Current() != status.Degraded {
		t.Fatalf("state = %s, want DEGRADED", m.Current())
	}

	if err := r.Probe(context.Background()); err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if m.Current() != status.Ready {
		t.Errorf("state after probe = %s, want READY", m.Current())
	}

	_ = db.Close()
	if err := r.Probe(context.Background()); err == nil {
		t.Fatal("Probe() on a closed db should fail")
	}
	if m.Current() != status.Degraded {
		t.Errorf("state after failed probe = %s, want DEGRADED", m.Current())
	}
}

func TestStartStop(t *testing.T) {
	db := testDB(t)
	m := status.NewMachine(nil)
	if err := m.Transition(status.Degraded, "test"); err != nil {
		t.Fatal(err)
	}
	r := New(db, bus.New(), m, nil)
	r.Start(context.Background(), 10*time.Millisecond)
	defer r.Stop()

	deadline := time.Now().Add(time.Second)
	for m.Current() != status.Ready {
		if time.Now().After(deadline) {
			t.Fatalf("state = %s, want READY after probing", m.Current())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

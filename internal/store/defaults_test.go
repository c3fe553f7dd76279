package store_test

import (
	"path/filepath"
	"testing"

	"spotdrill/internal/store"
)

func TestDefaults_MissingFileYieldsZero(t *testing.T) {
	ds := store.NewDefaultsStore(filepath.Join(t.TempDir(), "defaults"))
	d, err := ds.Load()
	if err != nil {
		t.Fatalf("load missing defaults: %v", err)
	}
	if d != (store.Defaults{}) {
		t.Fatalf("want zero defaults, got %+v", d)
	}
}

func TestDefaults_SaveLoad(t *testing.T) {
	ds := store.NewDefaultsStore(filepath.Join(t.TempDir(), "defaults"))
	want := store.Defaults{
		DataDir:   "/work/cnc",
		DataFile:  "holes.json",
		GCodeDir:  "/work/cnc/out",
		GCodeFile: "holes.nc",
	}
	if err := ds.Save(want); err != nil {
		t.Fatalf("save defaults: %v", err)
	}
	got, err := ds.Load()
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

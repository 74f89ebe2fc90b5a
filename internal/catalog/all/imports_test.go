package all

import (
	"reflect"
	"testing"

	"schemagen/internal/catalog"
)

func TestAllBackendsRegistered(t *testing.T) {
	want := []string{"mssql", "mysql", "postgres", "sqlite"}
	if got := catalog.Kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Kinds() = %v, want %v", got, want)
	}
}

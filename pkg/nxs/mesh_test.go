package nxs

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMesh_Groups(t *testing.T) {
	mesh := &Mesh{
		Triangles: make([]Triangle, 6),
		Materials: []Material{2, 0, 2, 10, 9, 65535},
	}

	groups := mesh.Groups(DefaultGroupCount)
	if len(groups) != DefaultGroupCount {
		t.Fatalf("expected %d groups, got %d", DefaultGroupCount, len(groups))
	}

	want := [][]int{{1}, nil, {0, 2}, nil, nil, nil, nil, nil, nil, {4}}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}

	if got := mesh.Groups(-1); len(got) != 0 {
		t.Errorf("negative count should produce no groups, got %d", len(got))
	}
}

func TestMesh_Validate(t *testing.T) {
	valid := func() *Mesh {
		return &Mesh{
			Header:    Header{VertexCount: 3, TriangleCount: 1},
			Positions: []Position{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			Triangles: []Triangle{{0, 1, 2}},
			Materials: []Material{2},
		}
	}

	tests := []struct {
		name    string
		mutate  func(m *Mesh)
		wantErr bool
	}{
		{"valid", func(m *Mesh) {}, false},
		{"index equals vertex count", func(m *Mesh) { m.Triangles[0].K = 3 }, true},
		{"missing position", func(m *Mesh) { m.Positions = m.Positions[:2] }, true},
		{"missing material", func(m *Mesh) { m.Materials = nil }, true},
		{"header triangle count mismatch", func(m *Mesh) { m.Header.TriangleCount = 2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(m)
			err := m.Validate()
			if tt.wantErr && !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestHeader_PayloadSize(t *testing.T) {
	tests := []struct {
		name string
		hdr  Header
		want uint64
	}{
		{"empty", Header{}, 0},
		{"8-bit", Header{Flags: FlagIndex8, VertexCount: 2, TriangleCount: 3}, 24 + 9 + 6},
		{"16-bit", Header{Flags: FlagIndex16, VertexCount: 1, TriangleCount: 1}, 12 + 6 + 2},
		{"32-bit max counts", Header{VertexCount: 0xFFFFFFFF, TriangleCount: 0xFFFFFFFF}, 0xFFFFFFFF * (12 + 12 + 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hdr.PayloadSize(); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

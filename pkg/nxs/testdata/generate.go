//go:build ignore

// This program generates a sample NXS file for unit tests.
// Run with: go run generate.go
package main

import (
	"bytes"
	"encoding/binary"
	"os"
)

func main() {
	// A unit cube: 8 vertices, 12 triangles, 16-bit indices, one material per face pair.
	var buf bytes.Buffer

	buf.Write(make([]byte, 12))                           // unexamined
	binary.Write(&buf, binary.LittleEndian, uint32(0x10)) // flags: 16-bit indices
	buf.Write(make([]byte, 12))                           // unexamined
	binary.Write(&buf, binary.LittleEndian, uint32(8))    // vertex count
	binary.Write(&buf, binary.LittleEndian, uint32(12))   // triangle count

	vertices := [][3]float32{
		{0, 0, 0}, {10, 0, 0}, {10, 10, 0}, {0, 10, 0},
		{0, 0, 10}, {10, 0, 10}, {10, 10, 10}, {0, 10, 10},
	}
	for _, v := range vertices {
		binary.Write(&buf, binary.LittleEndian, v)
	}

	triangles := [][3]uint16{
		{0, 2, 1}, {0, 3, 2}, // bottom
		{4, 5, 6}, {4, 6, 7}, // top
		{0, 1, 5}, {0, 5, 4}, // front
		{2, 3, 7}, {2, 7, 6}, // back
		{1, 2, 6}, {1, 6, 5}, // right
		{3, 0, 4}, {3, 4, 7}, // left
	}
	for _, t := range triangles {
		binary.Write(&buf, binary.LittleEndian, t)
	}

	materials := []uint16{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 12, 12}
	binary.Write(&buf, binary.LittleEndian, materials)

	if err := os.WriteFile("sample.nxs", buf.Bytes(), 0644); err != nil {
		panic(err)
	}
}

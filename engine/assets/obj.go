package assets

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ObjMesh is the flat output of the OBJ producer: xyz position triples and a
// triangle-list index sequence. Indices are guaranteed to reference valid
// positions; winding is whatever the file's triangulation order produced.
type ObjMesh struct {
	PositionsXYZ []float32
	Indices      []uint32
}

// LoadObj parses the v/f subset of a Wavefront OBJ file. Texture and normal
// references on face tokens are ignored, polygons are fan-triangulated, and
// both 1-based and negative (relative-to-end) indices are accepted.
func LoadObj(path string) (*ObjMesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: failed to open %s: %w", path, err)
	}
	defer file.Close()

	out := &ObjMesh{}
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj: malformed vertex at line %d", lineNo)
			}
			for _, f := range fields[1:4] {
				v, err := strconv.ParseFloat(f, 32)
				if err != nil {
					return nil, fmt.Errorf("obj: malformed vertex at line %d: %w", lineNo, err)
				}
				out.PositionsXYZ = append(out.PositionsXYZ, float32(v))
			}

		case "f":
			face := fields[1:]
			if len(face) < 3 {
				return nil, fmt.Errorf("obj: face has <3 vertices at line %d", lineNo)
			}

			vertexCount := len(out.PositionsXYZ) / 3

			i0, err := resolveFaceIndex(face[0], vertexCount)
			if err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", lineNo, err)
			}

			// triangulate fan: (0, i, i+1)
			for i := 1; i+1 < len(face); i++ {
				i1, err := resolveFaceIndex(face[i], vertexCount)
				if err != nil {
					return nil, fmt.Errorf("obj: line %d: %w", lineNo, err)
				}
				i2, err := resolveFaceIndex(face[i+1], vertexCount)
				if err != nil {
					return nil, fmt.Errorf("obj: line %d: %w", lineNo, err)
				}
				out.Indices = append(out.Indices, i0, i1, i2)
			}

		default:
			// vt, vn, usemtl, mtllib, o, g, s etc. are not needed here.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj: reading %s: %w", path, err)
	}

	if len(out.PositionsXYZ) == 0 {
		return nil, fmt.Errorf("obj: no vertices loaded from %s", path)
	}
	if len(out.Indices) == 0 {
		return nil, fmt.Errorf("obj: no faces loaded from %s", path)
	}

	return out, nil
}

// resolveFaceIndex turns one face token ("v", "v/vt", "v//vn", "v/vt/vn")
// into a zero-based vertex index, validating it against vertexCount.
func resolveFaceIndex(token string, vertexCount int) (uint32, error) {
	head := token
	if slash := strings.IndexByte(token, '/'); slash >= 0 {
		head = token[:slash]
	}
	if head == "" {
		return 0, fmt.Errorf("face token %q has empty vertex index", token)
	}

	objIndex, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("invalid vertex index token %q", token)
	}

	switch {
	case objIndex > 0:
		// 1-based
		z := objIndex - 1
		if z >= vertexCount {
			return 0, fmt.Errorf("vertex index %d out of range (have %d vertices)", objIndex, vertexCount)
		}
		return uint32(z), nil
	case objIndex < 0:
		// relative to end: -1 is the last vertex
		z := vertexCount + objIndex
		if z < 0 {
			return 0, fmt.Errorf("negative vertex index %d out of range (have %d vertices)", objIndex, vertexCount)
		}
		return uint32(z), nil
	default:
		return 0, fmt.Errorf("vertex index 0 is invalid")
	}
}

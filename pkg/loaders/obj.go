package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kmander/go-pathtracer/pkg/core"
	"github.com/kmander/go-pathtracer/pkg/geometry"
)

// LoadOBJ loads a Wavefront OBJ file and returns its faces as triangles
func LoadOBJ(filename string) ([]*geometry.Triangle, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %v", err)
	}
	defer file.Close()

	triangles, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OBJ file %s: %v", filename, err)
	}

	fmt.Printf("✅ Loaded OBJ mesh: %d triangles in %v\n", len(triangles), time.Since(startTime))

	return triangles, nil
}

// ParseOBJ reads OBJ statements and returns the triangles they define.
// Faces with more than three vertices contribute only their first three
func ParseOBJ(r io.Reader) ([]*geometry.Triangle, error) {
	var (
		positions []core.Vec3
		uvs       []core.Vec2
		normals   []core.Vec3
		triangles []*geometry.Triangle
	)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex position: %v", lineNum, err)
			}
			positions = append(positions, p)
		case "vt":
			uv, err := parseVec2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid texture coordinate: %v", lineNum, err)
			}
			uvs = append(uvs, uv)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex normal: %v", lineNum, err)
			}
			normals = append(normals, n)
		case "f":
			tri, err := parseFace(fields[1:], positions, uvs, normals)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", lineNum, err)
			}
			triangles = append(triangles, tri)
		default:
			// Ignore statements this renderer has no use for
			// (o, g, s, mtllib, usemtl, ...)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %v", err)
	}

	return triangles, nil
}

// parseFace resolves a face statement to a triangle
func parseFace(entries []string, positions []core.Vec3, uvs []core.Vec2, normals []core.Vec3) (*geometry.Triangle, error) {
	if len(entries) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(entries))
	}

	var verts [3]geometry.Vertex
	for i := 0; i < 3; i++ {
		v, err := parseFaceVertex(entries[i], positions, uvs, normals)
		if err != nil {
			return nil, err
		}
		verts[i] = v
	}

	return geometry.NewTriangle(verts[0], verts[1], verts[2]), nil
}

// parseFaceVertex resolves one p, p/t, p//n or p/t/n face entry.
// UV and normal are optional; the position index is not
func parseFaceVertex(entry string, positions []core.Vec3, uvs []core.Vec2, normals []core.Vec3) (geometry.Vertex, error) {
	parts := strings.Split(entry, "/")

	posIndex, err := resolveIndex(parts[0], len(positions))
	if err != nil {
		return geometry.Vertex{}, fmt.Errorf("face vertex %q: %v", entry, err)
	}
	vertex := geometry.Vertex{Pos: positions[posIndex]}

	if len(parts) > 1 && parts[1] != "" {
		uvIndex, err := resolveIndex(parts[1], len(uvs))
		if err != nil {
			return geometry.Vertex{}, fmt.Errorf("face vertex %q: %v", entry, err)
		}
		vertex.UV = uvs[uvIndex]
	}

	if len(parts) > 2 && parts[2] != "" {
		normalIndex, err := resolveIndex(parts[2], len(normals))
		if err != nil {
			return geometry.Vertex{}, fmt.Errorf("face vertex %q: %v", entry, err)
		}
		vertex.Normal = normals[normalIndex]
	}

	return vertex, nil
}

// resolveIndex converts a 1-based OBJ index to a slice index. Negative
// indices count back from the end of the list parsed so far
func resolveIndex(token string, length int) (int, error) {
	idx, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("bad index %q: %v", token, err)
	}

	switch {
	case idx > 0:
		idx--
	case idx < 0:
		idx += length
	default:
		return 0, fmt.Errorf("index 0 is not valid")
	}

	if idx < 0 || idx >= length {
		return 0, fmt.Errorf("index %s out of range (list has %d entries)", token, length)
	}

	return idx, nil
}

func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}

	var v [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("bad component %q: %v", fields[i], err)
		}
		v[i] = f
	}

	return core.NewVec3(v[0], v[1], v[2]), nil
}

func parseVec2(fields []string) (core.Vec2, error) {
	if len(fields) < 2 {
		return core.Vec2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}

	var v [2]float64
	for i := 0; i < 2; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec2{}, fmt.Errorf("bad component %q: %v", fields[i], err)
		}
		v[i] = f
	}

	return core.NewVec2(v[0], v[1]), nil
}

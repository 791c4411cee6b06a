// Package dice provides the six-sided die used by the ladders engine, with
// optional per-face weighting for computer opponents.
package dice

import "sort"

// Faces on the die.
const (
	MinFace = 1
	MaxFace = 6
)

// Bias maps a face to its relative weight. Weights need not sum to one.
// Faces missing from a non-empty Bias are never rolled.
type Bias map[int]float64

// Clone returns an independent copy of b.
func (b Bias) Clone() Bias {
	if b == nil {
		return nil
	}
	out := make(Bias, len(b))
	for face, w := range b {
		out[face] = w
	}
	return out
}

// Roll draws a face. With an empty bias the die is fair; otherwise faces are
// drawn proportionally to their weight. Non-positive weights never win.
func Roll(src Source, bias Bias) int {
	if len(bias) == 0 {
		return MinFace + src.Intn(MaxFace)
	}

	// Iterate in face order so a seeded Source is reproducible.
	faces := make([]int, 0, len(bias))
	total := 0.0
	for face, w := range bias {
		if w > 0 {
			faces = append(faces, face)
			total += w
		}
	}
	if total <= 0 {
		return MinFace + src.Intn(MaxFace)
	}
	sort.Ints(faces)

	target := src.Float64() * total
	for _, face := range faces {
		target -= bias[face]
		if target < 0 {
			return face
		}
	}
	// Floating point residue lands on the last listed face.
	return faces[len(faces)-1]
}

// SPDX-License-Identifier: MIT

package mask

import "fmt"

// Connectivity selects neighbour connectivity inside a time × feature plane.
type Connectivity int

const (
	// Conn4 joins cells that share an edge (same step or same feature).
	Conn4 Connectivity = iota
	// Conn8 also joins diagonal neighbours.
	Conn8
)

var neighbourOffsets = [...][][2]int{
	Conn4: {{-1, 0}, {1, 0}, {0, -1}, {0, 1}},
	Conn8: {{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}},
}

// Gap is one connected region of missing cells within a sample plane,
// with its size and bounding box.
type Gap struct {
	Sample    int
	Cells     int
	FirstStep int
	LastStep  int
	FirstFeat int
	LastFeat  int
}

// Steps returns the extent of g along time.
func (g Gap) Steps() int { return g.LastStep - g.FirstStep + 1 }

// Gaps labels the connected missing regions of every sample plane using a
// breadth-first flood fill. Gaps never span samples. Order: sample, then
// the row-major position of each region's first cell.
//
// Errors:
//   - ErrNilMask, ErrBadAxis for an unknown connectivity.
//
// Time:   O(N·T·F·d), d = 4 or 8.
// Memory: O(N·T·F) for visited flags and the queue.
func Gaps(m *Mask, conn Connectivity) ([]Gap, error) {
	if m == nil {
		return nil, maskErrorf(opGaps, ErrNilMask)
	}
	if conn != Conn4 && conn != Conn8 {
		return nil, maskErrorf(opGaps, fmt.Errorf("connectivity %d: %w", conn, ErrBadAxis))
	}
	l := m.Layout()
	offsets := neighbourOffsets[conn]
	seen := make([]bool, len(m.bits))
	var (
		gaps  []Gap
		queue []int
	)
	for n := 0; n < l.Samples; n++ {
		for t := 0; t < l.Steps; t++ {
			for f := 0; f < l.Features; f++ {
				i0 := l.Offset(n, t, f)
				if !m.bits[i0] || seen[i0] {
					continue
				}
				g := Gap{Sample: n, FirstStep: t, LastStep: t, FirstFeat: f, LastFeat: f}
				seen[i0] = true
				queue = append(queue[:0], i0)
				for qi := 0; qi < len(queue); qi++ {
					u := queue[qi]
					g.Cells++
					ut := (u / l.Features) % l.Steps
					uf := u % l.Features
					g.FirstStep, g.LastStep = min(g.FirstStep, ut), max(g.LastStep, ut)
					g.FirstFeat, g.LastFeat = min(g.FirstFeat, uf), max(g.LastFeat, uf)
					for _, d := range offsets {
						vt, vf := ut+d[0], uf+d[1]
						if vt < 0 || vt >= l.Steps || vf < 0 || vf >= l.Features {
							continue
						}
						vi := l.Offset(n, vt, vf)
						if m.bits[vi] && !seen[vi] {
							seen[vi] = true
							queue = append(queue, vi)
						}
					}
				}
				gaps = append(gaps, g)
			}
		}
	}
	return gaps, nil
}

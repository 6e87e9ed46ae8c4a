package scenario

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/zeusync/mathobjects/pkg/vector"
)

type Kind uint8

const (
	KindVector Kind = iota
	KindScalar
)

// Result is the outcome of one step.
type Result struct {
	Index  int
	Op     string
	Args   []string
	Into   string
	Kind   Kind
	Vector vector.Vector2D
	Scalar float64
}

func (r *Result) setVector(v vector.Vector2D) {
	r.Kind = KindVector
	r.Vector = v
}

func (r *Result) setScalar(f float64) {
	r.Kind = KindScalar
	r.Scalar = f
}

// String renders the result on one line, e.g.
//
//	[0] add a b -> s = (r=1.41421, θ=0.785398) x=1 y=1
func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s", r.Index, r.Op)
	for _, a := range r.Args {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	b.WriteString(" ->")
	if r.Into != "" {
		b.WriteString(" " + r.Into + " =")
	}
	if r.Kind == KindVector {
		x, y := r.Vector.Cartesian()
		fmt.Fprintf(&b, " (r=%s, θ=%s) x=%s y=%s",
			num(r.Vector.Magnitude()), num(r.Vector.Angle()), num(x), num(y))
	} else {
		b.WriteString(" " + num(r.Scalar))
	}
	return b.String()
}

// Report collects the results of one run.
type Report struct {
	RunID   uuid.UUID
	Name    string
	Results []Result
	// Digest is an xxhash of the rendered results. It does not cover
	// RunID, so equal inputs give equal digests.
	Digest uint64
}

func (r *Report) DigestHex() string {
	return fmt.Sprintf("%016x", r.Digest)
}

// Render writes a header, one line per result, and the digest.
func (r *Report) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "scenario %s (run %s)\n", r.Name, r.RunID); err != nil {
		return err
	}
	for _, res := range r.Results {
		if _, err := fmt.Fprintln(w, "  "+res.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  digest %s\n", r.DigestHex())
	return err
}

func (r *Report) digest() uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(r.Name)
	for _, res := range r.Results {
		_, _ = h.WriteString("\n")
		_, _ = h.WriteString(res.String())
	}
	return h.Sum64()
}

func num(f float64) string {
	// clamp rounding noise like 6.123e-17 so reports stay readable
	if f != 0 && f > -1e-12 && f < 1e-12 {
		f = 0
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}

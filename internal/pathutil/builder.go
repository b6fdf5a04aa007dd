package pathutil

import "strings"

// PathBuilder is a stack of path segments such as "Schema[tea_busi]".
type PathBuilder struct {
	segments []string
}

// Push appends segment.
func (p *PathBuilder) Push(segment string) {
	p.segments = append(p.segments, segment)
}

// PushNamed appends "local[name]", or plain local when name is empty. Named
// segments keep paths of sibling elements apart in issue reports.
func (p *PathBuilder) PushNamed(local, name string) {
	if name == "" {
		p.Push(local)
		return
	}
	p.Push(local + "[" + name + "]")
}

// Pop removes the last segment. Popping an empty builder is a no-op.
func (p *PathBuilder) Pop() {
	if n := len(p.segments); n > 0 {
		p.segments = p.segments[:n-1]
	}
}

func (p *PathBuilder) Depth() int { return len(p.segments) }

// Reset empties the builder and keeps its capacity.
func (p *PathBuilder) Reset() { p.segments = p.segments[:0] }

func (p *PathBuilder) String() string {
	return strings.Join(p.segments, "/")
}

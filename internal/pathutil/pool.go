package pathutil

import "sync"

const (
	// pooledDepth covers Edmx/DataServices/Schema/EntityType/NavigationProperty/Annotation
	// and a few levels of annotation expressions.
	pooledDepth = 12
	// Builders grown past maxPooledDepth by pathological nesting are dropped.
	maxPooledDepth = 64
)

var builders = sync.Pool{
	New: func() any {
		return &PathBuilder{segments: make([]string, 0, pooledDepth)}
	},
}

// Get returns an empty PathBuilder from the pool.
func Get() *PathBuilder {
	p := builders.Get().(*PathBuilder)
	p.Reset()
	return p
}

// Put hands p back to the pool. The caller must not use p afterwards.
func Put(p *PathBuilder) {
	if p == nil || cap(p.segments) > maxPooledDepth {
		return
	}
	builders.Put(p)
}

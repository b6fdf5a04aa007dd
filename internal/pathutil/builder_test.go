package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathBuilder_Basic(t *testing.T) {
	p := &PathBuilder{}
	p.Push("Edmx")
	p.Push("DataServices")

	assert.Equal(t, "Edmx/DataServices", p.String())
	assert.Equal(t, 2, p.Depth())
}

func TestPathBuilder_PushNamed(t *testing.T) {
	p := &PathBuilder{}
	p.PushNamed("Schema", "tea_busi")
	p.PushNamed("EntityType", "Worker")
	p.PushNamed("Key", "")

	assert.Equal(t, "Schema[tea_busi]/EntityType[Worker]/Key", p.String())
}

func TestPathBuilder_PushPop(t *testing.T) {
	p := &PathBuilder{}
	p.Push("a")
	p.Push("b")
	p.Pop()
	p.Push("c")

	assert.Equal(t, "a/c", p.String())
	assert.Equal(t, 2, p.Depth())
}

func TestPathBuilder_Empty(t *testing.T) {
	p := &PathBuilder{}
	assert.Equal(t, "", p.String())

	p.Pop() // Should not panic
	assert.Equal(t, "", p.String())
	assert.Equal(t, 0, p.Depth())
}

func TestPathBuilder_Reset(t *testing.T) {
	p := &PathBuilder{}
	p.Push("a")
	p.Push("b")
	p.Reset()

	assert.Equal(t, "", p.String())
	assert.Equal(t, 0, p.Depth())
}

func TestPool(t *testing.T) {
	p := Get()
	p.Push("x")
	Put(p)

	q := Get()
	assert.Equal(t, "", q.String(), "pooled builders must come back reset")
	Put(q)
	Put(nil) // Should not panic
}

func TestPutDropsOversized(t *testing.T) {
	p := &PathBuilder{}
	for range maxPooledDepth + 1 {
		p.Push("Collection")
	}
	Put(p) // oversized builders are discarded rather than pooled
	assert.Equal(t, maxPooledDepth+1, p.Depth())
}

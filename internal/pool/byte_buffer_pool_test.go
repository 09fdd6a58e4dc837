package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndGrow(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("FPLT"))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, 4, bb.Len())

	bb.Grow(100)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 100)
	require.Equal(t, []byte("FPLT"), bb.Bytes())

	_, _ = bb.WriteString("label")
	require.Equal(t, "FPLTlabel", string(bb.Bytes()))

	var out bytes.Buffer
	written, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(9), written)
	require.Equal(t, "FPLTlabel", out.String())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
}

func TestByteBuffer_GrowLargeBuffer(t *testing.T) {
	bb := NewByteBuffer(5 * FrameBufferDefaultSize)
	bb.B = bb.B[:cap(bb.B)]
	oldCap := bb.Cap()

	bb.Grow(1)
	require.Equal(t, oldCap+oldCap/4, bb.Cap())
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	_, _ = bb.Write([]byte("data"))
	p.Put(bb)

	got := p.Get()
	require.Equal(t, 0, got.Len(), "pooled buffers come back empty")

	p.Put(nil)
	p.Put(NewByteBuffer(128)) // over threshold, dropped
}

func TestFrameBufferPool(t *testing.T) {
	bb := GetFrameBuffer()
	require.NotNil(t, bb)
	require.GreaterOrEqual(t, bb.Cap(), 0)
	PutFrameBuffer(bb)
}

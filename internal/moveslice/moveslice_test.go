//
// chesscore - chess engine core in GO
//
// MIT License
//
// Copyright (c) 2020-2026 Kyle Rupp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kylejrp/chesscore/internal/types"
)

func m(from, to Square) Move {
	return CreateMove(from, to, Normal, PtNone)
}

func TestNewMoveSliceLenCap(t *testing.T) {
	ms := NewMoveSlice(DefaultCapacity)
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, DefaultCapacity, ms.Cap())
}

func TestPushBackPopBack(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(m(SqE2, SqE4))
	ms.PushBack(m(SqG1, SqF3))
	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, m(SqG1, SqF3), ms.PopBack())
	assert.Equal(t, 1, ms.Len())
}

func TestPushFrontPopFront(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(m(SqE2, SqE4))
	ms.PushFront(m(SqG1, SqF3))
	assert.Equal(t, m(SqG1, SqF3), ms.Front())
	assert.Equal(t, m(SqG1, SqF3), ms.PopFront())
	assert.Equal(t, m(SqE2, SqE4), ms.Front())
}

func TestFrontBackPanicOnEmpty(t *testing.T) {
	ms := NewMoveSlice(4)
	assert.Panics(t, func() { ms.Front() })
	assert.Panics(t, func() { ms.Back() })
	assert.Panics(t, func() { ms.PopBack() })
	assert.Panics(t, func() { ms.PopFront() })
}

func TestAtSet(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(m(SqE2, SqE4))
	assert.Equal(t, m(SqE2, SqE4), ms.At(0))
	ms.Set(0, m(SqD2, SqD4))
	assert.Equal(t, m(SqD2, SqD4), ms.At(0))
	assert.Panics(t, func() { ms.At(5) })
}

func TestFilter(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(m(SqE2, SqE4))
	ms.PushBack(m(SqG1, SqF3))
	ms.PushBack(m(SqB1, SqC3))
	ms.Filter(func(i int) bool { return ms.At(i).From() == SqG1 })
	assert.Equal(t, 1, ms.Len())
	assert.Equal(t, m(SqG1, SqF3), ms.At(0))
}

func TestFilterCopy(t *testing.T) {
	src := NewMoveSlice(4)
	src.PushBack(m(SqE2, SqE4))
	src.PushBack(m(SqG1, SqF3))
	dest := NewMoveSlice(4)
	src.FilterCopy(dest, func(i int) bool { return src.At(i).From() == SqE2 })
	assert.Equal(t, 1, dest.Len())
	assert.Equal(t, 2, src.Len(), "source is left untouched")
}

func TestCloneIsIndependent(t *testing.T) {
	src := NewMoveSlice(4)
	src.PushBack(m(SqE2, SqE4))
	clone := src.Clone()
	clone.PushBack(m(SqG1, SqF3))
	assert.Equal(t, 1, src.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestEquals(t *testing.T) {
	a := NewMoveSlice(4)
	b := NewMoveSlice(4)
	a.PushBack(m(SqE2, SqE4))
	b.PushBack(m(SqE2, SqE4))
	assert.True(t, a.Equals(b))
	b.PushBack(m(SqG1, SqF3))
	assert.False(t, a.Equals(b))
}

func TestClearRetainsCapacity(t *testing.T) {
	ms := NewMoveSlice(8)
	ms.PushBack(m(SqE2, SqE4))
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 8, ms.Cap())
}

func TestForEachVisitsEveryIndex(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(m(SqE2, SqE4))
	ms.PushBack(m(SqG1, SqF3))
	visited := make([]bool, ms.Len())
	ms.ForEach(func(i int) { visited[i] = true })
	assert.Equal(t, []bool{true, true}, visited)
}

func TestStringUci(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(m(SqE2, SqE4))
	ms.PushBack(m(SqG1, SqF3))
	assert.Equal(t, "e2e4 g1f3", ms.StringUci())
}

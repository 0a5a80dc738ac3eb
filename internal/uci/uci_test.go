// corechess - a Go chess engine core (move generation, search, evaluation)
//
// MIT License
//
// Copyright (c) 2024 corechess contributors
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

package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikalsen/corechess/internal/config"
)

func newTestHandler(t *testing.T, script string) (*Handler, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	in := bufio.NewScanner(strings.NewReader(script))
	h := NewHandler(in, bufio.NewWriter(&out), config.Default())
	return h, &out
}

func lines(out *bytes.Buffer) []string {
	text := strings.TrimRight(out.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func TestHandleUCIRespondsWithUciok(t *testing.T) {
	h, out := newTestHandler(t, "")
	h.dispatch("uci")

	got := lines(out)
	require.NotEmpty(t, got)
	assert.Equal(t, "id name corechess", got[0])
	assert.Equal(t, "uciok", got[len(got)-1])
}

func TestHandleIsReadyRespondsReadyOk(t *testing.T) {
	h, out := newTestHandler(t, "")
	h.dispatch("isready")
	assert.Equal(t, []string{"readyok"}, lines(out))
}

func TestDispatchQuitStopsTheLoop(t *testing.T) {
	h, _ := newTestHandler(t, "")
	assert.True(t, h.dispatch("quit"))
	assert.False(t, h.dispatch("isready"))
}

func TestHandlePositionStartposAppliesMoves(t *testing.T) {
	h, _ := newTestHandler(t, "")
	h.dispatch("position startpos moves e2e4 e7e5")

	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", h.pos.ToFEN())
}

func TestHandlePositionFenWithoutMoves(t *testing.T) {
	h, _ := newTestHandler(t, "")
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	h.dispatch("position fen " + fen)

	assert.Equal(t, fen, h.pos.ToFEN())
}

func TestHandleGoDepthReturnsBestMove(t *testing.T) {
	h, out := newTestHandler(t, "")
	h.dispatch("position fen 6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	h.dispatch("go depth 3")

	got := lines(out)
	require.NotEmpty(t, got)
	last := got[len(got)-1]
	assert.Equal(t, "bestmove a1a8", last)
}

func TestFormatScoreRendersCentipawnsAndMate(t *testing.T) {
	assert.Equal(t, "cp 120", formatScore(120))
	assert.Equal(t, "cp -45", formatScore(-45))
	assert.Equal(t, "mate 1", formatScore(int(29999)))
}

func TestMoveFromUCIResolvesLegalMove(t *testing.T) {
	h, _ := newTestHandler(t, "")
	m := moveFromUCI(h.pos, "e2e4")
	assert.Equal(t, "e2e4", m.UCI())
}

func TestMoveFromUCIRejectsIllegalMove(t *testing.T) {
	h, _ := newTestHandler(t, "")
	m := moveFromUCI(h.pos, "e2e5")
	assert.Equal(t, "0000", m.UCI())
}

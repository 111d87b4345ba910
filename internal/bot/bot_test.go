package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connect4/internal/game"
)

const (
	immediateWin = `
0000000
0000000
0000000
0000000
0000000
2220110`

	verticalThreat = `
0000000
0000000
0000000
1000000
1000000
1002200`

	doubleThreat = `
0000000
0000000
0000000
0000000
0000002
0111002`

	lastCell = `
1122110
2211221
1122112
2211221
1122112
2211221`

	midgame = `
0000000
0000000
0000000
0002000
0012100
0221120`
)

func mustParse(t *testing.T, s string) *game.Board {
	t.Helper()
	b, err := game.ParseBoard(s)
	require.NoError(t, err)
	return b
}

func TestEmptyBoardPrefersCenter(t *testing.T) {
	b := game.NewDefaultGame()
	e := New(WithSeed(1))

	col, err := e.ChooseMove(b, Greedy, Params{})
	require.NoError(t, err)
	assert.Equal(t, 3, col)

	col, err = e.ChooseMove(b, Minimax, Params{Depth: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, col)

	_, score, err := Search(b, 1, game.Player2)
	require.NoError(t, err)
	assert.Equal(t, HeuristicScore(3), score)
}

func TestMinimaxTakesImmediateWin(t *testing.T) {
	b := mustParse(t, immediateWin)
	for depth := 1; depth <= 4; depth++ {
		col, score, err := Search(b, depth, game.Player2)
		require.NoError(t, err)
		assert.Equal(t, 3, col, "depth %d", depth)
		assert.Equal(t, WinScore(), score, "depth %d", depth)

		col, err = New(WithWorkers(4)).ChooseMove(b, Minimax, Params{Depth: depth})
		require.NoError(t, err)
		assert.Equal(t, 3, col, "parallel depth %d", depth)
	}
}

func TestMinimaxBlocksVerticalThreat(t *testing.T) {
	b := mustParse(t, verticalThreat)
	for depth := 2; depth <= 4; depth++ {
		col, score, err := Search(b, depth, game.Player2)
		require.NoError(t, err)
		assert.Equal(t, 0, col, "depth %d", depth)
		assert.NotEqual(t, Loss, score.Outcome, "depth %d", depth)
	}
}

func TestMinimaxLostPositionStillLegal(t *testing.T) {
	b := mustParse(t, doubleThreat)
	col, score, err := Search(b, 2, game.Player2)
	require.NoError(t, err)
	assert.Equal(t, LossScore(), score)
	assert.Equal(t, 0, col)
	assert.True(t, b.IsColumnOpen(col))
}

func TestMinimaxDrawLeaf(t *testing.T) {
	b := mustParse(t, lastCell)
	require.Equal(t, []int{6}, b.OpenColumns())

	col, score, err := Search(b, DefaultDepth, game.Player2)
	require.NoError(t, err)
	assert.Equal(t, 6, col)
	assert.Equal(t, DrawScore(), score)
}

func TestMinimaxDoesNotMutateBoard(t *testing.T) {
	b := mustParse(t, midgame)
	before := b.Clone()
	_, err := ChooseMove(b, Minimax, Params{Depth: 3})
	require.NoError(t, err)
	assert.True(t, before.Equal(b))
}

func TestParallelMatchesSequential(t *testing.T) {
	boards := []string{midgame, verticalThreat, doubleThreat}
	for _, s := range boards {
		b := mustParse(t, s)
		wantCol, wantScore, err := Search(b, DefaultDepth, game.Player2)
		require.NoError(t, err)

		gotCol, gotScore, err := New(WithWorkers(3)).rootMinimax(b, DefaultDepth)
		require.NoError(t, err)
		assert.Equal(t, wantCol, gotCol)
		assert.Equal(t, wantScore, gotScore)
	}
}

func TestMinimaxForPlayerOne(t *testing.T) {
	b := mustParse(t, `
0000000
0000000
0000000
0000000
0000000
0220111`)
	col, err := New(WithPlayer(game.Player1)).ChooseMove(b, Minimax, Params{Depth: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, col)
}

func TestGreedyTieBreaksOnFirstColumn(t *testing.T) {
	b := game.NewDefaultGame()
	for i := 0; i < game.DefaultRows; i++ {
		_, err := b.Place(3, game.Player(i%2+1))
		require.NoError(t, err)
	}
	// Columns 0, 2, 4 and 6 all score 14.
	col, err := greedy(b, game.Player2)
	require.NoError(t, err)
	assert.Equal(t, 0, col)

	small, err := game.NewGame(4, 4)
	require.NoError(t, err)
	col, err = greedy(small, game.Player2)
	require.NoError(t, err)
	assert.Equal(t, 2, col)
}

func TestRandomIsLegalAndReproducible(t *testing.T) {
	b := game.NewDefaultGame()
	for i := 0; i < game.DefaultRows; i++ {
		for _, col := range []int{0, 1, 2, 4, 6} {
			_, err := b.Place(col, game.Player(i%2+1))
			require.NoError(t, err)
		}
	}
	require.Equal(t, []int{3, 5}, b.OpenColumns())
	require.False(t, b.IsTerminal())

	first := New(WithSeed(42))
	second := New(WithSeed(42))
	for i := 0; i < 50; i++ {
		a, err := first.ChooseMove(b, Random, Params{})
		require.NoError(t, err)
		c, err := second.ChooseMove(b, Random, Params{})
		require.NoError(t, err)
		assert.Equal(t, a, c)
		assert.Contains(t, []int{3, 5}, a)
	}
}

func TestChooseMoveErrors(t *testing.T) {
	won := mustParse(t, `
0000000
0000000
0000000
0000000
0000000
2222110`)
	for _, s := range []Strategy{Random, Greedy, Minimax} {
		_, err := ChooseMove(won, s, Params{})
		assert.ErrorIs(t, err, ErrNoMoves, s.String())
	}

	_, err := ChooseMove(game.NewDefaultGame(), Strategy(9), Params{})
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestScoreOrdering(t *testing.T) {
	assert.True(t, LossScore().Less(HeuristicScore(-1000000)))
	assert.True(t, HeuristicScore(-1).Less(DrawScore()))
	assert.True(t, HeuristicScore(1000000).Less(WinScore()))
	assert.False(t, WinScore().Less(WinScore()))
	assert.False(t, LossScore().Less(LossScore()))
	assert.Equal(t, "+inf", WinScore().String())
	assert.Equal(t, "-inf", LossScore().String())
	assert.Equal(t, "12", HeuristicScore(12).String())
}

func TestParseStrategy(t *testing.T) {
	tests := map[string]Strategy{
		"random":  Random,
		"easy":    Random,
		"Greedy":  Greedy,
		"medium":  Greedy,
		"minimax": Minimax,
		" hard ":  Minimax,
	}
	for name, want := range tests {
		got, err := ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseStrategy("impossible")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestStrategyValid(t *testing.T) {
	for _, s := range []Strategy{Random, Greedy, Minimax} {
		assert.True(t, s.Valid(), s.String())
	}
	assert.False(t, Strategy(9).Valid())
	assert.False(t, Strategy(-1).Valid())
}

func TestParamsDepthDefault(t *testing.T) {
	assert.Equal(t, DefaultDepth, Params{}.depth())
	assert.Equal(t, DefaultDepth, Params{Depth: -2}.depth())
	assert.Equal(t, 6, Params{Depth: 6}.depth())
}

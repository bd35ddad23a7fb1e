package matchdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("decodes known columns and trims header whitespace", func(t *testing.T) {
		input := " tourney_id , tourney_name,surface,tourney_date,match_num,winner_id,winner_name,loser_id,loser_name,round,score\n" +
			"2024-0339,Brisbane,Hard,20240101,300,104925,Novak Djokovic,106233,Dominic Thiem,F,6-3 6-4\n"

		matches, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, matches, 1)

		m := matches[0]
		assert.Equal(t, "2024-0339", m.TourneyID)
		assert.Equal(t, "Brisbane", m.TourneyName)
		assert.Equal(t, "Hard", m.Surface)
		assert.Equal(t, "20240101", m.TourneyDate)
		assert.Equal(t, "104925", m.WinnerID)
		assert.Equal(t, "Dominic Thiem", m.LoserName)
		assert.Equal(t, "F", m.Round)
		assert.Equal(t, "6-3 6-4", m.Score)
		assert.Empty(t, m.Extra)
	})

	t.Run("skips empty lines", func(t *testing.T) {
		input := "winner_id,loser_id\n\n1,2\n\n,\n3,4\n"

		matches, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "1", matches[0].WinnerID)
		assert.Equal(t, "3", matches[1].WinnerID)
	})

	t.Run("stray quotes stay in their field", func(t *testing.T) {
		input := "winner_id,tourney_name,loser_id\n" +
			"1,Queen\"s Club,2\n" +
			"3,'s-Hertogenbosch \"\"open\"\",4\n"

		matches, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "Queen\"s Club", matches[0].TourneyName)
		assert.Equal(t, "2", matches[0].LoserID)
		assert.Equal(t, "'s-Hertogenbosch \"\"open\"\"", matches[1].TourneyName)
		assert.Equal(t, "4", matches[1].LoserID)
	})

	t.Run("short rows leave missing columns empty", func(t *testing.T) {
		input := "winner_id,loser_id,surface,round\n1,2\n"

		matches, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "2", matches[0].LoserID)
		assert.Equal(t, "", matches[0].Surface)
		assert.Equal(t, "", matches[0].Round)
	})

	t.Run("unknown columns go to extra", func(t *testing.T) {
		input := "winner_id,loser_id,w_ace,l_ace\n1,2,12,\n"

		matches, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "12", matches[0].Get("w_ace"))
		assert.Equal(t, "", matches[0].Get("l_ace"))
		assert.Contains(t, matches[0].Extra, "l_ace")
		assert.Equal(t, "1", matches[0].Get("winner_id"))
	})

	t.Run("quoted fields and byte order mark", func(t *testing.T) {
		input := "\ufefftourney_name,winner_id,loser_id\n\"Indian Wells, CA\",1,2\n"

		matches, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "Indian Wells, CA", matches[0].TourneyName)
	})

	t.Run("empty document", func(t *testing.T) {
		matches, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("header only", func(t *testing.T) {
		matches, err := Parse(strings.NewReader("winner_id,loser_id\n"))
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("blank header", func(t *testing.T) {
		_, err := Parse(strings.NewReader(" , \n1,2\n"))
		assert.ErrorIs(t, err, ErrNoHeader)
	})
}

package ui

import (
	"bytes"
	"testing"

	"github.com/corpeningc/compare-rows/internal/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineCountMessage(t *testing.T) {
	t.Run("Should use singular for one line", func(t *testing.T) {
		assert.Equal(t, "1 line found in /tmp/a.txt.", lineCountMessage(1, "/tmp/a.txt"))
	})

	t.Run("Should use plural otherwise", func(t *testing.T) {
		assert.Equal(t, "2 lines found in /tmp/a.txt.", lineCountMessage(2, "/tmp/a.txt"))
		assert.Equal(t, "0 lines found in /tmp/a.txt.", lineCountMessage(0, "/tmp/a.txt"))
	})
}

func TestSummaryMessages(t *testing.T) {
	t.Run("Should phrase empty, singular and plural counts", func(t *testing.T) {
		res := compare.Result{
			Common: []string{},
			DiffA:  []string{"a"},
			DiffB:  []string{"b", "c"},
		}

		got := summaryMessages(res, "/a.txt", "/b.txt")

		assert.Equal(t, []string{
			"   - No common rows found.",
			"   - 1 different row found in /a.txt.",
			"   - 2 different rows found in /b.txt.",
		}, got)
	})

	t.Run("Should phrase common rows", func(t *testing.T) {
		res := compare.Result{Common: []string{"x", "y", "z"}}

		got := summaryMessages(res, "/a.txt", "/b.txt")

		assert.Equal(t, "   - 3 common rows found.", got[0])
		assert.Equal(t, "   - No different rows found in /a.txt.", got[1])
	})
}

func TestPrinter(t *testing.T) {
	t.Run("Should prefix each channel", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf)

		p.Success("done")
		p.Info("note")
		p.Error("File %s not found", "/x")

		assert.Equal(t, "✔ done\ni note\nx File /x not found\n", buf.String())
	})

	t.Run("Should render the summary in order", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf)

		p.LineCount(2, "/a.txt")
		p.Summary(compare.Result{Common: []string{"banana"}}, "/a.txt", "/b.txt")

		assert.Equal(t,
			"i 2 lines found in /a.txt.\n"+
				"✔ RESULTS:\n"+
				"✔ ========\n"+
				"✔    - 1 common row found.\n"+
				"✔    - No different rows found in /a.txt.\n"+
				"✔    - No different rows found in /b.txt.\n",
			buf.String())
	})

	t.Run("Should print results as JSON arrays", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf)

		err := p.PrintResults(compare.Result{
			Common: []string{"banana"},
			DiffA:  []string{"apple"},
			DiffB:  nil,
		}, "/a.txt", "/b.txt")
		require.NoError(t, err)

		assert.Equal(t,
			"✔ COMMON ROWS:\n[\n  \"banana\"\n]\n\n"+
				"✔ DIFFERENT ROWS IN FILE /a.txt:\n[\n  \"apple\"\n]\n\n"+
				"✔ DIFFERENT ROWS IN FILE /b.txt:\n[]\n\n",
			buf.String())
	})

	t.Run("Should list saved files", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf)

		p.Saved("/common.json", "/diff-a.json", "/diff-b.json")

		assert.Equal(t,
			"✔ The following 3 files have been successfully saved:\n"+
				"✔   - /common.json\n"+
				"✔   - /diff-a.json\n"+
				"✔   - /diff-b.json\n",
			buf.String())
	})
}

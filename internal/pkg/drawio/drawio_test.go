package drawio

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestReadCSV(t *testing.T) {
	input := `draw_number,n1,n2,n3,n4,n5,n6,bonus,date
1,10,23,29,33,37,40,16,2002-12-07
# comment
2, 9,13,21,25,32,42,2
`
	draws, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, draws, 2)

	assert.Equal(t, 1, draws[0].Index)
	assert.Equal(t, []int{10, 23, 29, 33, 37, 40}, draws[0].Numbers)
	assert.Equal(t, 16, draws[0].Bonus)
	require.NotNil(t, draws[0].Date)
	assert.Equal(t, "2002-12-07", draws[0].Date.Format(dateLayout))

	assert.Equal(t, 2, draws[1].Index)
	assert.Nil(t, draws[1].Date)
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("1,2,3\n"))
	assert.ErrorContains(t, err, "csv line 1")

	_, err = ReadCSV(strings.NewReader("1,2,3,4,5,6,7,8\n2,2,3,x,5,6,7,8\n"))
	assert.ErrorContains(t, err, "csv line 2")
}

func TestReadJSONL(t *testing.T) {
	input := `{"returnValue":"success","drwNo":1,"drwNoDate":"2002-12-07","drwtNo1":10,"drwtNo2":23,"drwtNo3":29,"drwtNo4":33,"drwtNo5":37,"drwtNo6":40,"bnusNo":16}

{"returnValue":"fail"}
{"returnValue":"success","drwNo":2,"drwNoDate":"2002-12-14","drwtNo1":9,"drwtNo2":13,"drwtNo3":21,"drwtNo4":25,"drwtNo5":32,"drwtNo6":42,"bnusNo":2}
`
	draws, err := ReadJSONL(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, draws, 2)
	assert.Equal(t, []int{9, 13, 21, 25, 32, 42}, draws[1].Numbers)
	assert.Equal(t, 2, draws[1].Bonus)
	assert.Equal(t, "2002-12-14", draws[1].Date.Format(dateLayout))
}

func TestReadJSONLErrors(t *testing.T) {
	_, err := ReadJSONL(strings.NewReader("{not json}\n"))
	assert.ErrorContains(t, err, "jsonl line 1")

	_, err = ReadJSONL(strings.NewReader(`{"drwNo":1,"drwtNo1":"ten"}` + "\n"))
	assert.ErrorContains(t, err, "drwtNo1")

	_, err = ReadJSONL(strings.NewReader(`{"drwNo":3,"drwtNo1":1,"drwtNo2":2,"drwtNo3":3,"drwtNo4":4,"drwtNo5":5,"bnusNo":7}` + "\n"))
	assert.ErrorContains(t, err, "drwtNo6")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draws.csv")
	require.NoError(t, os.WriteFile(path, []byte("5,1,2,3,4,5,6,7\n"), 0o644))

	draws, err := ReadFile(context.Background(), FormatCSV, path)
	require.NoError(t, err)
	require.Len(t, draws, 1)
	assert.Equal(t, 5, draws[0].Index)
}

func TestReadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lotto.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE lotto_results (
		draw_number INTEGER PRIMARY KEY,
		num1 INTEGER, num2 INTEGER, num3 INTEGER, num4 INTEGER, num5 INTEGER, num6 INTEGER,
		bonus INTEGER, draw_date TEXT, money1 INTEGER
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO lotto_results VALUES
		(2, 9, 13, 21, 25, 32, 42, 2, '2002-12-14', 0),
		(1, 10, 23, 29, 33, 37, 40, 16, NULL, 0)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	draws, err := ReadFile(context.Background(), FormatSQLite, path)
	require.NoError(t, err)
	require.Len(t, draws, 2)
	assert.Equal(t, 1, draws[0].Index)
	assert.Nil(t, draws[0].Date)
	assert.Equal(t, []int{9, 13, 21, 25, 32, 42}, draws[1].Numbers)
	assert.Equal(t, "2002-12-14", draws[1].Date.Format(dateLayout))
}

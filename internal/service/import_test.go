package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/lotto-stats/backend/internal/model"
	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

type recordingWriter struct {
	rows []*model.Draw
}

func (w *recordingWriter) BatchUpsert(_ context.Context, rows []*model.Draw) (int, error) {
	w.rows = append(w.rows, rows...)
	return len(rows), nil
}

type recordingPublisher struct {
	subjects []string
	messages [][]byte
}

func (p *recordingPublisher) Publish(subj string, data []byte) error {
	p.subjects = append(p.subjects, subj)
	p.messages = append(p.messages, data)
	return nil
}

func TestImport(t *testing.T) {
	writer := &recordingWriter{}
	publisher := &recordingPublisher{}
	s := NewImport(writer, publisher)

	draws := []drawstats.Draw{generatedDraw(3), generatedDraw(1), generatedDraw(2)}
	result, err := s.Import(context.Background(), "csv", draws)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)
	assert.Equal(t, 1, result.FirstDraw)
	assert.Equal(t, 3, result.LastDraw)

	require.Len(t, writer.rows, 3)
	assert.Equal(t, 1, writer.rows[0].DrawNumber)
	assert.Equal(t, 3, writer.rows[2].DrawNumber)

	require.Equal(t, []string{DrawsImportedSubject}, publisher.subjects)
	msg := gjson.ParseBytes(publisher.messages[0])
	assert.EqualValues(t, 3, msg.Get("count").Int())
	assert.Equal(t, "csv", msg.Get("format").String())
	assert.Equal(t, result.Fingerprint, msg.Get("fingerprint").String())
}

func TestImportRejectsInvalidDraw(t *testing.T) {
	writer := &recordingWriter{}
	publisher := &recordingPublisher{}
	s := NewImport(writer, publisher)

	bad := drawstats.Draw{Index: 9, Numbers: []int{1, 2, 3, 4, 5, 46}, Bonus: 7}
	_, err := s.Import(context.Background(), "jsonl", []drawstats.Draw{generatedDraw(1), bad})

	var invalid *drawstats.InvalidDrawError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 9, invalid.Index)
	assert.Empty(t, writer.rows)
	assert.Empty(t, publisher.subjects)

	_, err = s.Import(context.Background(), "jsonl", nil)
	assert.Error(t, err)
}

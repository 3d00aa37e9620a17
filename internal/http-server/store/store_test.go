package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMatchesNameDescriptionCategory(t *testing.T) {
	s := New()

	assert.Len(t, s.Search("keyboard"), 1)
	assert.Len(t, s.Search("porcelain"), 1)
	assert.Len(t, s.Search("ELECTRONICS"), 2)
	assert.Empty(t, s.Search("xyz-no-match"))
}

func TestSearchSkipsLeakedRow(t *testing.T) {
	// the leaked row has no name/description/category, so no query finds it;
	// only the full feed exposes it
	assert.Empty(t, New().Search("bob"))
}

func TestGetUnknownIDIsNil(t *testing.T) {
	s := New()
	assert.Nil(t, s.Get("999"))
	assert.NotNil(t, s.Get("42"))
}

func TestAddCommentDecodesPayload(t *testing.T) {
	s := New()

	c, err := s.AddComment("42", "1|ID_SPLIT|Nice")
	require.NoError(t, err)
	assert.Equal(t, "demo", c.Username)
	assert.Equal(t, "Nice", c.Comment)
	assert.NotEmpty(t, c.ID)

	got := s.Comments("42")
	require.Len(t, got, 1)
	assert.Equal(t, c.ID, got[0].ID)
}

func TestAddCommentUnknownSubmitter(t *testing.T) {
	s := New()

	c, err := s.AddComment("42", "99|ID_SPLIT|hi")
	require.NoError(t, err)
	assert.Equal(t, "user-99", c.Username)
}

func TestAddCommentRejectsBadPayload(t *testing.T) {
	s := New()

	_, err := s.AddComment("42", "not a payload")
	require.Error(t, err)
	assert.Empty(t, s.Comments("42"))
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListParamsValidate(t *testing.T) {
	valid := ListParams{Page: 0, Size: 10, SortBy: "created_at,desc"}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, ListParams{Page: -1, Size: 10, SortBy: "id,asc"}.Validate(), ErrInvalidListParams)
	assert.ErrorIs(t, ListParams{Page: 0, Size: 0, SortBy: "id,asc"}.Validate(), ErrInvalidListParams)
	assert.ErrorIs(t, ListParams{Page: 0, Size: 10, SortBy: ""}.Validate(), ErrInvalidListParams)
}

func TestListParamsOffset(t *testing.T) {
	assert.Equal(t, 0, ListParams{Page: 0, Size: 10}.Offset())
	assert.Equal(t, 30, ListParams{Page: 3, Size: 10}.Offset())
}

func TestListParamsSortParts(t *testing.T) {
	p := ListParams{SortBy: "name,asc"}
	assert.Equal(t, "name", p.SortField())
	assert.True(t, p.Ascending())

	// direction is matched case-insensitively, everything else sorts DESC
	assert.True(t, ListParams{SortBy: "name,ASC"}.Ascending())
	assert.False(t, ListParams{SortBy: "name,desc"}.Ascending())
	assert.False(t, ListParams{SortBy: "name,sideways"}.Ascending())
	assert.False(t, ListParams{SortBy: "name"}.Ascending())

	assert.Equal(t, "created_at", ListParams{SortBy: " created_at , asc "}.SortField())
	assert.True(t, ListParams{SortBy: " created_at , asc "}.Ascending())
}

func TestOrderClause(t *testing.T) {
	clause, err := orderClause(ListParams{Page: 0, Size: 5, SortBy: "name,asc"}, "id", "name", "created_at")
	require.NoError(t, err)
	assert.Equal(t, "name ASC", clause)

	clause, err = orderClause(ListParams{Page: 0, Size: 5, SortBy: "created_at,desc"}, "id", "name", "created_at")
	require.NoError(t, err)
	assert.Equal(t, "created_at DESC", clause)

	// missing direction falls back to DESC
	clause, err = orderClause(ListParams{Page: 0, Size: 5, SortBy: "id"}, "id")
	require.NoError(t, err)
	assert.Equal(t, "id DESC", clause)
}

func TestOrderClauseRejectsUnknownField(t *testing.T) {
	_, err := orderClause(ListParams{Page: 0, Size: 5, SortBy: "password,asc"}, "id", "name")
	assert.ErrorIs(t, err, ErrUnknownSortField)

	_, err = orderClause(ListParams{Page: 0, Size: 5, SortBy: "name; DROP TABLE news,asc"}, "id", "name")
	assert.ErrorIs(t, err, ErrUnknownSortField)
}

func TestOrderClauseRejectsInvalidParams(t *testing.T) {
	_, err := orderClause(ListParams{Page: -1, Size: 5, SortBy: "id,asc"}, "id")
	assert.ErrorIs(t, err, ErrInvalidListParams)

	_, err = orderClause(ListParams{Page: 0, Size: 5, SortBy: ",asc"}, "id")
	assert.ErrorIs(t, err, ErrInvalidListParams)
}

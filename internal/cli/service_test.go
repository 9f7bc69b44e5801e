package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_AddAndGet(t *testing.T) {
	s := NewTaskService()

	id, err := s.Add("  Buy milk  ", "2 liters")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	task, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "2 liters", task.Description)
	assert.False(t, task.Completed)
}

func TestTaskService_AddRejectsEmptyTitle(t *testing.T) {
	s := NewTaskService()

	for _, title := range []string{"", "   ", "\t"} {
		_, err := s.Add(title, "")
		assert.ErrorIs(t, err, ErrEmptyTitle)
	}
	assert.Empty(t, s.List())
}

func TestTaskService_ListOrderedByID(t *testing.T) {
	s := NewTaskService()

	for _, title := range []string{"first", "second", "third"} {
		_, err := s.Add(title, "")
		require.NoError(t, err)
	}

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, "first", list[0].Title)
}

func TestTaskService_Update(t *testing.T) {
	s := NewTaskService()
	id, err := s.Add("title", "desc")
	require.NoError(t, err)

	t.Run("nil fields keep current values", func(t *testing.T) {
		require.NoError(t, s.Update(id, nil, nil))
		task, err := s.Get(id)
		require.NoError(t, err)
		assert.Equal(t, "title", task.Title)
		assert.Equal(t, "desc", task.Description)
	})

	t.Run("partial update", func(t *testing.T) {
		newDesc := "new desc"
		require.NoError(t, s.Update(id, nil, &newDesc))
		task, err := s.Get(id)
		require.NoError(t, err)
		assert.Equal(t, "title", task.Title)
		assert.Equal(t, "new desc", task.Description)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		blank := "   "
		assert.ErrorIs(t, s.Update(id, &blank, nil), ErrEmptyTitle)
	})

	t.Run("missing task", func(t *testing.T) {
		title := "x"
		assert.ErrorIs(t, s.Update(999, &title, nil), ErrTaskNotFound)
	})
}

func TestTaskService_Delete(t *testing.T) {
	s := NewTaskService()
	id, err := s.Add("title", "")
	require.NoError(t, err)

	require.NoError(t, s.Delete(id))
	_, err = s.Get(id)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	assert.ErrorIs(t, s.Delete(id), ErrTaskNotFound)
}

func TestTaskService_IDsNotReusedAfterDelete(t *testing.T) {
	s := NewTaskService()

	id1, err := s.Add("first", "")
	require.NoError(t, err)
	require.NoError(t, s.Delete(id1))

	id2, err := s.Add("second", "")
	require.NoError(t, err)
	assert.Greater(t, id2, id1)
}

func TestTaskService_Toggle(t *testing.T) {
	s := NewTaskService()
	id, err := s.Add("title", "")
	require.NoError(t, err)

	completed, err := s.Toggle(id)
	require.NoError(t, err)
	assert.True(t, completed)

	completed, err = s.Toggle(id)
	require.NoError(t, err)
	assert.False(t, completed)

	_, err = s.Toggle(999)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

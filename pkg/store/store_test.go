package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/animaart/planner/pkg/store"
)

func getStore(assert *assert.Assertions) (*store.Store, string) {
	tempFile, err := os.CreateTemp("/tmp", "test_store*")
	assert.Nil(err)

	st, err := store.NewStore(context.Background(), tempFile.Name())
	assert.NotNil(st)
	assert.Nil(err)

	return st, tempFile.Name()
}

func TestNewStoreBadFile(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	st, err := store.NewStore(context.Background(), "/alwfkjasfd/asdflkjdsal.sqlite")
	assert.Nil(st)
	assert.NotNil(err)
}

func TestLoadAbsent(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	st, _ := getStore(assert)
	defer st.Close()

	value, ok, err := st.Load(context.Background(), store.TasksKey)
	assert.Nil(err)
	assert.False(ok)
	assert.Nil(value)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	st, _ := getStore(assert)
	defer st.Close()

	ctx := context.Background()

	payload := []byte(`[{"id":"1","title":"Comprar balões","completed":false,"priority":"high"}]`)

	err := st.Save(ctx, store.TasksKey, payload)
	assert.Nil(err)

	value, ok, err := st.Load(ctx, store.TasksKey)
	assert.Nil(err)
	assert.True(ok)
	assert.Equal(payload, value)
}

func TestSaveReplacesPriorValue(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	st, _ := getStore(assert)
	defer st.Close()

	ctx := context.Background()

	assert.Nil(st.Save(ctx, store.PartiesKey, []byte(`[]`)))
	assert.Nil(st.Save(ctx, store.PartiesKey, []byte(`[{"id":"1"}]`)))

	value, ok, err := st.Load(ctx, store.PartiesKey)
	assert.Nil(err)
	assert.True(ok)
	assert.Equal([]byte(`[{"id":"1"}]`), value)
}

func TestValuesSurviveReopen(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	st, filename := getStore(assert)

	ctx := context.Background()

	assert.Nil(st.Save(ctx, store.TasksKey, []byte(`[]`)))
	assert.Nil(st.Save(ctx, store.PartiesKey, []byte(`[{"id":"7"}]`)))
	assert.Nil(st.Close())

	st2, err := store.NewStore(ctx, filename)
	assert.Nil(err)

	defer st2.Close()

	value, ok, err := st2.Load(ctx, store.TasksKey)
	assert.Nil(err)
	assert.True(ok)
	assert.Equal([]byte(`[]`), value)

	value, ok, err = st2.Load(ctx, store.PartiesKey)
	assert.Nil(err)
	assert.True(ok)
	assert.Equal([]byte(`[{"id":"7"}]`), value)
}

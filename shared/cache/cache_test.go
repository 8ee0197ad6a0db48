package cache_test

import (
	"context"
	"testing"

	"dueday/shared/cache"

	"github.com/stretchr/testify/assert"
)

func TestNoop(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNoop()

	var out string

	assert.NoError(t, c.Save(ctx, "todo:1", "value", 60))
	assert.ErrorIs(t, c.Get(ctx, "todo:1", &out), cache.ErrMiss)
	assert.Empty(t, out)
	assert.NoError(t, c.Delete(ctx, "todo:1"))
	assert.NoError(t, c.Clear(ctx, "todo:"))
}

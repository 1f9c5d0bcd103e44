package singleton

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetInstance(t *testing.T) {
	t.Helper()
	instance.Reset()
	t.Cleanup(instance.Reset)
}

func TestGetInstance(t *testing.T) {
	t.Run("later values are ignored", func(t *testing.T) {
		resetInstance(t)

		first, err := GetInstance("FOO")
		require.NoError(t, err)
		second, err := GetInstance("BAR")
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, "FOO", second.Value())
		assert.True(t, Initialized())
	})

	t.Run("empty value fails and can be retried", func(t *testing.T) {
		resetInstance(t)

		_, err := GetInstance("   ")
		assert.ErrorIs(t, err, ErrEmptyValue)
		assert.False(t, Initialized())

		inst, err := GetInstance("retry")
		require.NoError(t, err)
		assert.Equal(t, "retry", inst.Value())
	})
}

func TestGetInstance_Stress(t *testing.T) {
	resetInstance(t)

	const callers = 100
	supplied := make(map[string]bool, callers)
	for i := 0; i < callers; i++ {
		supplied[fmt.Sprintf("value-%03d", i)] = true
	}

	start := make(chan struct{})
	results := make([]*Instance, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			inst, err := GetInstance(fmt.Sprintf("value-%03d", i))
			assert.NoError(t, err)
			results[i] = inst
		}(i)
	}
	close(start)
	wg.Wait()

	require.NotNil(t, results[0])
	for i := range results {
		assert.Same(t, results[0], results[i])
	}
	assert.True(t, supplied[results[0].Value()], "value %q was never supplied", results[0].Value())
}

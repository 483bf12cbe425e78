package msync

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	a := require.New(t)

	m := Map[string, int]{}
	_, ok := m.Load("missing")
	a.False(ok)

	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Store(strconv.Itoa(i), i)
		}(i)
	}
	wg.Wait()

	v, ok := m.Load("7")
	a.True(ok)
	a.Equal(7, v)

	actual, loaded := m.LoadOrStore("7", 100)
	a.True(loaded)
	a.Equal(7, actual)

	m.Delete("7")
	_, ok = m.Load("7")
	a.False(ok)

	count := 0
	m.Range(func(key string, value int) bool {
		a.Equal(key, strconv.Itoa(value))
		count++
		return true
	})
	a.Equal(49, count)
}

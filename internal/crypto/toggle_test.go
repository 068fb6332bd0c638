package crypto

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultToggle(t *testing.T) {
	prev := UseEncryption()
	t.Cleanup(func() { SetUseEncryption(prev) })

	SetUseEncryption(true)
	assert.True(t, UseEncryption())
	SetUseEncryption(false)
	assert.False(t, UseEncryption())
}

func TestToggle_Concurrent(t *testing.T) {
	tg := NewToggle(false)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 1000 {
				tg.Set(i%2 == 0)
			}
		}()
		go func() {
			defer wg.Done()
			for range 1000 {
				_ = tg.Enabled()
			}
		}()
	}
	wg.Wait()

	tg.Set(true)
	done := make(chan bool)
	go func() { done <- tg.Enabled() }()
	assert.True(t, <-done, "a write must be visible to other goroutines")
}

func TestCodec_Disabled(t *testing.T) {
	c := NewTableCodec("table_name", Disabled)
	assert.False(t, c.Enabled())
	assert.Equal(t, int32(1234), c.Int32(1234))
	assert.Equal(t, int64(-5), c.Int64(-5))
	assert.Equal(t, uint32(7), c.Uint32(7))
	assert.Equal(t, uint64(9), c.Uint64(9))
	assert.Equal(t, float32(105000), c.Float32(105000))
	assert.Equal(t, 1.5, c.EncryptFloat64(1.5))
	assert.Equal(t, "plain", c.EncryptString("plain"))
	assert.Equal(t, []byte("row"), c.Row("Row", []byte("row")))

	s, err := c.DecryptString("not base64!")
	require.NoError(t, err)
	assert.Equal(t, "not base64!", s)
}

func TestCodec_Enabled(t *testing.T) {
	c := NewTableCodec("table_name", Enabled)
	assert.Equal(t, CreateKeyString("table_name"), c.Key())
	assert.Equal(t, int32(486414762), c.Int32(1234))
	assert.Equal(t, int32(0), c.Int32(0))
	assert.Equal(t, float32(1.5), c.Float32(c.EncryptFloat32(1.5)))
	assert.Equal(t, 0.25, c.Float64(c.EncryptFloat64(0.25)))
	assert.Equal(t, uint64(77), c.Uint64(c.Uint64(77)))

	s, err := c.DecryptString(c.EncryptString("Hello, world!"))
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", s)
	assert.Equal(t, []byte("hello"), c.Row("Row", c.Row("Row", []byte("hello"))))
}

func TestCodec_FollowsToggle(t *testing.T) {
	tg := NewToggle(false)
	c := NewTableCodec("table_name", tg)
	assert.Equal(t, int32(1234), c.Int32(1234))

	tg.Set(true)
	assert.Equal(t, int32(486414762), c.Int32(1234))
}

func TestCodec_NilSwitchUsesDefault(t *testing.T) {
	prev := UseEncryption()
	t.Cleanup(func() { SetUseEncryption(prev) })

	c := NewTableCodec("table_name", nil)
	SetUseEncryption(false)
	assert.Equal(t, int32(1234), c.Int32(1234))
	SetUseEncryption(true)
	assert.Equal(t, int32(486414762), c.Int32(1234))
}

package crypto

// Codec applies the table cipher for one key, consulting its Switch before
// every conversion. With the switch off every method returns its input.
type Codec struct {
	key []byte
	sw  Switch
}

// NewCodec creates a Codec. A nil Switch uses DefaultToggle.
func NewCodec(key []byte, sw Switch) *Codec {
	if sw == nil {
		sw = DefaultToggle
	}
	return &Codec{key: key, sw: sw}
}

// NewTableCodec creates a Codec keyed by CreateKeyString(table).
func NewTableCodec(table string, sw Switch) *Codec {
	return NewCodec(CreateKeyString(table), sw)
}

// Key returns the codec key.
func (c *Codec) Key() []byte {
	return c.key
}

// Enabled reports whether conversions currently apply the cipher.
func (c *Codec) Enabled() bool {
	return c.sw.Enabled()
}

// Int32 converts an int32 field; zero stays zero.
func (c *Codec) Int32(v int32) int32 {
	if !c.sw.Enabled() {
		return v
	}
	return ConvertInt32(v, c.key)
}

// Int64 converts an int64 field; zero stays zero.
func (c *Codec) Int64(v int64) int64 {
	if !c.sw.Enabled() {
		return v
	}
	return ConvertInt64(v, c.key)
}

// Uint32 converts a uint32 field; zero stays zero.
func (c *Codec) Uint32(v uint32) uint32 {
	if !c.sw.Enabled() {
		return v
	}
	return ConvertUint32(v, c.key)
}

// Uint64 converts a uint64 field; zero stays zero.
func (c *Codec) Uint64(v uint64) uint64 {
	if !c.sw.Enabled() {
		return v
	}
	return ConvertUint64(v, c.key)
}

// Float32 decrypts a stored float.
func (c *Codec) Float32(v float32) float32 {
	if !c.sw.Enabled() {
		return v
	}
	return ConvertFloat32(v, c.key)
}

// Float64 decrypts a stored double.
func (c *Codec) Float64(v float64) float64 {
	if !c.sw.Enabled() {
		return v
	}
	return ConvertFloat64(v, c.key)
}

// EncryptFloat32 encrypts a float for storage.
func (c *Codec) EncryptFloat32(v float32) float32 {
	if !c.sw.Enabled() {
		return v
	}
	return EncryptFloat32(v, c.key)
}

// EncryptFloat64 encrypts a double for storage.
func (c *Codec) EncryptFloat64(v float64) float64 {
	if !c.sw.Enabled() {
		return v
	}
	return EncryptFloat64(v, c.key)
}

// DecryptString decrypts a stored string.
func (c *Codec) DecryptString(s string) (string, error) {
	if !c.sw.Enabled() {
		return s, nil
	}
	return ConvertString(s, c.key)
}

// EncryptString encrypts a string for storage.
func (c *Codec) EncryptString(s string) string {
	if !c.sw.Enabled() {
		return s
	}
	return EncryptString(s, c.key)
}

// Row XORs a raw row with the keystream of name.
func (c *Codec) Row(name string, raw []byte) []byte {
	if !c.sw.Enabled() {
		return raw
	}
	return EncodeRow(name, raw)
}

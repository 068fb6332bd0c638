// Package tablezip opens the password-protected table archives shipped with
// the client. The password of an archive is derived from its file name.
package tablezip

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yeka/zip"

	"github.com/udisondev/bacy/internal/crypto"
)

// PasswordLength is the length of a derived archive password.
const PasswordLength = 20

// ErrNotFound is returned when an entry is missing from the archive.
var ErrNotFound = errors.New("tablezip: entry not found")

// Password returns the archive password for fileName.
func Password(fileName string) string {
	return crypto.CreatePassword(strings.ToLower(fileName), PasswordLength)
}

// Option configures Open.
type Option func(*File)

// WithPassword overrides the derived password.
func WithPassword(pw string) Option {
	return func(f *File) {
		f.password = pw
	}
}

// File is an opened archive.
type File struct {
	r        *zip.Reader
	password string
}

// Open reads an archive held in memory. fileName selects the password.
func Open(data []byte, fileName string, opts ...Option) (*File, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("reading archive %s: %w", fileName, err)
	}
	f := &File{r: r, password: Password(fileName)}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// OpenFile reads the archive at path, deriving the password from its base
// name.
func OpenFile(path string, opts ...Option) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return Open(data, filepath.Base(path), opts...)
}

// Names lists the entries in archive order, directories excluded.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.r.File))
	for _, zf := range f.r.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		names = append(names, zf.Name)
	}
	return names
}

// Get returns the decrypted content of the named entry.
func (f *File) Get(name string) ([]byte, error) {
	for _, zf := range f.r.File {
		if zf.Name == name {
			return f.read(zf)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Entry is a named archive member.
type Entry struct {
	Name string
	Data []byte
}

// ExtractAll returns every file entry in archive order.
func (f *File) ExtractAll() ([]Entry, error) {
	out := make([]Entry, 0, len(f.r.File))
	for _, zf := range f.r.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		data, err := f.read(zf)
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{Name: zf.Name, Data: data})
	}
	return out, nil
}

func (f *File) read(zf *zip.File) ([]byte, error) {
	if zf.IsEncrypted() {
		zf.SetPassword(f.password)
	}
	rc, err := zf.Open()
	if err != nil {
		return nil, fmt.Errorf("opening entry %s: %w", zf.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading entry %s: %w", zf.Name, err)
	}
	return data, nil
}

// Write builds an AES-256 encrypted archive. An empty password stores the
// entries unencrypted.
func Write(w io.Writer, password string, entries []Entry) error {
	zw := zip.NewWriter(w)
	for _, e := range entries {
		var (
			ew  io.Writer
			err error
		)
		if password == "" {
			ew, err = zw.Create(e.Name)
		} else {
			ew, err = zw.Encrypt(e.Name, password, zip.AES256Encryption)
		}
		if err != nil {
			return fmt.Errorf("adding %s: %w", e.Name, err)
		}
		if _, err := ew.Write(e.Data); err != nil {
			return fmt.Errorf("writing %s: %w", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	return nil
}

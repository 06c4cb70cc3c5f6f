package tbytes

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// Pos returns the offset of the next byte to be read.
func (b *Reader) Pos() int {
	return int(b.Size()) - b.Len()
}

func (b *Reader) SeekTo(offset int) error {
	if offset < 0 || int64(offset) > b.Size() {
		return errors.Errorf("SeekTo offset %d out of range [0, %d]", offset, b.Size())
	}
	_, err := b.Seek(int64(offset), io.SeekStart)
	return err
}

func (b *Reader) ReadInt16() (int, error) {
	bs, err := b.ReadBytes(Int16Size)
	if err != nil {
		return 0, err
	}
	return ParseInt16(bs[0], bs[1]), nil
}

func (b *Reader) ReadInt32() (int, error) {
	bs, err := b.ReadBytes(Int32Size)
	if err != nil {
		return 0, err
	}
	return ParseInt32(bs[0], bs[1], bs[2], bs[3]), nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// return early so that reading zero bytes at the end of the data
	// does not turn into an EOF error
	if n == 0 {
		return bs, nil
	}
	_, err := io.ReadFull(b, bs)
	if err != nil {
		err := errors.Wrapf(err, "ReadBytes error reading %d bytes at offset %d", n, b.Pos())
		return nil, err
	}
	return bs, nil
}

func (b *Reader) ReadString(n int) (string, error) {
	bs, err := b.ReadBytes(n)
	if err != nil {
		return "", err
	}

	return string(bs), nil
}

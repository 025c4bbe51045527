package bitmap

import (
	"bufio"
	"os"

	"github.com/pkg/errors"

	"github.com/askiada/imagecraft/pkg/pixel"
)

// ReadFile decodes the bitmap stored at path.
func ReadFile(path string) (*pixel.Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	buf, err := Decode(bufio.NewReader(file))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode %s", path)
	}

	return buf, nil
}

// WriteFile encodes buf into a new file at path, truncating any existing one. A failed write leaves
// whatever was already written on disk.
func WriteFile(path string, buf *pixel.Buffer) error {
	file, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}

	err = Encode(file, buf)
	if err != nil {
		file.Close()

		return errors.Wrapf(err, "unable to encode %s", path)
	}

	err = file.Close()
	if err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}

	return nil
}

// SniffFile reports whether the file at path starts with the BM signature.
func SniffFile(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, &IOError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	return Sniff(file)
}

// Stat reads the headers of the file at path without decoding the pixels.
func Stat(path string) (FileHeader, InfoHeader, error) {
	file, err := os.Open(path)
	if err != nil {
		return FileHeader{}, InfoHeader{}, &IOError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	return ReadHeaders(bufio.NewReader(file))
}

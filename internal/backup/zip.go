package backup

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var _ FileZiper = (*Ziper)(nil)

type FileZiper interface {
	ZipFiles(outputFilepath string, inputFilepaths ...string) error
}

type Ziper struct {
	mkdirAll   func(path string, perm os.FileMode) error
	createFile func(name string) (*os.File, error)
	openFile   func(name string) (*os.File, error)
	ioCopy     func(dst io.Writer, src io.Reader) (written int64, err error)
}

func NewZiper() *Ziper {
	return &Ziper{
		mkdirAll:   os.MkdirAll,
		createFile: os.Create,
		openFile:   os.Open,
		ioCopy:     io.Copy,
	}
}

// ZipFiles writes the input files, flattened to their base names,
// into a new zip file at outputFilepath.
func (z *Ziper) ZipFiles(outputFilepath string, inputFilepaths ...string) (err error) {
	const perm = 0o700
	err = z.mkdirAll(filepath.Dir(outputFilepath), perm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := z.createFile(outputFilepath)
	if err != nil {
		return fmt.Errorf("creating zip file: %w", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, inputFilepath := range inputFilepaths {
		err = z.addFile(w, inputFilepath)
		if err != nil {
			_ = w.Close()
			return fmt.Errorf("adding %s to zip file: %w", inputFilepath, err)
		}
	}

	err = w.Close()
	if err != nil {
		return fmt.Errorf("closing zip writer: %w", err)
	}
	return f.Close()
}

func (z *Ziper) addFile(w *zip.Writer, path string) error {
	f, err := z.openFile(path)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Method = zip.Deflate
	ioWriter, err := w.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = z.ioCopy(ioWriter, f)
	return err
}

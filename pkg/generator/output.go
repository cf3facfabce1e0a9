package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	qr "github.com/Badsnus/qrforge/pkg/qrcode"
)

// Output hands out fresh file names inside a directory for codes saved
// without an explicit path.
type Output struct {
	Dir string
}

func NewOutput(dir string) *Output {
	if !filepath.IsAbs(dir) {
		if wd, err := os.Getwd(); err == nil {
			dir = filepath.Join(wd, dir)
		}
	}
	return &Output{Dir: dir}
}

// Path returns <dir>/<uuid>.<ext> for kind, creating dir if needed.
func (o *Output) Path(kind qr.Kind) (string, error) {
	if err := o.ensureOutputDir(); err != nil {
		return "", err
	}
	return filepath.Join(o.Dir, uuid.New().String()+kind.Ext()), nil
}

func (o *Output) ensureOutputDir() error {
	if _, err := os.Stat(o.Dir); os.IsNotExist(err) {
		err = os.MkdirAll(o.Dir, os.ModePerm)
		if err != nil {
			return fmt.Errorf("failed to create output directory: %v", err)
		}
	}
	return nil
}

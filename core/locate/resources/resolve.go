package resources

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/bmfont/core"
	"github.com/npillmayer/bmfont/core/font/bmfont"
	"github.com/npillmayer/bmfont/core/font/bmfont/bmbinary"
)

// NotFound returns an application error for a missing font.
func NotFound(name string) error {
	e := fmt.Errorf("resource missing: %v", name)
	return core.WrapError(e, core.EMISSING, "font not found: %s", name)
}

//go:embed packaged/*
var packaged embed.FS

const fontExt = ".fnt"

// NormalizeFontname converts a font name or file name into a lookup key:
// lowercase, blanks replaced by underscores, without extension.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return strings.ToLower(fname)
}

// --- Fonts -----------------------------------------------------------------

type fontPlusErr struct {
	font *bmfont.Font
	err  error
}

// BMFontPromise delivers a font which is being resolved.
type BMFontPromise interface {
	Font() (*bmfont.Font, error)
	FontContext(context.Context) (*bmfont.Font, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*bmfont.Font, error)
}

func (loader fontLoader) Font() (*bmfont.Font, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) FontContext(ctx context.Context) (*bmfont.Font, error) {
	return loader.await(ctx)
}

// ResolveBMFont resolves a binary BMFont descriptor. name is either the name
// of a packaged font, a path to a descriptor file, or the name of a system
// font with a descriptor installed next to it.
//
// The promise may be awaited any number of times; every call after the
// resolution has finished returns the same font and error.
func ResolveBMFont(name string) BMFontPromise {
	var result fontPlusErr
	done := make(chan struct{})
	go func() {
		defer close(done)
		var data []byte
		if data, result.err = findFont(name); result.err == nil {
			result.font, result.err = bmbinary.DecodeBytes(data)
		}
	}()
	return fontLoader{
		await: func(ctx context.Context) (*bmfont.Font, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-done:
				return result.font, result.err
			}
		},
	}
}

func findFont(name string) ([]byte, error) {
	if data := findPackagedFont(name); data != nil {
		return data, nil
	}
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		tracer().Debugf("%s is a file", name)
		return readFont(name)
	}
	fpath, err := findfont.Find(name) // try to find next to a system font
	if err != nil || fpath == "" {
		tracer().Infof("font %s not found", name)
		return nil, NotFound(name)
	}
	if ext := filepath.Ext(fpath); !strings.EqualFold(ext, fontExt) {
		fpath = strings.TrimSuffix(fpath, ext) + fontExt
	}
	if _, err := os.Stat(fpath); err != nil {
		tracer().Infof("no descriptor %s for system font %s", fpath, name)
		return nil, NotFound(name)
	}
	tracer().Debugf("%s is a system font", name)
	return readFont(fpath)
}

func findPackagedFont(name string) []byte {
	if filepath.Base(name) != name {
		return nil
	}
	fonts, _ := packaged.ReadDir("packaged/fonts")
	key := NormalizeFontname(name)
	for _, f := range fonts {
		if NormalizeFontname(f.Name()) != key {
			continue
		}
		tracer().Debugf("found font as embedded font file %s", f.Name())
		data, err := packaged.ReadFile("packaged/fonts/" + f.Name())
		if err != nil {
			tracer().Errorf("cannot read embedded font %s: %v", f.Name(), err)
			return nil
		}
		return data
	}
	return nil
}

func readFont(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot read font file %s", path)
	}
	return data, nil
}

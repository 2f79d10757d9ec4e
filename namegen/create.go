package namegen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hashicorp/go-multierror"
)

// CreateNames creates count empty files in dir, each under a freshly forged
// name.  Every file is first created under a numeric placeholder name and
// then renamed, and the filesystem is synced after each rename.
//
// Failures for individual names are collected and do not stop the batch;
// cancelling ctx does.  The returned slice lists the names that were
// created.
func (g *Generator) CreateNames(ctx context.Context, dir string, count int) ([]string, error) {
	var errs *multierror.Error
	names := make([]string, 0, count)
	for index := 0; index < count; index++ {
		if err := ctx.Err(); err != nil {
			errs = multierror.Append(errs, err)
			break
		}

		name, attempts, err := g.Next()
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("name %d: %w", index, err))
			continue
		}

		if err := createOne(dir, strconv.Itoa(index), string(name)); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("name %d: %w", index, err))
			continue
		}

		g.logger.Debug().
			Int("index", index).
			Int("attempts", attempts).
			Hex("name", name).
			Msg("created forged name")
		names = append(names, string(name))
	}
	return names, errs.ErrorOrNil()
}

func createOne(dir string, placeholder string, name string) error {
	srcPath := filepath.Join(dir, placeholder)
	dstPath := filepath.Join(dir, name)

	f, err := os.OpenFile(srcPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if err := os.Rename(srcPath, dstPath); err != nil {
		_ = os.Remove(srcPath)
		return err
	}

	return syncDir(dir)
}

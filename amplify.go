// SPDX-License-Identifier: EPL-2.0

package amplify

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ik5/amplify/codec"
	"github.com/ik5/amplify/project"
	"github.com/ik5/amplify/render"
)

// Render renders p into a mixed buffer without writing anything.
func Render(ctx context.Context, p *project.Project, opts ...render.Option) (*render.Result, error) {
	return render.New(p, opts...).Render(ctx)
}

// Export renders p and writes the mix to p.Export.Path in p.Export.Format.
// An empty format is taken from the path's extension. A relative path is
// resolved against the project directory.
func Export(ctx context.Context, p *project.Project, opts ...render.Option) (*render.Result, error) {
	return ExportTo(ctx, p, "", opts...)
}

// ExportTo is Export with the output path overridden. A non-empty path
// also overrides the format, which is then derived from its extension.
func ExportTo(ctx context.Context, p *project.Project, path string, opts ...render.Option) (*render.Result, error) {
	format := p.Export.Format
	if path != "" {
		format = ""
	} else {
		path = p.Export.Path
		if !filepath.IsAbs(path) && p.Dir != "" {
			path = filepath.Join(p.Dir, path)
		}
	}
	if path == "" {
		return nil, fmt.Errorf("%w: no export path", codec.ErrIO)
	}
	format, err := codec.ExportFormat(path, format)
	if err != nil {
		return nil, err
	}

	res, err := Render(ctx, p, opts...)
	if err != nil {
		return res, err
	}

	if err := codec.Encode(res.Mix, p.SampleRate, path, format); err != nil {
		return res, fmt.Errorf("exporting %s: %w", p.Name, err)
	}

	return res, nil
}

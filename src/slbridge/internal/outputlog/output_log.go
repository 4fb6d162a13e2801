// Package outputlog writes human readable output to a file the IDE can show to the user.
package outputlog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/uber/slcore-bridge/src/slbridge/internal/fs"
	"github.com/uber/slcore-bridge/src/slbridge/internal/serverinfofile"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const _fmtOutputKey = "output:%s"

// Params define the dependencies for New.
type Params struct {
	FS             fs.BridgeFS
	Lifecycle      fx.Lifecycle
	ServerInfoFile serverinfofile.ServerInfoFile
}

// Output writes lines to an output file. A nil *Output discards everything.
type Output struct {
	logger *zap.SugaredLogger
}

// New creates an output file under a directory named after name in the user's temp directory.
// The file path is stored in the server info file so the IDE can tail it, and the file is removed on shutdown.
func New(p Params, name string) (*Output, error) {
	dir := filepath.Join(os.TempDir(), name)
	if err := p.FS.MkdirAll(dir); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	file, err := p.FS.TempFile(dir, "")
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}

	if err := p.ServerInfoFile.UpdateField(fmt.Sprintf(_fmtOutputKey, name), file.Name()); err != nil {
		return nil, multierr.Combine(err, file.Close(), p.FS.Remove(file.Name()))
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(file),
		zap.InfoLevel,
	)
	logger := zap.New(core).Sugar()

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = logger.Sync()
			return multierr.Append(file.Close(), p.FS.Remove(file.Name()))
		},
	})

	return &Output{logger: logger}, nil
}

// Printf writes one formatted line.
func (o *Output) Printf(format string, args ...any) {
	if o == nil {
		return
	}
	o.logger.Infof(format, args...)
}
